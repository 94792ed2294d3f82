package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	perrors "pubops/partnerstats/pkg/errors"
)

// FileSource replays saved page snapshots from a directory, named
// <appID>_<statDate>.html. Used for backfills and local runs without portal
// access.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Fetch(ctx context.Context, appID int64, statDate string) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%d_%s.html", appID, statDate))
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", perrors.NewNavigation(fmt.Sprintf("app %d", appID), "reading snapshot "+path, err)
	}
	return string(raw), nil
}
