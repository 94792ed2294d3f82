package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"pubops/partnerstats/helpers"
	"pubops/partnerstats/logger"
	perrors "pubops/partnerstats/pkg/errors"
	"pubops/partnerstats/services/cache"
)

// rateLimitBackoff is how long an app stays blocked after the portal rate
// limits it. The window is well past any observed Retry-After.
const rateLimitBackoff = 30 * time.Minute

// PortalSource fetches traffic-stats pages from the partner portal over HTTP.
// A shared cache marks rate-limited apps so concurrent workers back off
// together instead of hammering the portal from every goroutine.
type PortalSource struct {
	baseURL string
	cache   cache.CacheService
	log     *logger.Logger
}

func NewPortalSource(baseURL string, cacheSvc cache.CacheService) *PortalSource {
	return &PortalSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cacheSvc,
		log:     logger.ForScraper("portal"),
	}
}

func (s *PortalSource) Name() string {
	return "portal"
}

func (s *PortalSource) Fetch(ctx context.Context, appID int64, statDate string) (string, error) {
	key := fmt.Sprintf("rate_limited_app_%d", appID)
	if s.cache != nil {
		if _, err := s.cache.Get(key); err == nil {
			return "", perrors.NewRateLimit(fmt.Sprintf("app %d", appID), rateLimitBackoff)
		}
	}

	url := fmt.Sprintf("%s/apps/navtrafficstats/%d?start_date=%s&end_date=%s",
		s.baseURL, appID, statDate, statDate)

	body, err := helpers.FetchWithRandomHeaders(ctx, url)
	if err != nil {
		if errors.Is(err, helpers.ErrRateLimited) {
			if s.cache != nil {
				if cerr := s.cache.Set(key, []byte("1"), rateLimitBackoff); cerr != nil {
					s.log.Warn().Err(cerr).Msg("failed to record rate limit marker")
				}
			}
			return "", perrors.NewRateLimit(fmt.Sprintf("app %d", appID), rateLimitBackoff)
		}
		return "", perrors.NewNavigation(fmt.Sprintf("app %d", appID), "fetching traffic stats page", err)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", perrors.NewNavigation(fmt.Sprintf("app %d", appID), "reading traffic stats page", err)
	}
	return string(raw), nil
}
