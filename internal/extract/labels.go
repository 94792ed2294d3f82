package extract

import (
	"regexp"
	"strings"
)

var (
	latinPattern           = regexp.MustCompile(`[a-zA-Z]`)
	cjkPattern             = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
	clusterPositionPattern = regexp.MustCompile(`主看板（第\s*(\d+)\s*个位置）`)
)

const localizedClusterPrefix = "主看板"

// Translator maps localized feature labels to canonical English identifiers.
// The table is copied at construction and never mutated, so one Translator is
// safe for concurrent use across documents.
type Translator struct {
	exact map[string]string
}

// NewTranslator builds a Translator from an exact-match table.
func NewTranslator(table map[string]string) *Translator {
	exact := make(map[string]string, len(table))
	for k, v := range table {
		exact[k] = v
	}
	return &Translator{exact: exact}
}

// DefaultTranslator returns a Translator loaded with the built-in feature
// label table.
func DefaultTranslator() *Translator {
	return NewTranslator(featureLabels)
}

// Translate returns the canonical form of a feature label.
//
// Labels already in Latin script pass through unchanged, which also makes
// Translate idempotent. An unmapped localized label falls through the
// positional cluster pattern and the cluster-prefix substitution before being
// returned as-is; the untranslated fallback is an accepted degraded case.
func (t *Translator) Translate(label string) string {
	if latinPattern.MatchString(label) && !cjkPattern.MatchString(label) {
		return label
	}

	if canonical, ok := t.exact[label]; ok {
		return canonical
	}

	// 主看板（第 X 个位置） → Main Cluster (Position X)
	if m := clusterPositionPattern.FindStringSubmatch(label); m != nil {
		return "Main Cluster (Position " + m[1] + ")"
	}

	if strings.HasPrefix(label, localizedClusterPrefix) {
		r := strings.NewReplacer(localizedClusterPrefix, "Main Cluster", "（", "(", "）", ")")
		return r.Replace(label)
	}

	return label
}

// Untranslated reports whether a canonical label still carries CJK text,
// meaning translation fell back to the raw label.
func Untranslated(canonical string) bool {
	return cjkPattern.MatchString(canonical)
}
