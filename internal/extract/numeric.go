package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	percentPattern   = regexp.MustCompile(`([0-9.]+)%?`)
	magnitudePattern = regexp.MustCompile(`([\d,]+\.?\d*)\s*(million|thousand|billion|百万|千|十亿)?`)
)

// IsPlaceholder reports whether the cell text is one of the recognized
// empty markers. Placeholders always parse to zero regardless of kind.
func IsPlaceholder(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || t == "&nbsp;" || t == " " || t == "-"
}

// ParseCount parses a comma-grouped integer cell ("8,713,638"). Float text is
// truncated. Malformed text coerces to 0; ok is false so callers can count
// the coercion.
func ParseCount(text string) (int64, bool) {
	if IsPlaceholder(text) {
		return 0, true
	}
	clean := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if n, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// ParsePercent parses a percentage cell ("3.2%"). The leading numeric
// substring is used; text without one yields 0.
func ParsePercent(text string) (float64, bool) {
	if IsPlaceholder(text) {
		return 0, true
	}
	clean := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	m := percentPattern.FindStringSubmatch(clean)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseMagnitude parses header totals that may carry a magnitude suffix,
// English or localized: "46.54 million", "46.54 百万". Plain comma-grouped
// numbers parse as-is.
func ParseMagnitude(text string) (int64, bool) {
	if IsPlaceholder(text) {
		return 0, true
	}
	m := magnitudePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil || m[1] == "" {
		return 0, false
	}
	number, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "million", "百万":
		return int64(math.Round(number * 1_000_000)), true
	case "thousand", "千":
		return int64(math.Round(number * 1_000)), true
	case "billion", "十亿":
		return int64(math.Round(number * 1_000_000_000)), true
	}
	return int64(number), true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
