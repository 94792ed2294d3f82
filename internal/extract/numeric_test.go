package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{"comma grouped", "12,345", 12345, true},
		{"plain", "987", 987, true},
		{"float truncates", "12.7", 12, true},
		{"empty placeholder", "", 0, true},
		{"nbsp placeholder", "&nbsp;", 0, true},
		{"dash placeholder", "-", 0, true},
		{"garbage coerces", "n/a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCount(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"with symbol", "3.2%", 3.2, true},
		{"without symbol", "3.2", 3.2, true},
		{"sub one", "0.03%", 0.03, true},
		{"empty placeholder", "", 0, true},
		{"dash placeholder", "-", 0, true},
		{"no digits coerces", "none", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePercent(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{"million suffix", "46.54 million", 46_540_000, true},
		{"thousand suffix", "765 thousand", 765_000, true},
		{"billion suffix", "1.2 billion", 1_200_000_000, true},
		{"localized million", "46.54 百万", 46_540_000, true},
		{"plain comma number", "1,234,567", 1_234_567, true},
		{"placeholder", "-", 0, true},
		{"no digits coerces", "unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMagnitude(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(""))
	assert.True(t, IsPlaceholder("  "))
	assert.True(t, IsPlaceholder("&nbsp;"))
	assert.True(t, IsPlaceholder("-"))
	assert.False(t, IsPlaceholder("0"))
	assert.False(t, IsPlaceholder("12,345"))
}
