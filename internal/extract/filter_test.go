package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSignificant(t *testing.T) {
	rows := []TrafficSourceRow{
		{Label: "Home", PctImpressions: 12.5, PctVisits: 8.0},
		{Label: "Noise", PctImpressions: 0.5, PctVisits: 0.9},
		{Label: "ImpressionsOnly", PctImpressions: 2.0, PctVisits: 0.1},
		{Label: "VisitsOnly", PctImpressions: 0.2, PctVisits: 3.0},
		{Label: "Boundary", PctImpressions: 1.0, PctVisits: 1.0},
	}

	kept := FilterSignificant(rows, 1.0)

	require.Len(t, kept, 3)
	assert.Equal(t, "Home", kept[0].Label)
	assert.Equal(t, "ImpressionsOnly", kept[1].Label)
	assert.Equal(t, "VisitsOnly", kept[2].Label)
}

func TestFilterSignificantKeepsOrder(t *testing.T) {
	rows := []TrafficSourceRow{
		{Label: "B", PctImpressions: 2, PctVisits: 2},
		{Label: "A", PctImpressions: 3, PctVisits: 3},
	}

	kept := FilterSignificant(rows, 1.0)
	require.Len(t, kept, 2)
	assert.Equal(t, "B", kept[0].Label)
	assert.Equal(t, "A", kept[1].Label)
}

func TestFilterSignificantEmpty(t *testing.T) {
	assert.Empty(t, FilterSignificant(nil, 1.0))
}

func TestTopK(t *testing.T) {
	rows := []TrafficSourceRow{
		{Label: "small", Visits: 10},
		{Label: "big", Visits: 500},
		{Label: "mid", Visits: 100},
	}

	top := TopK(rows, 2, func(r TrafficSourceRow) (float64, bool) {
		return float64(r.Visits), true
	})

	require.Len(t, top, 2)
	assert.Equal(t, "big", top[0].Label)
	assert.Equal(t, "mid", top[1].Label)
}

func TestTopKExcludesUnparseable(t *testing.T) {
	rows := []TrafficSourceRow{
		{Label: "good", Visits: 10},
		{Label: "bad", Visits: 999},
	}

	top := TopK(rows, 5, func(r TrafficSourceRow) (float64, bool) {
		if r.Label == "bad" {
			return 0, false
		}
		return float64(r.Visits), true
	})

	require.Len(t, top, 1)
	assert.Equal(t, "good", top[0].Label)
}

func TestTopKStableOnTies(t *testing.T) {
	rows := []TrafficSourceRow{
		{Label: "first", Visits: 100},
		{Label: "second", Visits: 100},
	}

	top := TopK(rows, 2, func(r TrafficSourceRow) (float64, bool) {
		return float64(r.Visits), true
	})

	require.Len(t, top, 2)
	assert.Equal(t, "first", top[0].Label)
	assert.Equal(t, "second", top[1].Label)
}
