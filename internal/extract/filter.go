package extract

import "sort"

// FilterSignificant drops rows whose impression share and visit share are
// both at or below the threshold. Either share exceeding it retains the row.
// Pre-aggregated features never pass through here; they are gated by the
// impression floor in the aggregator instead.
func FilterSignificant(rows []TrafficSourceRow, thresholdPct float64) []TrafficSourceRow {
	var kept []TrafficSourceRow
	for _, r := range rows {
		if r.PctImpressions <= thresholdPct && r.PctVisits <= thresholdPct {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// TopK returns up to k entries with the largest metric value, descending.
// Ties keep first-encountered order. Entries whose metric is not parseable
// are excluded from the ranking entirely, not ranked last.
func TopK[T any](items []T, k int, metric func(T) (float64, bool)) []T {
	type scored struct {
		item  T
		value float64
	}

	var ranked []scored
	for _, it := range items {
		v, ok := metric(it)
		if !ok {
			continue
		}
		ranked = append(ranked, scored{item: it, value: v})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].value > ranked[j].value
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	out := make([]T, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.item)
	}
	return out
}
