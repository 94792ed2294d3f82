package metrics

import (
	"math"

	"pubops/partnerstats/internal/extract"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Assemble computes the derived fields for today's snapshot against the prior
// day's stored values.
//
// New players is the non-negative delta of lifetime unique players; on the
// very first run, with no prior record at all, today's unique count stands in
// for it. Every formula degrades to nil when an input is missing rather than
// inventing a zero.
func Assemble(today FinancialSnapshot, prior *PriorDay) Derived {
	var d Derived

	if today.UniquePlayers != nil {
		switch {
		case prior == nil:
			v := *today.UniquePlayers
			d.NewPlayers = &v
		case prior.UniquePlayers != nil:
			delta := *today.UniquePlayers - *prior.UniquePlayers
			if delta < 0 {
				delta = 0
			}
			d.NewPlayers = &delta
		}
	}

	if today.DAU != nil && d.NewPlayers != nil &&
		prior != nil && prior.DAU != nil && *prior.DAU > 0 {
		v := round2(float64(*today.DAU-*d.NewPlayers) / float64(*prior.DAU))
		d.D1Retention = &v
	}

	if today.DAU != nil && d.NewPlayers != nil {
		returning := float64(*today.DAU) - float64(*d.NewPlayers)
		if returning > 0 {
			v := round2(float64(*d.NewPlayers) / returning)
			d.NewVsReturningRatio = &v
		}
	}

	if today.DAU != nil && today.PCU != nil && *today.DAU > 0 {
		v := round2(float64(*today.PCU) / float64(*today.DAU))
		d.PCUOverDAU = &v
	}

	if today.DailyRevenue != nil && today.DAU != nil && *today.DAU > 0 {
		v := round2(*today.DailyRevenue / float64(*today.DAU))
		d.DailyARPU = &v
	}

	return d
}

// EnrichARPU stamps per-country ARPU onto the revenue ranking by dividing
// each country's revenue by its player count from the DAU ranking. Countries
// missing from the DAU list, or with zero players, keep a nil ARPU.
func EnrichARPU(revenue []CountryRevenue, players []CountryPlayers) []CountryRevenue {
	if len(revenue) == 0 || len(players) == 0 {
		return revenue
	}

	byCountry := make(map[string]int64, len(players))
	for _, p := range players {
		byCountry[p.Country] = p.Players
	}

	enriched := make([]CountryRevenue, len(revenue))
	for i, entry := range revenue {
		if entry.Revenue != nil {
			if n, ok := byCountry[entry.Country]; ok && n > 0 {
				v := round2(*entry.Revenue / float64(n))
				entry.ARPU = &v
			}
		}
		enriched[i] = entry
	}
	return enriched
}

// RankCountriesByRevenue keeps the top k revenue entries, descending, with
// 1-based ranks stamped in final order. Entries without a revenue figure are
// excluded from the ranking.
func RankCountriesByRevenue(entries []CountryRevenue, k int) []CountryRevenue {
	ranked := extract.TopK(entries, k, func(e CountryRevenue) (float64, bool) {
		if e.Revenue == nil {
			return 0, false
		}
		return *e.Revenue, true
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RankCountriesByPlayers keeps the top k player-count entries, descending.
func RankCountriesByPlayers(entries []CountryPlayers, k int) []CountryPlayers {
	ranked := extract.TopK(entries, k, func(e CountryPlayers) (float64, bool) {
		return float64(e.Players), true
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RankCountriesByDownloads keeps the top k download entries, descending.
func RankCountriesByDownloads(entries []CountryDownload, k int) []CountryDownload {
	ranked := extract.TopK(entries, k, func(e CountryDownload) (float64, bool) {
		return float64(e.Downloads), true
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RankRegionsByDownloads keeps the top k region download entries, descending.
func RankRegionsByDownloads(entries []RegionDownload, k int) []RegionDownload {
	ranked := extract.TopK(entries, k, func(e RegionDownload) (float64, bool) {
		return float64(e.Downloads), true
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
