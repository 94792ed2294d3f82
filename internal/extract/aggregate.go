package extract

import (
	"slices"
	"strings"
)

// Canonical and localized labels recognized by the single-pick aggregates.
var (
	takeoverBannerLabels = []string{"Takeover Banner", "置顶展示横幅"}
	popUpMessageLabels   = []string{"Marketing Message", "宣传信息", "营销信息"}
)

const mainClusterPrefix = "Main Cluster"

// MainClusterFeature sums every homepage row belonging to the main cluster
// (ranked positional slots counted separately on the page but reported as a
// whole). Counts and shares are summed; click-through rate is averaged.
//
// Input must be the unfiltered homepage children: individual positions may
// each sit below the significance floor while the aggregate is significant.
func MainClusterFeature(homepageRows []TrafficSourceRow, minImpressions int64) *AggregateFeature {
	var members []TrafficSourceRow
	for _, r := range homepageRows {
		if strings.HasPrefix(r.Label, mainClusterPrefix) || strings.Contains(r.Label, localizedClusterPrefix) {
			members = append(members, r)
		}
	}
	if len(members) == 0 {
		return nil
	}

	agg := AggregateFeature{Label: "Main Cluster"}
	for _, m := range members {
		agg.Impressions += m.Impressions
		agg.OwnerImpressions += m.OwnerImpressions
		agg.PctImpressions += m.PctImpressions
		agg.ClickThroughRate += m.ClickThroughRate
		agg.Visits += m.Visits
		agg.OwnerVisits += m.OwnerVisits
		agg.PctVisits += m.PctVisits
	}
	agg.ClickThroughRate = round2(agg.ClickThroughRate / float64(len(members)))

	if agg.Impressions < minImpressions {
		return nil
	}
	return &agg
}

// TakeoverBannerFeature picks the takeover banner row from the homepage
// breakdown. Absence is a legitimate outcome; the banner is transient.
func TakeoverBannerFeature(homepageRows []TrafficSourceRow, minImpressions int64) *AggregateFeature {
	return pickFeature(homepageRows, takeoverBannerLabels, minImpressions)
}

// PopUpMessageFeature picks the marketing-message row. It is sourced from the
// top-level list, not the homepage breakdown.
func PopUpMessageFeature(topLevelRows []TrafficSourceRow, minImpressions int64) *AggregateFeature {
	return pickFeature(topLevelRows, popUpMessageLabels, minImpressions)
}

func pickFeature(rows []TrafficSourceRow, labels []string, minImpressions int64) *AggregateFeature {
	for _, r := range rows {
		if !slices.Contains(labels, r.Label) {
			continue
		}
		if r.Impressions < minImpressions {
			return nil
		}
		f := AggregateFeature(r)
		return &f
	}
	return nil
}
