package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pubops/partnerstats/logger"
	perrors "pubops/partnerstats/pkg/errors"
)

// Thresholds tune the classification stages. Zero values are not usable;
// construct via DefaultThresholds and override fields as needed.
type Thresholds struct {
	// SignificancePct is the share at or below which a row is dropped when
	// both its impression and visit shares sit under it.
	SignificancePct float64
	// FeatureMinImpressions suppresses aggregate features with fewer
	// impressions, which read as noise in day-over-day charts.
	FeatureMinImpressions int64
	// TopK bounds ranked country lists.
	TopK int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SignificancePct:       1.0,
		FeatureMinImpressions: 1000,
		TopK:                  10,
	}
}

// Engine turns a raw traffic-stats page into a MarketingSnapshot. It is
// stateless between calls and safe for concurrent use.
type Engine struct {
	gameName   string
	translator *Translator
	thresholds Thresholds
	log        *logger.Logger
}

func NewEngine(gameName string, thresholds Thresholds) *Engine {
	return &Engine{
		gameName:   gameName,
		translator: DefaultTranslator(),
		thresholds: thresholds,
		log:        logger.ForExtractor(gameName),
	}
}

// Extract runs the full pipeline: header totals, chart arrays, top-level row
// harvest, homepage variant resolution, child-row harvest, significance
// filtering and aggregate feature classification. Extraction is deterministic;
// the same page always yields the same snapshot.
func (e *Engine) Extract(page string) (*MarketingSnapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, perrors.NewParsing(e.gameName, "building document", err)
	}

	snap := &MarketingSnapshot{}

	if v, ok := headerStat(doc, []string{"Impressions", "曝光量"}); ok {
		snap.TotalImpressions = &v
	}
	if v, ok := headerStat(doc, []string{"Visits", "访问量"}); ok {
		snap.TotalVisits = &v
	}
	if snap.TotalImpressions != nil && snap.TotalVisits != nil && *snap.TotalImpressions > 0 {
		ctr := round2(float64(*snap.TotalVisits) / float64(*snap.TotalImpressions) * 100)
		snap.ClickThroughRate = &ctr
	}

	snap.OwnerVisitShare = ownerVisitShare(page)
	snap.TopCountryVisits = topCountryVisits(page)
	if e.thresholds.TopK > 0 && len(snap.TopCountryVisits) > e.thresholds.TopK {
		snap.TopCountryVisits = snap.TopCountryVisits[:e.thresholds.TopK]
	}

	fragments := topLevelRows(doc, &snap.Stats)
	if len(fragments) == 0 {
		e.log.Warn().Msg("no traffic source rows found on page")
	}

	topLevel := make([]TrafficSourceRow, 0, len(fragments))
	for _, frag := range fragments {
		topLevel = append(topLevel, e.parseRow(frag, &snap.Stats))
	}

	snap.Variant = resolveHomepageVariant(fragments)

	var homepage []TrafficSourceRow
	if snap.Variant != nil {
		childFrags := childRows(doc, snap.Variant.ClassToken, &snap.Stats)
		homepage = make([]TrafficSourceRow, 0, len(childFrags))
		for _, frag := range childFrags {
			homepage = append(homepage, e.parseRow(frag, &snap.Stats))
		}
	}

	snap.AllSources = FilterSignificant(topLevel, e.thresholds.SignificancePct)
	snap.HomepageBreakdown = FilterSignificant(homepage, e.thresholds.SignificancePct)

	// The main cluster aggregates over the unfiltered children: positions can
	// individually fall under the significance floor while their sum matters.
	snap.MainCluster = MainClusterFeature(homepage, e.thresholds.FeatureMinImpressions)
	snap.TakeoverBanner = TakeoverBannerFeature(snap.HomepageBreakdown, e.thresholds.FeatureMinImpressions)
	snap.PopUpMessage = PopUpMessageFeature(snap.AllSources, e.thresholds.FeatureMinImpressions)

	e.log.Debug().
		Int("top_level", snap.Stats.TopLevelRows).
		Int("homepage", snap.Stats.HomepageRows).
		Int("skipped", snap.Stats.SkippedRows).
		Int("coerced_cells", snap.Stats.CoercedCells).
		Int("untranslated", snap.Stats.UntranslatedLabels).
		Msg("extraction complete")

	return snap, nil
}

// parseRow maps the positional data cells onto named fields. Placeholder and
// malformed cells coerce to zero; each coercion is counted so a page whose
// layout drifted shows up in the stats rather than as silent zeros.
func (e *Engine) parseRow(frag rowFragment, stats *ExtractionStats) TrafficSourceRow {
	row := TrafficSourceRow{Label: e.translator.Translate(frag.label)}
	if Untranslated(row.Label) {
		stats.UntranslatedLabels++
		e.log.Debug().Str("label", frag.label).Msg("no translation for feature label")
	}

	count := func(cell string) int64 {
		v, ok := ParseCount(cell)
		if !ok {
			stats.CoercedCells++
		}
		return v
	}
	percent := func(cell string) float64 {
		v, ok := ParsePercent(cell)
		if !ok {
			stats.CoercedCells++
		}
		return v
	}

	row.Impressions = count(frag.cells[0])
	row.OwnerImpressions = count(frag.cells[1])
	row.PctImpressions = percent(frag.cells[2])
	row.ClickThroughRate = percent(frag.cells[3])
	row.Visits = count(frag.cells[4])
	row.OwnerVisits = count(frag.cells[5])
	row.PctVisits = percent(frag.cells[6])
	return row
}

// headerStat reads one header section total. The header lays each stat out as
// a label div followed by a sibling div.stat holding the value, rendered as a
// human magnitude ("46.54 million") for large counts and a plain comma number
// otherwise.
func headerStat(doc *goquery.Document, names []string) (int64, bool) {
	var text string
	var found bool

	doc.Find("div.stats_header_section > div").EachWithBreak(func(i int, s *goquery.Selection) bool {
		label := strings.TrimSpace(s.Text())
		for _, want := range names {
			if !strings.Contains(label, want) {
				continue
			}
			stat := s.NextFiltered("div.stat").First()
			if stat.Length() > 0 {
				text = strings.TrimSpace(stat.Text())
				found = true
				return false
			}
		}
		return true
	})

	if !found {
		return 0, false
	}
	return ParseMagnitude(text)
}
