package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pubops/partnerstats/logger"
)

// minRowCells is the well-formedness gate: 1 label cell + 7 data cells. The
// layout sheds cells when data is absent, so rows below this are skipped
// rather than misparsed.
const minRowCells = 8

var featureClassPattern = regexp.MustCompile(`ToggleFeatureStats\(\s*this,\s*'(featurestatsclass_\d+)'\s*\)`)

// rowFragment is one harvested table row before numeric parsing.
type rowFragment struct {
	label      string   // raw label text, untranslated
	cells      []string // the 7 data cells in positional order
	classToken string   // child-row class toggled by this row, top level only
}

// topLevelRows locates the "all traffic sources" rows. The marker is
// structural, not positional: an element carrying both the hover-highlight
// class and a click handler that toggles its feature-stats children.
func topLevelRows(doc *goquery.Document, stats *ExtractionStats) []rowFragment {
	var fragments []rowFragment

	doc.Find("div.tr.highlightHover.page_stats").Each(func(i int, s *goquery.Selection) {
		onclick, _ := s.Attr("onclick")
		if !strings.Contains(onclick, "ToggleFeatureStats") {
			return
		}

		frag, ok := harvestRow(s, stats)
		if !ok {
			return
		}
		if m := featureClassPattern.FindStringSubmatch(onclick); m != nil {
			frag.classToken = m[1]
		}
		fragments = append(fragments, frag)
	})

	stats.TopLevelRows = len(fragments)
	return fragments
}

// childRows harvests the second-level breakdown rows carrying the resolved
// homepage class token. An empty result is a legitimate state: the variant
// row exists but was never expanded with data that day.
func childRows(doc *goquery.Document, classToken string, stats *ExtractionStats) []rowFragment {
	if classToken == "" {
		return nil
	}

	var fragments []rowFragment
	doc.Find("div.tr.feature_stats." + classToken).Each(func(i int, s *goquery.Selection) {
		if frag, ok := harvestRow(s, stats); ok {
			fragments = append(fragments, frag)
		}
	})

	stats.HomepageRows = len(fragments)
	return fragments
}

// harvestRow pulls the label and the 7 data cells out of one row selection.
// Rows with a missing label or too few cells are logged and skipped; empty
// cells survive as placeholder text for the numeric parser to zero out.
func harvestRow(s *goquery.Selection, stats *ExtractionStats) (rowFragment, bool) {
	label := strings.TrimSpace(s.Find("strong").First().Text())
	if label == "" {
		stats.SkippedRows++
		return rowFragment{}, false
	}

	tds := s.Find("div.td")
	if tds.Length() < minRowCells {
		logger.Warn("row %q has %d cells, expected %d+, skipping", label, tds.Length(), minRowCells)
		stats.SkippedRows++
		return rowFragment{}, false
	}

	// Cells 1-7 are the data columns; cell 0 is the label, anything past 7
	// is the expander.
	cells := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		cells = append(cells, cleanCellText(tds.Eq(i).Text()))
	}

	return rowFragment{label: label, cells: cells}, true
}

// cleanCellText collapses runs of whitespace, including non-breaking spaces,
// leaving placeholder markers for the numeric parser to recognize.
func cleanCellText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
