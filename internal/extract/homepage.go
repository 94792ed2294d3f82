package extract

import "strings"

// Localized tokens used to classify homepage candidate rows. The raw label is
// inspected before translation so both page locales resolve identically.
const (
	seasonalToken     = "季节性"
	saleToken         = "特卖"
	homeToken         = "主页"
	normalHomeLabelEN = "Home Page"
)

// resolveHomepageVariant picks the canonical homepage section for a document.
//
// A row is a SEASONAL candidate when its label carries the seasonal token plus
// a sale or homepage token; a NORMAL candidate when it is exactly the
// localized or English Home Page label. When both are present the seasonal
// variant must strictly exceed the normal one on impressions; ties go to
// NORMAL. A nil result means the document has no homepage breakdown that day,
// which is valid and non-fatal.
func resolveHomepageVariant(rows []rowFragment) *HomepageVariant {
	var seasonal, normal *HomepageVariant

	for _, frag := range rows {
		if frag.classToken == "" {
			continue
		}
		impressions, _ := ParseCount(frag.cells[0])

		switch {
		case strings.Contains(frag.label, seasonalToken) &&
			(strings.Contains(frag.label, saleToken) || strings.Contains(frag.label, homeToken)):
			if seasonal == nil {
				seasonal = &HomepageVariant{
					Kind:        VariantSeasonal,
					ClassToken:  frag.classToken,
					Title:       frag.label,
					Impressions: impressions,
				}
			}
		case frag.label == homeToken || frag.label == normalHomeLabelEN:
			if normal == nil {
				normal = &HomepageVariant{
					Kind:        VariantNormal,
					ClassToken:  frag.classToken,
					Title:       frag.label,
					Impressions: impressions,
				}
			}
		}
	}

	switch {
	case seasonal != nil && normal != nil:
		if seasonal.Impressions > normal.Impressions {
			return seasonal
		}
		return normal
	case seasonal != nil:
		return seasonal
	case normal != nil:
		return normal
	}
	return nil
}
