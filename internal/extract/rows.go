package extract

// TrafficSourceRow is one contributor to traffic: a store surface (search,
// external site, wishlist email, homepage section...) users can land from.
// Rows are constructed once per scrape and never mutated after filtering.
type TrafficSourceRow struct {
	Label            string  `json:"page_feature,omitempty"`
	Impressions      int64   `json:"impressions"`
	OwnerImpressions int64   `json:"owner_impressions"`
	PctImpressions   float64 `json:"percentage_of_total_impressions"`
	ClickThroughRate float64 `json:"click_thru_rate"`
	Visits           int64   `json:"visits"`
	OwnerVisits      int64   `json:"owner_visits"`
	PctVisits        float64 `json:"percentage_of_total_visits"`
}

// VariantKind distinguishes the two mutually exclusive homepage forms.
type VariantKind string

const (
	VariantSeasonal VariantKind = "seasonal"
	VariantNormal   VariantKind = "normal"
)

// HomepageVariant is one candidate homepage section found in a document. Its
// impressions are read only to pick the canonical variant; the variant itself
// is discarded once its child rows are harvested.
type HomepageVariant struct {
	Kind        VariantKind `json:"kind"`
	ClassToken  string      `json:"class"`
	Title       string      `json:"title"`
	Impressions int64       `json:"impressions"`
}

// AggregateFeature is a named composite derived from the row set by summing or
// picking, carrying the same metric columns as the rows it came from. A
// feature whose impressions fall below the configured floor is absent, not
// zero.
type AggregateFeature TrafficSourceRow

// CountryVisit is one entry of the visits-by-country chart.
type CountryVisit struct {
	Country    string  `json:"country"`
	Percentage float64 `json:"percentage"`
	Visits     int64   `json:"visits"`
	Rank       int     `json:"rank"`
}

// ExtractionStats counts degraded paths taken while parsing one document, so
// a day with heavy coercion is visible in logs without changing the record.
type ExtractionStats struct {
	TopLevelRows       int `json:"top_level_rows"`
	HomepageRows       int `json:"homepage_rows"`
	SkippedRows        int `json:"skipped_rows"`
	CoercedCells       int `json:"coerced_cells"`
	UntranslatedLabels int `json:"untranslated_labels"`
}

// MarketingSnapshot is the structured bundle produced from one document.
// Nil totals mean the header stat was absent from the page; they persist as
// NULL, never as zero.
type MarketingSnapshot struct {
	TotalImpressions  *int64             `json:"total_impressions,omitempty"`
	TotalVisits       *int64             `json:"total_visits,omitempty"`
	ClickThroughRate  *float64           `json:"total_click_through_rate,omitempty"`
	OwnerVisitShare   *float64           `json:"owner_visits,omitempty"`
	TopCountryVisits  []CountryVisit     `json:"top_country_visits,omitempty"`
	Variant           *HomepageVariant   `json:"homepage_variant,omitempty"`
	AllSources        []TrafficSourceRow `json:"all_source_breakdown,omitempty"`
	HomepageBreakdown []TrafficSourceRow `json:"homepage_breakdown,omitempty"`
	MainCluster       *AggregateFeature  `json:"main_cluster,omitempty"`
	TakeoverBanner    *AggregateFeature  `json:"takeover_banner,omitempty"`
	PopUpMessage      *AggregateFeature  `json:"pop_up_message,omitempty"`
	Stats             ExtractionStats    `json:"-"`
}
