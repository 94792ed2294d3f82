package metrics

// FinancialSnapshot holds the sales-and-activity figures scraped for one game
// on one stat date. Pointer fields distinguish "not present on the page" from
// a genuine zero; absent values persist as NULL, never 0.
type FinancialSnapshot struct {
	UniquePlayers       *int64   `json:"unique_player,omitempty"`
	DAU                 *int64   `json:"dau,omitempty"`
	PCU                 *int64   `json:"pcu,omitempty"`
	Players20hPlus      *int64   `json:"players_20h_plus,omitempty"`
	Wishlist            *int64   `json:"wishlist,omitempty"`
	WishlistAdditions   *int64   `json:"wishlist_additions,omitempty"`
	WishlistDeletions   *int64   `json:"wishlist_deletions,omitempty"`
	WishlistConversions *int64   `json:"wishlist_conversions,omitempty"`
	TotalDownloads      *int64   `json:"total_downloads,omitempty"`
	DailyRevenue        *float64 `json:"daily_total_revenue,omitempty"`
	DailyUnits          *int64   `json:"daily_units,omitempty"`
	LifetimeRevenue     *float64 `json:"lifetime_total_revenue,omitempty"`
	LifetimeTotalUnits  *int64   `json:"lifetime_total_units,omitempty"`

	CountryDAU       []CountryPlayers  `json:"top10_country_dau,omitempty"`
	CountryRevenue   []CountryRevenue  `json:"top10_country_revenue,omitempty"`
	CountryDownloads []CountryDownload `json:"top10_country_downloads,omitempty"`
	RegionDownloads  []RegionDownload  `json:"top10_region_downloads,omitempty"`
}

// CountryRevenue is one entry of the top-revenue country ranking. ARPU is
// filled by EnrichARPU when the same country also appears in the DAU ranking.
type CountryRevenue struct {
	Country       string   `json:"country"`
	Revenue       *float64 `json:"revenue,omitempty"`
	Share         *float64 `json:"share,omitempty"`
	Units         *int64   `json:"units,omitempty"`
	ChangeVsPrior *float64 `json:"change_vs_prior,omitempty"`
	Rank          int      `json:"rank"`
	ARPU          *float64 `json:"arpu,omitempty"`
}

// CountryPlayers is one entry of the top-DAU country ranking.
type CountryPlayers struct {
	Country string   `json:"country"`
	Share   *float64 `json:"share,omitempty"`
	Players int64    `json:"players"`
	Rank    int      `json:"rank"`
}

type CountryDownload struct {
	Country   string `json:"country"`
	Downloads int64  `json:"downloads"`
	Rank      int    `json:"rank"`
}

type RegionDownload struct {
	Region    string `json:"region"`
	Downloads int64  `json:"downloads"`
	Rank      int    `json:"rank"`
}

// PriorDay is the previous stat date's stored values needed by the
// day-over-day calculations. A nil PriorDay means no earlier record exists.
type PriorDay struct {
	UniquePlayers *int64
	DAU           *int64
}

// Derived holds the computed day-over-day fields. Nil means the inputs
// required by the formula were unavailable; a computed zero stays a zero.
type Derived struct {
	NewPlayers          *int64
	D1Retention         *float64
	NewVsReturningRatio *float64
	PCUOverDAU          *float64
	DailyARPU           *float64
}
