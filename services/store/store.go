package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

// DailyMetricsRecord is one game-day of combined marketing and financial
// metrics, keyed by (steam_app_id, stat_date). Pointer columns persist as
// NULL when the source page did not carry the value; list-shaped data is
// stored as JSON text.
type DailyMetricsRecord struct {
	SteamAppID int64  `gorm:"column:steam_app_id;primaryKey" json:"steam_app_id"`
	StatDate   string `gorm:"column:stat_date;primaryKey;type:date" json:"stat_date"`
	GameName   string `gorm:"column:game_name;size:255" json:"game_name"`

	// Marketing totals
	TotalImpressions      *int64   `gorm:"column:total_impressions" json:"total_impressions,omitempty"`
	TotalVisits           *int64   `gorm:"column:total_visits" json:"total_visits,omitempty"`
	TotalClickThroughRate *float64 `gorm:"column:total_click_through_rate" json:"total_click_through_rate,omitempty"`
	OwnerVisitShare       *float64 `gorm:"column:owner_visit_share" json:"owner_visit_share,omitempty"`

	// Marketing breakdowns, JSON encoded
	TopCountryVisits   *string `gorm:"column:top_country_visits;type:json" json:"top_country_visits,omitempty"`
	TakeoverBanner     *string `gorm:"column:takeover_banner;type:json" json:"takeover_banner,omitempty"`
	PopUpMessage       *string `gorm:"column:pop_up_message;type:json" json:"pop_up_message,omitempty"`
	MainCluster        *string `gorm:"column:main_cluster;type:json" json:"main_cluster,omitempty"`
	AllSourceBreakdown *string `gorm:"column:all_source_breakdown;type:json" json:"all_source_breakdown,omitempty"`
	HomepageBreakdown  *string `gorm:"column:homepage_breakdown;type:json" json:"homepage_breakdown,omitempty"`
	HomepageVariant    *string `gorm:"column:homepage_variant;size:32" json:"homepage_variant,omitempty"`

	// Player activity
	UniquePlayers  *int64   `gorm:"column:unique_player" json:"unique_player,omitempty"`
	NewPlayers     *int64   `gorm:"column:new_players" json:"new_players,omitempty"`
	DAU            *int64   `gorm:"column:dau" json:"dau,omitempty"`
	PCU            *int64   `gorm:"column:pcu" json:"pcu,omitempty"`
	PCUOverDAU     *float64 `gorm:"column:pcu_over_dau" json:"pcu_over_dau,omitempty"`
	Players20hPlus *int64   `gorm:"column:players_20h_plus" json:"players_20h_plus,omitempty"`
	D1Retention    *float64 `gorm:"column:d1_retention" json:"d1_retention,omitempty"`
	NewVsReturning *float64 `gorm:"column:new_vs_returning_ratio" json:"new_vs_returning_ratio,omitempty"`

	// Sales
	Wishlist            *int64   `gorm:"column:wishlist" json:"wishlist,omitempty"`
	WishlistAdditions   *int64   `gorm:"column:wishlist_additions" json:"wishlist_additions,omitempty"`
	WishlistDeletions   *int64   `gorm:"column:wishlist_deletions" json:"wishlist_deletions,omitempty"`
	WishlistConversions *int64   `gorm:"column:wishlist_conversions" json:"wishlist_conversions,omitempty"`
	TotalDownloads      *int64   `gorm:"column:total_downloads" json:"total_downloads,omitempty"`
	DailyRevenue        *float64 `gorm:"column:daily_total_revenue" json:"daily_total_revenue,omitempty"`
	DailyUnits          *int64   `gorm:"column:daily_units" json:"daily_units,omitempty"`
	DailyARPU           *float64 `gorm:"column:daily_arpu" json:"daily_arpu,omitempty"`
	LifetimeRevenue     *float64 `gorm:"column:lifetime_total_revenue" json:"lifetime_total_revenue,omitempty"`
	LifetimeTotalUnits  *int64   `gorm:"column:lifetime_total_units" json:"lifetime_total_units,omitempty"`

	// Rankings, JSON encoded
	CountryDAU       *string `gorm:"column:top10_country_dau;type:json" json:"top10_country_dau,omitempty"`
	CountryDownloads *string `gorm:"column:top10_country_downloads;type:json" json:"top10_country_downloads,omitempty"`
	RegionDownloads  *string `gorm:"column:top10_region_downloads;type:json" json:"top10_region_downloads,omitempty"`
	CountryRevenue   *string `gorm:"column:top10_country_revenue;type:json" json:"top10_country_revenue,omitempty"`
}

// TableName overrides the gorm default.
func (DailyMetricsRecord) TableName() string {
	return "game_daily_metrics"
}

// Store persists daily metric records.
type Store interface {
	// Upsert inserts the record or overwrites an existing one with the same
	// (steam_app_id, stat_date) key. Re-running a day is idempotent.
	Upsert(ctx context.Context, rec *DailyMetricsRecord) error

	// FindByDate loads one record, or ErrNotFound.
	FindByDate(ctx context.Context, steamAppID int64, statDate string) (*DailyMetricsRecord, error)
}

// GormStore implements Store on a gorm DB handle.
type GormStore struct {
	db *gorm.DB
}

// Open connects to MySQL and returns a store backed by it.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return NewGormStore(db), nil
}

// NewGormStore wraps an existing gorm DB handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the metrics table schema.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&DailyMetricsRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func (s *GormStore) Upsert(ctx context.Context, rec *DailyMetricsRecord) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "steam_app_id"}, {Name: "stat_date"}},
		UpdateAll: true,
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("upserting daily metrics: %w", err)
	}
	return nil
}

func (s *GormStore) FindByDate(ctx context.Context, steamAppID int64, statDate string) (*DailyMetricsRecord, error) {
	var rec DailyMetricsRecord
	err := s.db.WithContext(ctx).
		Where("steam_app_id = ? AND stat_date = ?", steamAppID, statDate).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading daily metrics: %w", err)
	}
	return &rec, nil
}
