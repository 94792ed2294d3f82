package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"pubops/partnerstats/config"
	"pubops/partnerstats/internal/extract"
	"pubops/partnerstats/internal/metrics"
	"pubops/partnerstats/internal/scrape"
	"pubops/partnerstats/logger"
	perrors "pubops/partnerstats/pkg/errors"
	"pubops/partnerstats/services/publisher"
	"pubops/partnerstats/services/store"
)

// FinancialSource provides the sales-and-activity figures for a game day.
// It is optional; without one, records carry marketing data only.
type FinancialSource interface {
	FetchFinancials(ctx context.Context, appID int64, statDate string) (*metrics.FinancialSnapshot, error)
}

// Worker drives the daily scrape: one pass fetches every game's traffic page,
// runs extraction, computes derived metrics against the prior day, upserts
// the record and publishes it downstream.
type Worker struct {
	ctx        context.Context
	games      []config.Game
	source     scrape.DocumentSource
	financials FinancialSource
	engines    map[int64]*extract.Engine
	store      store.Store
	publisher  publisher.Publisher
	interval   time.Duration
	location   *time.Location
	log        *logger.Logger
}

// NewWorker creates a new worker. financials may be nil.
func NewWorker(
	ctx context.Context,
	games []config.Game,
	source scrape.DocumentSource,
	financials FinancialSource,
	st store.Store,
	pub publisher.Publisher,
	interval time.Duration,
	location *time.Location,
) *Worker {
	engines := make(map[int64]*extract.Engine, len(games))
	for _, g := range games {
		engines[g.AppID] = extract.NewEngine(g.Name, extract.DefaultThresholds())
	}

	return &Worker{
		ctx:        ctx,
		games:      games,
		source:     source,
		financials: financials,
		engines:    engines,
		store:      st,
		publisher:  pub,
		interval:   interval,
		location:   location,
		log:        logger.ForWorker(),
	}
}

// Start runs scrape passes until the context is cancelled.
func (w *Worker) Start() {
	for {
		start := time.Now()
		w.RunOnce()
		w.log.Info().Dur("elapsed", time.Since(start)).Msg("scrape pass complete")

		select {
		case <-w.ctx.Done():
			return
		case <-time.After(w.interval):
		}
	}
}

// RunOnce scrapes all games in parallel for the current stat date, then trims
// the publish streams. Per-game failures are isolated; one game's bad day
// never blocks the others.
func (w *Worker) RunOnce() {
	statDate := w.statDate(time.Now())

	var wg sync.WaitGroup
	for _, g := range w.games {
		wg.Add(1)
		go func(g config.Game) {
			defer wg.Done()
			w.scrapeGame(g, statDate)
		}(g)
	}
	wg.Wait()

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("trimming streams")
	}
}

// statDate is the date being reported on: yesterday in the portal's stats
// timezone, since the portal finalizes a day only after it ends there.
func (w *Worker) statDate(now time.Time) string {
	return now.In(w.location).AddDate(0, 0, -1).Format("2006-01-02")
}

func (w *Worker) scrapeGame(game config.Game, statDate string) {
	log := w.log.WithFields(logger.Fields{"game": game.Name, "stat_date": statDate})

	page, err := w.source.Fetch(w.ctx, game.AppID, statDate)
	if err != nil {
		log.Error().Err(err).Str("source", w.source.Name()).Msg("fetching page")
		return
	}

	snap, err := w.engines[game.AppID].Extract(page)
	if err != nil {
		log.Error().Err(err).Msg("extracting marketing snapshot")
		return
	}

	var fin *metrics.FinancialSnapshot
	if w.financials != nil {
		fin, err = w.financials.FetchFinancials(w.ctx, game.AppID, statDate)
		if err != nil {
			// Marketing data alone is still worth a record.
			log.Warn().Err(err).Msg("fetching financials, continuing without")
			fin = nil
		}
	}

	rec, err := w.buildRecord(game, statDate, snap, fin)
	if err != nil {
		log.Error().Err(err).Msg("building record")
		return
	}

	if err := w.store.Upsert(w.ctx, rec); err != nil {
		log.Error().Err(perrors.NewStore(game.Name, "upserting record", err)).Msg("storing record")
		return
	}

	if err := w.publishRecord(game, rec); err != nil {
		log.Error().Err(perrors.NewPublisher(game.Name, "publishing record", err)).Msg("publishing record")
		return
	}

	log.Info().
		Int("sources", len(snap.AllSources)).
		Bool("has_financials", fin != nil).
		Msg("game day recorded")
}

// buildRecord assembles the persisted row from the marketing snapshot and the
// optional financials, looking up the prior day for the derived fields.
func (w *Worker) buildRecord(game config.Game, statDate string, snap *extract.MarketingSnapshot, fin *metrics.FinancialSnapshot) (*store.DailyMetricsRecord, error) {
	rec := &store.DailyMetricsRecord{
		SteamAppID: game.AppID,
		StatDate:   statDate,
		GameName:   game.Name,

		TotalImpressions:      snap.TotalImpressions,
		TotalVisits:           snap.TotalVisits,
		TotalClickThroughRate: snap.ClickThroughRate,
		OwnerVisitShare:       snap.OwnerVisitShare,
	}

	var err error
	if rec.TopCountryVisits, err = jsonColumn(snap.TopCountryVisits, len(snap.TopCountryVisits) > 0); err != nil {
		return nil, err
	}
	if rec.TakeoverBanner, err = jsonColumn(snap.TakeoverBanner, snap.TakeoverBanner != nil); err != nil {
		return nil, err
	}
	if rec.PopUpMessage, err = jsonColumn(snap.PopUpMessage, snap.PopUpMessage != nil); err != nil {
		return nil, err
	}
	if rec.MainCluster, err = jsonColumn(snap.MainCluster, snap.MainCluster != nil); err != nil {
		return nil, err
	}
	if rec.AllSourceBreakdown, err = jsonColumn(snap.AllSources, len(snap.AllSources) > 0); err != nil {
		return nil, err
	}
	if rec.HomepageBreakdown, err = jsonColumn(snap.HomepageBreakdown, len(snap.HomepageBreakdown) > 0); err != nil {
		return nil, err
	}
	if snap.Variant != nil {
		v := string(snap.Variant.Kind)
		rec.HomepageVariant = &v
	}

	if fin != nil {
		fin.CountryRevenue = metrics.EnrichARPU(fin.CountryRevenue, fin.CountryDAU)
		derived := metrics.Assemble(*fin, w.priorDay(game.AppID, statDate))

		rec.UniquePlayers = fin.UniquePlayers
		rec.NewPlayers = derived.NewPlayers
		rec.DAU = fin.DAU
		rec.PCU = fin.PCU
		rec.PCUOverDAU = derived.PCUOverDAU
		rec.Players20hPlus = fin.Players20hPlus
		rec.D1Retention = derived.D1Retention
		rec.NewVsReturning = derived.NewVsReturningRatio
		rec.Wishlist = fin.Wishlist
		rec.WishlistAdditions = fin.WishlistAdditions
		rec.WishlistDeletions = fin.WishlistDeletions
		rec.WishlistConversions = fin.WishlistConversions
		rec.TotalDownloads = fin.TotalDownloads
		rec.DailyRevenue = fin.DailyRevenue
		rec.DailyUnits = fin.DailyUnits
		rec.DailyARPU = derived.DailyARPU
		rec.LifetimeRevenue = fin.LifetimeRevenue
		rec.LifetimeTotalUnits = fin.LifetimeTotalUnits

		if rec.CountryDAU, err = jsonColumn(fin.CountryDAU, len(fin.CountryDAU) > 0); err != nil {
			return nil, err
		}
		if rec.CountryDownloads, err = jsonColumn(fin.CountryDownloads, len(fin.CountryDownloads) > 0); err != nil {
			return nil, err
		}
		if rec.RegionDownloads, err = jsonColumn(fin.RegionDownloads, len(fin.RegionDownloads) > 0); err != nil {
			return nil, err
		}
		if rec.CountryRevenue, err = jsonColumn(fin.CountryRevenue, len(fin.CountryRevenue) > 0); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// priorDay loads the previous stat date's stored values. Nil means a genuine
// first run (no record exists), which lets the derived metrics fall back to
// their first-run conventions. A failed lookup is not a first run: it yields
// an empty PriorDay so the day-over-day fields come out NULL instead of
// being computed against history that was merely unreachable.
func (w *Worker) priorDay(appID int64, statDate string) *metrics.PriorDay {
	day, err := time.Parse("2006-01-02", statDate)
	if err != nil {
		return &metrics.PriorDay{}
	}
	prevDate := day.AddDate(0, 0, -1).Format("2006-01-02")

	prev, err := w.store.FindByDate(w.ctx, appID, prevDate)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		w.log.Warn().Err(err).Int64("app_id", appID).Msg("prior day lookup failed, derived fields stay null")
		return &metrics.PriorDay{}
	}
	return &metrics.PriorDay{
		UniquePlayers: prev.UniquePlayers,
		DAU:           prev.DAU,
	}
}

func (w *Worker) publishRecord(game config.Game, rec *store.DailyMetricsRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return w.publisher.Publish(strconv.FormatInt(game.AppID, 10), payload)
}

// jsonColumn marshals a value into a nullable JSON text column. present=false
// keeps the column NULL so absent data never persists as "[]" or "{}".
func jsonColumn(v any, present bool) (*string, error) {
	if !present {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}
