package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubops/partnerstats/config"
	"pubops/partnerstats/internal/metrics"
	"pubops/partnerstats/services/store"
)

type fakeSource struct {
	mu    sync.Mutex
	pages map[int64]string
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context, appID int64, statDate string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	page, ok := f.pages[appID]
	if !ok {
		return "", errors.New("no page")
	}
	return page, nil
}

func (f *fakeSource) Name() string { return "fake" }

type fakeStore struct {
	mu      sync.Mutex
	records map[string]*store.DailyMetricsRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*store.DailyMetricsRecord{}}
}

func (f *fakeStore) key(appID int64, date string) string {
	return fmt.Sprintf("%d/%s", appID, date)
}

func (f *fakeStore) Upsert(ctx context.Context, rec *store.DailyMetricsRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[f.key(rec.SteamAppID, rec.StatDate)] = rec
	return nil
}

func (f *fakeStore) FindByDate(ctx context.Context, appID int64, date string) (*store.DailyMetricsRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[f.key(appID, date)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads map[string][][]byte
	trimmed  int
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{payloads: map[string][][]byte{}}
}

func (f *fakePublisher) Publish(gameKey string, message []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads[gameKey] = append(f.payloads[gameKey], message)
	return nil
}

func (f *fakePublisher) TrimStreams() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trimmed++
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeFinancials struct {
	snapshots map[int64]*metrics.FinancialSnapshot
	err       error
}

func (f *fakeFinancials) FetchFinancials(ctx context.Context, appID int64, statDate string) (*metrics.FinancialSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshots[appID], nil
}

const testPage = `<html><body>
<div class="stats_header_section">
	<div>Impressions</div><div class="stat">2.5 million</div>
	<div>Visits</div><div class="stat">50,000</div>
</div>
<div class="tr highlightHover page_stats" onclick="ToggleFeatureStats(this, 'featurestatsclass_0')">
	<div class="td"><strong>主页</strong></div>
	<div class="td">100,000</div><div class="td">500</div><div class="td">4.0%</div>
	<div class="td">3.0%</div><div class="td">3,000</div><div class="td">50</div><div class="td">6.0%</div>
	<div class="td">▼</div>
</div>
</body></html>`

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func testGames() []config.Game {
	return []config.Game{{AppID: 2507950, Name: "Delta Force"}}
}

func newTestWorker(src *fakeSource, fin FinancialSource, st store.Store, pub *fakePublisher) *Worker {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	return NewWorker(context.Background(), testGames(), src, fin, st, pub, time.Hour, loc)
}

func TestRunOnceStoresAndPublishes(t *testing.T) {
	src := &fakeSource{pages: map[int64]string{2507950: testPage}}
	st := newFakeStore()
	pub := newFakePublisher()

	w := newTestWorker(src, nil, st, pub)
	w.RunOnce()

	statDate := w.statDate(time.Now())
	rec, err := st.FindByDate(context.Background(), 2507950, statDate)
	require.NoError(t, err)

	assert.Equal(t, "Delta Force", rec.GameName)
	require.NotNil(t, rec.TotalImpressions)
	assert.Equal(t, int64(2_500_000), *rec.TotalImpressions)
	require.NotNil(t, rec.AllSourceBreakdown)
	assert.Contains(t, *rec.AllSourceBreakdown, "Home")
	assert.Nil(t, rec.DAU, "no financial source, activity stays NULL")

	payloads := pub.payloads["2507950"]
	require.Len(t, payloads, 1)
	var published store.DailyMetricsRecord
	require.NoError(t, json.Unmarshal(payloads[0], &published))
	assert.Equal(t, statDate, published.StatDate)

	assert.Equal(t, 1, pub.trimmed, "streams trimmed once per pass")
}

func TestRunOnceWithFinancials(t *testing.T) {
	src := &fakeSource{pages: map[int64]string{2507950: testPage}}
	st := newFakeStore()
	pub := newFakePublisher()
	fin := &fakeFinancials{snapshots: map[int64]*metrics.FinancialSnapshot{
		2507950: {
			UniquePlayers: i64(1120),
			DAU:           i64(400),
			PCU:           i64(100),
			DailyRevenue:  f64(800),
		},
	}}

	w := newTestWorker(src, fin, st, pub)

	// Seed the prior day so derived fields have inputs.
	statDate := w.statDate(time.Now())
	day, err := time.Parse("2006-01-02", statDate)
	require.NoError(t, err)
	prevDate := day.AddDate(0, 0, -1).Format("2006-01-02")
	require.NoError(t, st.Upsert(context.Background(), &store.DailyMetricsRecord{
		SteamAppID:    2507950,
		StatDate:      prevDate,
		UniquePlayers: i64(1000),
		DAU:           i64(500),
	}))

	w.RunOnce()

	rec, err := st.FindByDate(context.Background(), 2507950, statDate)
	require.NoError(t, err)

	require.NotNil(t, rec.NewPlayers)
	assert.Equal(t, int64(120), *rec.NewPlayers)
	require.NotNil(t, rec.D1Retention)
	assert.InDelta(t, 0.56, *rec.D1Retention, 1e-9)
	require.NotNil(t, rec.PCUOverDAU)
	assert.InDelta(t, 0.25, *rec.PCUOverDAU, 1e-9)
	require.NotNil(t, rec.DailyARPU)
	assert.InDelta(t, 2.0, *rec.DailyARPU, 1e-9)
}

// outageStore upserts fine but cannot serve lookups, as when the database
// drops mid-pass.
type outageStore struct{ *fakeStore }

func (f *outageStore) FindByDate(ctx context.Context, appID int64, date string) (*store.DailyMetricsRecord, error) {
	return nil, errors.New("connection refused")
}

func TestPriorDayLookupFailureLeavesDerivedFieldsNull(t *testing.T) {
	src := &fakeSource{pages: map[int64]string{2507950: testPage}}
	st := &outageStore{fakeStore: newFakeStore()}
	pub := newFakePublisher()
	fin := &fakeFinancials{snapshots: map[int64]*metrics.FinancialSnapshot{
		2507950: {UniquePlayers: i64(500_000), DAU: i64(40_000)},
	}}

	w := newTestWorker(src, fin, st, pub)
	w.RunOnce()

	st.mu.Lock()
	rec := st.records[st.key(2507950, w.statDate(time.Now()))]
	st.mu.Unlock()
	require.NotNil(t, rec)

	require.NotNil(t, rec.UniquePlayers)
	assert.Equal(t, int64(500_000), *rec.UniquePlayers)
	assert.Nil(t, rec.NewPlayers, "a lookup outage is not a first run")
	assert.Nil(t, rec.NewVsReturning)
	assert.Nil(t, rec.D1Retention)
}

func TestPriorDayNotFoundMeansFirstRun(t *testing.T) {
	src := &fakeSource{pages: map[int64]string{2507950: testPage}}
	st := newFakeStore()
	pub := newFakePublisher()
	fin := &fakeFinancials{snapshots: map[int64]*metrics.FinancialSnapshot{
		2507950: {UniquePlayers: i64(500_000)},
	}}

	w := newTestWorker(src, fin, st, pub)
	w.RunOnce()

	rec, err := st.FindByDate(context.Background(), 2507950, w.statDate(time.Now()))
	require.NoError(t, err)
	require.NotNil(t, rec.NewPlayers)
	assert.Equal(t, int64(500_000), *rec.NewPlayers, "no prior record, everyone is new")
}

func TestRunOnceFinancialFailureStillRecordsMarketing(t *testing.T) {
	src := &fakeSource{pages: map[int64]string{2507950: testPage}}
	st := newFakeStore()
	pub := newFakePublisher()
	fin := &fakeFinancials{err: errors.New("sales page unavailable")}

	w := newTestWorker(src, fin, st, pub)
	w.RunOnce()

	rec, err := st.FindByDate(context.Background(), 2507950, w.statDate(time.Now()))
	require.NoError(t, err)
	require.NotNil(t, rec.TotalImpressions)
	assert.Nil(t, rec.DAU)
}

func TestRunOnceFetchFailureIsolated(t *testing.T) {
	games := []config.Game{
		{AppID: 2507950, Name: "Delta Force"},
		{AppID: 2073620, Name: "Arena Breakout: Infinite"},
	}
	src := &fakeSource{pages: map[int64]string{2507950: testPage}} // second game has no page
	st := newFakeStore()
	pub := newFakePublisher()

	loc, _ := time.LoadLocation("America/Los_Angeles")
	w := NewWorker(context.Background(), games, src, nil, st, pub, time.Hour, loc)
	w.RunOnce()

	statDate := w.statDate(time.Now())
	_, err := st.FindByDate(context.Background(), 2507950, statDate)
	assert.NoError(t, err, "healthy game still recorded")

	_, err = st.FindByDate(context.Background(), 2073620, statDate)
	assert.ErrorIs(t, err, store.ErrNotFound, "failed game records nothing")
}

func TestStatDateIsYesterdayInTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	w := NewWorker(context.Background(), testGames(), &fakeSource{}, nil, newFakeStore(), newFakePublisher(), time.Hour, loc)

	// 2026-08-30 06:00 UTC is 2026-08-29 23:00 in Los Angeles, so the stat
	// date is the 28th.
	now := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28", w.statDate(now))

	// Two hours later Los Angeles has rolled over to the 30th.
	later := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-29", w.statDate(later))
}
