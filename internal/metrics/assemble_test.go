package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestAssembleNewPlayersDelta(t *testing.T) {
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(1120)},
		&PriorDay{UniquePlayers: i64(1000)},
	)

	require.NotNil(t, d.NewPlayers)
	assert.Equal(t, int64(120), *d.NewPlayers)
}

func TestAssembleNewPlayersFirstRun(t *testing.T) {
	// No prior record at all: today's unique count stands in.
	d := Assemble(FinancialSnapshot{UniquePlayers: i64(500)}, nil)

	require.NotNil(t, d.NewPlayers)
	assert.Equal(t, int64(500), *d.NewPlayers)
}

func TestAssembleNewPlayersNegativeDeltaClamped(t *testing.T) {
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(900)},
		&PriorDay{UniquePlayers: i64(1000)},
	)

	require.NotNil(t, d.NewPlayers)
	assert.Equal(t, int64(0), *d.NewPlayers)
}

func TestAssembleNewPlayersNilWhenPriorUniqueMissing(t *testing.T) {
	// A prior record exists but its unique count is NULL: the delta is
	// uncomputable, which is not the same as a first run.
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(1120)},
		&PriorDay{DAU: i64(300)},
	)

	assert.Nil(t, d.NewPlayers)
}

func TestAssembleD1Retention(t *testing.T) {
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(1120), DAU: i64(400)},
		&PriorDay{UniquePlayers: i64(1000), DAU: i64(500)},
	)

	// new players 120, retention (400-120)/500 = 0.56
	require.NotNil(t, d.D1Retention)
	assert.InDelta(t, 0.56, *d.D1Retention, 1e-9)
}

func TestAssembleD1RetentionNilWithoutPriorDAU(t *testing.T) {
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(1120), DAU: i64(400)},
		&PriorDay{UniquePlayers: i64(1000)},
	)

	assert.Nil(t, d.D1Retention)
}

func TestAssembleNewVsReturning(t *testing.T) {
	d := Assemble(
		FinancialSnapshot{UniquePlayers: i64(1120), DAU: i64(400)},
		&PriorDay{UniquePlayers: i64(1000), DAU: i64(500)},
	)

	// 120 new / 280 returning = 0.43 after rounding
	require.NotNil(t, d.NewVsReturningRatio)
	assert.InDelta(t, 0.43, *d.NewVsReturningRatio, 1e-9)
}

func TestAssembleNewVsReturningNilWhenAllNew(t *testing.T) {
	d := Assemble(FinancialSnapshot{UniquePlayers: i64(400), DAU: i64(400)}, nil)

	assert.Nil(t, d.NewVsReturningRatio)
}

func TestAssemblePCUOverDAU(t *testing.T) {
	d := Assemble(FinancialSnapshot{DAU: i64(1000), PCU: i64(250)}, nil)

	require.NotNil(t, d.PCUOverDAU)
	assert.InDelta(t, 0.25, *d.PCUOverDAU, 1e-9)
}

func TestAssembleDailyARPU(t *testing.T) {
	d := Assemble(FinancialSnapshot{DAU: i64(1000), DailyRevenue: f64(1234.56)}, nil)

	require.NotNil(t, d.DailyARPU)
	assert.InDelta(t, 1.23, *d.DailyARPU, 1e-9)
}

func TestAssembleEmptyInputs(t *testing.T) {
	d := Assemble(FinancialSnapshot{}, nil)

	assert.Nil(t, d.NewPlayers)
	assert.Nil(t, d.D1Retention)
	assert.Nil(t, d.NewVsReturningRatio)
	assert.Nil(t, d.PCUOverDAU)
	assert.Nil(t, d.DailyARPU)
}

func TestEnrichARPU(t *testing.T) {
	revenue := []CountryRevenue{
		{Country: "China", Revenue: f64(50000), Rank: 1},
		{Country: "United States", Revenue: f64(20000), Rank: 2},
		{Country: "Atlantis", Revenue: f64(100), Rank: 3},
	}
	players := []CountryPlayers{
		{Country: "China", Players: 10000, Rank: 1},
		{Country: "United States", Players: 4000, Rank: 2},
	}

	enriched := EnrichARPU(revenue, players)
	require.Len(t, enriched, 3)

	require.NotNil(t, enriched[0].ARPU)
	assert.InDelta(t, 5.0, *enriched[0].ARPU, 1e-9)
	require.NotNil(t, enriched[1].ARPU)
	assert.InDelta(t, 5.0, *enriched[1].ARPU, 1e-9)
	assert.Nil(t, enriched[2].ARPU, "country absent from DAU list keeps nil ARPU")
}

func TestEnrichARPUZeroPlayers(t *testing.T) {
	revenue := []CountryRevenue{{Country: "China", Revenue: f64(100)}}
	players := []CountryPlayers{{Country: "China", Players: 0}}

	enriched := EnrichARPU(revenue, players)
	require.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].ARPU)
}

func TestRankCountriesByRevenue(t *testing.T) {
	entries := []CountryRevenue{
		{Country: "Mid", Revenue: f64(500)},
		{Country: "Top", Revenue: f64(9000)},
		{Country: "NoFigure"},
		{Country: "Low", Revenue: f64(10)},
	}

	ranked := RankCountriesByRevenue(entries, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Top", ranked[0].Country)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Mid", ranked[1].Country)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankCountriesByPlayers(t *testing.T) {
	entries := []CountryPlayers{
		{Country: "B", Players: 100},
		{Country: "A", Players: 300},
	}

	ranked := RankCountriesByPlayers(entries, 10)
	require.Len(t, ranked, 2)
	assert.Equal(t, "A", ranked[0].Country)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}
