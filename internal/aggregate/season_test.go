package aggregate_test

import (
	"testing"
	"time"

	"github.com/boudmarinus-tech/ene-chille-app/internal/aggregate"
	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonTotals(t *testing.T) {
	roster, alice, bob, _ := testRoster()

	m1 := domain.Match{ID: uuid.New(), CreatedAt: time.Date(2026, time.February, 7, 21, 0, 0, 0, time.UTC)}
	m2 := domain.Match{ID: uuid.New(), CreatedAt: time.Date(2026, time.May, 12, 21, 0, 0, 0, time.UTC)}
	lastSeason := domain.Match{ID: uuid.New(), CreatedAt: time.Date(2025, time.November, 3, 21, 0, 0, 0, time.UTC)}
	matches := []domain.Match{m1, m2, lastSeason}

	stats := []domain.PlayerStat{
		{MatchID: m1.ID, RosterID: alice.ID, Goals: 2, Assists: 1},
		{MatchID: m2.ID, RosterID: alice.ID, Goals: 1, Assists: 0},
		{MatchID: m1.ID, RosterID: bob.ID, Goals: 0, Assists: 3},
		// outside the requested year, must not count
		{MatchID: lastSeason.ID, RosterID: alice.ID, Goals: 9, Assists: 9},
	}

	rows := aggregate.SeasonTotals(roster, matches, stats, 2026)
	require.Len(t, rows, 3)

	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 2, rows[0].Matches)
	assert.Equal(t, 3, rows[0].Goals)
	assert.Equal(t, 1, rows[0].Assists)
	assert.InDelta(t, 1.5, rows[0].GoalsPerMatch, 0.001)
	assert.InDelta(t, 0.5, rows[0].AssistsPerMatch, 0.001)

	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, 1, rows[1].Matches)
	assert.Equal(t, 3, rows[1].Assists)

	assert.Equal(t, "Carol", rows[2].Name)
	assert.Equal(t, 0, rows[2].Matches)
	assert.Zero(t, rows[2].GoalsPerMatch)
}

func TestSeasonTotals_IgnoresStaleRosterIDs(t *testing.T) {
	roster, _, _, _ := testRoster()

	m := domain.Match{ID: uuid.New(), CreatedAt: time.Date(2026, time.February, 7, 21, 0, 0, 0, time.UTC)}
	stats := []domain.PlayerStat{
		{MatchID: m.ID, RosterID: uuid.New(), Goals: 4, Assists: 4},
	}

	rows := aggregate.SeasonTotals(roster, []domain.Match{m}, stats, 2026)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Zero(t, row.Goals)
		assert.Zero(t, row.Matches)
	}
}
