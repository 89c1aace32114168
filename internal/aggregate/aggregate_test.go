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

func testRoster() ([]domain.Player, domain.Player, domain.Player, domain.Player) {
	alice := domain.Player{ID: uuid.New(), Name: "Alice"}
	bob := domain.Player{ID: uuid.New(), Name: "Bob"}
	carol := domain.Player{ID: uuid.New(), Name: "Carol"}
	return []domain.Player{alice, bob, carol}, alice, bob, carol
}

func TestMotmScores(t *testing.T) {
	roster, alice, bob, carol := testRoster()

	ballots := []domain.MotmBallot{
		{MatchID: uuid.New(), VoterRosterID: alice.ID, RosterID: bob.ID, Weight: 3},
		{MatchID: uuid.New(), VoterRosterID: carol.ID, RosterID: bob.ID, Weight: 2},
		{MatchID: uuid.New(), VoterRosterID: alice.ID, RosterID: carol.ID, Weight: 1},
	}

	scores := aggregate.MotmScores(ballots)
	assert.Equal(t, 5, scores[bob.ID])
	assert.Equal(t, 1, scores[carol.ID])
	assert.Equal(t, 0, scores[alice.ID])

	ranking := aggregate.Ranking(roster, scores)
	require.Len(t, ranking, 3)
	assert.Equal(t, "Bob", ranking[0].Name)
	assert.Equal(t, "Carol", ranking[1].Name)
	assert.Equal(t, "Alice", ranking[2].Name)
	assert.Equal(t, 5, ranking[0].Score)
	assert.Equal(t, 0, ranking[2].Score)
}

func TestMotmScores_OrderIndependent(t *testing.T) {
	_, alice, bob, carol := testRoster()

	ballots := []domain.MotmBallot{
		{VoterRosterID: alice.ID, RosterID: bob.ID, Weight: 3},
		{VoterRosterID: alice.ID, RosterID: carol.ID, Weight: 2},
		{VoterRosterID: alice.ID, RosterID: bob.ID, Weight: 1},
		{VoterRosterID: bob.ID, RosterID: carol.ID, Weight: 3},
	}

	forward := aggregate.MotmScores(ballots)

	reversed := make([]domain.MotmBallot, len(ballots))
	for i, b := range ballots {
		reversed[len(ballots)-1-i] = b
	}
	backward := aggregate.MotmScores(reversed)

	assert.Equal(t, forward, backward)
}

func TestRanking_EmptyBallotsKeepsRosterOrder(t *testing.T) {
	roster, _, _, _ := testRoster()

	motm := aggregate.Ranking(roster, aggregate.MotmScores(nil))
	donkey := aggregate.Ranking(roster, aggregate.DonkeyScores(nil))

	require.Len(t, motm, 3)
	require.Len(t, donkey, 3)
	for i, p := range roster {
		assert.Equal(t, p.Name, motm[i].Name)
		assert.Equal(t, 0, motm[i].Score)
		assert.Equal(t, p.Name, donkey[i].Name)
		assert.Equal(t, 0, donkey[i].Score)
	}
}

func TestDonkeyScores(t *testing.T) {
	roster, alice, bob, carol := testRoster()

	ballots := []domain.DonkeyBallot{
		{VoterRosterID: alice.ID, RosterID: bob.ID},
		{VoterRosterID: carol.ID, RosterID: bob.ID},
		{VoterRosterID: bob.ID, RosterID: carol.ID},
	}

	scores := aggregate.DonkeyScores(ballots)
	assert.Equal(t, 2, scores[bob.ID])
	assert.Equal(t, 1, scores[carol.ID])
	assert.Equal(t, 0, scores[alice.ID])

	ranking := aggregate.Ranking(roster, scores)
	assert.Equal(t, "Bob", ranking[0].Name)
	assert.Equal(t, "Carol", ranking[1].Name)
	assert.Equal(t, "Alice", ranking[2].Name)
}

func TestStatTotals_SumsDuplicateRows(t *testing.T) {
	_, alice, _, _ := testRoster()

	stats := []domain.PlayerStat{
		{RosterID: alice.ID, Goals: 2, Assists: 1},
		{RosterID: alice.ID, Goals: 1, Assists: 0},
	}

	totals := aggregate.StatTotals(stats)
	assert.Equal(t, aggregate.StatLine{Goals: 3, Assists: 1}, totals[alice.ID])
}

func TestStatsRanking_ExcludesZeroAndBreaksTies(t *testing.T) {
	roster, alice, bob, carol := testRoster()

	totals := map[uuid.UUID]aggregate.StatLine{
		alice.ID: {Goals: 0, Assists: 0},
		bob.ID:   {Goals: 1, Assists: 2},
		carol.ID: {Goals: 1, Assists: 2},
	}

	rows := aggregate.StatsRanking(roster, totals)
	require.Len(t, rows, 2)
	// equal goals and assists fall back to name ascending
	assert.Equal(t, "Bob", rows[0].Name)
	assert.Equal(t, "Carol", rows[1].Name)
}

func TestStatsRanking_GoalsBeforeAssists(t *testing.T) {
	roster, alice, bob, carol := testRoster()

	totals := map[uuid.UUID]aggregate.StatLine{
		alice.ID: {Goals: 0, Assists: 5},
		bob.ID:   {Goals: 2, Assists: 0},
		carol.ID: {Goals: 2, Assists: 1},
	}

	rows := aggregate.StatsRanking(roster, totals)
	require.Len(t, rows, 3)
	assert.Equal(t, "Carol", rows[0].Name)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, "Alice", rows[2].Name)
}

func TestMotmBallotLog_NewestFirstAndCapped(t *testing.T) {
	roster, alice, bob, _ := testRoster()

	base := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)
	var ballots []domain.MotmBallot
	for i := 0; i < aggregate.BallotLogLimit+10; i++ {
		ballots = append(ballots, domain.MotmBallot{
			VoterRosterID: alice.ID,
			RosterID:      bob.ID,
			Weight:        3,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}

	log := aggregate.MotmBallotLog(roster, ballots)
	require.Len(t, log, aggregate.BallotLogLimit)
	assert.Equal(t, "Alice", log[0].VoterName)
	assert.Equal(t, "Bob", log[0].PickName)
	for i := 1; i < len(log); i++ {
		assert.False(t, log[i].CreatedAt.After(log[i-1].CreatedAt))
	}
}

func TestDonkeyBallotLog_ResolvesUnknownVoter(t *testing.T) {
	roster, _, bob, _ := testRoster()

	ballots := []domain.DonkeyBallot{
		{VoterRosterID: uuid.New(), RosterID: bob.ID},
	}

	log := aggregate.DonkeyBallotLog(roster, ballots)
	require.Len(t, log, 1)
	assert.Equal(t, "Onbekend", log[0].VoterName)
	assert.Equal(t, "Bob", log[0].PickName)
}

func TestDonkeyReasons_SkipsEmptyAndCaps(t *testing.T) {
	roster, alice, bob, _ := testRoster()

	reason := "skied it over from two meters"
	base := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)
	var ballots []domain.DonkeyBallot
	for i := 0; i < aggregate.ReasonLogLimit+3; i++ {
		ballots = append(ballots, domain.DonkeyBallot{
			VoterRosterID: alice.ID,
			RosterID:      bob.ID,
			Reason:        &reason,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}
	ballots = append(ballots, domain.DonkeyBallot{
		VoterRosterID: alice.ID,
		RosterID:      bob.ID,
		CreatedAt:     base.Add(time.Hour),
	})

	reasons := aggregate.DonkeyReasons(aggregate.DonkeyBallotLog(roster, ballots))
	require.Len(t, reasons, aggregate.ReasonLogLimit)
	for _, r := range reasons {
		assert.Equal(t, "Bob", r.Name)
		assert.Equal(t, reason, r.Reason)
	}
}
