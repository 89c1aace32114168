// Package aggregate turns raw ballot and stat rows for one match into
// ranked, displayable summaries. Everything here is a pure transformation
// over a snapshot the caller already fetched; persistence stays in the
// repository layer.
package aggregate

import (
	"sort"
	"time"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
)

const (
	// BallotLogLimit caps the who-voted-for-who history views.
	BallotLogLimit = 60
	// ReasonLogLimit caps the highlighted donkey reasons.
	ReasonLogLimit = 6

	unknownName = "Onbekend"
)

// StatLine is a player's summed goals and assists for one match.
type StatLine struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

// RankedPlayer is one row of a vote ranking. Every roster player appears,
// with Score zero when nobody named them.
type RankedPlayer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

// StatsRow is one row of the goals/assists ranking.
type StatsRow struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Goals   int       `json:"goals"`
	Assists int       `json:"assists"`
}

// BallotEntry is one resolved line of the ballot history view.
type BallotEntry struct {
	VoterName string    `json:"voterName"`
	PickName  string    `json:"pickName"`
	Weight    int       `json:"weight,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MotmScores sums ballot weights per candidate. Insertion order of the
// ballots never affects the result.
func MotmScores(ballots []domain.MotmBallot) map[uuid.UUID]int {
	scores := make(map[uuid.UUID]int)
	for _, b := range ballots {
		scores[b.RosterID] += b.Weight
	}
	return scores
}

// DonkeyScores counts ballots per candidate.
func DonkeyScores(ballots []domain.DonkeyBallot) map[uuid.UUID]int {
	scores := make(map[uuid.UUID]int)
	for _, b := range ballots {
		scores[b.RosterID]++
	}
	return scores
}

// StatTotals sums goals and assists per player. Rows for the same player
// accumulate element-wise.
func StatTotals(stats []domain.PlayerStat) map[uuid.UUID]StatLine {
	totals := make(map[uuid.UUID]StatLine)
	for _, s := range stats {
		line := totals[s.RosterID]
		line.Goals += s.Goals
		line.Assists += s.Assists
		totals[s.RosterID] = line
	}
	return totals
}

// Ranking maps scores onto the full roster, score descending. The sort is
// stable: players with equal scores keep the roster's order.
func Ranking(roster []domain.Player, scores map[uuid.UUID]int) []RankedPlayer {
	ranked := make([]RankedPlayer, len(roster))
	for i, p := range roster {
		ranked[i] = RankedPlayer{ID: p.ID, Name: p.Name, Score: scores[p.ID]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// StatsRanking lists only players with at least one goal or assist, sorted
// by goals desc, then assists desc, then name ascending.
func StatsRanking(roster []domain.Player, totals map[uuid.UUID]StatLine) []StatsRow {
	rows := make([]StatsRow, 0, len(roster))
	for _, p := range roster {
		line := totals[p.ID]
		if line.Goals == 0 && line.Assists == 0 {
			continue
		}
		rows = append(rows, StatsRow{ID: p.ID, Name: p.Name, Goals: line.Goals, Assists: line.Assists})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Goals != rows[j].Goals {
			return rows[i].Goals > rows[j].Goals
		}
		if rows[i].Assists != rows[j].Assists {
			return rows[i].Assists > rows[j].Assists
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// MotmBallotLog resolves MOTM ballots to display names, newest first,
// capped at BallotLogLimit entries.
func MotmBallotLog(roster []domain.Player, ballots []domain.MotmBallot) []BallotEntry {
	names := nameIndex(roster)
	entries := make([]BallotEntry, 0, len(ballots))
	for _, b := range ballots {
		entries = append(entries, BallotEntry{
			VoterName: names.lookup(b.VoterRosterID),
			PickName:  names.lookup(b.RosterID),
			Weight:    b.Weight,
			CreatedAt: b.CreatedAt,
		})
	}
	return capNewestFirst(entries, BallotLogLimit)
}

// DonkeyBallotLog resolves donkey ballots to display names, newest first,
// capped at BallotLogLimit entries.
func DonkeyBallotLog(roster []domain.Player, ballots []domain.DonkeyBallot) []BallotEntry {
	names := nameIndex(roster)
	entries := make([]BallotEntry, 0, len(ballots))
	for _, b := range ballots {
		entries = append(entries, BallotEntry{
			VoterName: names.lookup(b.VoterRosterID),
			PickName:  names.lookup(b.RosterID),
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt,
		})
	}
	return capNewestFirst(entries, BallotLogLimit)
}

// DonkeyReason is one highlighted reason from the donkey ballot log.
type DonkeyReason struct {
	Name      string    `json:"name"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// DonkeyReasons picks the most recent ballots that carry a reason,
// capped at ReasonLogLimit.
func DonkeyReasons(log []BallotEntry) []DonkeyReason {
	reasons := make([]DonkeyReason, 0, ReasonLogLimit)
	for _, e := range log {
		if e.Reason == nil || *e.Reason == "" {
			continue
		}
		reasons = append(reasons, DonkeyReason{Name: e.PickName, Reason: *e.Reason, CreatedAt: e.CreatedAt})
		if len(reasons) == ReasonLogLimit {
			break
		}
	}
	return reasons
}

func capNewestFirst(entries []BallotEntry, limit int) []BallotEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

type names map[uuid.UUID]string

func nameIndex(roster []domain.Player) names {
	idx := make(names, len(roster))
	for _, p := range roster {
		idx[p.ID] = p.Name
	}
	return idx
}

func (n names) lookup(id uuid.UUID) string {
	if name, ok := n[id]; ok {
		return name
	}
	return unknownName
}
