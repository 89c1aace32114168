package aggregate

import (
	"sort"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
)

// SeasonRow is one player's totals across a calendar year. Matches counts
// distinct matches for which the player has a stats row; the per-match
// rates divide by that count and are zero when it is zero.
type SeasonRow struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Matches         int       `json:"matches"`
	Goals           int       `json:"goals"`
	Assists         int       `json:"assists"`
	GoalsPerMatch   float64   `json:"goalsPerMatch"`
	AssistsPerMatch float64   `json:"assistsPerMatch"`
}

// SeasonTotals accumulates stats over the matches created in the given
// year. Every roster player appears, zeros included, sorted goals desc,
// assists desc, name ascending.
func SeasonTotals(roster []domain.Player, matches []domain.Match, stats []domain.PlayerStat, year int) []SeasonRow {
	yearMatches := make(map[uuid.UUID]bool, len(matches))
	for _, m := range matches {
		if m.CreatedAt.Year() == year {
			yearMatches[m.ID] = true
		}
	}

	type acc struct {
		goals   int
		assists int
		seen    map[uuid.UUID]bool
	}
	perPlayer := make(map[uuid.UUID]*acc, len(roster))
	for _, p := range roster {
		perPlayer[p.ID] = &acc{seen: make(map[uuid.UUID]bool)}
	}

	for _, s := range stats {
		if !yearMatches[s.MatchID] {
			continue
		}
		a, ok := perPlayer[s.RosterID]
		if !ok {
			// stale roster id on an old row
			continue
		}
		a.goals += s.Goals
		a.assists += s.Assists
		a.seen[s.MatchID] = true
	}

	rows := make([]SeasonRow, 0, len(roster))
	for _, p := range roster {
		a := perPlayer[p.ID]
		row := SeasonRow{
			ID:      p.ID,
			Name:    p.Name,
			Matches: len(a.seen),
			Goals:   a.goals,
			Assists: a.assists,
		}
		if row.Matches > 0 {
			row.GoalsPerMatch = float64(row.Goals) / float64(row.Matches)
			row.AssistsPerMatch = float64(row.Assists) / float64(row.Matches)
		}
		rows = append(rows, row)
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
