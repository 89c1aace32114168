package testutil

import (
	"testing"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedRoster inserts players with the given names and returns them in
// name order, matching the roster endpoint's ordering.
func SeedRoster(t *testing.T, db *gorm.DB, names ...string) []domain.Player {
	t.Helper()

	players := make([]domain.Player, len(names))
	for i, name := range names {
		players[i] = domain.Player{ID: uuid.New(), Name: name}
		if err := db.Create(&players[i]).Error; err != nil {
			t.Fatalf("failed to seed player %s: %v", name, err)
		}
	}
	return players
}

// SeedMatch inserts a match with a derived short code.
func SeedMatch(t *testing.T, db *gorm.DB, name string) *domain.Match {
	t.Helper()

	id := uuid.New()
	match := &domain.Match{
		ID:        id,
		Name:      name,
		ShortCode: service.ShortCodeFromID(id),
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match %s: %v", name, err)
	}
	return match
}

// SeedStats inserts a stats row for the player so they are allowed to vote.
func SeedStats(t *testing.T, db *gorm.DB, matchID, rosterID uuid.UUID, goals, assists int) {
	t.Helper()

	stat := &domain.PlayerStat{
		ID:       uuid.New(),
		MatchID:  matchID,
		RosterID: rosterID,
		Goals:    goals,
		Assists:  assists,
	}
	if err := db.Create(stat).Error; err != nil {
		t.Fatalf("failed to seed stats: %v", err)
	}
}
