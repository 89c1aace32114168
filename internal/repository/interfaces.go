package repository

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
)

// RosterRepository is read-only: the roster itself is seeded out of
// band (scripts/seed-roster.go), never through the API.
type RosterRepository interface {
	GetAll(ctx context.Context) ([]domain.Player, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetByShortCode(ctx context.Context, code string) (*domain.Match, error)
	GetRecent(ctx context.Context, limit int) ([]domain.Match, error)
	GetByYear(ctx context.Context, year int) ([]domain.Match, error)
}

type MotmBallotRepository interface {
	// Replace removes the voter's earlier ballots for the match and
	// inserts the new set in one transaction.
	Replace(ctx context.Context, matchID, voterID uuid.UUID, ballots []domain.MotmBallot) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.MotmBallot, error)
}

type DonkeyBallotRepository interface {
	Replace(ctx context.Context, matchID, voterID uuid.UUID, ballot *domain.DonkeyBallot) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.DonkeyBallot, error)
}

type PlayerStatRepository interface {
	// Upsert writes the stat row keyed by (match_id, roster_id);
	// resubmission replaces instead of accumulating.
	Upsert(ctx context.Context, stat *domain.PlayerStat) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.PlayerStat, error)
	GetByMatchAndPlayer(ctx context.Context, matchID, rosterID uuid.UUID) (*domain.PlayerStat, error)
	GetAll(ctx context.Context) ([]domain.PlayerStat, error)
}

type AttendanceRepository interface {
	Upsert(ctx context.Context, record *domain.AttendanceRecord) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.AttendanceRecord, error)
}

type FixtureRepository interface {
	GetAll(ctx context.Context) ([]domain.Fixture, error)
}

type Repositories struct {
	Roster       RosterRepository
	Match        MatchRepository
	MotmBallot   MotmBallotRepository
	DonkeyBallot DonkeyBallotRepository
	PlayerStat   PlayerStatRepository
	Attendance   AttendanceRepository
	Fixture      FixtureRepository
}
