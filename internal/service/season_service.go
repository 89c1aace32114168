package service

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/aggregate"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
)

type SeasonService struct {
	rosterRepo repository.RosterRepository
	matchRepo  repository.MatchRepository
	statRepo   repository.PlayerStatRepository
}

func NewSeasonService(
	rosterRepo repository.RosterRepository,
	matchRepo repository.MatchRepository,
	statRepo repository.PlayerStatRepository,
) *SeasonService {
	return &SeasonService{
		rosterRepo: rosterRepo,
		matchRepo:  matchRepo,
		statRepo:   statRepo,
	}
}

// Totals computes every roster player's goal/assist totals and per-match
// rates across the matches of one calendar year.
func (s *SeasonService) Totals(ctx context.Context, year int) ([]aggregate.SeasonRow, error) {
	roster, err := s.rosterRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	stats, err := s.statRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.SeasonTotals(roster, matches, stats, year), nil
}
