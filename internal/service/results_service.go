package service

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/aggregate"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/google/uuid"
)

type ResultsService struct {
	rosterRepo repository.RosterRepository
	motmRepo   repository.MotmBallotRepository
	donkeyRepo repository.DonkeyBallotRepository
	statRepo   repository.PlayerStatRepository
}

func NewResultsService(
	rosterRepo repository.RosterRepository,
	motmRepo repository.MotmBallotRepository,
	donkeyRepo repository.DonkeyBallotRepository,
	statRepo repository.PlayerStatRepository,
) *ResultsService {
	return &ResultsService{
		rosterRepo: rosterRepo,
		motmRepo:   motmRepo,
		donkeyRepo: donkeyRepo,
		statRepo:   statRepo,
	}
}

// MatchSummary is the full aggregated view of one match's votes and stats.
type MatchSummary struct {
	MotmRanking   []aggregate.RankedPlayer `json:"motmRanking"`
	DonkeyRanking []aggregate.RankedPlayer `json:"donkeyRanking"`
	StatsRanking  []aggregate.StatsRow     `json:"statsRanking"`
	MotmBallots   []aggregate.BallotEntry  `json:"motmBallots"`
	DonkeyBallots []aggregate.BallotEntry  `json:"donkeyBallots"`
	DonkeyReasons []aggregate.DonkeyReason `json:"donkeyReasons"`
}

// GetResults fetches a fresh snapshot of the match's records and feeds
// it through the pure aggregation. No cached or partial state.
func (s *ResultsService) GetResults(ctx context.Context, matchID uuid.UUID) (*MatchSummary, error) {
	roster, err := s.rosterRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	motmBallots, err := s.motmRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	donkeyBallots, err := s.donkeyRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	stats, err := s.statRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	donkeyLog := aggregate.DonkeyBallotLog(roster, donkeyBallots)

	return &MatchSummary{
		MotmRanking:   aggregate.Ranking(roster, aggregate.MotmScores(motmBallots)),
		DonkeyRanking: aggregate.Ranking(roster, aggregate.DonkeyScores(donkeyBallots)),
		StatsRanking:  aggregate.StatsRanking(roster, aggregate.StatTotals(stats)),
		MotmBallots:   aggregate.MotmBallotLog(roster, motmBallots),
		DonkeyBallots: donkeyLog,
		DonkeyReasons: aggregate.DonkeyReasons(donkeyLog),
	}, nil
}
