package service

import (
	"context"
	"errors"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteService guards every ballot and stat submission. All vote
// validation lives here, behind a single boundary: the self-vote rule,
// the stats-first rule and the reason cap apply identically to every
// entry point.
type VoteService struct {
	rosterRepo repository.RosterRepository
	motmRepo   repository.MotmBallotRepository
	donkeyRepo repository.DonkeyBallotRepository
	statRepo   repository.PlayerStatRepository
}

func NewVoteService(
	rosterRepo repository.RosterRepository,
	motmRepo repository.MotmBallotRepository,
	donkeyRepo repository.DonkeyBallotRepository,
	statRepo repository.PlayerStatRepository,
) *VoteService {
	return &VoteService{
		rosterRepo: rosterRepo,
		motmRepo:   motmRepo,
		donkeyRepo: donkeyRepo,
		statRepo:   statRepo,
	}
}

type SaveStatsInput struct {
	RosterID uuid.UUID
	Goals    int
	Assists  int
}

// SaveStats upserts a player's goals/assists for the match, keyed by
// (match, player). Resubmitting replaces the earlier row instead of
// double-counting it.
func (s *VoteService) SaveStats(ctx context.Context, matchID uuid.UUID, input SaveStatsInput) (*domain.PlayerStat, error) {
	if input.Goals < 0 || input.Assists < 0 {
		return nil, domain.ErrNegativeStatValue
	}
	if err := s.requirePlayer(ctx, input.RosterID); err != nil {
		return nil, err
	}

	stat := &domain.PlayerStat{
		ID:       uuid.New(),
		MatchID:  matchID,
		RosterID: input.RosterID,
		Goals:    input.Goals,
		Assists:  input.Assists,
	}
	if err := s.statRepo.Upsert(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

type MotmVoteInput struct {
	VoterID uuid.UUID
	First   uuid.UUID // 3 points
	Second  uuid.UUID // 2 points
	Third   uuid.UUID // 1 point
}

// SubmitMotm validates and stores a full 3-2-1 ballot set. A voter's
// resubmission replaces their previous set for the match.
func (s *VoteService) SubmitMotm(ctx context.Context, matchID uuid.UUID, input MotmVoteInput) error {
	picks := []uuid.UUID{input.First, input.Second, input.Third}

	distinct := make(map[uuid.UUID]bool, 3)
	for _, p := range picks {
		if p == uuid.Nil {
			return domain.ErrNeedThreeDistinct
		}
		distinct[p] = true
	}
	if len(distinct) != 3 {
		return domain.ErrNeedThreeDistinct
	}
	if distinct[input.VoterID] {
		return domain.ErrSelfVote
	}

	if err := s.requireOwnStats(ctx, matchID, input.VoterID); err != nil {
		return err
	}

	ballots := []domain.MotmBallot{
		{ID: uuid.New(), MatchID: matchID, RosterID: input.First, VoterRosterID: input.VoterID, Weight: domain.WeightFirst},
		{ID: uuid.New(), MatchID: matchID, RosterID: input.Second, VoterRosterID: input.VoterID, Weight: domain.WeightSecond},
		{ID: uuid.New(), MatchID: matchID, RosterID: input.Third, VoterRosterID: input.VoterID, Weight: domain.WeightThird},
	}
	return s.motmRepo.Replace(ctx, matchID, input.VoterID, ballots)
}

type DonkeyVoteInput struct {
	VoterID     uuid.UUID
	CandidateID uuid.UUID
	Reason      string
}

// SubmitDonkey validates and stores a donkey pick. A voter's
// resubmission replaces their previous pick for the match.
func (s *VoteService) SubmitDonkey(ctx context.Context, matchID uuid.UUID, input DonkeyVoteInput) error {
	if input.CandidateID == uuid.Nil {
		return domain.ErrUnknownPlayer
	}
	if input.CandidateID == input.VoterID {
		return domain.ErrSelfVote
	}
	if len(input.Reason) > domain.MaxDonkeyReasonLen {
		return domain.ErrReasonTooLong
	}

	if err := s.requireOwnStats(ctx, matchID, input.VoterID); err != nil {
		return err
	}

	ballot := &domain.DonkeyBallot{
		ID:            uuid.New(),
		MatchID:       matchID,
		RosterID:      input.CandidateID,
		VoterRosterID: input.VoterID,
	}
	if input.Reason != "" {
		ballot.Reason = &input.Reason
	}
	return s.donkeyRepo.Replace(ctx, matchID, input.VoterID, ballot)
}

// requireOwnStats enforces the stats-first rule: a ballot is accepted
// only after the voter saved their own match stats.
func (s *VoteService) requireOwnStats(ctx context.Context, matchID, voterID uuid.UUID) error {
	if voterID == uuid.Nil {
		return domain.ErrUnknownPlayer
	}
	_, err := s.statRepo.GetByMatchAndPlayer(ctx, matchID, voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSelfStatsRequired
		}
		return err
	}
	return nil
}

func (s *VoteService) requirePlayer(ctx context.Context, rosterID uuid.UUID) error {
	if rosterID == uuid.Nil {
		return domain.ErrUnknownPlayer
	}
	_, err := s.rosterRepo.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnknownPlayer
		}
		return err
	}
	return nil
}
