package service

import (
	"context"
	"errors"
	"strings"

	"github.com/boudmarinus-tech/ene-chille-app/internal/config"
	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMatchNameRequired = errors.New("match name is required")

type MatchService struct {
	matchRepo repository.MatchRepository
	cfg       *config.Config
}

func NewMatchService(matchRepo repository.MatchRepository, cfg *config.Config) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		cfg:       cfg,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, name string) (*domain.Match, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMatchNameRequired
	}

	id := uuid.New()
	match := &domain.Match{
		ID:        id,
		Name:      name,
		ShortCode: ShortCodeFromID(id),
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) GetMatch(ctx context.Context, idOrCode string) (*domain.Match, error) {
	var (
		match *domain.Match
		err   error
	)
	if id, parseErr := uuid.Parse(idOrCode); parseErr == nil {
		match, err = s.matchRepo.GetByID(ctx, id)
	} else {
		match, err = s.matchRepo.GetByShortCode(ctx, strings.ToUpper(strings.TrimSpace(idOrCode)))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *MatchService) GetRecentMatches(ctx context.Context) ([]domain.Match, error) {
	return s.matchRepo.GetRecent(ctx, s.cfg.RecentMatchLimit)
}

// ShortCodeFromID derives a match's join code from its id: separators
// stripped, first six characters, uppercased. Deterministic, not random;
// collisions are possible and not detected.
func ShortCodeFromID(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
}
