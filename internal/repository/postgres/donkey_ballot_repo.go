package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donkeyBallotRepository struct {
	db *gorm.DB
}

func NewDonkeyBallotRepository(db *gorm.DB) *donkeyBallotRepository {
	return &donkeyBallotRepository{db: db}
}

func (r *donkeyBallotRepository) Replace(ctx context.Context, matchID, voterID uuid.UUID, ballot *domain.DonkeyBallot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("match_id = ? AND voter_roster_id = ?", matchID, voterID).
			Delete(&domain.DonkeyBallot{}).Error
		if err != nil {
			return err
		}
		return tx.Create(ballot).Error
	})
}

func (r *donkeyBallotRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.DonkeyBallot, error) {
	var ballots []domain.DonkeyBallot
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&ballots).Error
	if err != nil {
		return nil, err
	}
	return ballots, nil
}
