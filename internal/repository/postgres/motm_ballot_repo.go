package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type motmBallotRepository struct {
	db *gorm.DB
}

func NewMotmBallotRepository(db *gorm.DB) *motmBallotRepository {
	return &motmBallotRepository{db: db}
}

func (r *motmBallotRepository) Replace(ctx context.Context, matchID, voterID uuid.UUID, ballots []domain.MotmBallot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("match_id = ? AND voter_roster_id = ?", matchID, voterID).
			Delete(&domain.MotmBallot{}).Error
		if err != nil {
			return err
		}
		return tx.Create(&ballots).Error
	})
}

func (r *motmBallotRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.MotmBallot, error) {
	var ballots []domain.MotmBallot
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&ballots).Error
	if err != nil {
		return nil, err
	}
	return ballots, nil
}
