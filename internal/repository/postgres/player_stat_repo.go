package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerStatRepository struct {
	db *gorm.DB
}

func NewPlayerStatRepository(db *gorm.DB) *playerStatRepository {
	return &playerStatRepository{db: db}
}

func (r *playerStatRepository) Upsert(ctx context.Context, stat *domain.PlayerStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "roster_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"goals", "assists"}),
	}).Create(stat).Error
}

func (r *playerStatRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.PlayerStat, error) {
	var stats []domain.PlayerStat
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *playerStatRepository) GetByMatchAndPlayer(ctx context.Context, matchID, rosterID uuid.UUID) (*domain.PlayerStat, error) {
	var stat domain.PlayerStat
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND roster_id = ?", matchID, rosterID).
		First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *playerStatRepository) GetAll(ctx context.Context) ([]domain.PlayerStat, error) {
	var stats []domain.PlayerStat
	err := r.db.WithContext(ctx).Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
