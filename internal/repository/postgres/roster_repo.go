package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) GetAll(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	err := r.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *rosterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}
