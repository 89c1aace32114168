package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"gorm.io/gorm"
)

type fixtureRepository struct {
	db *gorm.DB
}

func NewFixtureRepository(db *gorm.DB) *fixtureRepository {
	return &fixtureRepository{db: db}
}

func (r *fixtureRepository) GetAll(ctx context.Context) ([]domain.Fixture, error) {
	var fixtures []domain.Fixture
	err := r.db.WithContext(ctx).Order("starts_at ASC").Find(&fixtures).Error
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}
