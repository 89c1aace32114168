package postgres

import (
	"context"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "roster_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(record).Error
}

func (r *attendanceRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
