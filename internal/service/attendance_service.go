package service

import (
	"context"
	"errors"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceService struct {
	rosterRepo     repository.RosterRepository
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceService(rosterRepo repository.RosterRepository, attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		rosterRepo:     rosterRepo,
		attendanceRepo: attendanceRepo,
	}
}

// AttendanceSummary groups roster names per answer, plus everyone who
// has not answered yet.
type AttendanceSummary struct {
	Yes        []string `json:"yes"`
	No         []string `json:"no"`
	Maybe      []string `json:"maybe"`
	NoResponse []string `json:"noResponse"`
}

// Save upserts a player's answer for the match, keyed by (match, player).
func (s *AttendanceService) Save(ctx context.Context, matchID, rosterID uuid.UUID, status domain.AttendanceStatus) error {
	if !domain.ValidAttendanceStatus(status) {
		return domain.ErrInvalidAttendance
	}
	if rosterID == uuid.Nil {
		return domain.ErrUnknownPlayer
	}
	if _, err := s.rosterRepo.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnknownPlayer
		}
		return err
	}

	record := &domain.AttendanceRecord{
		ID:       uuid.New(),
		MatchID:  matchID,
		RosterID: rosterID,
		Status:   status,
	}
	return s.attendanceRepo.Upsert(ctx, record)
}

func (s *AttendanceService) Summary(ctx context.Context, matchID uuid.UUID) (*AttendanceSummary, error) {
	roster, err := s.rosterRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(roster))
	for _, p := range roster {
		names[p.ID] = p.Name
	}

	summary := &AttendanceSummary{
		Yes:        []string{},
		No:         []string{},
		Maybe:      []string{},
		NoResponse: []string{},
	}
	responded := make(map[uuid.UUID]bool, len(records))
	for _, rec := range records {
		name, ok := names[rec.RosterID]
		if !ok {
			continue
		}
		responded[rec.RosterID] = true
		switch rec.Status {
		case domain.AttendanceYes:
			summary.Yes = append(summary.Yes, name)
		case domain.AttendanceNo:
			summary.No = append(summary.No, name)
		case domain.AttendanceMaybe:
			summary.Maybe = append(summary.Maybe, name)
		}
	}
	for _, p := range roster {
		if !responded[p.ID] {
			summary.NoResponse = append(summary.NoResponse, p.Name)
		}
	}
	return summary, nil
}
