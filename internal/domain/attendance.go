package domain

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceYes   AttendanceStatus = "yes"
	AttendanceNo    AttendanceStatus = "no"
	AttendanceMaybe AttendanceStatus = "maybe"
)

// ValidAttendanceStatus reports whether s is one of the three known answers.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendanceYes, AttendanceNo, AttendanceMaybe:
		return true
	}
	return false
}

// AttendanceRecord is a player's yes/no/maybe answer for one match,
// unique per (match_id, roster_id) and upserted on conflict.
type AttendanceRecord struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID   uuid.UUID        `json:"matchId" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_match_roster"`
	RosterID  uuid.UUID        `json:"rosterId" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_match_roster"`
	Status    AttendanceStatus `json:"status" gorm:"not null"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}
