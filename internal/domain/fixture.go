package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fixture is one scheduled league game on the season agenda.
type Fixture struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StartsAt time.Time `json:"startsAt" gorm:"not null;index"`
	HomeTeam string    `json:"homeTeam" gorm:"not null"`
	AwayTeam string    `json:"awayTeam" gorm:"not null"`
	Venue    string    `json:"venue"`
}

func (Fixture) TableName() string {
	return "fixtures"
}
