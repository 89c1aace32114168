package domain

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	ShortCode string    `json:"shortCode" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Match) TableName() string {
	return "matches"
}
