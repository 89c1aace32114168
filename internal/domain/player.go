package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is one entry in the shared team roster. The roster is the fixed
// universe of eligible voters and candidates.
type Player struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Player) TableName() string {
	return "roster"
}
