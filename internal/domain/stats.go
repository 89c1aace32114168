package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStat is a player's self-reported goals and assists for one match.
// Unique per (match_id, roster_id); resubmission replaces the earlier row.
type PlayerStat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID   uuid.UUID `json:"matchId" gorm:"type:uuid;not null;uniqueIndex:idx_player_stats_match_roster"`
	RosterID  uuid.UUID `json:"rosterId" gorm:"type:uuid;not null;uniqueIndex:idx_player_stats_match_roster"`
	Goals     int       `json:"goals" gorm:"not null;default:0"`
	Assists   int       `json:"assists" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PlayerStat) TableName() string {
	return "player_stats"
}
