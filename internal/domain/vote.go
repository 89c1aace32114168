package domain

import (
	"time"

	"github.com/google/uuid"
)

// MOTM ballot weights. A vote action inserts one ballot per weight,
// each naming a distinct candidate.
const (
	WeightFirst  = 3
	WeightSecond = 2
	WeightThird  = 1
)

// MotmBallot is one weighted "Man of the Match" pick.
type MotmBallot struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID       uuid.UUID `json:"matchId" gorm:"type:uuid;not null;index"`
	RosterID      uuid.UUID `json:"rosterId" gorm:"type:uuid;not null"`
	VoterRosterID uuid.UUID `json:"voterRosterId" gorm:"type:uuid;not null"`
	Weight        int       `json:"weight" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (MotmBallot) TableName() string {
	return "votes"
}

// MaxDonkeyReasonLen caps the optional free-text reason on a donkey ballot.
const MaxDonkeyReasonLen = 280

// DonkeyBallot is one "Donkey of the Match" pick with an optional reason.
type DonkeyBallot struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID       uuid.UUID `json:"matchId" gorm:"type:uuid;not null;index"`
	RosterID      uuid.UUID `json:"rosterId" gorm:"type:uuid;not null"`
	VoterRosterID uuid.UUID `json:"voterRosterId" gorm:"type:uuid;not null"`
	Reason        *string   `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (DonkeyBallot) TableName() string {
	return "donkey_votes"
}
