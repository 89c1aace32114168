package domain

import "errors"

// Vote validation errors
var (
	ErrNeedThreeDistinct = errors.New("need 3 distinct candidates")
	ErrSelfStatsRequired = errors.New("self stats required first")
	ErrReasonTooLong     = errors.New("reason too long")
	ErrSelfVote          = errors.New("cannot vote for yourself")
	ErrUnknownPlayer     = errors.New("player not on roster")
	ErrInvalidAttendance = errors.New("invalid attendance status")
	ErrNegativeStatValue = errors.New("goals and assists must be 0 or more")
)

// Lookup errors
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrPlayerNotFound = errors.New("player not found")
)
