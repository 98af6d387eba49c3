package models

import (
	"time"
)

// PenaltyType records which kind of obligation produced a penalty
type PenaltyType string

const (
	// PenaltyTypeTask is a penalty levied for a task
	PenaltyTypeTask PenaltyType = "task"

	// PenaltyTypeChallenge is a penalty levied for a challenge membership
	PenaltyTypeChallenge PenaltyType = "challenge"
)

// PenaltyRecord is an amount one user owes another
type PenaltyRecord struct {
	// ID is the unique identifier for the penalty
	ID string

	// Type is task or challenge
	Type PenaltyType

	// ObligationID is the obligation the penalty was levied for
	ObligationID string

	// ChallengeID is set for challenge penalties
	ChallengeID string

	// FromUserID is the user that failed and owes the amount
	FromUserID string

	// ToUserID is the user the amount is owed to
	ToUserID string

	// Amount is the money owed
	Amount float64

	// Reason is a human readable description
	Reason string

	// PeriodKey is the period the penalty settles. Empty for manual penalties.
	PeriodKey string

	// CreatedAt is when the penalty was recorded
	CreatedAt time.Time
}

// Automatic reports whether the penalty was levied by the sweep
func (p *PenaltyRecord) Automatic() bool {
	return p.PeriodKey != ""
}
