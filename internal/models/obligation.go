package models

import (
	"sort"
	"time"
)

// Cadence is how often an obligation has to be satisfied
type Cadence string

const (
	// CadenceDaily requires one completion per calendar day
	CadenceDaily Cadence = "daily"

	// CadenceWeekly requires one completion per Monday-start week
	CadenceWeekly Cadence = "weekly"

	// CadenceMonthly requires one completion per calendar month
	CadenceMonthly Cadence = "monthly"
)

// Normalize returns the cadence used for period arithmetic. Anything that is
// not weekly or monthly is treated as daily.
func (c Cadence) Normalize() Cadence {
	switch c {
	case CadenceWeekly, CadenceMonthly:
		return c
	default:
		return CadenceDaily
	}
}

// Valid reports whether the raw value is a known cadence. The empty value is
// valid and means daily.
func (c Cadence) Valid() bool {
	switch c {
	case "", CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	default:
		return false
	}
}

// ObligationKind distinguishes personal tasks from challenge memberships
type ObligationKind string

const (
	// ObligationKindTask is a task owned by a single user
	ObligationKindTask ObligationKind = "task"

	// ObligationKindChallenge is one participant's membership in a challenge
	ObligationKindChallenge ObligationKind = "challenge"
)

// ObligationStatus represents whether an obligation is enforced
type ObligationStatus string

const (
	// ObligationStatusActive obligations are picked up by the enforcement sweep
	ObligationStatusActive ObligationStatus = "active"

	// ObligationStatusInactive obligations are ignored by the enforcement sweep
	ObligationStatusInactive ObligationStatus = "inactive"
)

// Obligation is a recurring commitment with optional penalty terms
type Obligation struct {
	// ID is the unique identifier for the obligation
	ID string

	// Kind is either a task or a challenge membership
	Kind ObligationKind

	// OwnerID is the user that has to satisfy the obligation
	OwnerID string

	// ChallengeID links challenge memberships of the same challenge
	ChallengeID string

	// Title is the display name used in penalty reasons
	Title string

	// Description is free text supplied by the owner
	Description string

	// Cadence is the recurrence unit
	Cadence Cadence

	// StartDate is the first calendar date completions are accepted for
	StartDate *time.Time

	// EndDate is the last calendar date completions are accepted for
	EndDate *time.Time

	// PenaltyAmount is split between the recipients for every missed period
	PenaltyAmount float64

	// RecipientIDs are the users that receive penalties
	RecipientIDs []string

	// Status controls whether the sweep enforces the obligation
	Status ObligationStatus

	// Completions holds the period keys already satisfied, kept sorted
	Completions []string

	// CreatedAt is when the obligation was created
	CreatedAt time.Time

	// UpdatedAt is when the obligation was last modified
	UpdatedAt time.Time
}

// IsActive reports whether the sweep should look at the obligation
func (o *Obligation) IsActive() bool {
	return o.Status == "" || o.Status == ObligationStatusActive
}

// PenaltyConfigured reports whether missing a period costs anything
func (o *Obligation) PenaltyConfigured() bool {
	return o.PenaltyAmount > 0 && len(o.RecipientIDs) > 0
}

// HasCompletion reports whether the period key is satisfied
func (o *Obligation) HasCompletion(key string) bool {
	i := sort.SearchStrings(o.Completions, key)
	return i < len(o.Completions) && o.Completions[i] == key
}

// AddCompletion inserts the key and reports whether it was missing
func (o *Obligation) AddCompletion(key string) bool {
	i := sort.SearchStrings(o.Completions, key)
	if i < len(o.Completions) && o.Completions[i] == key {
		return false
	}
	o.Completions = append(o.Completions, "")
	copy(o.Completions[i+1:], o.Completions[i:])
	o.Completions[i] = key
	return true
}

// RemoveCompletion deletes the key and reports whether it was present
func (o *Obligation) RemoveCompletion(key string) bool {
	i := sort.SearchStrings(o.Completions, key)
	if i >= len(o.Completions) || o.Completions[i] != key {
		return false
	}
	o.Completions = append(o.Completions[:i], o.Completions[i+1:]...)
	return true
}

// HasRecipient reports whether the user receives penalties from this obligation
func (o *Obligation) HasRecipient(userID string) bool {
	for _, id := range o.RecipientIDs {
		if id == userID {
			return true
		}
	}
	return false
}
