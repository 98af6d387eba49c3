package penalty

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock"
	"github.com/KirkDiggler/forfeit/internal/common/uuid"
	"github.com/KirkDiggler/forfeit/internal/models"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
)

// Config holds configuration for the penalty service
type Config struct {
	// Location decides which calendar day "today" is. Defaults to UTC.
	Location *time.Location

	// Logger receives sweep outcomes. Defaults to slog.Default().
	Logger *slog.Logger

	// Repository dependencies
	ObligationRepo obligationRepo.Repository
	PenaltyRepo    penaltyRepo.Repository
	UserRepo       userRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SweepInput contains parameters for an enforcement sweep
type SweepInput struct {
	// Today overrides the evaluation date. Zero means the clock's date in Location.
	Today time.Time
}

// SweepFailure describes an obligation the sweep could not fully process
type SweepFailure struct {
	ObligationID string
	Err          error
}

// SweepOutput contains the result of an enforcement sweep
type SweepOutput struct {
	// Today is the date the sweep evaluated
	Today time.Time

	// Evaluated is the number of obligations looked at
	Evaluated int

	// PenaltiesCreated is the number of new penalty records
	PenaltiesCreated int

	// DuplicatesSkipped counts slots that were already settled
	DuplicatesSkipped int

	Failures []*SweepFailure
}

// TriggerPenaltyInput contains parameters for an ad-hoc penalty
type TriggerPenaltyInput struct {
	CallerID     string
	ObligationID string

	// FailedUserID names the failing challenge participant. Defaults to the obligation owner.
	FailedUserID string
}

// TriggerPenaltyOutput contains the created penalty IDs
type TriggerPenaltyOutput struct {
	PenaltyIDs []string
}

// GetPenaltySummaryInput contains parameters for a penalty summary
type GetPenaltySummaryInput struct {
	UserID string
}

// GetPenaltySummaryOutput contains a penalty summary
type GetPenaltySummaryOutput struct {
	Summary *models.PenaltySummary
}

// RemovePenaltiesInput contains parameters for settling two users
type RemovePenaltiesInput struct {
	UserID         string
	CounterpartyID string
}

// RemovePenaltiesOutput contains the number of deleted records
type RemovePenaltiesOutput struct {
	Removed int
}
