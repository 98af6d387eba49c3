package obligation

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

// Config holds configuration for the obligation service
type Config struct {
	// Location decides which calendar day "today" is. Defaults to UTC.
	Location *time.Location

	// Logger receives warnings for best-effort side effects. Defaults to slog.Default().
	Logger *slog.Logger

	// Repository dependencies
	ObligationRepo obligationRepo.Repository
	PenaltyRepo    penaltyRepo.Repository
	UserRepo       userRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateObligationInput contains parameters for creating an obligation
type CreateObligationInput struct {
	// CallerID becomes the owner
	CallerID string

	Kind        models.ObligationKind
	ChallengeID string
	Title       string
	Description string
	Cadence     models.Cadence

	// StartDate and EndDate are optional YYYY-MM-DD dates or RFC 3339 instants
	StartDate string
	EndDate   string

	PenaltyAmount float64
	RecipientIDs  []string
	Status        models.ObligationStatus

	// Completions are dates already satisfied; they are normalized into period keys
	Completions []string
}

// CreateObligationOutput contains the stored obligation
type CreateObligationOutput struct {
	Obligation *models.Obligation
}

// DeleteObligationInput contains parameters for deleting an obligation
type DeleteObligationInput struct {
	CallerID     string
	ObligationID string
}

// DeleteObligationOutput contains the result of deleting an obligation
type DeleteObligationOutput struct {
	PenaltiesRemoved int
}

// MarkCompleteInput contains parameters for marking a period satisfied
type MarkCompleteInput struct {
	CallerID     string
	ObligationID string

	// Date is a YYYY-MM-DD date or an RFC 3339 instant
	Date string
}

// MarkCompleteOutput contains the result of marking a period satisfied
type MarkCompleteOutput struct {
	Obligation *models.Obligation
	PeriodKey  string

	// Added is false when the period was already satisfied
	Added bool
}

// MarkIncompleteInput contains parameters for clearing a period
type MarkIncompleteInput struct {
	CallerID     string
	ObligationID string
	Date         string
}

// MarkIncompleteOutput contains the result of clearing a period
type MarkIncompleteOutput struct {
	PeriodKey string
	Removed   bool
}

// IsCompleteInput contains parameters for checking a period
type IsCompleteInput struct {
	CallerID     string
	ObligationID string
	Date         string
}

// IsCompleteOutput contains the result of checking a period
type IsCompleteOutput struct {
	PeriodKey string
	Complete  bool
}

// GetStatsInput contains parameters for computing obligation statistics
type GetStatsInput struct {
	CallerID     string
	ObligationID string
}

// GetStatsOutput contains obligation statistics
type GetStatsOutput struct {
	TotalCompletions   int
	CurrentStreak      int
	LongestStreak      int
	CompletionRate     float64
	PenaltyAmount      float64
	TotalPenalties     int
	TotalPenaltyAmount float64
}
