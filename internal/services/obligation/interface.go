package obligation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/forfeit/internal/services/obligation Service

import "context"

// Service defines the interface for obligation and completion operations
type Service interface {
	// CreateObligation validates and stores a new obligation
	CreateObligation(ctx context.Context, input *CreateObligationInput) (*CreateObligationOutput, error)

	// DeleteObligation removes an obligation together with its penalties
	DeleteObligation(ctx context.Context, input *DeleteObligationInput) (*DeleteObligationOutput, error)

	// MarkComplete records the period containing a date as satisfied
	MarkComplete(ctx context.Context, input *MarkCompleteInput) (*MarkCompleteOutput, error)

	// MarkIncomplete removes the period containing a date from the completion set
	MarkIncomplete(ctx context.Context, input *MarkIncompleteInput) (*MarkIncompleteOutput, error)

	// IsComplete reports whether the period containing a date is satisfied
	IsComplete(ctx context.Context, input *IsCompleteInput) (*IsCompleteOutput, error)

	// GetStats derives streaks, completion rate and penalty totals
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
