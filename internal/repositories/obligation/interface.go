package obligation

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/forfeit/internal/repositories/obligation Repository

import (
	"context"

	"github.com/KirkDiggler/forfeit/internal/models"
)

// Repository defines the interface for obligation persistence
type Repository interface {
	// SaveObligation persists an obligation, replacing any stored version
	SaveObligation(ctx context.Context, input *SaveObligationInput) error

	// GetObligation retrieves an obligation by ID
	GetObligation(ctx context.Context, input *GetObligationInput) (*models.Obligation, error)

	// UpdateObligation applies a read-modify-write to one obligation atomically
	UpdateObligation(ctx context.Context, input *UpdateObligationInput) (*UpdateObligationOutput, error)

	// DeleteObligation removes an obligation
	DeleteObligation(ctx context.Context, input *DeleteObligationInput) error

	// ListActiveObligations retrieves every obligation with an active status
	ListActiveObligations(ctx context.Context, input *ListActiveObligationsInput) (*ListActiveObligationsOutput, error)

	// ListObligationsForChallenge retrieves every participant obligation of a challenge
	ListObligationsForChallenge(ctx context.Context, input *ListObligationsForChallengeInput) (*ListObligationsForChallengeOutput, error)
}
