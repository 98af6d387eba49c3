package penalty

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/forfeit/internal/repositories/penalty Repository

import (
	"context"
)

// Repository defines the interface for penalty record persistence
type Repository interface {
	// PenaltyExists reports whether a sweep penalty already settles the
	// (obligation, period, recipient) slot
	PenaltyExists(ctx context.Context, input *PenaltyExistsInput) (bool, error)

	// CreatePenalty stores a penalty record. Records carrying a period key
	// claim their slot atomically and fail with ErrDuplicatePenalty when it is taken.
	CreatePenalty(ctx context.Context, input *CreatePenaltyInput) error

	// GetPenaltiesForObligationPeriod retrieves the penalties levied for one period of an obligation
	GetPenaltiesForObligationPeriod(ctx context.Context, input *GetPenaltiesForObligationPeriodInput) (*GetPenaltiesForObligationPeriodOutput, error)

	// GetPenaltiesForObligation retrieves every penalty levied for an obligation
	GetPenaltiesForObligation(ctx context.Context, input *GetPenaltiesForObligationInput) (*GetPenaltiesForObligationOutput, error)

	// GetPenaltiesForUser retrieves every penalty where the user is debtor or creditor
	GetPenaltiesForUser(ctx context.Context, input *GetPenaltiesForUserInput) (*GetPenaltiesForUserOutput, error)

	// DeletePenalty removes a penalty record and releases its period slot
	DeletePenalty(ctx context.Context, input *DeletePenaltyInput) error
}
