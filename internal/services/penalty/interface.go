package penalty

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/forfeit/internal/services/penalty Service

import "context"

// Service defines the interface for penalty enforcement and settlement
type Service interface {
	// RunEnforcementSweep is the scheduler entry point; outcomes are logged
	RunEnforcementSweep(ctx context.Context)

	// Sweep levies penalties for every obligation whose concluded period was missed
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)

	// TriggerPenalty records an ad-hoc penalty for a task or challenge failure.
	// Either every recipient gets a record or none does.
	TriggerPenalty(ctx context.Context, input *TriggerPenaltyInput) (*TriggerPenaltyOutput, error)

	// GetPenaltySummary nets every penalty touching a user
	GetPenaltySummary(ctx context.Context, input *GetPenaltySummaryInput) (*GetPenaltySummaryOutput, error)

	// RemovePenalties settles every penalty between two users
	RemovePenalties(ctx context.Context, input *RemovePenaltiesInput) (*RemovePenaltiesOutput, error)
}
