package penalty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock"
	"github.com/KirkDiggler/forfeit/internal/common/uuid"
	"github.com/KirkDiggler/forfeit/internal/models"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	obligationRepo obligationRepo.Repository
	penaltyRepo    penaltyRepo.Repository
	userRepo       userRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	location       *time.Location
	logger         *slog.Logger
}

// New creates a new penalty service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ObligationRepo == nil {
		return nil, ErrNilObligationRepo
	}

	if cfg.PenaltyRepo == nil {
		return nil, ErrNilPenaltyRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		obligationRepo: cfg.ObligationRepo,
		penaltyRepo:    cfg.PenaltyRepo,
		userRepo:       cfg.UserRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		location:       location,
		logger:         logger,
	}, nil
}

// TriggerPenalty records an ad-hoc penalty. Task penalties can only be
// triggered by the owner; challenge penalties by any participant, against
// any participant. Every call creates new records.
func (s *service) TriggerPenalty(ctx context.Context, input *TriggerPenaltyInput) (*TriggerPenaltyOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.obligationRepo.GetObligation(ctx, &obligationRepo.GetObligationInput{
		ObligationID: input.ObligationID,
	})
	if err != nil {
		if errors.Is(err, obligationRepo.ErrObligationNotFound) {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to get obligation: %w", err)
	}

	var target *models.Obligation
	if obligation.Kind == models.ObligationKindChallenge && obligation.ChallengeID != "" {
		target, err = s.failingParticipant(ctx, obligation, input)
		if err != nil {
			return nil, err
		}
	} else {
		if obligation.OwnerID != input.CallerID {
			return nil, ErrNotOwner
		}
		if input.FailedUserID != "" && input.FailedUserID != obligation.OwnerID {
			return nil, fmt.Errorf("%w: only the owner can fail a task", ErrInvalidInput)
		}
		target = obligation
	}

	if !target.PenaltyConfigured() {
		return nil, ErrNoPenaltyConfigured
	}

	amount := target.PenaltyAmount / float64(len(target.RecipientIDs))
	now := s.clock.Now()
	penaltyIDs := make([]string, 0, len(target.RecipientIDs))

	for _, recipientID := range target.RecipientIDs {
		if recipientID == target.OwnerID {
			continue
		}

		record := &models.PenaltyRecord{
			ID:           s.uuidGenerator.NewUUID(),
			Type:         penaltyType(target),
			ObligationID: target.ID,
			ChallengeID:  target.ChallengeID,
			FromUserID:   target.OwnerID,
			ToUserID:     recipientID,
			Amount:       amount,
			Reason:       manualReason(target),
			CreatedAt:    now,
		}

		if err := s.penaltyRepo.CreatePenalty(ctx, &penaltyRepo.CreatePenaltyInput{Penalty: record}); err != nil {
			s.rollbackPenalties(ctx, penaltyIDs)
			return nil, fmt.Errorf("failed to create penalty: %w", err)
		}

		s.logger.InfoContext(ctx, "penalty triggered",
			"obligation_id", target.ID,
			"recipient_id", recipientID,
			"penalty_id", record.ID,
			"amount", amount)
		penaltyIDs = append(penaltyIDs, record.ID)
	}

	if len(penaltyIDs) == 0 {
		return nil, ErrNoPenaltyConfigured
	}

	return &TriggerPenaltyOutput{
		PenaltyIDs: penaltyIDs,
	}, nil
}

// rollbackPenalties removes the records of a partially applied trigger so the
// call creates all of its penalties or none
func (s *service) rollbackPenalties(ctx context.Context, penaltyIDs []string) {
	ctx = context.WithoutCancel(ctx)
	for _, penaltyID := range penaltyIDs {
		err := s.penaltyRepo.DeletePenalty(ctx, &penaltyRepo.DeletePenaltyInput{PenaltyID: penaltyID})
		if err != nil && !errors.Is(err, penaltyRepo.ErrPenaltyNotFound) {
			s.logger.ErrorContext(ctx, "failed to roll back triggered penalty",
				"penalty_id", penaltyID,
				"error", err)
		}
	}
}

// failingParticipant checks challenge membership of the caller and the failing
// user and returns the failing user's obligation
func (s *service) failingParticipant(ctx context.Context, obligation *models.Obligation, input *TriggerPenaltyInput) (*models.Obligation, error) {
	members, err := s.obligationRepo.ListObligationsForChallenge(ctx, &obligationRepo.ListObligationsForChallengeInput{
		ChallengeID: obligation.ChallengeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list challenge participants: %w", err)
	}

	failedUserID := input.FailedUserID
	if failedUserID == "" {
		failedUserID = obligation.OwnerID
	}

	var callerIsMember bool
	var target *models.Obligation
	for _, member := range members.Obligations {
		if member.OwnerID == input.CallerID {
			callerIsMember = true
		}
		if member.OwnerID == failedUserID && target == nil {
			target = member
		}
	}

	if !callerIsMember {
		return nil, notParticipant(input.CallerID)
	}
	if target == nil {
		return nil, notParticipant(failedUserID)
	}

	return target, nil
}

func penaltyType(obligation *models.Obligation) models.PenaltyType {
	if obligation.Kind == models.ObligationKindChallenge {
		return models.PenaltyTypeChallenge
	}
	return models.PenaltyTypeTask
}

func sweepReason(obligation *models.Obligation) string {
	if obligation.Kind == models.ObligationKindChallenge {
		return "Failed challenge: " + obligation.Title
	}
	return "Missed task: " + obligation.Title
}

func manualReason(obligation *models.Obligation) string {
	if obligation.Kind == models.ObligationKindChallenge {
		return "Failed challenge: " + obligation.Title
	}
	return "Incomplete task: " + obligation.Title
}
