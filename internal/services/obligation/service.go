package obligation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock"
	"github.com/KirkDiggler/forfeit/internal/common/uuid"
	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/KirkDiggler/forfeit/internal/period"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
	"github.com/KirkDiggler/forfeit/internal/stats"
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

// New creates a new obligation service
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

// CreateObligation validates and stores a new obligation owned by the caller
func (s *service) CreateObligation(ctx context.Context, input *CreateObligationInput) (*CreateObligationOutput, error) {
	if input == nil || input.CallerID == "" || input.Title == "" {
		return nil, ErrInvalidInput
	}

	if err := s.resolveUser(ctx, input.CallerID); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = models.ObligationKindTask
	}
	if kind != models.ObligationKindTask && kind != models.ObligationKindChallenge {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}
	if kind == models.ObligationKindChallenge && input.ChallengeID == "" {
		return nil, fmt.Errorf("%w: challenge obligations need a challenge ID", ErrInvalidInput)
	}

	if !input.Cadence.Valid() {
		return nil, fmt.Errorf("%w: unknown cadence %q", ErrInvalidInput, input.Cadence)
	}

	if input.PenaltyAmount < 0 {
		return nil, fmt.Errorf("%w: penalty amount cannot be negative", ErrInvalidInput)
	}

	recipients, err := s.resolveRecipients(ctx, input)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ObligationStatusActive
	}
	if status != models.ObligationStatusActive && status != models.ObligationStatusInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	startDate, err := s.parseOptionalDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := s.parseOptionalDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	now := s.clock.Now()
	obligation := &models.Obligation{
		ID:            s.uuidGenerator.NewUUID(),
		Kind:          kind,
		OwnerID:       input.CallerID,
		ChallengeID:   input.ChallengeID,
		Title:         input.Title,
		Description:   input.Description,
		Cadence:       input.Cadence.Normalize(),
		StartDate:     startDate,
		EndDate:       endDate,
		PenaltyAmount: input.PenaltyAmount,
		RecipientIDs:  recipients,
		Status:        status,
		Completions:   []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, raw := range input.Completions {
		date, err := period.ParseDate(raw, s.location)
		if err != nil {
			return nil, ErrInvalidDate
		}
		obligation.AddCompletion(period.Key(date, obligation.Cadence))
	}

	if err := s.obligationRepo.SaveObligation(ctx, &obligationRepo.SaveObligationInput{
		Obligation: obligation,
	}); err != nil {
		return nil, fmt.Errorf("failed to save obligation: %w", err)
	}

	return &CreateObligationOutput{
		Obligation: obligation,
	}, nil
}

// DeleteObligation removes an obligation and every penalty levied for it
func (s *service) DeleteObligation(ctx context.Context, input *DeleteObligationInput) (*DeleteObligationOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.getOwnedObligation(ctx, input.CallerID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	penalties, err := s.penaltyRepo.GetPenaltiesForObligation(ctx, &penaltyRepo.GetPenaltiesForObligationInput{
		ObligationID: obligation.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get penalties: %w", err)
	}

	removed := 0
	for _, p := range penalties.Penalties {
		err := s.penaltyRepo.DeletePenalty(ctx, &penaltyRepo.DeletePenaltyInput{PenaltyID: p.ID})
		if err != nil && !errors.Is(err, penaltyRepo.ErrPenaltyNotFound) {
			return nil, fmt.Errorf("failed to delete penalty %s: %w", p.ID, err)
		}
		removed++
	}

	err = s.obligationRepo.DeleteObligation(ctx, &obligationRepo.DeleteObligationInput{
		ObligationID: obligation.ID,
	})
	if err != nil {
		if errors.Is(err, obligationRepo.ErrObligationNotFound) {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to delete obligation: %w", err)
	}

	return &DeleteObligationOutput{
		PenaltiesRemoved: removed,
	}, nil
}

// MarkComplete records the period containing the date and clears any
// penalties already levied for it
func (s *service) MarkComplete(ctx context.Context, input *MarkCompleteInput) (*MarkCompleteOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.getOwnedObligation(ctx, input.CallerID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	date, err := period.ParseDate(input.Date, s.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := period.Today(s.clock.Now(), s.location)
	if date.After(today) {
		return nil, fmt.Errorf("%w: %s is in the future", ErrInvalidDate, date.Format(period.DateLayout))
	}

	if !withinValidity(obligation, date) {
		return nil, fmt.Errorf("%w: %s is outside the obligation window", ErrInvalidDate, date.Format(period.DateLayout))
	}

	key := period.Key(date, obligation.Cadence)
	now := s.clock.Now()

	updated, err := s.obligationRepo.UpdateObligation(ctx, &obligationRepo.UpdateObligationInput{
		ObligationID: obligation.ID,
		Update: func(o *models.Obligation) (bool, error) {
			if !o.AddCompletion(key) {
				return false, nil
			}
			o.UpdatedAt = now
			return true, nil
		},
	})
	if err != nil {
		if errors.Is(err, obligationRepo.ErrObligationNotFound) {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}

	s.purgePenalties(ctx, obligation.ID, key)

	return &MarkCompleteOutput{
		Obligation: updated.Obligation,
		PeriodKey:  key,
		Added:      updated.Changed,
	}, nil
}

// MarkIncomplete removes the period containing the date. Penalties are left alone.
func (s *service) MarkIncomplete(ctx context.Context, input *MarkIncompleteInput) (*MarkIncompleteOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.getOwnedObligation(ctx, input.CallerID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	date, err := period.ParseDate(input.Date, s.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	key := period.Key(date, obligation.Cadence)
	now := s.clock.Now()

	updated, err := s.obligationRepo.UpdateObligation(ctx, &obligationRepo.UpdateObligationInput{
		ObligationID: obligation.ID,
		Update: func(o *models.Obligation) (bool, error) {
			if !o.RemoveCompletion(key) {
				return false, nil
			}
			o.UpdatedAt = now
			return true, nil
		},
	})
	if err != nil {
		if errors.Is(err, obligationRepo.ErrObligationNotFound) {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}

	return &MarkIncompleteOutput{
		PeriodKey: key,
		Removed:   updated.Changed,
	}, nil
}

// IsComplete reports whether the period containing the date is satisfied.
// The owner and the penalty recipients may ask.
func (s *service) IsComplete(ctx context.Context, input *IsCompleteInput) (*IsCompleteOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.getVisibleObligation(ctx, input.CallerID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	date, err := period.ParseDate(input.Date, s.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	key := period.Key(date, obligation.Cadence)
	return &IsCompleteOutput{
		PeriodKey: key,
		Complete:  obligation.HasCompletion(key),
	}, nil
}

// GetStats derives streaks, completion rate and penalty totals for an obligation
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.CallerID == "" || input.ObligationID == "" {
		return nil, ErrInvalidInput
	}

	obligation, err := s.getVisibleObligation(ctx, input.CallerID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	today := period.Today(s.clock.Now(), s.location)
	reference := today
	switch {
	case obligation.StartDate != nil:
		reference = *obligation.StartDate
	case !obligation.CreatedAt.IsZero():
		reference = period.Today(obligation.CreatedAt, s.location)
	}

	penalties, err := s.penaltyRepo.GetPenaltiesForObligation(ctx, &penaltyRepo.GetPenaltiesForObligationInput{
		ObligationID: obligation.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get penalties: %w", err)
	}

	totalPenaltyAmount := 0.0
	for _, p := range penalties.Penalties {
		totalPenaltyAmount += p.Amount
	}

	completions := len(obligation.Completions)
	return &GetStatsOutput{
		TotalCompletions:   completions,
		CurrentStreak:      stats.CurrentStreak(obligation.Completions, obligation.Cadence, today),
		LongestStreak:      stats.LongestStreak(obligation.Completions, obligation.Cadence),
		CompletionRate:     stats.CompletionRate(completions, reference, today, obligation.Cadence),
		PenaltyAmount:      obligation.PenaltyAmount,
		TotalPenalties:     len(penalties.Penalties),
		TotalPenaltyAmount: totalPenaltyAmount,
	}, nil
}

// purgePenalties removes every penalty levied for a period that has since
// been satisfied. Failures are logged; the completion itself already stands.
func (s *service) purgePenalties(ctx context.Context, obligationID, key string) {
	output, err := s.penaltyRepo.GetPenaltiesForObligationPeriod(ctx, &penaltyRepo.GetPenaltiesForObligationPeriodInput{
		ObligationID: obligationID,
		PeriodKey:    key,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to look up penalties for completed period",
			"obligation_id", obligationID,
			"period_key", key,
			"error", err)
		return
	}

	for _, p := range output.Penalties {
		err := s.penaltyRepo.DeletePenalty(ctx, &penaltyRepo.DeletePenaltyInput{PenaltyID: p.ID})
		if err != nil && !errors.Is(err, penaltyRepo.ErrPenaltyNotFound) {
			s.logger.WarnContext(ctx, "failed to cancel penalty for completed period",
				"obligation_id", obligationID,
				"period_key", key,
				"penalty_id", p.ID,
				"error", err)
			continue
		}
		s.logger.InfoContext(ctx, "cancelled penalty for completed period",
			"obligation_id", obligationID,
			"period_key", key,
			"penalty_id", p.ID)
	}
}

func (s *service) getObligation(ctx context.Context, obligationID string) (*models.Obligation, error) {
	obligation, err := s.obligationRepo.GetObligation(ctx, &obligationRepo.GetObligationInput{
		ObligationID: obligationID,
	})
	if err != nil {
		if errors.Is(err, obligationRepo.ErrObligationNotFound) {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to get obligation: %w", err)
	}
	return obligation, nil
}

func (s *service) getOwnedObligation(ctx context.Context, callerID, obligationID string) (*models.Obligation, error) {
	obligation, err := s.getObligation(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	return obligation, nil
}

func (s *service) getVisibleObligation(ctx context.Context, callerID, obligationID string) (*models.Obligation, error) {
	obligation, err := s.getObligation(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.OwnerID != callerID && !obligation.HasRecipient(callerID) {
		return nil, ErrNotOwner
	}
	return obligation, nil
}

func (s *service) resolveUser(ctx context.Context, userID string) error {
	_, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	return nil
}

// resolveRecipients de-duplicates recipients and checks each one exists
func (s *service) resolveRecipients(ctx context.Context, input *CreateObligationInput) ([]string, error) {
	recipients := make([]string, 0, len(input.RecipientIDs))
	if len(input.RecipientIDs) == 0 {
		return recipients, nil
	}

	if input.PenaltyAmount <= 0 {
		return nil, fmt.Errorf("%w: recipients need a positive penalty amount", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(input.RecipientIDs))
	for _, recipientID := range input.RecipientIDs {
		if recipientID == "" || recipientID == input.CallerID {
			return nil, fmt.Errorf("%w: invalid recipient %q", ErrInvalidInput, recipientID)
		}
		if seen[recipientID] {
			continue
		}
		seen[recipientID] = true

		if err := s.resolveUser(ctx, recipientID); err != nil {
			return nil, err
		}
		recipients = append(recipients, recipientID)
	}
	return recipients, nil
}

func (s *service) parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := period.ParseDate(raw, s.location)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &date, nil
}

// withinValidity reports whether the date lies inside the inclusive window
func withinValidity(obligation *models.Obligation, date time.Time) bool {
	if obligation.StartDate != nil && date.Before(*obligation.StartDate) {
		return false
	}
	if obligation.EndDate != nil && date.After(*obligation.EndDate) {
		return false
	}
	return true
}
