package penalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/KirkDiggler/forfeit/internal/period"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
)

// RunEnforcementSweep runs a sweep for the current date and logs the outcome
func (s *service) RunEnforcementSweep(ctx context.Context) {
	output, err := s.Sweep(ctx, &SweepInput{})
	if err != nil {
		s.logger.ErrorContext(ctx, "enforcement sweep failed", "error", err)
		return
	}

	s.logger.InfoContext(ctx, "enforcement sweep finished",
		"date", output.Today.Format(period.DateLayout),
		"evaluated", output.Evaluated,
		"penalties_created", output.PenaltiesCreated,
		"duplicates_skipped", output.DuplicatesSkipped,
		"failures", len(output.Failures))
}

// Sweep evaluates every active obligation against the period that concluded
// before today. Obligations are processed one at a time; a failure is
// recorded and the sweep moves on.
func (s *service) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	today := period.Today(s.clock.Now(), s.location)
	if input != nil && !input.Today.IsZero() {
		today = period.Start(input.Today, models.CadenceDaily)
	}

	active, err := s.obligationRepo.ListActiveObligations(ctx, &obligationRepo.ListActiveObligationsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active obligations: %w", err)
	}

	output := &SweepOutput{
		Today:    today,
		Failures: []*SweepFailure{},
	}

	for _, obligationID := range active.Undecodable {
		s.logger.ErrorContext(ctx, "skipping unreadable obligation", "obligation_id", obligationID)
		output.Failures = append(output.Failures, &SweepFailure{
			ObligationID: obligationID,
			Err:          errors.New("obligation record could not be decoded"),
		})
	}

	for _, obligation := range active.Obligations {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		output.Evaluated++
		created, duplicates, err := s.enforce(ctx, obligation, today)
		output.PenaltiesCreated += created
		output.DuplicatesSkipped += duplicates
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to enforce obligation",
				"obligation_id", obligation.ID,
				"error", err)
			output.Failures = append(output.Failures, &SweepFailure{
				ObligationID: obligation.ID,
				Err:          err,
			})
		}
	}

	return output, nil
}

// enforce levies the penalties of one obligation for its concluded period
func (s *service) enforce(ctx context.Context, obligation *models.Obligation, today time.Time) (int, int, error) {
	if !obligation.IsActive() || !obligation.PenaltyConfigured() {
		return 0, 0, nil
	}

	if !obligation.Cadence.Valid() {
		return 0, 0, fmt.Errorf("unknown cadence %q", obligation.Cadence)
	}

	start, due := period.Concluded(today, obligation.Cadence)
	if !due || !s.inWindow(obligation, start) {
		return 0, 0, nil
	}

	key := period.Key(start, obligation.Cadence)
	if obligation.HasCompletion(key) {
		return 0, 0, nil
	}

	amount := obligation.PenaltyAmount / float64(len(obligation.RecipientIDs))
	now := s.clock.Now()

	var duplicates int
	var levied []string
	var errs []error
	for _, recipientID := range obligation.RecipientIDs {
		if recipientID == obligation.OwnerID {
			continue
		}

		exists, err := s.penaltyRepo.PenaltyExists(ctx, &penaltyRepo.PenaltyExistsInput{
			ObligationID: obligation.ID,
			PeriodKey:    key,
			ToUserID:     recipientID,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("recipient %s: %w", recipientID, err))
			continue
		}
		if exists {
			duplicates++
			continue
		}

		record := &models.PenaltyRecord{
			ID:           s.uuidGenerator.NewUUID(),
			Type:         penaltyType(obligation),
			ObligationID: obligation.ID,
			ChallengeID:  obligation.ChallengeID,
			FromUserID:   obligation.OwnerID,
			ToUserID:     recipientID,
			Amount:       amount,
			Reason:       sweepReason(obligation),
			PeriodKey:    key,
			CreatedAt:    now,
		}

		err = s.penaltyRepo.CreatePenalty(ctx, &penaltyRepo.CreatePenaltyInput{Penalty: record})
		if errors.Is(err, penaltyRepo.ErrDuplicatePenalty) {
			// Another sweep claimed the slot first
			duplicates++
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("recipient %s: %w", recipientID, err))
			continue
		}

		s.logger.InfoContext(ctx, "penalty levied",
			"obligation_id", obligation.ID,
			"period_key", key,
			"recipient_id", recipientID,
			"penalty_id", record.ID,
			"amount", amount)
		levied = append(levied, record.ID)
	}

	if len(levied) > 0 {
		revoked, err := s.revokeIfCompleted(ctx, obligation.ID, key, levied)
		if err != nil {
			errs = append(errs, err)
		}
		levied = levied[:len(levied)-revoked]
	}

	return len(levied), duplicates, errors.Join(errs...)
}

// revokeIfCompleted re-reads the obligation after penalties were levied. A
// completion recorded since the sweep loaded the obligation wins, as does a
// deletion; the fresh penalties are removed again. It returns how many of the
// levied penalties were removed.
func (s *service) revokeIfCompleted(ctx context.Context, obligationID, key string, penaltyIDs []string) (int, error) {
	current, err := s.obligationRepo.GetObligation(ctx, &obligationRepo.GetObligationInput{
		ObligationID: obligationID,
	})
	if err != nil && !errors.Is(err, obligationRepo.ErrObligationNotFound) {
		return 0, fmt.Errorf("failed to re-check obligation: %w", err)
	}
	if err == nil && !current.HasCompletion(key) {
		return 0, nil
	}

	ctx = context.WithoutCancel(ctx)
	revoked := 0
	for i := len(penaltyIDs) - 1; i >= 0; i-- {
		err := s.penaltyRepo.DeletePenalty(ctx, &penaltyRepo.DeletePenaltyInput{PenaltyID: penaltyIDs[i]})
		if err != nil && !errors.Is(err, penaltyRepo.ErrPenaltyNotFound) {
			return revoked, fmt.Errorf("failed to revoke penalty %s: %w", penaltyIDs[i], err)
		}
		s.logger.InfoContext(ctx, "penalty revoked, period completed during sweep",
			"obligation_id", obligationID,
			"period_key", key,
			"penalty_id", penaltyIDs[i])
		revoked++
	}

	return revoked, nil
}

// inWindow reports whether the period starting at start overlaps the
// obligation's validity window. Without a start date the window opens on the
// day the obligation was created.
func (s *service) inWindow(obligation *models.Obligation, start time.Time) bool {
	var windowStart *time.Time
	if obligation.StartDate != nil {
		windowStart = obligation.StartDate
	} else if !obligation.CreatedAt.IsZero() {
		created := period.Today(obligation.CreatedAt, s.location)
		windowStart = &created
	}

	if windowStart != nil && period.End(start, obligation.Cadence).Before(*windowStart) {
		return false
	}
	if obligation.EndDate != nil && start.After(*obligation.EndDate) {
		return false
	}
	return true
}
