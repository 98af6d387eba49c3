package penalty

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/forfeit/internal/models"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
)

// netEpsilon absorbs float noise from split amounts
const netEpsilon = 1e-9

// GetPenaltySummary nets every penalty touching the user. Only counterparties
// the user owes money to on balance are listed.
func (s *service) GetPenaltySummary(ctx context.Context, input *GetPenaltySummaryInput) (*GetPenaltySummaryOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.getUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	penalties, err := s.penaltyRepo.GetPenaltiesForUser(ctx, &penaltyRepo.GetPenaltiesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get penalties: %w", err)
	}

	summary := &models.PenaltySummary{
		UserID:    input.UserID,
		Penalties: penalties.Penalties,
		Owed:      []*models.CounterpartyBalance{},
	}

	// Positive net means the user owes the counterparty
	net := make(map[string]float64)
	for _, p := range penalties.Penalties {
		if p.FromUserID == input.UserID {
			summary.TotalOwed += p.Amount
			if p.ToUserID != input.UserID {
				net[p.ToUserID] += p.Amount
			}
		}
		if p.ToUserID == input.UserID {
			summary.TotalReceived += p.Amount
			if p.FromUserID != input.UserID {
				net[p.FromUserID] -= p.Amount
			}
		}
	}

	for counterpartyID, amount := range net {
		if amount <= netEpsilon {
			continue
		}

		balance := &models.CounterpartyBalance{
			UserID: counterpartyID,
			Amount: amount,
		}
		counterparty, err := s.getUser(ctx, counterpartyID)
		if err != nil {
			s.logger.WarnContext(ctx, "listing unresolved counterparty by id",
				"user_id", input.UserID,
				"counterparty_id", counterpartyID,
				"error", err)
		} else {
			balance.Name = counterparty.Name
			balance.Email = counterparty.Email
		}
		summary.Owed = append(summary.Owed, balance)
	}

	sort.Slice(summary.Owed, func(i, j int) bool {
		if summary.Owed[i].Amount != summary.Owed[j].Amount {
			return summary.Owed[i].Amount > summary.Owed[j].Amount
		}
		return summary.Owed[i].UserID < summary.Owed[j].UserID
	})

	return &GetPenaltySummaryOutput{
		Summary: summary,
	}, nil
}

// RemovePenalties deletes every penalty between the two users in either direction
func (s *service) RemovePenalties(ctx context.Context, input *RemovePenaltiesInput) (*RemovePenaltiesOutput, error) {
	if input == nil || input.UserID == "" || input.CounterpartyID == "" || input.UserID == input.CounterpartyID {
		return nil, ErrInvalidInput
	}

	if _, err := s.getUser(ctx, input.CounterpartyID); err != nil {
		return nil, err
	}

	penalties, err := s.penaltyRepo.GetPenaltiesForUser(ctx, &penaltyRepo.GetPenaltiesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get penalties: %w", err)
	}

	removed := 0
	for _, p := range penalties.Penalties {
		between := (p.FromUserID == input.UserID && p.ToUserID == input.CounterpartyID) ||
			(p.FromUserID == input.CounterpartyID && p.ToUserID == input.UserID)
		if !between {
			continue
		}

		err := s.penaltyRepo.DeletePenalty(ctx, &penaltyRepo.DeletePenaltyInput{PenaltyID: p.ID})
		if errors.Is(err, penaltyRepo.ErrPenaltyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to delete penalty %s: %w", p.ID, err)
		}
		removed++
	}

	s.logger.InfoContext(ctx, "penalties settled",
		"user_id", input.UserID,
		"counterparty_id", input.CounterpartyID,
		"removed", removed)

	return &RemovePenaltiesOutput{
		Removed: removed,
	}, nil
}

func (s *service) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
