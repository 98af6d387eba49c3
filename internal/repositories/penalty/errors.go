package penalty

import "errors"

var (
	// ErrPenaltyNotFound is returned when a penalty record is not found
	ErrPenaltyNotFound = errors.New("penalty record not found")

	// ErrDuplicatePenalty is returned when the (obligation, period, recipient) slot is already taken
	ErrDuplicatePenalty = errors.New("penalty already recorded for period")
)

func validatePenalty(input *CreatePenaltyInput) error {
	if input == nil || input.Penalty == nil {
		return errors.New("input and penalty cannot be nil")
	}

	if input.Penalty.ID == "" {
		return errors.New("penalty ID cannot be empty")
	}

	if input.Penalty.FromUserID == "" || input.Penalty.ToUserID == "" {
		return errors.New("penalty users cannot be empty")
	}

	return nil
}
