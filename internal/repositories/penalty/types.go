package penalty

import "github.com/KirkDiggler/forfeit/internal/models"

// PenaltyExistsInput identifies a sweep penalty slot
type PenaltyExistsInput struct {
	ObligationID string
	PeriodKey    string
	ToUserID     string
}

// CreatePenaltyInput contains parameters for storing a penalty
type CreatePenaltyInput struct {
	Penalty *models.PenaltyRecord
}

// GetPenaltiesForObligationPeriodInput contains parameters for a period lookup
type GetPenaltiesForObligationPeriodInput struct {
	ObligationID string
	PeriodKey    string
}

// GetPenaltiesForObligationPeriodOutput contains the penalties of one period
type GetPenaltiesForObligationPeriodOutput struct {
	Penalties []*models.PenaltyRecord
}

// GetPenaltiesForObligationInput contains parameters for an obligation lookup
type GetPenaltiesForObligationInput struct {
	ObligationID string
}

// GetPenaltiesForObligationOutput contains the penalties of an obligation
type GetPenaltiesForObligationOutput struct {
	Penalties []*models.PenaltyRecord
}

// GetPenaltiesForUserInput contains parameters for a user lookup
type GetPenaltiesForUserInput struct {
	UserID string
}

// GetPenaltiesForUserOutput contains the penalties touching a user, oldest first
type GetPenaltiesForUserOutput struct {
	Penalties []*models.PenaltyRecord
}

// DeletePenaltyInput contains parameters for deleting a penalty
type DeletePenaltyInput struct {
	PenaltyID string
}
