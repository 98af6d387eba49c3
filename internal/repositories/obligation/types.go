package obligation

import "github.com/KirkDiggler/forfeit/internal/models"

// SaveObligationInput contains parameters for saving an obligation
type SaveObligationInput struct {
	Obligation *models.Obligation
}

// GetObligationInput contains parameters for retrieving an obligation
type GetObligationInput struct {
	ObligationID string
}

// UpdateFunc mutates the freshly loaded obligation and reports whether it
// changed. Returning an error aborts the update and is passed to the caller.
type UpdateFunc func(obligation *models.Obligation) (bool, error)

// UpdateObligationInput contains parameters for an atomic update
type UpdateObligationInput struct {
	ObligationID string
	Update       UpdateFunc
}

// UpdateObligationOutput contains the result of an atomic update
type UpdateObligationOutput struct {
	// Obligation is the state after the update
	Obligation *models.Obligation

	// Changed reports whether anything was written
	Changed bool
}

// DeleteObligationInput contains parameters for deleting an obligation
type DeleteObligationInput struct {
	ObligationID string
}

// ListActiveObligationsInput contains parameters for listing active obligations
type ListActiveObligationsInput struct {
}

// ListActiveObligationsOutput contains the active obligations
type ListActiveObligationsOutput struct {
	Obligations []*models.Obligation

	// Undecodable holds IDs whose stored record could not be read
	Undecodable []string
}

// ListObligationsForChallengeInput contains parameters for listing a challenge's obligations
type ListObligationsForChallengeInput struct {
	ChallengeID string
}

// ListObligationsForChallengeOutput contains the obligations of a challenge
type ListObligationsForChallengeOutput struct {
	Obligations []*models.Obligation
}
