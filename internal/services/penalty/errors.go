package penalty

import "fmt"

// Error is a custom error type for penalty-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInput        Error = "invalid input"
	ErrObligationNotFound  Error = "obligation not found"
	ErrUserNotFound        Error = "user not found"
	ErrNotOwner            Error = "caller is not allowed to act on the obligation"
	ErrNotParticipant      Error = "user is not a participant of the challenge"
	ErrNoPenaltyConfigured Error = "no penalty configured"
	ErrNilConfig           Error = "config cannot be nil"
	ErrNilObligationRepo   Error = "obligation repository cannot be nil"
	ErrNilPenaltyRepo      Error = "penalty repository cannot be nil"
	ErrNilUserRepo         Error = "user repository cannot be nil"
	ErrNilClock            Error = "clock cannot be nil"
	ErrNilUUIDGenerator    Error = "UUID generator cannot be nil"
)

// notParticipant reports a challenge membership failure that also matches ErrNotOwner
func notParticipant(userID string) error {
	return fmt.Errorf("%w: %w: %s", ErrNotOwner, ErrNotParticipant, userID)
}
