package obligation

// Error is a custom error type for obligation-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDate        Error = "invalid date"
	ErrInvalidInput       Error = "invalid input"
	ErrObligationNotFound Error = "obligation not found"
	ErrUserNotFound       Error = "user not found"
	ErrNotOwner           Error = "caller does not own the obligation"
	ErrNilConfig          Error = "config cannot be nil"
	ErrNilObligationRepo  Error = "obligation repository cannot be nil"
	ErrNilPenaltyRepo     Error = "penalty repository cannot be nil"
	ErrNilUserRepo        Error = "user repository cannot be nil"
	ErrNilClock           Error = "clock cannot be nil"
	ErrNilUUIDGenerator   Error = "UUID generator cannot be nil"
)
