package bank

// ValidationError is the single error kind raised by the banking domain.
// Every violated business rule carries its own fixed value so callers can
// compare with errors.Is, while the message stays the contract for humans.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Domain rule violations. The messages are part of the package's behavior
// and must not change without updating the tests that assert on them.
var (
	ErrNegativeInitialBalance = &ValidationError{"Initial balance cannot be negative"}
	ErrNegativeAmount         = &ValidationError{"Amount must be positive"}
	ErrInsufficientBalance    = &ValidationError{"Insufficient balance"}
	ErrAccountDeactivated     = &ValidationError{"Account is deactivated"}
	ErrAlreadyDeactivated     = &ValidationError{"Account is already deactivated"}
	ErrRemainingBalance       = &ValidationError{"Cannot deactivate account with remaining balance"}
	ErrNilDestination         = &ValidationError{"Destination account is required"}
	ErrNilAccount             = &ValidationError{"Account is required"}
	ErrSameAccount            = &ValidationError{"Cannot transfer to the same account"}
	ErrDestinationInactive    = &ValidationError{"Cannot transfer to a deactivated account"}
	ErrOutsideBusinessDays    = &ValidationError{"Cannot perform operations outside business days"}
	ErrOutsideBusinessHours   = &ValidationError{"Cannot perform operations outside business hours"}
	ErrBlankName              = &ValidationError{"Name cannot be blank"}
	ErrBlankEmail             = &ValidationError{"Email cannot be blank"}
)
