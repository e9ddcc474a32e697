package models

import "fmt"

// ValidationError reports missing or invalid user input. Handlers map it
// to a 400 response; it never aborts the process.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// InvalidTransitionError reports a cancellation attempted while the order
// is in a state that does not allow it.
type InvalidTransitionError struct {
	OrderID string
	From    OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot cancel order %s at this stage (%s)", e.OrderID, e.From)
}
