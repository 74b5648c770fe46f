package lifecycle

import (
	"errors"
	"fmt"

	"buyit/internal/model"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrMissingJustification = errors.New("rejection requires comments")
	ErrDuplicatePO          = errors.New("purchase order already exists for request")
	ErrDuplicatePONumber    = errors.New("purchase order number already in use")
	ErrNotFound             = errors.New("not found")
)

// TransitionError reports an event the current status does not accept.
type TransitionError struct {
	RequestID uint
	Event     Event
	From      model.RequestStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s request %d in status %q", e.Event, e.RequestID, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// InvalidInput wraps ErrInvalidInput with a field-level message.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Code returns the stable machine code for err's kind.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrMissingJustification):
		return "MISSING_JUSTIFICATION"
	case errors.Is(err, ErrDuplicatePO):
		return "DUPLICATE_PO"
	case errors.Is(err, ErrDuplicatePONumber):
		return "DUPLICATE_PO_NUMBER"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}
