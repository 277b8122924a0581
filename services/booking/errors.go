package booking

import "fmt"

// FlowError reports a rejected booking action. Errors with the same Code
// match under errors.Is, so callers can compare against the sentinels below.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FlowError) Is(target error) bool {
	t, ok := target.(*FlowError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidTransition = &FlowError{Code: "invalidTransition", Message: "action not allowed in the current view"}
	ErrDateDisabled      = &FlowError{Code: "dateDisabled", Message: "date is not selectable"}
	ErrDayOutOfRange     = &FlowError{Code: "dayOutOfRange", Message: "day is outside the displayed month"}
	ErrNoDateSelected    = &FlowError{Code: "noDateSelected", Message: "select a date first"}
	ErrUnknownSlot       = &FlowError{Code: "unknownSlot", Message: "slot is not offered on the selected date"}
	ErrIncomplete        = &FlowError{Code: "incomplete", Message: "date, time and address are required"}
	ErrEntityNotFound    = &FlowError{Code: "entityNotFound", Message: "entity not found in catalog"}
	ErrKindMismatch      = &FlowError{Code: "kindMismatch", Message: "entity belongs to another booking flow"}
	ErrInvalidFilter     = &FlowError{Code: "invalidFilter", Message: "invalid filter value"}
	ErrInvalidField      = &FlowError{Code: "invalidField", Message: "form field is invalid"}
)

// FieldError rejects one field of a registration form. It matches ErrInvalidField.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

func newFlowError(base *FlowError, format string, args ...any) error {
	return &FlowError{Code: base.Code, Message: fmt.Sprintf(format, args...)}
}
