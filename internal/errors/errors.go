package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// MenuItemMismatchError indicates that one or more requested menu items do
// not exist or do not belong to the requested restaurant. Resolution is
// all-or-nothing, so the missing ids are carried for the caller.
type MenuItemMismatchError struct {
	Message    string
	MissingIDs []int
}

func (e *MenuItemMismatchError) Error() string {
	return e.Message
}

func NewMenuItemMismatchError(message string, missingIDs []int) *MenuItemMismatchError {
	return &MenuItemMismatchError{
		Message:    message,
		MissingIDs: missingIDs,
	}
}

func IsMenuItemMismatchError(err error) (*MenuItemMismatchError, bool) {
	if me, ok := err.(*MenuItemMismatchError); ok {
		return me, true
	}
	return nil, false
}

type InvalidStatusError struct {
	Message string
	Status  string
}

func (e *InvalidStatusError) Error() string {
	return e.Message
}

func NewInvalidStatusError(status string) *InvalidStatusError {
	return &InvalidStatusError{
		Message: fmt.Sprintf("invalid status %q", status),
		Status:  status,
	}
}

func IsInvalidStatusError(err error) (*InvalidStatusError, bool) {
	if ise, ok := err.(*InvalidStatusError); ok {
		return ise, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
