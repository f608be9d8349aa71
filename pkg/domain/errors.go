package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound    *notFoundError
	ErrEmptySelection    = NewValidationError(ReasonEmptySelection, "please select fields to scan")
	ErrEmptyRetrySet     = NewValidationError(ReasonEmptyRetrySet, "please select records to retry")
	ErrEmptyExemptionSet = NewValidationError(ReasonEmptyExemptionSet, "no records marked for no_mask")
	ErrNoObjectSelected  = NewValidationError(ReasonNoObject, "select an object first")
)

// Validation reasons reported to the operator as warnings.
const (
	ReasonEmptySelection    = "empty_selection"
	ReasonEmptyRetrySet     = "empty_retry_set"
	ReasonEmptyExemptionSet = "empty_exemption_set"
	ReasonNoObject          = "no_object"
	ReasonUnknownObject     = "unknown_object"
	ReasonUnknownRecord     = "unknown_record"
	ReasonInvalidStatus     = "invalid_status"
	ReasonRecordExempt      = "record_exempt"
	ReasonNoRecords         = "no_records"
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

// ValidationError is a non-fatal operator mistake. Nothing changed and the
// action can be retried straight away.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

func NewUnknownObjectError(object string) error {
	return NewValidationError(ReasonUnknownObject, fmt.Sprintf("unknown object '%s'", object))
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ActionDisabledError is returned when an eligibility flag forbids an action.
type ActionDisabledError struct {
	Action string
	Object string
}

func (e *ActionDisabledError) Error() string {
	return fmt.Sprintf("%s is not enabled for object '%s'", e.Action, e.Object)
}

func NewActionDisabledError(action, object string) error {
	return &ActionDisabledError{Action: action, Object: object}
}

func IsActionDisabledError(err error) bool {
	if err == nil {
		return false
	}
	var disabled *ActionDisabledError
	return errors.As(err, &disabled)
}

// SubmissionLockedError is returned when a scan session no longer accepts
// edits or submissions until it is reset.
type SubmissionLockedError struct {
	SessionID string
	State     string
}

func (e *SubmissionLockedError) Error() string {
	return fmt.Sprintf("scan session '%s' is %s, reset it before submitting again", e.SessionID, e.State)
}

func NewSubmissionLockedError(sessionID, state string) error {
	return &SubmissionLockedError{SessionID: sessionID, State: state}
}

func IsSubmissionLockedError(err error) bool {
	if err == nil {
		return false
	}
	var locked *SubmissionLockedError
	return errors.As(err, &locked)
}

// CollaboratorError wraps a failed call to the Protecto service.
type CollaboratorError struct {
	Operation  string
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *CollaboratorError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("protecto %s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("protecto %s failed: %v", e.Operation, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func NewCollaboratorError(operation string, statusCode int, err error) error {
	return &CollaboratorError{Operation: operation, StatusCode: statusCode, Err: err}
}

func NewCollaboratorTimeoutError(operation string, err error) error {
	return &CollaboratorError{Operation: operation, Timeout: true, Err: err}
}

func IsCollaboratorError(err error) bool {
	if err == nil {
		return false
	}
	var collaboratorError *CollaboratorError
	return errors.As(err, &collaboratorError)
}

func IsCollaboratorTimeout(err error) bool {
	var collaboratorError *CollaboratorError
	if errors.As(err, &collaboratorError) {
		return collaboratorError.Timeout
	}
	return false
}
