package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a core failure. It is stable and part of the API contract.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindInvalidOption        Kind = "invalid_option"
	KindNoVotes              Kind = "no_votes"
	KindInvalidState         Kind = "invalid_state"
	KindStateVersionConflict Kind = "state_version_conflict"
	KindValidation           Kind = "validation"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindInternal             Kind = "internal"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidOptionError is returned when a vote names an option outside 0..OptionCount-1
type InvalidOptionError struct {
	OptionIndex int
	OptionCount int
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %d: round has %d options", e.OptionIndex, e.OptionCount)
}

// InvalidStateError is returned when an operation is not valid for the team's round or session status
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSessionNotFound     = &NotFoundError{Entity: "session"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrParticipantNotFound = &NotFoundError{Entity: "participant"}
	ErrMissionNotFound     = &NotFoundError{Entity: "mission"}
	ErrRoundNotFound       = &NotFoundError{Entity: "round"}
	ErrConceptNotFound     = &NotFoundError{Entity: "concept"}
	ErrOutcomeNotFound     = &NotFoundError{Entity: "mission outcome"}
	ErrSubmissionNotFound  = &NotFoundError{Entity: "completion submission"}
)

// Invalid State Errors
var (
	ErrSessionArchived        = &InvalidStateError{Reason: "session is archived"}
	ErrNoOpenRound            = &InvalidStateError{Reason: "team has no open round"}
	ErrRoundNotCurrent        = &InvalidStateError{Reason: "round is not the team's current round"}
	ErrRoundAlreadyOpen       = &InvalidStateError{Reason: "a round is already open"}
	ErrTeamComplete           = &InvalidStateError{Reason: "team has completed all missions"}
	ErrTeamNotComplete        = &InvalidStateError{Reason: "team has not completed all missions"}
	ErrMissionIndexInvalid    = &InvalidStateError{Reason: "mission index out of range"}
	ErrParticipantNotInTeam   = &InvalidStateError{Reason: "participant does not belong to this team"}
	ErrMissionAlreadyResolved = &InvalidStateError{Reason: "mission already has an outcome; resolve it to replay"}
)

// Core failures
var (
	ErrNoVotes              = errors.New("no votes cast for this round")
	ErrStateVersionConflict = errors.New("team state version conflict")
)

// Authentication Errors
var (
	ErrMissingIdentity     = &AuthenticationError{Message: "request identity not found in context"}
	ErrFacilitatorOnly     = &AuthorizationError{Message: "operation requires the facilitator role"}
	ErrParticipantOnly     = &AuthorizationError{Message: "operation requires the participant role"}
	ErrTeamAccessDenied    = &AuthorizationError{Message: "identity does not belong to this team"}
	ErrSessionAccessDenied = &AuthorizationError{Message: "identity does not belong to this session"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidOption checks if an error is an InvalidOptionError
func IsInvalidOption(err error) bool {
	var optErr *InvalidOptionError
	return errors.As(err, &optErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsStateVersionConflict checks if an error is an optimistic-concurrency conflict
func IsStateVersionConflict(err error) bool {
	return errors.Is(err, ErrStateVersionConflict)
}

// IsNoVotes checks if an error reports an empty tally
func IsNoVotes(err error) bool {
	return errors.Is(err, ErrNoVotes)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// KindOf classifies err into its stable Kind. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return KindNotFound
	case IsInvalidOption(err):
		return KindInvalidOption
	case IsNoVotes(err):
		return KindNoVotes
	case IsInvalidState(err):
		return KindInvalidState
	case IsStateVersionConflict(err):
		return KindStateVersionConflict
	case IsValidation(err):
		return KindValidation
	case IsAuthentication(err):
		return KindUnauthorized
	case IsAuthorization(err):
		return KindForbidden
	}
	return KindInternal
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidOptionError creates a new InvalidOptionError
func NewInvalidOptionError(optionIndex, optionCount int) error {
	return &InvalidOptionError{OptionIndex: optionIndex, OptionCount: optionCount}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(reason string) error {
	return &InvalidStateError{Reason: reason}
}
