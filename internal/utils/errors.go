package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	// Invite lifecycle
	ErrInvalidCodeFormat = errors.New("invalid_code_format")
	ErrInviteNotFound    = errors.New("invite_not_found")
	ErrInviteAlreadyUsed = errors.New("invite_already_used")

	// Membership
	ErrAlreadyAssigned = errors.New("already_assigned")
	ErrNotAssigned     = errors.New("not_assigned")
	ErrNotPermitted    = errors.New("not_permitted")

	// Entities
	ErrProfileNotFound   = errors.New("profile_not_found")
	ErrBuildingNotFound  = errors.New("building_not_found")
	ErrApartmentNotFound = errors.New("apartment_not_found")
	ErrIssueNotFound     = errors.New("issue_not_found")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	// For external service failures (e.g., SendGrid)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
