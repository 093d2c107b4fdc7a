package controllers

import (
	"errors"
	"net/http"

	"github.com/binahub/building-service/internal/middleware"
	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/utils"
)

// requirePrincipal pulls the authenticated caller out of the request
// context; it writes a 401 and returns "" when absent.
func requirePrincipal(w http.ResponseWriter, r *http.Request) string {
	principal := middleware.PrincipalFromContext(r.Context())
	if principal == "" {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing principal in context", nil)
	}
	return principal
}

// respondServiceError translates service-layer sentinels into the JSON
// error envelope. Anything unrecognized degrades to a generic 500 without
// leaking internals.
func respondServiceError(w http.ResponseWriter, err error) {
	var guardErr *models.GuardError
	switch {
	case errors.As(err, &guardErr):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeUnauthorized, guardErr.Reason, nil)
	case errors.Is(err, utils.ErrInvalidCodeFormat):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidFormat, "Invite codes are 16 letters and digits", nil)
	case errors.Is(err, utils.ErrInviteNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Invite code not found", nil)
	case errors.Is(err, utils.ErrInviteAlreadyUsed):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeAlreadyUsed, "This invite code has already been used", nil)
	case errors.Is(err, utils.ErrAlreadyAssigned):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeAlreadyAssigned, "You already belong to a building", nil)
	case errors.Is(err, utils.ErrNotAssigned):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeUnauthorized, "You do not belong to a building yet", nil)
	case errors.Is(err, utils.ErrNotPermitted):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeUnauthorized, "Your role does not permit this action", nil)
	case errors.Is(err, utils.ErrProfileNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Profile not found", nil)
	case errors.Is(err, utils.ErrBuildingNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Building not found", nil)
	case errors.Is(err, utils.ErrApartmentNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Apartment not found", nil)
	case errors.Is(err, utils.ErrIssueNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Issue not found", nil)
	case errors.Is(err, utils.ErrExternalServiceFailure):
		utils.RespondErrorWithCode(w, http.StatusFailedDependency, utils.ErrCodeExternalServiceFailure, "An external service failed. Please try again.", nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
