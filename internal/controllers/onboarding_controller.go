package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/binahub/building-service/internal/dtos"
	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

// OnboardingSessionCookieName keys the pre-login selection to a browser
// session. The server mints the key on first write.
const OnboardingSessionCookieName = "onboarding_session"

type OnboardingController struct {
	onboardingService *services.OnboardingService
}

func NewOnboardingController(onboardingService *services.OnboardingService) *OnboardingController {
	return &OnboardingController{onboardingService: onboardingService}
}

var onboardingValidate = validator.New()

// PUT /api/v1/onboarding/selection
func (c *OnboardingController) SetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SetOnboardingSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := onboardingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Selection must be owner, manager or resident", err)
		return
	}

	selection, err := models.ParseRole(req.Selection)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Unknown selection", err)
		return
	}

	sessionKey := c.sessionKey(w, r)
	if err := c.onboardingService.Select(r.Context(), sessionKey, selection); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.OnboardingSelectionResponse{Selection: string(selection)})
}

// GET /api/v1/onboarding/selection
func (c *OnboardingController) GetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(OnboardingSessionCookieName)
	if err != nil || cookie.Value == "" {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No onboarding selection", nil)
		return
	}

	selection, err := c.onboardingService.Peek(r.Context(), cookie.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if selection == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No onboarding selection", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewOnboardingSelectionResponse(selection))
}

// DELETE /api/v1/onboarding/selection
func (c *OnboardingController) ConsumeSelectionHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(OnboardingSessionCookieName)
	if err != nil || cookie.Value == "" {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No onboarding selection", nil)
		return
	}

	selection, err := c.onboardingService.Consume(r.Context(), cookie.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if selection == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No onboarding selection", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewOnboardingSelectionResponse(selection))
}

// sessionKey reads the session cookie, minting one when absent.
func (c *OnboardingController) sessionKey(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(OnboardingSessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	key := utils.RandomUpperAlphanumeric(32)
	http.SetCookie(w, &http.Cookie{
		Name:     OnboardingSessionCookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}
