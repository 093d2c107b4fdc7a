package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/binahub/building-service/internal/dtos"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

var announcementValidate = validator.New()

// POST /api/v1/announcements
func (c *AnnouncementController) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := announcementValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Title and body are required", err)
		return
	}

	announcement, err := c.announcementService.Create(r.Context(), principal, req.Title, req.Body)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewAnnouncementResponse(announcement))
}

// GET /api/v1/announcements
func (c *AnnouncementController) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	announcements, err := c.announcementService.List(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewAnnouncementListResponse(announcements))
}
