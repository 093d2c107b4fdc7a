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

type InviteController struct {
	inviteService *services.InviteService
}

func NewInviteController(inviteService *services.InviteService) *InviteController {
	return &InviteController{inviteService: inviteService}
}

var inviteValidate = validator.New()

// POST /api/v1/invites
func (c *InviteController) CreateInviteCodeHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.CreateInviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := inviteValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid invite request", err)
		return
	}

	targetRole, err := models.ParseRole(req.TargetRole)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Unknown target role", err)
		return
	}

	code, err := c.inviteService.Create(r.Context(), principal, targetRole, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewInviteCodeResponse(code))
}

// GET /api/v1/invites
func (c *InviteController) ListInviteCodesHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	codes, err := c.inviteService.List(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewInviteCodeListResponse(codes))
}

// POST /api/v1/invites/redeem
func (c *InviteController) RedeemInviteCodeHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.RedeemInviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := inviteValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing invite code", err)
		return
	}

	result, err := c.inviteService.Redeem(r.Context(), principal, req.Code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dtos.RedemptionResponse{
		Role:       string(result.Role),
		BuildingID: result.BuildingID.String(),
	}
	if result.Building != nil {
		b := dtos.NewBuildingResponse(result.Building)
		resp.Building = &b
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
