package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/binahub/building-service/internal/dtos"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

type BuildingController struct {
	buildingService *services.BuildingService
}

func NewBuildingController(buildingService *services.BuildingService) *BuildingController {
	return &BuildingController{buildingService: buildingService}
}

var buildingValidate = validator.New()

// POST /api/v1/buildings
func (c *BuildingController) CreateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.CreateBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := buildingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Building name is required", err)
		return
	}

	building, err := c.buildingService.CreateBuilding(r.Context(), principal, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewBuildingResponse(building))
}

// GET /api/v1/buildings/me
func (c *BuildingController) GetCallerBuildingHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	building, err := c.buildingService.GetCallerBuilding(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewBuildingResponse(building))
}

// GET /api/v1/buildings/members
func (c *BuildingController) ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	members, err := c.buildingService.ListMembers(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserProfileListResponse(members))
}
