package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/binahub/building-service/internal/dtos"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

type ApartmentController struct {
	apartmentService *services.ApartmentService
}

func NewApartmentController(apartmentService *services.ApartmentService) *ApartmentController {
	return &ApartmentController{apartmentService: apartmentService}
}

var apartmentValidate = validator.New()

// POST /api/v1/apartments
func (c *ApartmentController) CreateApartmentHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.CreateApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := apartmentValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Apartment name is required", err)
		return
	}

	apartment, err := c.apartmentService.Create(r.Context(), principal, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewApartmentResponse(apartment))
}

// GET /api/v1/apartments
func (c *ApartmentController) ListApartmentsHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	apartments, err := c.apartmentService.List(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewApartmentListResponse(apartments))
}
