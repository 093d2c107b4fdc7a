package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/binahub/building-service/internal/dtos"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

type IssueController struct {
	issueService *services.IssueService
}

func NewIssueController(issueService *services.IssueService) *IssueController {
	return &IssueController{issueService: issueService}
}

var issueValidate = validator.New()

// POST /api/v1/issues
func (c *IssueController) ReportIssueHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	var req dtos.ReportIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := issueValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Title, body and apartment are required", err)
		return
	}

	apartmentID, err := uuid.Parse(req.ApartmentID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid apartment id", err)
		return
	}

	issue, err := c.issueService.Report(r.Context(), principal, req.Title, req.Body, apartmentID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewIssueResponse(issue))
}

// GET /api/v1/issues
func (c *IssueController) ListIssuesHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	issues, err := c.issueService.List(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewIssueListResponse(issues))
}

// POST /api/v1/issues/{id}/close
func (c *IssueController) CloseIssueHandler(w http.ResponseWriter, r *http.Request) {
	principal := requirePrincipal(w, r)
	if principal == "" {
		return
	}

	issueID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid issue id", err)
		return
	}

	issue, err := c.issueService.Close(r.Context(), principal, issueID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewIssueResponse(issue))
}
