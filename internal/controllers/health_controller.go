package controllers

import (
	"net/http"

	"github.com/binahub/building-service/internal/app"
	"github.com/binahub/building-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(application *app.App) *HealthController {
	return &HealthController{app: application}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(r.Context()); err != nil {
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
