package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/salaspot/rooms-service/internal/app"
	"github.com/salaspot/rooms-service/internal/dtos"
	"github.com/salaspot/rooms-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(application *app.App) *HealthController {
	return &HealthController{app: application}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.app.DB.Ping(ctx); err != nil {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dtos.HealthResponse{
			Status:   "degraded",
			Database: "down",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
