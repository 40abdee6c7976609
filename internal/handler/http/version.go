package http

import (
	"net/http"

	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/utils"
	"github.com/MKhiriev/go-validation-gate/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.buildInfo.Response(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
