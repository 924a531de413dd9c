package get_services

import (
	"net/http"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
	"github.com/Daniil2209/Cleandins/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainPlans(domain.Plans)

	h.logger.Info("GET /services - Catalog retrieved: %d services", len(response.Services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
