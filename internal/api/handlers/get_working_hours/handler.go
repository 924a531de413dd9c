package get_working_hours

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

// Handle GET /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainSchedule(domain.DefaultWeekSchedule)

	h.logger.Info("GET /working-hours - Schedule retrieved")
	handlers.RespondJSON(w, http.StatusOK, response)
}
