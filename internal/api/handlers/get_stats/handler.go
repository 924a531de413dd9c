package get_stats

import (
	"net/http"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to get statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Statistics retrieved: bookings=%d, reviews=%d",
		result.TotalBookings, result.ReviewsCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
