package get_reviews

import (
	"net/http"
	"strconv"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
)

const (
	msgInvalidLimit = "invalid limit value"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews
// Query params: limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /reviews - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to get reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reviews - Reviews retrieved successfully: count=%d", len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
