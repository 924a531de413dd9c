package create_review

import (
	"errors"
	"net/http"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
	"github.com/Daniil2209/Cleandins/internal/service/reviews"
	"github.com/Daniil2209/Cleandins/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidReview      = "review must have a name, a rating from 1 to 5 and a text"
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid review: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /reviews - Failed to create review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, rating=%d", result.ID, result.Rating)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
