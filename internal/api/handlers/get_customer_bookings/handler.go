package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
	"github.com/Daniil2209/Cleandins/internal/service/bookings"
	"github.com/Daniil2209/Cleandins/internal/service/bookings/models"
)

const (
	msgMissingPhone = "customer phone is required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{phone}/bookings
// Query params: includeCancelled (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем phone из URL
	vars := mux.Vars(r)
	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("GET /customers/{phone}/bookings - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	result, err := h.service.GetCustomerBookings(r.Context(), &models.GetCustomerBookingsRequest{
		CustomerPhone:    phone,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{phone}/bookings - Invalid input: phone=%s", phone)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /customers/{phone}/bookings - Failed to get bookings: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{phone}/bookings - Bookings retrieved successfully: phone=%s, count=%d",
		phone, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
