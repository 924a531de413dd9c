package create_booking

import (
	"errors"
	"net/http"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
	createBooking "github.com/Daniil2209/Cleandins/internal/usecase/create_booking"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid start time format, expected h:MM AM/PM"
	msgMissingSelection   = "please select a service, date and time"
	msgUnknownService     = "unknown service"
	msgClosedDay          = "we are closed on the selected date"
	msgInvalidSlot        = "selected time is outside working hours"
	msgNotEnoughTime      = "not enough time left in the day for this job"
	msgSlotNotAvailable   = "selected time slot is no longer available"
	msgQuotaExceeded      = "all monthly plan cleanings for this month are already booked"
	msgInvalidInput       = "invalid booking details"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeLabel) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingSelection):
			h.logger.Warn("POST /bookings - Missing selection: phone=%s", req.CustomerPhone)
			handlers.RespondBadRequest(w, msgMissingSelection)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: service=%s", req.ServiceKey)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrClosedDay):
			h.logger.Warn("POST /bookings - Closed day: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrNotEnoughTime):
			h.logger.Warn("POST /bookings - Not enough time: date=%s, time=%s, bins=%d",
				req.BookingDate, req.StartTime, req.TotalBins)
			handlers.RespondBadRequest(w, msgNotEnoughTime)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrQuotaExceeded):
			h.logger.Warn("POST /bookings - Quota exceeded: phone=%s, date=%s", req.CustomerPhone, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgQuotaExceeded)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", req.CustomerPhone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, service=%s, date=%s, time=%s",
		result.ID, result.ServiceKey, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
