package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Daniil2209/Cleandins/internal/api/handlers"
	getAvailableSlots "github.com/Daniil2209/Cleandins/internal/usecase/get_available_slots"
)

const (
	msgMissingDate  = "date is required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidBins  = "invalid bins value"
	msgInvalidInput = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), bins (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем bins из query параметров (опционально)
	totalBins := 0
	if binsStr := r.URL.Query().Get("bins"); binsStr != "" {
		bins, err := strconv.Atoi(binsStr)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid bins: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBins)
			return
		}
		totalBins = bins
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, totalBins)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: date=%s, bins=%d", dateStr, totalBins)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
