package get_available_slots

import (
	"time"

	"github.com/Daniil2209/Cleandins/internal/domain"
	getAvailableSlots "github.com/Daniil2209/Cleandins/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                string          `json:"date"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	RequiredSlots       int             `json:"requiredSlots,omitempty"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	Index     int    `json:"index"`
	Available bool   `json:"available"`
	Bookable  bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			Index:     slot.Index,
			Available: slot.Available,
			Bookable:  slot.Bookable,
		}
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		RequiredSlots:       resp.RequiredSlots,
		Slots:               slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string, totalBins int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:      date,
		TotalBins: totalBins,
	}, nil
}
