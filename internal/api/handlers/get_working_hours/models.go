package get_working_hours

import (
	"time"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	SlotDurationMinutes int          `json:"slotDurationMinutes"`
	Days                []WorkingDay `json:"days"`
}

// WorkingDay модель рабочих часов одного дня недели
type WorkingDay struct {
	Weekday string `json:"weekday"`
	Open    bool   `json:"open"`
	Opens   string `json:"opens,omitempty"`  // "3:30 PM"
	Closes  string `json:"closes,omitempty"` // "7:30 PM"
	Label   string `json:"label"`            // "Monday: 3:30 PM - 7:30 PM"
}

// FromDomainSchedule конвертирует недельное расписание в HTTP response
func FromDomainSchedule(schedule domain.WeekSchedule) *WorkingHoursResponse {
	days := make([]WorkingDay, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window := schedule[wd]

		day := WorkingDay{
			Weekday: wd.String(),
			Open:    window.Open,
			Label:   schedule.Label(wd),
		}
		if window.Open {
			day.Opens = types.NewTimeLabelFromHours(window.Start).String()
			day.Closes = types.NewTimeLabelFromHours(window.End).String()
		}

		days[wd] = day
	}

	return &WorkingHoursResponse{
		SlotDurationMinutes: domain.SlotMinutes,
		Days:                days,
	}
}
