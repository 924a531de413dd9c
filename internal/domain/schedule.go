package domain

import (
	"fmt"
	"time"

	"github.com/Daniil2209/Cleandins/pkg/types"
)

// DayWindow is the working interval of one weekday, in fractional hours
// (15.5 = 3:30 PM). The interval is half-open: [Start, End)
type DayWindow struct {
	Open  bool
	Start float64
	End   float64
}

// WeekSchedule maps weekdays to working intervals.
// Indexed by time.Weekday (0 = Sunday .. 6 = Saturday)
type WeekSchedule [7]DayWindow

// DefaultWeekSchedule рабочие часы сервиса
// Неизменяемая конфигурация, задается на этапе компиляции
var DefaultWeekSchedule = WeekSchedule{
	time.Sunday:    {Open: true, Start: 12, End: 19},
	time.Monday:    {Open: true, Start: 15.5, End: 19.5},
	time.Tuesday:   {Open: true, Start: 15.5, End: 19.5},
	time.Wednesday: {Open: true, Start: 15.5, End: 19.5},
	time.Thursday:  {Open: true, Start: 15.5, End: 19.5},
	time.Friday:    {Open: true, Start: 14, End: 18},
	time.Saturday:  {Open: true, Start: 13.5, End: 18.5},
}

// Grid generates the ordered slot labels for a weekday: one label every
// half hour from Start while strictly below End. A trailing partial slot
// is truncated by the exclusive loop condition. Closed days yield an
// empty grid. The result is fully determined by the weekday
func (s WeekSchedule) Grid(weekday time.Weekday) []types.TimeLabel {
	if weekday < time.Sunday || weekday > time.Saturday {
		return []types.TimeLabel{}
	}

	window := s[weekday]
	if !window.Open {
		return []types.TimeLabel{}
	}

	slots := make([]types.TimeLabel, 0)
	for current := window.Start; current < window.End; current += 0.5 {
		slots = append(slots, types.NewTimeLabelFromHours(current))
	}

	return slots
}

// GridForDate generates the slot grid for a calendar date's weekday
func (s WeekSchedule) GridForDate(date time.Time) []types.TimeLabel {
	return s.Grid(date.Weekday())
}

// Label returns the human-readable window description for a weekday,
// e.g. "Monday: 3:30 PM - 7:30 PM"
func (s WeekSchedule) Label(weekday time.Weekday) string {
	window := s[weekday]
	if !window.Open {
		return fmt.Sprintf("%s: closed", weekday)
	}
	return fmt.Sprintf("%s: %s - %s",
		weekday,
		types.NewTimeLabelFromHours(window.Start),
		types.NewTimeLabelFromHours(window.End),
	)
}
