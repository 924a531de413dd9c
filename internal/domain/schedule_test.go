package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniil2209/Cleandins/pkg/types"
)

func TestGrid_Monday(t *testing.T) {
	grid := DefaultWeekSchedule.Grid(time.Monday)

	// Понедельник: 15.5 - 19.5 => 2 * 4 = 8 слотов
	require.Len(t, grid, 8)
	assert.Equal(t, types.TimeLabel("3:30 PM"), grid[0])
	assert.Equal(t, types.TimeLabel("4:00 PM"), grid[1])
	assert.Equal(t, types.TimeLabel("7:00 PM"), grid[7])
}

func TestGrid_Sunday(t *testing.T) {
	grid := DefaultWeekSchedule.Grid(time.Sunday)

	// Воскресенье: 12 - 19 => 14 слотов
	require.Len(t, grid, 14)
	assert.Equal(t, types.TimeLabel("12:00 PM"), grid[0])
	assert.Equal(t, types.TimeLabel("6:30 PM"), grid[13])
}

func TestGrid_LengthMatchesWindow(t *testing.T) {
	// Для каждого открытого дня длина сетки равна 2 * (end - start)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window := DefaultWeekSchedule[wd]
		if !window.Open {
			continue
		}
		grid := DefaultWeekSchedule.Grid(wd)
		assert.Len(t, grid, int(2*(window.End-window.Start)), "weekday %s", wd)
	}
}

func TestGrid_ClosedDay(t *testing.T) {
	var schedule WeekSchedule
	schedule[time.Monday] = DayWindow{Open: true, Start: 10, End: 12}

	// Все дни без рабочего окна дают пустую сетку
	assert.Empty(t, schedule.Grid(time.Sunday))
	assert.Empty(t, schedule.Grid(time.Tuesday))
	assert.Len(t, schedule.Grid(time.Monday), 4)
}

func TestGrid_TruncatesPartialSlot(t *testing.T) {
	var schedule WeekSchedule
	schedule[time.Friday] = DayWindow{Open: true, Start: 15.5, End: 16.75}

	grid := schedule.Grid(time.Friday)

	// Конец окна не кратен получасу: неполный хвостовой слот отбрасывается
	require.Len(t, grid, 3)
	assert.Equal(t, types.TimeLabel("4:30 PM"), grid[2])
}

func TestGridForDate_UsesWeekday(t *testing.T) {
	// 2025-10-13 - понедельник
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, DefaultWeekSchedule.Grid(time.Monday), DefaultWeekSchedule.GridForDate(date))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Monday: 3:30 PM - 7:30 PM", DefaultWeekSchedule.Label(time.Monday))
	assert.Equal(t, "Sunday: 12:00 PM - 7:00 PM", DefaultWeekSchedule.Label(time.Sunday))

	var closed WeekSchedule
	assert.Equal(t, "Monday: closed", closed.Label(time.Monday))
}
