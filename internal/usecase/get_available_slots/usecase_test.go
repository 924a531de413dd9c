package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday 2025-10-13: сетка 3:30 PM - 7:30 PM, 8 слотов
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func TestExecute_FullGrid(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, domain.SlotMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, 0, resp.RequiredSlots)
	for i, slot := range resp.Slots {
		assert.Equal(t, i, slot.Index)
		assert.True(t, slot.Available)
		assert.True(t, slot.Bookable)
	}
}

func TestExecute_BlockedByExistingBooking(t *testing.T) {
	// 4 бака с 3:30 PM занимают 3:30 PM и 4:00 PM
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ServiceKey:    domain.PlanOneTime,
		Date:          monday,
		StartTime:     "3:30 PM",
		TotalBins:     4,
		DurationSlots: 2,
		Status:        domain.StatusConfirmed,
	}}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	byLabel := make(map[types.TimeLabel]Slot)
	for _, s := range resp.Slots {
		byLabel[s.StartTime] = s
	}

	assert.False(t, byLabel["3:30 PM"].Available)
	assert.False(t, byLabel["4:00 PM"].Available)
	assert.True(t, byLabel["4:30 PM"].Available)
}

func TestExecute_BookableWithBins(t *testing.T) {
	// Занят слот 4:30 PM
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ServiceKey:    domain.PlanOneTime,
		Date:          monday,
		StartTime:     "4:30 PM",
		TotalBins:     2,
		DurationSlots: 1,
		Status:        domain.StatusConfirmed,
	}}}
	uc := NewUseCase(repo, nopLogger{})

	// 4 бака = 2 последовательных слота
	resp, err := uc.Execute(context.Background(), &Request{Date: monday, TotalBins: 4})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.RequiredSlots)

	byLabel := make(map[types.TimeLabel]Slot)
	for _, s := range resp.Slots {
		byLabel[s.StartTime] = s
	}

	// 4:00 PM свободен, но следующий слот занят - стартовать с него нельзя
	assert.True(t, byLabel["4:00 PM"].Available)
	assert.False(t, byLabel["4:00 PM"].Bookable)
	// С 5:00 PM два слота свободны
	assert.True(t, byLabel["5:00 PM"].Bookable)
	// Последний слот дня не вмещает двухслотовую работу
	assert.True(t, byLabel["7:00 PM"].Available)
	assert.False(t, byLabel["7:00 PM"].Bookable)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})
	uc.schedule = domain.WeekSchedule{}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, TotalBins: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoError(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: assert.AnError}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}
