package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

// fakeBookingRepo репозиторий в памяти для тестов
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	getErr    error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	booking.CreatedAt = time.Now()
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.Date != nil && !sameDay(b.Date, *filter.Date) {
			continue
		}
		if filter.ServiceKey != nil && b.ServiceKey != *filter.ServiceKey {
			continue
		}
		if filter.CustomerPhone != nil && b.CustomerPhone != *filter.CustomerPhone {
			continue
		}
		if filter.Month != nil && !domain.SameMonth(b.Date, *filter.Month) {
			continue
		}
		if !filter.IncludeCancelled && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nil, nopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

// monday 2025-10-13: сетка 3:30 PM - 7:30 PM, 8 слотов
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		ServiceKey:      "one-time",
		Date:            monday,
		StartTime:       "4:30 PM",
		TotalBins:       2,
		CustomerName:    "Ivan",
		CustomerPhone:   "555-0100",
		CustomerAddress: "12 Main St",
		WashingLocation: "driveway",
	}
}

func existingBooking(date time.Time, start types.TimeLabel, bins int, key domain.PlanKey, phone string) *domain.Booking {
	return &domain.Booking{
		ID:            date.UnixMilli(),
		ServiceKey:    key,
		Date:          date,
		StartTime:     start,
		TotalBins:     bins,
		DurationSlots: domain.SlotsForBins(bins),
		Status:        domain.StatusConfirmed,
		CustomerPhone: phone,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, resp.DurationSlots)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 55.0, resp.Price)
	assert.Equal(t, uc.timeProvider.Now().UnixMilli(), resp.ID)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_PriceWithExtraBins(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.TotalBins = 5

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// 55 + 3 * 15 = 100, длительность 3 слота
	assert.Equal(t, 100.0, resp.Price)
	assert.Equal(t, 3, resp.DurationSlots)
}

func TestExecute_OverlapRejected(t *testing.T) {
	// Занято 3:30 PM на 2 слота (4 бака) => 3:30 PM и 4:00 PM заблокированы
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		existingBooking(monday, "3:30 PM", 4, domain.PlanOneTime, "555-0999"),
	}}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StartTime = "4:00 PM"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Следующий свободный слот проходит
	req.StartTime = "4:30 PM"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := existingBooking(monday, "4:00 PM", 2, domain.PlanOneTime, "555-0999")
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StartTime = "4:00 PM"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_NotEnoughTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// 7 баков = 4 слота, а от 7:00 PM до конца дня остался один
	req := validRequest()
	req.StartTime = "7:00 PM"
	req.TotalBins = 7

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotEnoughTime)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// Метка вне сетки понедельника: выбор устарел после смены рабочих часов.
	// Кандидат отклоняется, а не принимается молча
	req := validRequest()
	req.StartTime = "9:00 AM"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})
	// Расписание без единого рабочего дня
	uc.schedule = domain.WeekSchedule{}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_QuotaExceeded(t *testing.T) {
	// 4 активных бронирования подписки в октябре у телефона 555-0100
	repo := &fakeBookingRepo{}
	for day := 6; day <= 9; day++ {
		date := time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
		repo.bookings = append(repo.bookings,
			existingBooking(date, "4:00 PM", 2, domain.PlanMonthly, "555-0100"))
	}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.ServiceKey = "monthly"

	// Пятая попытка в том же месяце отклоняется
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Та же попытка в другом месяце проходит (2025-11-10 - понедельник)
	req.Date = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_QuotaIgnoresCancelledAndOtherCustomers(t *testing.T) {
	repo := &fakeBookingRepo{}

	cancelled := existingBooking(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "4:00 PM", 2, domain.PlanMonthly, "555-0100")
	cancelled.Status = domain.StatusCancelled
	repo.bookings = append(repo.bookings, cancelled)

	for day := 7; day <= 9; day++ {
		date := time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
		repo.bookings = append(repo.bookings,
			existingBooking(date, "4:00 PM", 2, domain.PlanMonthly, "555-0100"))
	}
	// Чужие бронирования не входят в квоту
	repo.bookings = append(repo.bookings,
		existingBooking(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "5:00 PM", 2, domain.PlanMonthly, "555-0999"))

	uc := newTestUseCase(repo)

	req := validRequest()
	req.ServiceKey = "monthly"

	// Использовано 3 из 4 - четвертое бронирование проходит
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"no service", func(r *Request) { r.ServiceKey = "" }, ErrMissingSelection},
		{"unknown service", func(r *Request) { r.ServiceKey = "weekly" }, ErrUnknownService},
		{"no date", func(r *Request) { r.Date = time.Time{} }, ErrMissingSelection},
		{"no time", func(r *Request) { r.StartTime = "" }, ErrMissingSelection},
		{"bad time format", func(r *Request) { r.StartTime = "16:00" }, ErrInvalidInput},
		{"zero bins", func(r *Request) { r.TotalBins = 0 }, ErrInvalidInput},
		{"no name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"no phone", func(r *Request) { r.CustomerPhone = "" }, ErrInvalidInput},
		{"no address", func(r *Request) { r.CustomerAddress = "" }, ErrInvalidInput},
		{"no location", func(r *Request) { r.WashingLocation = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_StorageFailureIsInternal(t *testing.T) {
	repo := &fakeBookingRepo{getErr: assert.AnError}
	uc := newTestUseCase(repo)

	// Недоступность хранилища - не отклоненный кандидат, а внутренняя ошибка
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
