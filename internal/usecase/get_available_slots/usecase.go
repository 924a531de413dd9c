package get_available_slots

import (
	"context"
	"fmt"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/ptr"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

// UseCase use case получения сетки слотов на дату с признаками доступности
type UseCase struct {
	bookingRepo BookingRepository
	schedule    domain.WeekSchedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    domain.DefaultWeekSchedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Занятость считается через domain.BlockedSlots - той же функцией, которой
// admission перепроверяет кандидата перед вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, bins=%d", req.Date.Format(domain.DateFormat), req.TotalBins)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.TotalBins < 0 {
		return nil, fmt.Errorf("%w: totalBins must not be negative", ErrInvalidInput)
	}

	grid := uc.schedule.GridForDate(req.Date)

	// Закрытый день: пустая сетка, не ошибка
	if len(grid) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:                req.Date,
			SlotDurationMinutes: domain.SlotMinutes,
			Slots:               []Slot{},
		}, nil
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Date: ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked := domain.BlockedSlots(grid, bookings)

	required := 0
	if req.TotalBins > 0 {
		required = domain.SlotsForBins(req.TotalBins)
	}

	slots := make([]Slot, len(grid))
	for i, label := range grid {
		_, taken := blocked[label]

		slots[i] = Slot{
			StartTime: label,
			Index:     i,
			Available: !taken,
			Bookable:  !taken,
		}

		// С указанным числом баков слот годится как начало работы, только
		// если вся последовательность нужной длины свободна и не выходит
		// за конец дня
		if required > 0 {
			slots[i].Bookable = canStartAt(grid, blocked, i, required)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s, %d blocked",
		len(slots), req.Date.Format(domain.DateFormat), len(blocked))

	return &Response{
		Date:                req.Date,
		SlotDurationMinutes: domain.SlotMinutes,
		RequiredSlots:       required,
		Slots:               slots,
	}, nil
}

// canStartAt проверяет, что required последовательных слотов начиная со start
// умещаются в сетке и все свободны
func canStartAt(grid []types.TimeLabel, blocked map[types.TimeLabel]struct{}, start, required int) bool {
	if start+required > len(grid) {
		return false
	}
	for i := 0; i < required; i++ {
		if _, taken := blocked[grid[start+i]]; taken {
			return false
		}
	}
	return true
}
