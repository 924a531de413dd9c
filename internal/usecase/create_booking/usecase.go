package create_booking

import (
	"context"
	"fmt"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/ptr"
)

// UseCase use case создания бронирования (admission)
// Проверяет кандидата по цепочке жестких предусловий и при успехе строит
// неизменяемую запись бронирования. Первая неудавшаяся проверка
// останавливает цепочку
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     BookingNotifier
	schedule     domain.WeekSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, если уведомления отключены
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier BookingNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		schedule:     domain.DefaultWeekSchedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Чтение занятых слотов и вставка выполняются в сериализуемой транзакции,
// чтобы между показом доступности и подтверждением никто не занял слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s, bins=%d, phone=%s",
		req.ServiceKey, req.Date.Format(domain.DateFormat), req.StartTime, req.TotalBins, req.CustomerPhone)

	// 1. Валидация входных данных и выбор тарифа
	plan, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Сетка слотов на день недели кандидата
	grid := uc.schedule.GridForDate(req.Date)
	if len(grid) == 0 {
		uc.logger.Warn("CreateBooking: no working hours on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	// 3. Выбранное время должно присутствовать в перегенерированной сетке
	// (защита от устаревшего выбора после смены рабочих часов)
	startIndex := domain.SlotIndex(grid, req.StartTime)
	if startIndex == -1 {
		uc.logger.Warn("CreateBooking: slot %s is not in the grid for %s", req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidSlot
	}

	// 4. Нужные последовательные слоты не должны выходить за конец дня
	duration := domain.SlotsForBins(req.TotalBins)
	if startIndex+duration > len(grid) {
		uc.logger.Warn("CreateBooking: %d slots from %s run past the end of the day", duration, req.StartTime)
		return nil, ErrNotEnoughTime
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 5-7. Проверки по текущему состоянию и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Пересечение с существующими бронированиями на эту дату
		// Та же логика, что и при отображении доступности (domain.BlockedSlots):
		// повторная проверка закрывает гонку между показом и отправкой формы
		dateBookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			Date: ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocked := domain.BlockedSlots(grid, dateBookings)
		for i := 0; i < duration; i++ {
			if _, taken := blocked[grid[startIndex+i]]; taken {
				uc.logger.Warn("CreateBooking: slot %s already occupied", grid[startIndex+i])
				return ErrSlotNotAvailable
			}
		}

		// 6. Для подписки - месячная квота клиента
		if plan.IsSubscription() {
			monthBookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
				ServiceKey:    ptr.Ptr(plan.Key),
				CustomerPhone: ptr.Ptr(req.CustomerPhone),
				Month:         ptr.Ptr(req.Date),
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get month bookings: %v", err)
				return fmt.Errorf("%w: failed to get month bookings: %v", ErrInternal, err)
			}

			used := countQuotaUsage(monthBookings, req.CustomerPhone)
			if plan.RemainingQuota(used) <= 0 {
				uc.logger.Warn("CreateBooking: quota exceeded, %d/%d cleanings used, phone=%s",
					used, plan.CleaningsPerMonth, req.CustomerPhone)
				return fmt.Errorf("%w: all %d cleanings for this month are used", ErrQuotaExceeded, plan.CleaningsPerMonth)
			}
		}

		// 7. Строим запись бронирования
		// ID - производная от времени создания, как у исходного виджета
		booking := &domain.Booking{
			ID:              now.UnixMilli(),
			ServiceKey:      plan.Key,
			ServiceName:     plan.Name,
			Date:            req.Date,
			StartTime:       req.StartTime,
			TotalBins:       req.TotalBins,
			DurationSlots:   duration,
			Price:           plan.Price(req.TotalBins),
			Status:          domain.StatusConfirmed,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			WashingLocation: req.WashingLocation,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f, duration=%d slots",
		result.ID, result.Price, result.DurationSlots)

	// Уведомление не влияет на результат бронирования, ошибки только логируем
	if uc.notifier != nil {
		booking := result
		go func() {
			if err := uc.notifier.SendBookingCreated(booking); err != nil {
				uc.logger.Error("CreateBooking: failed to notify about booking id=%d: %v", booking.ID, err)
			}
		}()
	}

	return &Response{
		ID:              result.ID,
		ServiceKey:      string(result.ServiceKey),
		ServiceName:     result.ServiceName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		TotalBins:       result.TotalBins,
		DurationSlots:   result.DurationSlots,
		DurationMinutes: result.DurationMinutes(),
		Price:           result.Price,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerAddress: result.CustomerAddress,
		WashingLocation: result.WashingLocation,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
