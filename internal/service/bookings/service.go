package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Daniil2209/Cleandins/internal/domain"
	bookingRepo "github.com/Daniil2209/Cleandins/internal/infra/storage/booking"
	"github.com/Daniil2209/Cleandins/internal/service/bookings/models"
	"github.com/Daniil2209/Cleandins/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента по телефону
// Отменённые бронирования включаются только по явному запросу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		s.logger.Warn("GetCustomerBookings: empty customer phone")
		return nil, fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	s.logger.Info("GetCustomerBookings: fetching bookings for phone=%s, includeCancelled=%t",
		phone, req.IncludeCancelled)

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		CustomerPhone:    ptr.Ptr(phone),
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить можно только активное бронирование
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
