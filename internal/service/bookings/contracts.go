package bookings

import (
	"context"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
