package reviews

import (
	"context"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	List(ctx context.Context, limit int) ([]*domain.Review, error)
	Stats(ctx context.Context) (count int, averageRating float64, err error)
}

// BookingRepository интерфейс репозитория бронирований (для статистики)
type BookingRepository interface {
	CountActive(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
