package get_reviews

import (
	"context"

	"github.com/Daniil2209/Cleandins/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context, limit int) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
