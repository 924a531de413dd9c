package get_stats

import (
	"context"

	"github.com/Daniil2209/Cleandins/internal/service/reviews/models"
)

type StatsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
