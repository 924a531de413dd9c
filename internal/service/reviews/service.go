package reviews

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/internal/service/reviews/models"
)

// Service сервис для работы с отзывами и статистикой
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает новый отзыв
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review from name=%s, rating=%d", req.Name, req.Rating)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid review request: %v", err)
		return nil, err
	}

	review := &domain.Review{
		Name:   strings.TrimSpace(req.Name),
		Rating: req.Rating,
		Text:   strings.TrimSpace(req.Text),
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d", created.ID)
	return models.FromDomainReview(created), nil
}

// List возвращает последние отзывы (не более limit, по умолчанию 6)
func (s *Service) List(ctx context.Context, limit int) (*models.ReviewListResponse, error) {
	if limit <= 0 {
		limit = domain.DefaultReviewsCap
	}

	s.logger.Info("List: fetching up to %d reviews", limit)

	reviews, err := s.reviewRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reviews", len(reviews))
	return models.FromDomainReviewList(reviews), nil
}

// Stats возвращает статистику: активные бронирования, число отзывов,
// средний рейтинг (округлён до одного знака)
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: collecting service statistics")

	totalBookings, err := s.bookingRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: Stats - failed to count bookings: %v", ErrInternal, err)
	}

	count, avg, err := s.reviewRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to get review stats: %v", err)
		return nil, fmt.Errorf("%w: Stats - failed to get review stats: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		TotalBookings: totalBookings,
		ReviewsCount:  count,
		AverageRating: math.Round(avg*10) / 10,
	}, nil
}

func validateCreateRequest(req *models.CreateReviewRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxReviewNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxReviewNameLen)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > domain.MaxReviewTextLen {
		return fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, domain.MaxReviewTextLen)
	}
	return nil
}
