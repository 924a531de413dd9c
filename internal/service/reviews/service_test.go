package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
	nextID  int64
	err     error
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	created := *review
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.reviews = append(r.reviews, &created)
	return &created, nil
}

func (r *fakeReviewRepo) List(_ context.Context, limit int) ([]*domain.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	if limit > len(r.reviews) {
		limit = len(r.reviews)
	}
	return r.reviews[:limit], nil
}

func (r *fakeReviewRepo) Stats(_ context.Context) (int, float64, error) {
	if r.err != nil {
		return 0, 0, r.err
	}
	if len(r.reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, rev := range r.reviews {
		sum += rev.Rating
	}
	return len(r.reviews), float64(sum) / float64(len(r.reviews)), nil
}

type fakeBookingRepo struct {
	count int
	err   error
}

func (r *fakeBookingRepo) CountActive(_ context.Context) (int, error) {
	return r.count, r.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		Name:   "  Jane  ",
		Rating: 5,
		Text:   "Great service!",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Jane", resp.Name)
	assert.Equal(t, 5, resp.Rating)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateReviewRequest
	}{
		{"empty name", models.CreateReviewRequest{Rating: 5, Text: "ok"}},
		{"rating too low", models.CreateReviewRequest{Name: "Jane", Rating: 0, Text: "ok"}},
		{"rating too high", models.CreateReviewRequest{Name: "Jane", Rating: 6, Text: "ok"}},
		{"empty text", models.CreateReviewRequest{Name: "Jane", Rating: 5}},
		{"text too long", models.CreateReviewRequest{Name: "Jane", Rating: 5, Text: strings.Repeat("a", domain.MaxReviewTextLen+1)}},
		{"name too long", models.CreateReviewRequest{Name: strings.Repeat("a", domain.MaxReviewNameLen+1), Rating: 5, Text: "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_DefaultLimit(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	for i := 0; i < 10; i++ {
		_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
			Name:   "Jane",
			Rating: 4,
			Text:   "ok",
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, resp.Reviews, domain.DefaultReviewsCap)
}

func TestStats(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: 1, Rating: 5},
		{ID: 2, Rating: 4},
		{ID: 3, Rating: 4},
	}}
	svc := NewService(repo, &fakeBookingRepo{count: 17}, nopLogger{})

	resp, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 17, resp.TotalBookings)
	assert.Equal(t, 3, resp.ReviewsCount)
	assert.InDelta(t, 4.3, resp.AverageRating, 0.001)
}

func TestStats_Empty(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.ReviewsCount)
	assert.Zero(t, resp.AverageRating)
}

func TestStats_RepoError(t *testing.T) {
	svc := NewService(&fakeReviewRepo{err: assert.AnError}, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
