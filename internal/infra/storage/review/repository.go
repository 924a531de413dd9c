package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/psqlbuilder"
	"github.com/Daniil2209/Cleandins/pkg/txmanager"
)

// Repository репозиторий для работы с отзывами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("name", "rating", "text").
		Values(review.Name, review.Rating, review.Text).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// List возвращает отзывы, сначала новые
// limit <= 0 означает без ограничения
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "rating", "text", "created_at").
		From("reviews").
		OrderBy("created_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime

		if err := rows.Scan(&review.ID, &review.Name, &review.Rating, &review.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// Stats возвращает количество отзывов и средний рейтинг
// При отсутствии отзывов средний рейтинг равен 0
func (r *Repository) Stats(ctx context.Context) (count int, averageRating float64, err error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)", "COALESCE(AVG(rating), 0)").
		From("reviews").
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count, &averageRating); err != nil {
		return 0, 0, fmt.Errorf("%w: Stats - scan stats: %v", ErrScanRow, err)
	}

	return count, averageRating, nil
}
