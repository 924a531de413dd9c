package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/psqlbuilder"
	"github.com/Daniil2209/Cleandins/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"service_key",
	"service_name",
	"booking_date",
	"start_time",
	"total_bins",
	"duration_slots",
	"price",
	"status",
	"customer_name",
	"customer_phone",
	"customer_address",
	"washing_location",
	"notes",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// ID генерируется на стороне admission-логики (производная от времени создания),
// БД принимает его как есть.
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_key",
			"service_name",
			"booking_date",
			"start_time",
			"total_bins",
			"duration_slots",
			"price",
			"status",
			"customer_name",
			"customer_phone",
			"customer_address",
			"washing_location",
			"notes",
		).
		Values(
			booking.ID,
			booking.ServiceKey,
			booking.ServiceName,
			booking.Date,
			booking.StartTime,
			booking.TotalBins,
			booking.DurationSlots,
			booking.Price,
			booking.Status,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerAddress,
			booking.WashingLocation,
			booking.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Календарному дню (Date) - для расчета занятых слотов
// - Тарифу и телефону клиента с календарным месяцем (ServiceKey, CustomerPhone,
//   Month) - для подсчета квоты подписки
// - Включению отмененных бронирований (IncludeCancelled)
//
// Примеры использования:
//
//  1. Активные бронирования на дату:
//     filter := domain.BookingsFilter{Date: &date}
//
//  2. Бронирования подписки клиента за месяц:
//     filter := domain.BookingsFilter{ServiceKey: &key, CustomerPhone: &phone, Month: &date}
//
//  3. Вся история клиента, включая отмененные:
//     filter := domain.BookingsFilter{CustomerPhone: &phone, IncludeCancelled: true}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.ServiceKey != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_key": *filter.ServiceKey})
	}

	if filter.CustomerPhone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_phone": *filter.CustomerPhone})
	}

	// Фильтр по календарному месяцу даты бронирования
	if filter.Month != nil {
		selectBuilder = selectBuilder.
			Where("date_trunc('month', booking_date) = date_trunc('month', ?::date)", *filter.Month)
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, id DESC")
	}

	// Внутри транзакции выборка по дате блокирует строки (FOR UPDATE) -
	// admission перечитывает занятые слоты перед вставкой
	if txmanager.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountActive считает неотмененные бронирования (для статистики)
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ServiceKey,
		&booking.ServiceName,
		&booking.Date,
		&booking.StartTime,
		&booking.TotalBins,
		&booking.DurationSlots,
		&booking.Price,
		&booking.Status,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerAddress,
		&booking.WashingLocation,
		&booking.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
