package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	"github.com/dkomnin/APEC-BookingService/pkg/dbmetrics"
	"github.com/dkomnin/APEC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// При допуске бронирования вызывается только внутри serializable-транзакции:
// проверка лимита и пересечений должна видеть тот же снимок, что и вставка.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"room_code",
			"tier",
			"company",
			"email",
			"start_hour",
			"end_hour",
			"blocks",
		).
		Values(
			booking.Date,
			booking.RoomCode,
			booking.Tier,
			booking.Company,
			booking.Email,
			booking.StartHour,
			booking.EndHour,
			booking.Blocks,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var date time.Time
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&date,
		&booking.RoomCode,
		&booking.Tier,
		&booking.Company,
		&booking.Email,
		&booking.StartHour,
		&booking.EndHour,
		&booking.Blocks,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.Date = date.Format(domain.DateFormat)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// ListByFilter получает бронирования по фильтру
// Дата обязательна, комната и компания - опциональные сужения.
// Сортировка стабильная: по комнате, затем по часу начала.
func (r *Repository) ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"date": filter.Date}).
		OrderBy("room_code ASC, start_hour ASC")

	// Фильтрация по комнате, если указана
	if filter.RoomCode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_code": *filter.RoomCode})
	}

	// Фильтрация по компании, если указана
	if filter.Company != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"company": *filter.Company})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListForDigest получает все бронирования даты в порядке рассылки:
// группами по email, внутри группы по часу начала
func (r *Repository) ListForDigest(ctx context.Context, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"date": date}).
		OrderBy("email ASC, start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDigest - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDigest - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SumBlocksByCompany считает суммарное число занятых блоков компании за дату
// Используется при проверке дневного лимита внутри serializable-транзакции
func (r *Repository) SumBlocksByCompany(ctx context.Context, date, company string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(blocks), 0)").
		From("bookings").
		Where(squirrel.Eq{"date": date, "company": company}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumBlocksByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumBlocksByCompany - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// CountByCompany считает бронирования компании по всем датам
// Используется при удалении компании из реестра
func (r *Repository) CountByCompany(ctx context.Context, company string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"company": company}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCompany - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var date time.Time
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&date,
			&booking.RoomCode,
			&booking.Tier,
			&booking.Company,
			&booking.Email,
			&booking.StartHour,
			&booking.EndHour,
			&booking.Blocks,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.Date = date.Format(domain.DateFormat)
		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func bookingColumns() []string {
	return []string{
		"id",
		"date",
		"room_code",
		"tier",
		"company",
		"email",
		"start_hour",
		"end_hour",
		"blocks",
		"created_at",
	}
}
