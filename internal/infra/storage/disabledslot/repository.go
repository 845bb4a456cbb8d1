package disabledslot

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

// Repository репозиторий для работы с административными блокировками слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку слота
func (r *Repository) Create(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("disabled_slots").
		Columns(
			"date",
			"room_code",
			"start_hour",
			"end_hour",
			"note",
		).
		Values(
			slot.Date,
			slot.RoomCode,
			slot.StartHour,
			slot.EndHour,
			slot.Note,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DisabledSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns()...).
		From("disabled_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.DisabledSlot
	var date time.Time
	var note sql.NullString
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&date,
		&slot.RoomCode,
		&slot.StartHour,
		&slot.EndHour,
		&note,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.Date = date.Format(domain.DateFormat)
	if note.Valid {
		slot.Note = &note.String
	}
	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// ListByDate получает блокировки на дату, опционально сужая по комнате
// Сортировка стабильная: по комнате, затем по часу начала
func (r *Repository) ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns()...).
		From("disabled_slots").
		Where(squirrel.Eq{"date": date}).
		OrderBy("room_code ASC, start_hour ASC")

	if roomCode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_code": *roomCode})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.DisabledSlot, 0)
	for rows.Next() {
		var slot domain.DisabledSlot
		var slotDate time.Time
		var note sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slotDate,
			&slot.RoomCode,
			&slot.StartHour,
			&slot.EndHour,
			&note,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}

		slot.Date = slotDate.Format(domain.DateFormat)
		if note.Valid {
			noteValue := note.String
			slot.Note = &noteValue
		}
		slot.CreatedAt = createdAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Delete удаляет блокировку слота
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("disabled_slots").
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
		return ErrSlotNotFound
	}

	return nil
}

func slotColumns() []string {
	return []string{
		"id",
		"date",
		"room_code",
		"start_hour",
		"end_hour",
		"note",
		"created_at",
	}
}
