package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
	"github.com/m04kA/SMC-CarpenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarpenterService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAvailable возвращает доступные слоты вместе с именем карпентера
// Порядок - по id слота (порядок хранения)
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slots.id",
		"carpenters.name",
		"slots.start_time",
		"slots.end_time",
	).
		From("slots").
		Join("carpenters ON slots.carpenter_id = carpenters.id").
		Where(squirrel.Eq{"slots.is_available": true}).
		OrderBy("slots.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailableSlot, 0)
	for rows.Next() {
		var s domain.AvailableSlot
		if err := rows.Scan(&s.ID, &s.CarpenterName, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентные
// бронирования одного слота выстраивались в очередь
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"carpenter_id",
		"start_time",
		"end_time",
		"is_available",
	).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CarpenterID,
		&s.StartTime,
		&s.EndTime,
		&s.IsAvailable,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// MarkUnavailable помечает слот занятым
// Условный UPDATE: если слот уже занят, ни одна строка не меняется и
// возвращается ErrSlotNotAvailable - защита от двойного бронирования
func (r *Repository) MarkUnavailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_available", false).
		Where(squirrel.Eq{"id": id, "is_available": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// MarkAvailable возвращает слот в доступное состояние (при отмене бронирования)
func (r *Repository) MarkAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_available", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
