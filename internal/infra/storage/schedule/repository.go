package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/pkg/dbmetrics"
	"github.com/sharpcut/SC-AppointmentService/pkg/psqlbuilder"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var businessHoursColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

var blockedDateColumns = []string{
	"id",
	"start_date",
	"end_date",
	"reason",
	"created_at",
}

// Repository репозиторий расписания: рабочие часы и блокировки дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает всю недельную сетку рабочих часов
func (r *Repository) GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error) {
	return r.selectBusinessHours(ctx, nil)
}

// GetBusinessHoursByDay получает все смены для дня недели (0 = воскресенье)
// Для одного дня недели допускается несколько записей-смен
func (r *Repository) GetBusinessHoursByDay(ctx context.Context, dayOfWeek int) ([]domain.BusinessHours, error) {
	return r.selectBusinessHours(ctx, squirrel.Eq{"day_of_week": dayOfWeek})
}

func (r *Repository) selectBusinessHours(ctx context.Context, where interface{}) ([]domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(businessHoursColumns...).
		From("business_hours").
		OrderBy("day_of_week ASC, start_time ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.BusinessHours, 0)
	for rows.Next() {
		var h domain.BusinessHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.DayOfWeek,
			&h.StartTime,
			&h.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: selectBusinessHours - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceBusinessHours заменяет всю недельную сетку рабочих часов
// Выполняется как DELETE + INSERT, поэтому должна вызываться в транзакции
func (r *Repository) ReplaceBusinessHours(ctx context.Context, hours []domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("day_of_week", "start_time", "end_time")

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(h.DayOfWeek, h.StartTime, h.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBlockedDates получает диапазоны блокировки, заканчивающиеся не раньше from
func (r *Repository) GetBlockedDates(ctx context.Context, from time.Time) ([]domain.BlockedDate, error) {
	return r.selectBlockedDates(ctx, squirrel.GtOrEq{"end_date": domain.DateOnly(from)})
}

// GetBlockedDatesCovering получает диапазоны, накрывающие указанный день
// День заблокирован, если start_date <= day <= end_date (границы включительные)
func (r *Repository) GetBlockedDatesCovering(ctx context.Context, day time.Time) ([]domain.BlockedDate, error) {
	d := domain.DateOnly(day)
	return r.selectBlockedDates(ctx, squirrel.And{
		squirrel.LtOrEq{"start_date": d},
		squirrel.GtOrEq{"end_date": d},
	})
}

func (r *Repository) selectBlockedDates(ctx context.Context, where interface{}) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From("blocked_dates").
		Where(where).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: selectBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var b domain.BlockedDate
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.StartDate,
			&b.EndDate,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: selectBlockedDates - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocked = append(blocked, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// CreateBlockedDate создает новый диапазон блокировки
func (r *Repository) CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("start_date", "end_date", "reason").
		Values(domain.DateOnly(blocked.StartDate), domain.DateOnly(blocked.EndDate), blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// DeleteBlockedDate удаляет диапазон блокировки
func (r *Repository) DeleteBlockedDate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
