package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с рабочими часами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись рабочих часов
// Нарушение уникальности (tenant, day) возвращается как ErrDuplicateDay
func (r *Repository) Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"id",
			"tenant_id",
			"day_of_week",
			"start_time",
			"end_time",
			"max_concurrent_bookings",
		).
		Values(
			wh.ID,
			wh.TenantID,
			int(wh.Day),
			wh.StartTime,
			wh.EndTime,
			wh.MaxConcurrentBookings,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateDay
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return wh, nil
}

// GetByTenant получает все записи рабочих часов тенанта, отсортированные по дню недели
func (r *Repository) GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWorkingHours(rows)
}

// GetByTenantAndDay получает запись рабочих часов тенанта на конкретный день недели
// Отсутствие записи - валидное состояние (круглосуточная доступность),
// вызывающий код обязан обработать ErrWorkingHoursNotFound
func (r *Repository) GetByTenantAndDay(ctx context.Context, tenantID uuid.UUID, day time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"tenant_id": tenantID, "day_of_week": int(day)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	var dayOfWeek int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.TenantID,
		&dayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
		&wh.MaxConcurrentBookings,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDay - scan working hours: %v", ErrScanRow, err)
	}

	wh.Day = time.Weekday(dayOfWeek)
	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}

// Delete удаляет запись рабочих часов тенанта
func (r *Repository) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
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
		return ErrWorkingHoursNotFound
	}

	return nil
}

// CreateBatch создает набор записей рабочих часов одним запросом
// Используется заменой недельного расписания
func (r *Repository) CreateBatch(ctx context.Context, hours []*domain.WorkingHours) error {
	if len(hours) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("working_hours").
		Columns(
			"id",
			"tenant_id",
			"day_of_week",
			"start_time",
			"end_time",
			"max_concurrent_bookings",
		)

	for _, wh := range hours {
		builder = builder.Values(
			wh.ID,
			wh.TenantID,
			int(wh.Day),
			wh.StartTime,
			wh.EndTime,
			wh.MaxConcurrentBookings,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrDuplicateDay
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByTenant удаляет все записи рабочих часов тенанта, возвращает число удаленных
func (r *Repository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTenant - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTenant - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTenant - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"tenant_id",
		"day_of_week",
		"start_time",
		"end_time",
		"max_concurrent_bookings",
		"created_at",
		"updated_at",
	).From("working_hours")
}

func (r *Repository) scanWorkingHours(rows *sql.Rows) ([]*domain.WorkingHours, error) {
	result := make([]*domain.WorkingHours, 0)

	for rows.Next() {
		var wh domain.WorkingHours
		var dayOfWeek int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&wh.ID,
			&wh.TenantID,
			&dayOfWeek,
			&wh.StartTime,
			&wh.EndTime,
			&wh.MaxConcurrentBookings,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWorkingHours - scan row: %v", ErrScanRow, err)
		}

		wh.Day = time.Weekday(dayOfWeek)
		wh.CreatedAt = createdAt.Time
		wh.UpdatedAt = updatedAt.Time

		result = append(result, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
