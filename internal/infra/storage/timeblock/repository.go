package timeblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок времени
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку времени
func (r *Repository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.insertBuilder().
		Values(
			block.ID,
			block.TenantID,
			block.StartDateTime,
			block.EndDateTime,
			block.Type,
			block.Reason,
			block.RecurrenceID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// CreateBatch создает набор блокировок одним запросом
// Используется при материализации серии повторений
func (r *Repository) CreateBatch(ctx context.Context, blocks []*domain.TimeBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.insertBuilder()
	for _, block := range blocks {
		builder = builder.Values(
			block.ID,
			block.TenantID,
			block.StartDateTime,
			block.EndDateTime,
			block.Type,
			block.Reason,
			block.RecurrenceID,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает блокировку времени по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := r.scanTimeBlock(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTimeBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan time block: %v", ErrScanRow, err)
	}

	return block, nil
}

// GetByTenant получает блокировки тенанта с пагинацией, отсортированные по началу
// Опциональный фильтр по периоду включает только блокировки, целиком лежащие в нём
func (r *Repository) GetByTenant(ctx context.Context, tenantID uuid.UUID, period *domain.DateRange, limit, offset int) ([]*domain.TimeBlock, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	filter := squirrel.And{squirrel.Eq{"tenant_id": tenantID}}
	if period != nil {
		filter = append(filter,
			squirrel.GtOrEq{"start_datetime": period.Start},
			squirrel.LtOrEq{"end_datetime": period.End},
		)
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("time_blocks").
		Where(filter).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetByTenant - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: GetByTenant - scan count: %v", ErrScanRow, err)
	}

	query, args, err := r.selectBuilder().
		Where(filter).
		OrderBy("start_datetime ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks, err := r.scanTimeBlocks(rows)
	if err != nil {
		return nil, 0, err
	}

	return blocks, total, nil
}

// GetByTenantAndDateRange получает блокировки тенанта, пересекающиеся с периодом
// Используется расчетом доступности, поэтому предикат - пересечение, а не вложенность
func (r *Repository) GetByTenantAndDateRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.And{
			squirrel.Eq{"tenant_id": tenantID},
			squirrel.Lt{"start_datetime": end},
			squirrel.Gt{"end_datetime": start},
		}).
		OrderBy("start_datetime ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTimeBlocks(rows)
}

// GetByRecurrenceID получает все блокировки серии повторений
func (r *Repository) GetByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"tenant_id": tenantID, "recurrence_id": recurrenceID}).
		OrderBy("start_datetime ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecurrenceID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecurrenceID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTimeBlocks(rows)
}

// Update полностью перезаписывает изменяемые поля блокировки
func (r *Repository) Update(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_blocks").
		Set("start_datetime", block.StartDateTime).
		Set("end_datetime", block.EndDateTime).
		Set("block_type", block.Type).
		Set("reason", block.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": block.ID, "tenant_id": block.TenantID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTimeBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// Delete удаляет блокировку времени
func (r *Repository) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
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
		return ErrTimeBlockNotFound
	}

	return nil
}

// DeleteByRecurrenceID удаляет все блокировки серии повторений, возвращает число удаленных
func (r *Repository) DeleteByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"tenant_id": tenantID, "recurrence_id": recurrenceID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRecurrenceID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRecurrenceID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRecurrenceID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteByDateRange удаляет блокировки тенанта, начинающиеся в заданном периоде,
// возвращает число удаленных
func (r *Repository) DeleteByDateRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.And{
			squirrel.Eq{"tenant_id": tenantID},
			squirrel.GtOrEq{"start_datetime": start},
			squirrel.LtOrEq{"start_datetime": end},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) insertBuilder() squirrel.InsertBuilder {
	return psqlbuilder.Insert("time_blocks").
		Columns(
			"id",
			"tenant_id",
			"start_datetime",
			"end_datetime",
			"block_type",
			"reason",
			"recurrence_id",
		)
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"tenant_id",
		"start_datetime",
		"end_datetime",
		"block_type",
		"reason",
		"recurrence_id",
		"created_at",
		"updated_at",
	).From("time_blocks")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanTimeBlock(row rowScanner) (*domain.TimeBlock, error) {
	var block domain.TimeBlock
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.TenantID,
		&block.StartDateTime,
		&block.EndDateTime,
		&block.Type,
		&block.Reason,
		&block.RecurrenceID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return &block, nil
}

func (r *Repository) scanTimeBlocks(rows *sql.Rows) ([]*domain.TimeBlock, error) {
	result := make([]*domain.TimeBlock, 0)

	for rows.Next() {
		block, err := r.scanTimeBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimeBlocks - scan row: %v", ErrScanRow, err)
		}
		result = append(result, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTimeBlocks - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
