package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с локальной копией тенантов
// Копия наполняется событиями TenantService через Kafka
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет тенанта. Повторная доставка события не считается
// ошибкой: запись с существующим id молча пропускается
func (r *Repository) Create(ctx context.Context, t *domain.Tenant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenants").
		Columns(
			"id",
			"business_name",
			"email",
			"phone",
			"address",
			"timezone",
			"buffer_before_minutes",
			"buffer_after_minutes",
		).
		Values(
			t.ID,
			t.BusinessName,
			t.Email,
			t.Phone,
			t.Address,
			t.TimeZone,
			t.BufferBeforeMinutes,
			t.BufferAfterMinutes,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает тенанта по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_name",
		"email",
		"phone",
		"address",
		"timezone",
		"buffer_before_minutes",
		"buffer_after_minutes",
		"created_at",
		"updated_at",
	).
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tenant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.BusinessName,
		&t.Email,
		&t.Phone,
		&t.Address,
		&t.TimeZone,
		&t.BufferBeforeMinutes,
		&t.BufferAfterMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tenant: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// UpdateProfile обновляет профильные поля тенанта из внешнего события
// Настройки буферов и таймзона остаются локальными и событием не перетираются
func (r *Repository) UpdateProfile(ctx context.Context, t *domain.Tenant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("business_name", t.BusinessName).
		Set("email", t.Email).
		Set("phone", t.Phone).
		Set("address", t.Address).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// UpdateBufferSettings обновляет буферные интервалы тенанта
func (r *Repository) UpdateBufferSettings(ctx context.Context, id uuid.UUID, bufferBefore, bufferAfter int) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("buffer_before_minutes", bufferBefore).
		Set("buffer_after_minutes", bufferAfter).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBufferSettings - build update query: %v", ErrBuildQuery, err)
	}

	var updatedID uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBufferSettings - execute update: %v", ErrExecQuery, err)
	}

	return r.GetByID(ctx, id)
}
