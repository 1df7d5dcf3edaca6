package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindAll(ctx context.Context, category *string) ([]*entity.Service, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error)
	Search(ctx context.Context, name, category *string) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// Category administration.
	DistinctCategories(ctx context.Context) ([]string, error)
	RenameCategory(ctx context.Context, from, to string) (int64, error)
	DeleteByCategory(ctx context.Context, category string) (int64, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, name, description, category, price, duration_minutes,
	availability, working_hours_start, working_hours_end, image_url, provider_id,
	created_at, updated_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var service entity.Service
	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.Price,
		&service.Duration,
		&service.Availability,
		&service.WorkingHoursStart,
		&service.WorkingHoursEnd,
		&service.ImageURL,
		&service.ProviderID,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) scanServices(rows pgx.Rows) ([]*entity.Service, error) {
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, category, price, duration_minutes,
			availability, working_hours_start, working_hours_end, image_url, provider_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Duration,
		service.Availability,
		service.WorkingHoursStart,
		service.WorkingHoursEnd,
		service.ImageURL,
		service.ProviderID,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
			zap.String("provider_id", service.ProviderID.String()),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, category *string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}

	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}

	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	return r.scanServices(rows)
}

func (r *serviceRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE provider_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		r.log.Error("Failed to find services by provider ID",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find services by provider ID %s: %w", providerID.String(), err)
	}

	return r.scanServices(rows)
}

func (r *serviceRepository) Search(ctx context.Context, name, category *string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE 1=1`
	args := []any{}

	if name != nil {
		args = append(args, "%"+*name+"%")
		query += fmt.Sprintf(` AND name ILIKE $%d`, len(args))
	}
	if category != nil {
		args = append(args, "%"+*category+"%")
		query += fmt.Sprintf(` AND category ILIKE $%d`, len(args))
	}

	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search services", zap.Error(err))
		return nil, fmt.Errorf("search services: %w", err)
	}

	return r.scanServices(rows)
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, category = $4, price = $5, duration_minutes = $6,
		    availability = $7, working_hours_start = $8, working_hours_end = $9,
		    image_url = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Duration,
		service.Availability,
		service.WorkingHoursStart,
		service.WorkingHoursEnd,
		service.ImageURL,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
		return fmt.Errorf("update service %s: %w", service.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", service.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return fmt.Errorf("delete service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id.String()))
	return nil
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}

func (r *serviceRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM services ORDER BY category`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *serviceRepository) RenameCategory(ctx context.Context, from, to string) (int64, error) {
	query := `UPDATE services SET category = $2, updated_at = NOW() WHERE category = $1`

	result, err := r.db.Exec(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to rename category",
			zap.Error(err),
			zap.String("from", from),
			zap.String("to", to),
		)
		return 0, fmt.Errorf("rename category %s to %s: %w", from, to, err)
	}

	return result.RowsAffected(), nil
}

func (r *serviceRepository) DeleteByCategory(ctx context.Context, category string) (int64, error) {
	query := `DELETE FROM services WHERE category = $1`

	result, err := r.db.Exec(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to delete services by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return 0, fmt.Errorf("delete services in category %s: %w", category, err)
	}

	deleted := result.RowsAffected()
	if deleted > 0 {
		r.log.Info("Category deleted",
			zap.String("category", category),
			zap.Int64("services_deleted", deleted),
		)
	}

	return deleted, nil
}
