package repository

import (
	"context"
	"fmt"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context, status *entity.ReservationStatus) ([]*entity.Reservation, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.ReservationStatus) (int64, error)

	// FindActiveByServiceAndDate returns Pending/Confirmed reservations for a
	// service scheduled on the given calendar day.
	FindActiveByServiceAndDate(ctx context.Context, serviceID uuid.UUID, day time.Time) ([]*entity.Reservation, error)

	// ActiveServiceIDsOnDate returns the distinct services with at least one
	// Pending/Confirmed reservation on the given calendar day.
	ActiveServiceIDsOnDate(ctx context.Context, day time.Time) (map[uuid.UUID]struct{}, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, scheduled_at, status, notes, problem_image_url,
	customer_id, provider_id, service_id, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.ScheduledAt,
		&reservation.Status,
		&reservation.Notes,
		&reservation.ProblemImageURL,
		&reservation.CustomerID,
		&reservation.ProviderID,
		&reservation.ServiceID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) scanReservations(rows pgx.Rows) ([]*entity.Reservation, error) {
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, scheduled_at, status, notes, problem_image_url,
			customer_id, provider_id, service_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.ScheduledAt,
		reservation.Status,
		reservation.Notes,
		reservation.ProblemImageURL,
		reservation.CustomerID,
		reservation.ProviderID,
		reservation.ServiceID,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("customer_id", reservation.CustomerID.String()),
			zap.String("service_id", reservation.ServiceID.String()),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []any{}

	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}

	query += ` ORDER BY scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return r.scanReservations(rows)
}

func (r *reservationRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE customer_id = $1`
	args := []any{customerID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}

	query += ` ORDER BY scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reservations by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find reservations by customer ID %s: %w", customerID.String(), err)
	}

	return r.scanReservations(rows)
}

func (r *reservationRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE provider_id = $1`
	args := []any{providerID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}

	query += ` ORDER BY scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reservations by provider ID",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find reservations by provider ID %s: %w", providerID.String(), err)
	}

	return r.scanReservations(rows)
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET scheduled_at = $2, status = $3, notes = $4, problem_image_url = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.ScheduledAt,
		reservation.Status,
		reservation.Notes,
		reservation.ProblemImageURL,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", reservation.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func (r *reservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return count, nil
}

func (r *reservationRepository) CountByStatus(ctx context.Context, status entity.ReservationStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE status = $1`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count reservations with status %s: %w", string(status), err)
	}
	return count, nil
}

func (r *reservationRepository) FindActiveByServiceAndDate(ctx context.Context, serviceID uuid.UUID, day time.Time) ([]*entity.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE service_id = $1
		  AND scheduled_at >= $2 AND scheduled_at < $3
		  AND status IN ($4, $5)
		ORDER BY scheduled_at
	`

	rows, err := r.db.Query(ctx, query, serviceID, dayStart, dayEnd,
		entity.ReservationStatusPending, entity.ReservationStatusConfirmed)
	if err != nil {
		r.log.Error("Failed to find active reservations for date",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
			zap.Time("day", dayStart),
		)
		return nil, fmt.Errorf("find active reservations for service %s: %w", serviceID.String(), err)
	}

	return r.scanReservations(rows)
}

func (r *reservationRepository) ActiveServiceIDsOnDate(ctx context.Context, day time.Time) (map[uuid.UUID]struct{}, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT DISTINCT service_id
		FROM reservations
		WHERE scheduled_at >= $1 AND scheduled_at < $2
		  AND status IN ($3, $4)
	`

	rows, err := r.db.Query(ctx, query, dayStart, dayEnd,
		entity.ReservationStatusPending, entity.ReservationStatusConfirmed)
	if err != nil {
		r.log.Error("Failed to find booked services for date",
			zap.Error(err),
			zap.Time("day", dayStart),
		)
		return nil, fmt.Errorf("find booked services on %s: %w", dayStart.Format("2006-01-02"), err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan service ID row", zap.Error(err))
			return nil, fmt.Errorf("scan service ID row: %w", err)
		}
		ids[id] = struct{}{}
	}

	return ids, nil
}
