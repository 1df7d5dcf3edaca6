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

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindByUserAndService(ctx context.Context, userID, serviceID uuid.UUID) (*entity.Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	Delete(ctx context.Context, userID, serviceID uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

const favoriteColumns = `id, user_id, service_id, created_at`

func scanFavorite(row pgx.Row) (*entity.Favorite, error) {
	var favorite entity.Favorite
	err := row.Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.ServiceID,
		&favorite.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, service_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.ServiceID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.String("service_id", favorite.ServiceID.String()),
		)
		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) FindByUserAndService(ctx context.Context, userID, serviceID uuid.UUID) (*entity.Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id = $1 AND service_id = $2`

	favorite, err := scanFavorite(r.db.QueryRow(ctx, query, userID, serviceID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	return favorite, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var favorites []*entity.Favorite
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, serviceID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND service_id = $2`

	result, err := r.db.Exec(ctx, query, userID, serviceID)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("service_id", serviceID.String()),
		)
		return fmt.Errorf("delete favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite: %w", entity.ErrNotFound)
	}

	return nil
}

func (r *favoriteRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count favorites for user %s: %w", userID.String(), err)
	}
	return count, nil
}
