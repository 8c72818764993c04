package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tattoo-studio/internal/domains/artist/model"
)

type postgresArtistRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &postgresArtistRepository{pool: pool}
}

func (r *postgresArtistRepository) List(ctx context.Context) ([]model.Artist, error) {
	query := `
		SELECT a.id, a.user_id, u.username, u.full_name, a.bio, a.specialization
		FROM artists a
		JOIN users u ON u.id = a.user_id
		ORDER BY COALESCE(NULLIF(u.full_name, ''), u.username)
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	artists := make([]model.Artist, 0)
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.FullName, &a.Bio, &a.Specialization); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate artists: %w", err)
	}

	return artists, nil
}

func (r *postgresArtistRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check artist: %w", err)
	}
	return exists, nil
}
