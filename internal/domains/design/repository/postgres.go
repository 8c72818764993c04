package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tattoo-studio/internal/domains/design/model"
)

type postgresDesignRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDesignRepository(pool *pgxpool.Pool) DesignRepository {
	return &postgresDesignRepository{pool: pool}
}

// artist và request được join sẵn, không load lazy
const selectDesign = `
	SELECT
		d.id, d.tattoo_request_id, tr.title,
		d.artist_id, u.username, u.full_name,
		d.image, d.description, d.created_at
	FROM designs d
	JOIN tattoo_requests tr ON tr.id = d.tattoo_request_id
	JOIN artists a ON a.id = d.artist_id
	JOIN users u ON u.id = a.user_id
`

func (r *postgresDesignRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Design, error) {
	return r.list(ctx, selectDesign+` WHERE tr.client_id = $1 ORDER BY d.created_at DESC, d.id DESC`, clientID)
}

func (r *postgresDesignRepository) ListByTattooRequest(ctx context.Context, tattooRequestID uuid.UUID) ([]model.Design, error) {
	return r.list(ctx, selectDesign+` WHERE d.tattoo_request_id = $1 ORDER BY d.created_at DESC, d.id DESC`, tattooRequestID)
}

func (r *postgresDesignRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM designs d
		JOIN tattoo_requests tr ON tr.id = d.tattoo_request_id
		WHERE tr.client_id = $1
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, clientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count designs: %w", err)
	}
	return count, nil
}

func (r *postgresDesignRepository) list(ctx context.Context, query string, arg any) ([]model.Design, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	designs := make([]model.Design, 0)
	for rows.Next() {
		var d model.Design
		if err := rows.Scan(
			&d.ID, &d.TattooRequestID, &d.TattooRequestTitle,
			&d.ArtistID, &d.ArtistUsername, &d.ArtistFullName,
			&d.Image, &d.Description, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		designs = append(designs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designs: %w", err)
	}

	return designs, nil
}
