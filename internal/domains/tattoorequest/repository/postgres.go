package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tattoo-studio/internal/domains/tattoorequest/model"
)

type postgresTattooRequestRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTattooRequestRepository(pool *pgxpool.Pool) TattooRequestRepository {
	return &postgresTattooRequestRepository{pool: pool}
}

const selectTattooRequest = `
	SELECT
		tr.id, tr.client_id, tr.artist_id, tr.title, tr.description, tr.status,
		tr.reference_image, tr.reference_thumbnail,
		u.username, u.full_name,
		tr.created_at, tr.updated_at
	FROM tattoo_requests tr
	LEFT JOIN artists a ON a.id = tr.artist_id
	LEFT JOIN users u ON u.id = a.user_id
`

func (r *postgresTattooRequestRepository) Create(ctx context.Context, req *model.TattooRequest) error {
	query := `
		INSERT INTO tattoo_requests (
			id, client_id, artist_id, title, description, status,
			reference_image, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.ClientID,
		req.ArtistID,
		req.Title,
		req.Description,
		req.Status,
		req.ReferenceImage,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tattoo request: %w", err)
	}
	return nil
}

func (r *postgresTattooRequestRepository) GetByIDForClient(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequest, error) {
	row := r.pool.QueryRow(ctx, selectTattooRequest+` WHERE tr.id = $1 AND tr.client_id = $2`, id, clientID)
	return scanOne(row)
}

func (r *postgresTattooRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TattooRequest, error) {
	row := r.pool.QueryRow(ctx, selectTattooRequest+` WHERE tr.id = $1`, id)
	return scanOne(row)
}

func (r *postgresTattooRequestRepository) ListRecentByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]model.TattooRequest, error) {
	query := selectTattooRequest + `
		WHERE tr.client_id = $1
		ORDER BY tr.created_at DESC, tr.id DESC
		LIMIT $2
	`
	return r.list(ctx, query, clientID, limit)
}

func (r *postgresTattooRequestRepository) ListByClientAndStatus(ctx context.Context, clientID uuid.UUID, status model.Status) ([]model.TattooRequest, error) {
	query := selectTattooRequest + `
		WHERE tr.client_id = $1 AND tr.status = $2
		ORDER BY tr.created_at DESC, tr.id DESC
	`
	return r.list(ctx, query, clientID, status)
}

func (r *postgresTattooRequestRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tattoo_requests WHERE client_id = $1`, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tattoo requests: %w", err)
	}
	return count, nil
}

func (r *postgresTattooRequestRepository) SetReferenceThumbnail(ctx context.Context, id uuid.UUID, key string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE tattoo_requests SET reference_thumbnail = $2, updated_at = NOW() WHERE id = $1`,
		id, key,
	)
	if err != nil {
		return fmt.Errorf("failed to set reference thumbnail: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTattooRequestNotFound
	}
	return nil
}

func (r *postgresTattooRequestRepository) ListMissingThumbnails(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM tattoo_requests
		WHERE reference_image IS NOT NULL AND reference_thumbnail IS NULL
		ORDER BY created_at ASC, id ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing thumbnails: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan missing thumbnails: %w", err)
	}
	return ids, nil
}

func (r *postgresTattooRequestRepository) list(ctx context.Context, query string, args ...any) ([]model.TattooRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tattoo requests: %w", err)
	}
	defer rows.Close()

	requests := make([]model.TattooRequest, 0)
	for rows.Next() {
		req, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tattoo requests: %w", err)
	}
	return requests, nil
}

func scanOne(row pgx.Row) (*model.TattooRequest, error) {
	req := &model.TattooRequest{}
	err := row.Scan(
		&req.ID,
		&req.ClientID,
		&req.ArtistID,
		&req.Title,
		&req.Description,
		&req.Status,
		&req.ReferenceImage,
		&req.ReferenceThumbnail,
		&req.ArtistUsername,
		&req.ArtistFullName,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTattooRequestNotFound
		}
		return nil, fmt.Errorf("failed to scan tattoo request: %w", err)
	}
	return req, nil
}
