package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tattoo-studio/internal/domains/appointment/model"
	"tattoo-studio/internal/shared/utils"
	"tattoo-studio/pkg/database"
)

type postgresAppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &postgresAppointmentRepository{pool: pool}
}

const selectAppointment = `
	SELECT
		ap.id, ap.client_id, ap.artist_id, ap.tattoo_request_id,
		ap.scheduled_date, ap.duration_hours, ap.status, ap.notes,
		u.username, u.full_name, tr.title,
		ap.created_at, ap.updated_at
	FROM appointments ap
	JOIN artists a ON a.id = ap.artist_id
	JOIN users u ON u.id = a.user_id
	LEFT JOIN tattoo_requests tr ON tr.id = ap.tattoo_request_id
`

// =====================================================
// CREATE
// =====================================================

func (r *postgresAppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Step 1: Khóa request để status không đổi giữa check và insert
		if a.TattooRequestID != nil {
			var status string
			err := tx.QueryRow(ctx,
				`SELECT status FROM tattoo_requests WHERE id = $1 AND client_id = $2 FOR SHARE`,
				*a.TattooRequestID, a.ClientID,
			).Scan(&status)
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrTattooRequestNotSelectable
			}
			if err != nil {
				return fmt.Errorf("failed to lock tattoo request: %w", err)
			}
			if status != "approved" {
				return model.ErrTattooRequestNotSelectable
			}
		}

		// Step 2: Insert
		query := `
			INSERT INTO appointments (
				id, client_id, artist_id, tattoo_request_id, scheduled_date,
				duration_hours, status, notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.Exec(ctx, query,
			a.ID,
			a.ClientID,
			a.ArtistID,
			a.TattooRequestID,
			a.ScheduledDate,
			a.DurationHours,
			a.Status,
			a.Notes,
			a.CreatedAt,
			a.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})
}

// =====================================================
// READ
// =====================================================

func (r *postgresAppointmentRepository) GetForClient(ctx context.Context, clientID, id uuid.UUID, statuses ...model.Status) (*model.Appointment, error) {
	query := selectAppointment + ` WHERE ap.id = $1 AND ap.client_id = $2`
	args := []any{id, clientID}
	if len(statuses) > 0 {
		query += ` AND ap.status = ANY($3)`
		args = append(args, statusStrings(statuses))
	}
	return scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *postgresAppointmentRepository) List(
	ctx context.Context,
	clientID uuid.UUID,
	filter model.Filter,
	now time.Time,
	limit, offset int,
) ([]model.Appointment, error) {
	where, args := clientWhere(clientID, filter, now)
	query := listQuery(where, len(args))
	args = append(args, limit, offset)
	return r.list(ctx, query, args...)
}

func (r *postgresAppointmentRepository) Count(ctx context.Context, clientID uuid.UUID, filter model.Filter, now time.Time) (int, error) {
	where, args := clientWhere(clientID, filter, now)

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments ap`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func (r *postgresAppointmentRepository) ListUpcoming(ctx context.Context, clientID uuid.UUID, now time.Time, limit int) ([]model.Appointment, error) {
	where, args := clientWhere(clientID, model.FilterUpcoming, now)
	query := upcomingQuery(where, len(args))
	args = append(args, limit)
	return r.list(ctx, query, args...)
}

func clientWhere(clientID uuid.UUID, filter model.Filter, now time.Time) (string, []any) {
	clauses := []string{"ap.client_id = $1"}
	args := []any{clientID}
	if clause, filterArgs := filterClause(filter, now, 2); clause != "" {
		clauses = append(clauses, clause)
		args = append(args, filterArgs...)
	}
	return utils.WhereClause(clauses), args
}

// =====================================================
// CANCEL
// =====================================================

func (r *postgresAppointmentRepository) CancelForClient(ctx context.Context, clientID, id uuid.UUID) (*model.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND client_id = $2 AND status = ANY($4)
		RETURNING id
	`

	var updatedID uuid.UUID
	err := r.pool.QueryRow(ctx, query, id, clientID, model.StatusCancelled, statusStrings(model.CancellableStatuses)).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	return r.GetForClient(ctx, clientID, updatedID)
}

// =====================================================
// HELPERS
// =====================================================

func (r *postgresAppointmentRepository) list(ctx context.Context, query string, args ...any) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]model.Appointment, 0)
	for rows.Next() {
		a, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}
	return appointments, nil
}

func scanOne(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.ArtistID,
		&a.TattooRequestID,
		&a.ScheduledDate,
		&a.DurationHours,
		&a.Status,
		&a.Notes,
		&a.ArtistUsername,
		&a.ArtistFullName,
		&a.TattooRequestTitle,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan appointment: %w", err)
	}
	return &a, nil
}

func statusStrings(statuses []model.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
