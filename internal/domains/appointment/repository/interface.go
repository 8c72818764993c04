package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/appointment/model"
)

type AppointmentRepository interface {
	// Create insert với status đã set sẵn. Nếu có tattoo_request_id thì
	// request phải thuộc client và approved ngay tại thời điểm insert.
	Create(ctx context.Context, a *model.Appointment) error

	GetForClient(ctx context.Context, clientID, id uuid.UUID, statuses ...model.Status) (*model.Appointment, error)

	// CancelForClient là một UPDATE có điều kiện, 0 rows → ErrAppointmentNotFound
	CancelForClient(ctx context.Context, clientID, id uuid.UUID) (*model.Appointment, error)

	List(ctx context.Context, clientID uuid.UUID, filter model.Filter, now time.Time, limit, offset int) ([]model.Appointment, error)
	Count(ctx context.Context, clientID uuid.UUID, filter model.Filter, now time.Time) (int, error)
	ListUpcoming(ctx context.Context, clientID uuid.UUID, now time.Time, limit int) ([]model.Appointment, error)
}
