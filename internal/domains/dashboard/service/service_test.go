package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentModel "tattoo-studio/internal/domains/appointment/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
)

// seeded: 3 completed, 2 upcoming (+1 cancelled future, +1 past confirmed), 5 requests, 2 designs
type seededAppointments struct {
	now  time.Time
	rows []appointmentModel.Appointment
	err  error
}

func (s seededAppointments) count(clientID uuid.UUID, keep func(appointmentModel.Appointment) bool) int {
	n := 0
	for _, a := range s.rows {
		if a.ClientID == clientID && keep(a) {
			n++
		}
	}
	return n
}

func (s seededAppointments) CountCompleted(_ context.Context, clientID uuid.UUID) (int, error) {
	return s.count(clientID, func(a appointmentModel.Appointment) bool { return a.Status == appointmentModel.StatusCompleted }), nil
}

func (s seededAppointments) CountUpcoming(_ context.Context, clientID uuid.UUID) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.count(clientID, func(a appointmentModel.Appointment) bool {
		return !a.ScheduledDate.Before(s.now) && a.IsCancellable()
	}), nil
}

func (s seededAppointments) ListUpcoming(_ context.Context, clientID uuid.UUID, limit int) ([]appointmentModel.AppointmentResponse, error) {
	out := make([]appointmentModel.AppointmentResponse, 0)
	for _, a := range s.rows {
		if a.ClientID == clientID && !a.ScheduledDate.Before(s.now) && a.IsCancellable() && len(out) < limit {
			out = append(out, a.ToResponse(s.now))
		}
	}
	return out, nil
}

type seededRequests struct {
	byClient map[uuid.UUID]int
}

func (s seededRequests) CountForClient(_ context.Context, clientID uuid.UUID) (int, error) {
	return s.byClient[clientID], nil
}

func (s seededRequests) ListRecent(_ context.Context, clientID uuid.UUID, limit int) ([]requestModel.TattooRequestResponse, error) {
	n := s.byClient[clientID]
	if n > limit {
		n = limit
	}
	return make([]requestModel.TattooRequestResponse, n), nil
}

type seededDesigns map[uuid.UUID]int

func (s seededDesigns) CountForClient(_ context.Context, clientID uuid.UUID) (int, error) {
	return s[clientID], nil
}

func seed(now time.Time, client, other uuid.UUID) seededAppointments {
	at := func(status appointmentModel.Status, offset time.Duration, owner uuid.UUID) appointmentModel.Appointment {
		return appointmentModel.Appointment{ID: uuid.New(), ClientID: owner, Status: status, ScheduledDate: now.Add(offset)}
	}
	return seededAppointments{now: now, rows: []appointmentModel.Appointment{
		at(appointmentModel.StatusCompleted, -72*time.Hour, client),
		at(appointmentModel.StatusCompleted, -48*time.Hour, client),
		at(appointmentModel.StatusCompleted, -24*time.Hour, client),
		at(appointmentModel.StatusPending, 24*time.Hour, client),
		at(appointmentModel.StatusConfirmed, 48*time.Hour, client),
		at(appointmentModel.StatusCancelled, 24*time.Hour, client),
		at(appointmentModel.StatusConfirmed, -time.Hour, client),
		at(appointmentModel.StatusPending, 24*time.Hour, other),
	}}
}

func TestGet_SeededNumbers(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	client, other := uuid.New(), uuid.New()

	svc := NewDashboardService(
		seed(now, client, other),
		seededRequests{byClient: map[uuid.UUID]int{client: 5, other: 9}},
		seededDesigns{client: 2, other: 4},
	)

	d, err := svc.Get(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Stats.CompletedAppointments)
	assert.Equal(t, 2, d.Stats.UpcomingAppointments)
	assert.Equal(t, 5, d.Stats.TotalRequests)
	assert.Equal(t, 2, d.Stats.TotalDesigns)
	assert.Len(t, d.UpcomingAppointments, 2)
	assert.Len(t, d.RecentRequests, 5)
}

func TestGet_RecentRequestsCapped(t *testing.T) {
	client := uuid.New()
	svc := NewDashboardService(
		seededAppointments{now: time.Now()},
		seededRequests{byClient: map[uuid.UUID]int{client: 20}},
		seededDesigns{},
	)

	d, err := svc.Get(context.Background(), client)
	require.NoError(t, err)
	assert.Len(t, d.RecentRequests, requestModel.RecentLimit)
	assert.Equal(t, 20, d.Stats.TotalRequests)
}

func TestGet_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewDashboardService(
		seededAppointments{now: time.Now(), err: boom},
		seededRequests{},
		seededDesigns{},
	)

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "count upcoming appointments")
}
