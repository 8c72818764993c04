package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	appointmentModel "tattoo-studio/internal/domains/appointment/model"
	"tattoo-studio/internal/domains/dashboard/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
)

type ServiceInterface interface {
	Get(ctx context.Context, clientID uuid.UUID) (*model.Dashboard, error)
}

type AppointmentReader interface {
	CountCompleted(ctx context.Context, clientID uuid.UUID) (int, error)
	CountUpcoming(ctx context.Context, clientID uuid.UUID) (int, error)
	ListUpcoming(ctx context.Context, clientID uuid.UUID, limit int) ([]appointmentModel.AppointmentResponse, error)
}

type RequestReader interface {
	CountForClient(ctx context.Context, clientID uuid.UUID) (int, error)
	ListRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]requestModel.TattooRequestResponse, error)
}

type DesignCounter interface {
	CountForClient(ctx context.Context, clientID uuid.UUID) (int, error)
}

// maxParallelQueries giới hạn số connection dashboard chiếm cùng lúc
const maxParallelQueries = 3

type dashboardService struct {
	appointments AppointmentReader
	requests     RequestReader
	designs      DesignCounter
}

func NewDashboardService(appointments AppointmentReader, requests RequestReader, designs DesignCounter) ServiceInterface {
	return &dashboardService{
		appointments: appointments,
		requests:     requests,
		designs:      designs,
	}
}

// Get chạy các query độc lập song song, lỗi đầu tiên hủy phần còn lại
func (s *dashboardService) Get(ctx context.Context, clientID uuid.UUID) (*model.Dashboard, error) {
	var d model.Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelQueries)

	g.Go(func() (err error) {
		d.Stats.CompletedAppointments, err = s.appointments.CountCompleted(gctx, clientID)
		return wrap("count completed appointments", err)
	})
	g.Go(func() (err error) {
		d.Stats.UpcomingAppointments, err = s.appointments.CountUpcoming(gctx, clientID)
		return wrap("count upcoming appointments", err)
	})
	g.Go(func() (err error) {
		d.Stats.TotalRequests, err = s.requests.CountForClient(gctx, clientID)
		return wrap("count tattoo requests", err)
	})
	g.Go(func() (err error) {
		d.Stats.TotalDesigns, err = s.designs.CountForClient(gctx, clientID)
		return wrap("count designs", err)
	})
	g.Go(func() (err error) {
		d.UpcomingAppointments, err = s.appointments.ListUpcoming(gctx, clientID, appointmentModel.UpcomingLimit)
		return wrap("list upcoming appointments", err)
	})
	g.Go(func() (err error) {
		d.RecentRequests, err = s.requests.ListRecent(gctx, clientID, requestModel.RecentLimit)
		return wrap("list recent requests", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
