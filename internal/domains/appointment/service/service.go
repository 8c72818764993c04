package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/appointment/model"
	"tattoo-studio/internal/domains/appointment/repository"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/shared/utils"
)

type appointmentService struct {
	repo     repository.AppointmentRepository
	artists  ArtistDirectory
	requests ApprovedRequests
	now      func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	artists ArtistDirectory,
	requests ApprovedRequests,
) ServiceInterface {
	return &appointmentService{
		repo:     repo,
		artists:  artists,
		requests: requests,
		now:      time.Now,
	}
}

// =====================================================
// BOOK
// =====================================================

func (s *appointmentService) BookingOptions(ctx context.Context, clientID uuid.UUID) (*model.BookingOptions, error) {
	artists, err := s.artists.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("load artists: %w", err)
	}

	requests, err := s.requests.ListApproved(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load approved requests: %w", err)
	}

	return &model.BookingOptions{
		Artists:        artists,
		TattooRequests: requests,
		Help:           model.FormHelp,
		Defaults:       map[string]string{"duration_hours": model.DefaultDuration.StringFixed(1)},
	}, nil
}

func (s *appointmentService) Book(ctx context.Context, clientID uuid.UUID, req model.BookRequest) (*model.AppointmentResponse, error) {
	// Step 1: Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Artist và tattoo request phải nằm trong tập client được chọn
	artistID := req.ArtistUUID()
	exists, err := s.artists.Exists(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("check artist: %w", err)
	}
	if !exists {
		return nil, validation.Errors{"artist_id": errors.New(model.MsgInvalidChoice)}
	}

	requestID := req.TattooRequestUUID()
	if requestID != nil {
		_, err := s.requests.GetApproved(ctx, clientID, *requestID)
		if errors.Is(err, requestModel.ErrTattooRequestNotFound) {
			return nil, validation.Errors{"tattoo_request_id": errors.New(model.MsgInvalidChoice)}
		}
		if err != nil {
			return nil, fmt.Errorf("check tattoo request: %w", err)
		}
	}

	// Step 3: Status và client luôn do server quyết định
	now := s.now()
	appt := &model.Appointment{
		ID:              uuid.New(),
		ClientID:        clientID,
		ArtistID:        artistID,
		TattooRequestID: requestID,
		ScheduledDate:   *req.ScheduledDate,
		DurationHours:   *req.DurationHours,
		Status:          model.StatusPending,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Step 4: Persist (repository check lại request trong transaction)
	if err := s.repo.Create(ctx, appt); err != nil {
		if errors.Is(err, model.ErrTattooRequestNotSelectable) {
			return nil, validation.Errors{"tattoo_request_id": errors.New(model.MsgInvalidChoice)}
		}
		return nil, err
	}

	log.Info().
		Str("appointment_id", appt.ID.String()).
		Str("client_id", clientID.String()).
		Msg("Appointment booked")

	// Step 5: Đọc lại để có artist name và request title
	created, err := s.repo.GetForClient(ctx, clientID, appt.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse(now)
	return &resp, nil
}

// =====================================================
// LIST
// =====================================================

func (s *appointmentService) List(ctx context.Context, clientID uuid.UUID, rawFilter, rawPage string) (*model.ListResponse, *utils.Page, error) {
	filter := model.ParseFilter(rawFilter)
	now := s.now()

	total, err := s.repo.Count(ctx, clientID, filter, now)
	if err != nil {
		return nil, nil, err
	}

	page, err := utils.Paginate(rawPage, total, model.PageSize)
	if err != nil {
		return nil, nil, err
	}

	appointments, err := s.repo.List(ctx, clientID, filter, now, page.Size, page.Offset())
	if err != nil {
		return nil, nil, err
	}

	return &model.ListResponse{
		Appointments: toResponses(appointments, now),
		Filter:       rawFilter,
	}, &page, nil
}

func (s *appointmentService) ListUpcoming(ctx context.Context, clientID uuid.UUID, limit int) ([]model.AppointmentResponse, error) {
	now := s.now()
	appointments, err := s.repo.ListUpcoming(ctx, clientID, now, limit)
	if err != nil {
		return nil, err
	}
	return toResponses(appointments, now), nil
}

func (s *appointmentService) CountCompleted(ctx context.Context, clientID uuid.UUID) (int, error) {
	return s.repo.Count(ctx, clientID, model.FilterCompleted, s.now())
}

func (s *appointmentService) CountUpcoming(ctx context.Context, clientID uuid.UUID) (int, error) {
	return s.repo.Count(ctx, clientID, model.FilterUpcoming, s.now())
}

// =====================================================
// CANCEL / RESCHEDULE
// =====================================================

func (s *appointmentService) GetCancellable(ctx context.Context, clientID, id uuid.UUID) (*model.AppointmentResponse, error) {
	appt, err := s.repo.GetForClient(ctx, clientID, id, model.CancellableStatuses...)
	if err != nil {
		return nil, err
	}
	resp := appt.ToResponse(s.now())
	return &resp, nil
}

func (s *appointmentService) Cancel(ctx context.Context, clientID, id uuid.UUID) (*model.AppointmentResponse, error) {
	appt, err := s.repo.CancelForClient(ctx, clientID, id)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("appointment_id", id.String()).
		Str("client_id", clientID.String()).
		Msg("Appointment cancelled")

	resp := appt.ToResponse(s.now())
	return &resp, nil
}

// Reschedule chưa đổi lịch thật, chỉ check precondition
func (s *appointmentService) Reschedule(ctx context.Context, clientID, id uuid.UUID) (*model.RescheduleResponse, error) {
	if _, err := s.repo.GetForClient(ctx, clientID, id, model.StatusConfirmed); err != nil {
		return nil, err
	}
	return &model.RescheduleResponse{
		Message:  model.MsgRescheduleContact,
		Redirect: model.RescheduleRedirect,
	}, nil
}

func toResponses(appointments []model.Appointment, now time.Time) []model.AppointmentResponse {
	resp := make([]model.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, appointments[i].ToResponse(now))
	}
	return resp
}
