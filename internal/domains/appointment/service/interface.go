package service

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/appointment/model"
	artistModel "tattoo-studio/internal/domains/artist/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/shared/utils"
)

type ServiceInterface interface {
	BookingOptions(ctx context.Context, clientID uuid.UUID) (*model.BookingOptions, error)
	Book(ctx context.Context, clientID uuid.UUID, req model.BookRequest) (*model.AppointmentResponse, error)

	// List: page là raw query param, trả utils.ErrInvalidPage khi ngoài range
	List(ctx context.Context, clientID uuid.UUID, rawFilter, page string) (*model.ListResponse, *utils.Page, error)

	GetCancellable(ctx context.Context, clientID, id uuid.UUID) (*model.AppointmentResponse, error)
	Cancel(ctx context.Context, clientID, id uuid.UUID) (*model.AppointmentResponse, error)
	Reschedule(ctx context.Context, clientID, id uuid.UUID) (*model.RescheduleResponse, error)

	// dashboard
	ListUpcoming(ctx context.Context, clientID uuid.UUID, limit int) ([]model.AppointmentResponse, error)
	CountCompleted(ctx context.Context, clientID uuid.UUID) (int, error)
	CountUpcoming(ctx context.Context, clientID uuid.UUID) (int, error)
}

// ArtistDirectory được implement bởi artist service
type ArtistDirectory interface {
	ListArtists(ctx context.Context) ([]artistModel.ArtistResponse, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ApprovedRequests được implement bởi tattoorequest service
type ApprovedRequests interface {
	ListApproved(ctx context.Context, clientID uuid.UUID) ([]requestModel.TattooRequestResponse, error)
	GetApproved(ctx context.Context, clientID, id uuid.UUID) (*requestModel.TattooRequestResponse, error)
}
