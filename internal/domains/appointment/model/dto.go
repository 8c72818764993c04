package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	artistModel "tattoo-studio/internal/domains/artist/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
)

// BookRequest: status và client không nằm trong input, service tự set
type BookRequest struct {
	ArtistID        string           `json:"artist_id"`
	TattooRequestID string           `json:"tattoo_request_id"`
	ScheduledDate   *time.Time       `json:"scheduled_date"`
	DurationHours   *decimal.Decimal `json:"duration_hours"`
	Notes           string           `json:"notes"`
}

func (r *BookRequest) Normalize() {
	r.ArtistID = strings.TrimSpace(r.ArtistID)
	r.TattooRequestID = strings.TrimSpace(r.TattooRequestID)
	r.Notes = strings.TrimSpace(r.Notes)
	if r.DurationHours == nil {
		d := DefaultDuration
		r.DurationHours = &d
	}
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID,
			validation.Required.Error("This field is required."),
			is.UUID.Error(MsgInvalidChoice),
		),
		validation.Field(&r.TattooRequestID, is.UUID.Error(MsgInvalidChoice)),
		validation.Field(&r.ScheduledDate, validation.Required.Error("This field is required.")),
		validation.Field(&r.DurationHours, validation.By(validDuration)),
	)
}

// validDuration: [0.5, 8.0] theo bước 0.5
func validDuration(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	case decimal.Decimal:
		d = v
	default:
		return nil
	}
	if d.LessThan(MinDuration) {
		return errors.New("Ensure this value is greater than or equal to 0.5.")
	}
	if d.GreaterThan(MaxDuration) {
		return errors.New("Ensure this value is less than or equal to 8.0.")
	}
	if !d.Mul(decimal.NewFromInt(2)).IsInteger() {
		return errors.New("Duration must be in 0.5 hour increments.")
	}
	return nil
}

// ArtistUUID chỉ gọi sau Validate
func (r BookRequest) ArtistUUID() uuid.UUID {
	return uuid.MustParse(r.ArtistID)
}

// TattooRequestUUID trả nil khi không chọn request
func (r BookRequest) TattooRequestUUID() *uuid.UUID {
	if r.TattooRequestID == "" {
		return nil
	}
	id := uuid.MustParse(r.TattooRequestID)
	return &id
}

type AppointmentResponse struct {
	ID            uuid.UUID                 `json:"id"`
	Artist        artistModel.ArtistSummary `json:"artist"`
	TattooRequest *TattooRequestRef         `json:"tattoo_request"`
	ScheduledDate time.Time                 `json:"scheduled_date"`
	DurationHours decimal.Decimal           `json:"duration_hours"`
	Status        Status                    `json:"status"`
	StatusLabel   string                    `json:"status_label"`
	Notes         string                    `json:"notes"`
	IsUpcoming    bool                      `json:"is_upcoming"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

type TattooRequestRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (a *Appointment) ToResponse(now time.Time) AppointmentResponse {
	resp := AppointmentResponse{
		ID: a.ID,
		Artist: artistModel.ArtistSummary{
			ID:   a.ArtistID,
			Name: artistModel.DisplayName(a.ArtistFullName, a.ArtistUsername),
		},
		ScheduledDate: a.ScheduledDate,
		DurationHours: a.DurationHours,
		Status:        a.Status,
		StatusLabel:   a.Status.Label(),
		Notes:         a.Notes,
		IsUpcoming:    a.IsUpcoming(now),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.TattooRequestID != nil {
		ref := TattooRequestRef{ID: *a.TattooRequestID}
		if a.TattooRequestTitle != nil {
			ref.Title = *a.TattooRequestTitle
		}
		resp.TattooRequest = &ref
	}
	return resp
}

// ListResponse: filter được echo lại nguyên giá trị client gửi
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Filter       string                `json:"filter"`
}

type BookingOptions struct {
	Artists        []artistModel.ArtistResponse         `json:"artists"`
	TattooRequests []requestModel.TattooRequestResponse `json:"tattoo_requests"`
	Help           map[string]string                    `json:"help"`
	Defaults       map[string]string                    `json:"defaults"`
}

type RescheduleResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
