package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var statusLabels = map[Status]string{
	StatusPending:   "Awaiting Approval",
	StatusConfirmed: "Confirmed",
	StatusCancelled: "Cancelled",
	StatusCompleted: "Completed",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// CancellableStatuses là các trạng thái client còn được phép hủy
var CancellableStatuses = []Status{StatusPending, StatusConfirmed}

type Appointment struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ArtistID        uuid.UUID
	TattooRequestID *uuid.UUID
	ScheduledDate   time.Time
	DurationHours   decimal.Decimal
	Status          Status
	Notes           string

	// JOIN artists/users và LEFT JOIN tattoo_requests
	ArtistUsername     string
	ArtistFullName     string
	TattooRequestTitle *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUpcoming: strict, scheduled == now không tính là upcoming
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.ScheduledDate.After(now) && a.Status != StatusCancelled
}

func (a *Appointment) IsCancellable() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

func (a *Appointment) CanReschedule() bool {
	return a.Status == StatusConfirmed
}
