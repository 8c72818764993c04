package model

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scheduled time.Time
		status    Status
		want      bool
	}{
		{"future pending", now.Add(time.Hour), StatusPending, true},
		{"future confirmed", now.Add(time.Hour), StatusConfirmed, true},
		{"future completed", now.Add(time.Hour), StatusCompleted, true},
		{"future cancelled", now.Add(time.Hour), StatusCancelled, false},
		{"exactly now", now, StatusConfirmed, false},
		{"past", now.Add(-time.Minute), StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{ScheduledDate: tt.scheduled, Status: tt.status}
			assert.Equal(t, tt.want, a.IsUpcoming(now))
		})
	}
}

func TestCancellableAndReschedulable(t *testing.T) {
	for status, want := range map[Status]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
	} {
		a := Appointment{Status: status}
		assert.Equal(t, want, a.IsCancellable(), status)
		assert.Equal(t, status == StatusConfirmed, a.CanReschedule(), status)
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterUpcoming, ParseFilter("upcoming"))
	assert.Equal(t, FilterCancelled, ParseFilter("cancelled"))
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
	assert.Equal(t, FilterAll, ParseFilter("Pending"))

	s, ok := FilterCompleted.Status()
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, s)
	_, ok = FilterUpcoming.Status()
	assert.False(t, ok)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Awaiting Approval", StatusPending.Label())
	assert.Equal(t, "Confirmed", StatusConfirmed.Label())
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBookRequest_Duration(t *testing.T) {
	when := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		duration string
		valid    bool
	}{
		{"0.5", true},
		{"8.0", true},
		{"8", true},
		{"2.5", true},
		{"0.4", false},
		{"0", false},
		{"8.5", false},
		{"1.3", false},
		{"2.25", false},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			req := BookRequest{ArtistID: uuid.NewString(), ScheduledDate: &when, DurationHours: dec(tt.duration)}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, "duration_hours")
		})
	}
}

func TestBookRequest_DefaultsAndRequired(t *testing.T) {
	req := BookRequest{}
	req.Normalize()
	require.NotNil(t, req.DurationHours)
	assert.True(t, req.DurationHours.Equal(decimal.NewFromInt(2)))

	var verrs validation.Errors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs, "artist_id")
	assert.Contains(t, verrs, "scheduled_date")
	assert.NotContains(t, verrs, "tattoo_request_id")
	assert.NotContains(t, verrs, "duration_hours")
}

func TestBookRequest_MalformedIDs(t *testing.T) {
	when := time.Now().Add(time.Hour)
	req := BookRequest{ArtistID: "7", TattooRequestID: "abc", ScheduledDate: &when}

	var verrs validation.Errors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.EqualError(t, verrs["artist_id"], MsgInvalidChoice)
	assert.EqualError(t, verrs["tattoo_request_id"], MsgInvalidChoice)
}

func TestToResponse(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reqID := uuid.New()
	title := "Koi sleeve"
	a := Appointment{
		ID: uuid.New(), ArtistID: uuid.New(), ArtistUsername: "mira",
		TattooRequestID: &reqID, TattooRequestTitle: &title,
		ScheduledDate: now.Add(24 * time.Hour), Status: StatusPending,
		DurationHours: decimal.RequireFromString("2.5"),
	}

	resp := a.ToResponse(now)
	assert.Equal(t, "mira", resp.Artist.Name)
	require.NotNil(t, resp.TattooRequest)
	assert.Equal(t, title, resp.TattooRequest.Title)
	assert.True(t, resp.IsUpcoming)
	assert.Equal(t, "Awaiting Approval", resp.StatusLabel)
}
