package service

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoo-studio/internal/domains/appointment/model"
	artistModel "tattoo-studio/internal/domains/artist/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/shared/utils"
)

// ---- fakes ----

type approvedRequest struct {
	clientID uuid.UUID
	title    string
}

type memoryAppointmentRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]model.Appointment
	artists  map[uuid.UUID]string
	approved map[uuid.UUID]approvedRequest
}

func newMemoryAppointmentRepo() *memoryAppointmentRepo {
	return &memoryAppointmentRepo{
		rows:     map[uuid.UUID]model.Appointment{},
		artists:  map[uuid.UUID]string{},
		approved: map[uuid.UUID]approvedRequest{},
	}
}

func (r *memoryAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.TattooRequestID != nil {
		req, ok := r.approved[*a.TattooRequestID]
		if !ok || req.clientID != a.ClientID {
			return model.ErrTattooRequestNotSelectable
		}
	}
	r.rows[a.ID] = *a
	return nil
}

func (r *memoryAppointmentRepo) joined(a model.Appointment) *model.Appointment {
	a.ArtistUsername = r.artists[a.ArtistID]
	if a.TattooRequestID != nil {
		title := r.approved[*a.TattooRequestID].title
		a.TattooRequestTitle = &title
	}
	return &a
}

func (r *memoryAppointmentRepo) GetForClient(_ context.Context, clientID, id uuid.UUID, statuses ...model.Status) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok || a.ClientID != clientID || !statusIn(a.Status, statuses) {
		return nil, model.ErrAppointmentNotFound
	}
	return r.joined(a), nil
}

func (r *memoryAppointmentRepo) CancelForClient(ctx context.Context, clientID, id uuid.UUID) (*model.Appointment, error) {
	r.mu.Lock()
	a, ok := r.rows[id]
	if !ok || a.ClientID != clientID || !a.IsCancellable() {
		r.mu.Unlock()
		return nil, model.ErrAppointmentNotFound
	}
	a.Status = model.StatusCancelled
	r.rows[id] = a
	r.mu.Unlock()
	return r.GetForClient(ctx, clientID, id)
}

func (r *memoryAppointmentRepo) matching(clientID uuid.UUID, filter model.Filter, now time.Time) []model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Appointment
	for _, a := range r.rows {
		if a.ClientID != clientID {
			continue
		}
		switch {
		case filter == model.FilterUpcoming:
			if a.ScheduledDate.Before(now) || !a.IsCancellable() {
				continue
			}
		case filter != model.FilterAll:
			if string(a.Status) != string(filter) {
				continue
			}
		}
		out = append(out, *r.joined(a))
	}
	return out
}

func (r *memoryAppointmentRepo) List(_ context.Context, clientID uuid.UUID, filter model.Filter, now time.Time, limit, offset int) ([]model.Appointment, error) {
	out := r.matching(clientID, filter, now)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.After(out[j].ScheduledDate)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})
	if offset >= len(out) {
		return []model.Appointment{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryAppointmentRepo) Count(_ context.Context, clientID uuid.UUID, filter model.Filter, now time.Time) (int, error) {
	return len(r.matching(clientID, filter, now)), nil
}

func (r *memoryAppointmentRepo) ListUpcoming(_ context.Context, clientID uuid.UUID, now time.Time, limit int) ([]model.Appointment, error) {
	out := r.matching(clientID, model.FilterUpcoming, now)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func statusIn(s model.Status, statuses []model.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

type stubArtists struct{ repo *memoryAppointmentRepo }

func (a stubArtists) ListArtists(context.Context) ([]artistModel.ArtistResponse, error) {
	out := make([]artistModel.ArtistResponse, 0)
	for id, name := range a.repo.artists {
		out = append(out, artistModel.ArtistResponse{ID: id, Name: name})
	}
	return out, nil
}

func (a stubArtists) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := a.repo.artists[id]
	return ok, nil
}

// stubRequests tách biệt với repo để mô phỏng request bị đổi status giữa check và insert
type stubRequests struct {
	approved map[uuid.UUID]approvedRequest
}

func (s stubRequests) ListApproved(_ context.Context, clientID uuid.UUID) ([]requestModel.TattooRequestResponse, error) {
	out := make([]requestModel.TattooRequestResponse, 0)
	for id, r := range s.approved {
		if r.clientID == clientID {
			out = append(out, requestModel.TattooRequestResponse{ID: id, Title: r.title, Status: requestModel.StatusApproved})
		}
	}
	return out, nil
}

func (s stubRequests) GetApproved(_ context.Context, clientID, id uuid.UUID) (*requestModel.TattooRequestResponse, error) {
	r, ok := s.approved[id]
	if !ok || r.clientID != clientID {
		return nil, requestModel.ErrTattooRequestNotFound
	}
	return &requestModel.TattooRequestResponse{ID: id, Title: r.title, Status: requestModel.StatusApproved}, nil
}

type fixture struct {
	svc      *appointmentService
	repo     *memoryAppointmentRepo
	requests stubRequests
	now      time.Time
	artistID uuid.UUID
	clientA  uuid.UUID
	clientB  uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		repo:     newMemoryAppointmentRepo(),
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		artistID: uuid.New(),
		clientA:  uuid.New(),
		clientB:  uuid.New(),
	}
	f.repo.artists[f.artistID] = "mira"
	f.requests = stubRequests{approved: f.repo.approved}
	f.svc = NewAppointmentService(f.repo, stubArtists{repo: f.repo}, f.requests).(*appointmentService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) seed(clientID uuid.UUID, status model.Status, offset time.Duration) uuid.UUID {
	id := uuid.New()
	f.repo.rows[id] = model.Appointment{
		ID: id, ClientID: clientID, ArtistID: f.artistID,
		ScheduledDate: f.now.Add(offset), Status: status,
		DurationHours: decimal.NewFromInt(2),
	}
	return id
}

func (f *fixture) bookRequest() model.BookRequest {
	when := f.now.Add(72 * time.Hour)
	return model.BookRequest{ArtistID: f.artistID.String(), ScheduledDate: &when}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

// ---- book ----

func TestBook_DefaultsAndForcedFields(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Book(context.Background(), f.clientA, f.bookRequest())
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, resp.Status)
	assert.Equal(t, "mira", resp.Artist.Name)
	assert.True(t, resp.DurationHours.Equal(decimal.NewFromInt(2)))
	assert.Nil(t, resp.TattooRequest)

	stored := f.repo.rows[resp.ID]
	assert.Equal(t, f.clientA, stored.ClientID)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestBook_WithApprovedRequest(t *testing.T) {
	f := newFixture()
	reqID := uuid.New()
	f.repo.approved[reqID] = approvedRequest{clientID: f.clientA, title: "Koi sleeve"}

	in := f.bookRequest()
	in.TattooRequestID = reqID.String()
	resp, err := f.svc.Book(context.Background(), f.clientA, in)
	require.NoError(t, err)

	require.NotNil(t, resp.TattooRequest)
	assert.Equal(t, "Koi sleeve", resp.TattooRequest.Title)
}

func TestBook_RejectsForeignOrUnapprovedRequest(t *testing.T) {
	f := newFixture()
	foreign := uuid.New()
	f.repo.approved[foreign] = approvedRequest{clientID: f.clientB, title: "not yours"}

	for name, id := range map[string]uuid.UUID{"foreign": foreign, "unknown or unapproved": uuid.New()} {
		t.Run(name, func(t *testing.T) {
			in := f.bookRequest()
			in.TattooRequestID = id.String()

			_, err := f.svc.Book(context.Background(), f.clientA, in)
			verrs := fieldErrors(t, err)
			assert.EqualError(t, verrs["tattoo_request_id"], model.MsgInvalidChoice)
		})
	}
	assert.Empty(t, f.repo.rows, "rejected, never silently nulled")
}

func TestBook_RequestNoLongerSelectableAtInsert(t *testing.T) {
	f := newFixture()
	reqID := uuid.New()
	// service-level check thấy approved, repository thì không
	f.svc.requests = stubRequests{approved: map[uuid.UUID]approvedRequest{reqID: {clientID: f.clientA}}}

	in := f.bookRequest()
	in.TattooRequestID = reqID.String()
	_, err := f.svc.Book(context.Background(), f.clientA, in)

	verrs := fieldErrors(t, err)
	assert.Contains(t, verrs, "tattoo_request_id")
	assert.Empty(t, f.repo.rows)
}

func TestBook_UnknownArtist(t *testing.T) {
	f := newFixture()
	in := f.bookRequest()
	in.ArtistID = uuid.NewString()

	_, err := f.svc.Book(context.Background(), f.clientA, in)
	verrs := fieldErrors(t, err)
	assert.EqualError(t, verrs["artist_id"], model.MsgInvalidChoice)
}

func TestBook_DurationBounds(t *testing.T) {
	f := newFixture()
	for _, tc := range []struct {
		value string
		ok    bool
	}{{"0.5", true}, {"8.0", true}, {"0.25", false}, {"8.5", false}, {"1.7", false}} {
		in := f.bookRequest()
		d := decimal.RequireFromString(tc.value)
		in.DurationHours = &d

		_, err := f.svc.Book(context.Background(), f.clientA, in)
		if tc.ok {
			assert.NoError(t, err, tc.value)
		} else {
			assert.Contains(t, fieldErrors(t, err), "duration_hours", tc.value)
		}
	}
}

func TestBookingOptions(t *testing.T) {
	f := newFixture()
	f.repo.approved[uuid.New()] = approvedRequest{clientID: f.clientA, title: "mine"}
	f.repo.approved[uuid.New()] = approvedRequest{clientID: f.clientB, title: "theirs"}

	opts, err := f.svc.BookingOptions(context.Background(), f.clientA)
	require.NoError(t, err)
	assert.Len(t, opts.Artists, 1)
	require.Len(t, opts.TattooRequests, 1)
	assert.Equal(t, "mine", opts.TattooRequests[0].Title)
	assert.Equal(t, "2.0", opts.Defaults["duration_hours"])
	assert.Equal(t, "Select your preferred artist", opts.Help["artist_id"])
}

// ---- cancel / reschedule ----

func TestCancel(t *testing.T) {
	f := newFixture()

	tests := []struct {
		status model.Status
		ok     bool
	}{
		{model.StatusPending, true},
		{model.StatusConfirmed, true},
		{model.StatusCancelled, false},
		{model.StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			id := f.seed(f.clientA, tt.status, 48*time.Hour)

			_, getErr := f.svc.GetCancellable(context.Background(), f.clientA, id)
			resp, err := f.svc.Cancel(context.Background(), f.clientA, id)
			if tt.ok {
				require.NoError(t, getErr)
				require.NoError(t, err)
				assert.Equal(t, model.StatusCancelled, resp.Status)
				return
			}
			assert.ErrorIs(t, getErr, model.ErrAppointmentNotFound)
			assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
			assert.Equal(t, tt.status, f.repo.rows[id].Status)
		})
	}
}

func TestCrossClientAccessIsNotFound(t *testing.T) {
	f := newFixture()
	id := f.seed(f.clientB, model.StatusConfirmed, 48*time.Hour)

	_, err := f.svc.GetCancellable(context.Background(), f.clientA, id)
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)

	_, err = f.svc.Cancel(context.Background(), f.clientA, id)
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)

	_, err = f.svc.Reschedule(context.Background(), f.clientA, id)
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)

	assert.Equal(t, model.StatusConfirmed, f.repo.rows[id].Status)
}

func TestReschedule(t *testing.T) {
	f := newFixture()
	confirmed := f.seed(f.clientA, model.StatusConfirmed, 48*time.Hour)
	pending := f.seed(f.clientA, model.StatusPending, 48*time.Hour)

	resp, err := f.svc.Reschedule(context.Background(), f.clientA, confirmed)
	require.NoError(t, err)
	assert.Equal(t, "Please contact your artist to reschedule.", resp.Message)
	assert.Equal(t, "/appointments/", resp.Redirect)
	assert.Equal(t, model.StatusConfirmed, f.repo.rows[confirmed].Status)

	_, err = f.svc.Reschedule(context.Background(), f.clientA, pending)
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
}

// ---- list ----

func TestList_Filters(t *testing.T) {
	f := newFixture()
	f.seed(f.clientA, model.StatusPending, 24*time.Hour)
	f.seed(f.clientA, model.StatusConfirmed, 0) // scheduled == now vẫn thuộc filter upcoming
	f.seed(f.clientA, model.StatusConfirmed, -24*time.Hour)
	f.seed(f.clientA, model.StatusCancelled, 24*time.Hour)
	f.seed(f.clientA, model.StatusCompleted, -48*time.Hour)
	f.seed(f.clientB, model.StatusPending, 24*time.Hour)

	counts := map[string]int{
		"":          5,
		"all":       5,
		"bogus":     5,
		"upcoming":  2,
		"pending":   1,
		"confirmed": 2,
		"cancelled": 1,
		"completed": 1,
	}
	for raw, want := range counts {
		t.Run("filter="+raw, func(t *testing.T) {
			list, page, err := f.svc.List(context.Background(), f.clientA, raw, "")
			require.NoError(t, err)
			assert.Len(t, list.Appointments, want)
			assert.Equal(t, want, page.Total)
			assert.Equal(t, raw, list.Filter)
		})
	}
}

func TestList_PaginationAndOrder(t *testing.T) {
	f := newFixture()
	for i := 0; i < 23; i++ {
		f.seed(f.clientA, model.StatusPending, time.Duration(i)*time.Hour)
	}

	list, page, err := f.svc.List(context.Background(), f.clientA, "all", "")
	require.NoError(t, err)
	assert.Len(t, list.Appointments, 10)
	assert.Equal(t, 3, page.NumPages)
	assert.Equal(t, f.now.Add(22*time.Hour), list.Appointments[0].ScheduledDate, "scheduled_date DESC")

	list, page, err = f.svc.List(context.Background(), f.clientA, "all", "last")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Len(t, list.Appointments, 3)

	for _, bad := range []string{"4", "0", "x"} {
		_, _, err = f.svc.List(context.Background(), f.clientA, "all", bad)
		assert.ErrorIs(t, err, utils.ErrInvalidPage, bad)
	}
}

func TestList_EmptyFirstPageIsValid(t *testing.T) {
	f := newFixture()

	list, page, err := f.svc.List(context.Background(), f.clientA, "", "1")
	require.NoError(t, err)
	assert.Empty(t, list.Appointments)
	assert.Equal(t, 1, page.NumPages)
}

func TestListUpcomingAndCounts(t *testing.T) {
	f := newFixture()
	for i := 1; i <= 7; i++ {
		f.seed(f.clientA, model.StatusConfirmed, time.Duration(i)*time.Hour)
	}
	f.seed(f.clientA, model.StatusCompleted, -time.Hour)
	f.seed(f.clientA, model.StatusCancelled, time.Hour)

	upcoming, err := f.svc.ListUpcoming(context.Background(), f.clientA, model.UpcomingLimit)
	require.NoError(t, err)
	require.Len(t, upcoming, 5)
	assert.Equal(t, f.now.Add(time.Hour), upcoming[0].ScheduledDate, "scheduled_date ASC")

	n, err := f.svc.CountUpcoming(context.Background(), f.clientA)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = f.svc.CountCompleted(context.Background(), f.clientA)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBook_RepositoryErrorPropagates(t *testing.T) {
	f := newFixture()
	f.svc.repo = failingRepo{memoryAppointmentRepo: f.repo}

	_, err := f.svc.Book(context.Background(), f.clientA, f.bookRequest())
	require.Error(t, err)
	var verrs validation.Errors
	assert.False(t, errors.As(err, &verrs))
}

type failingRepo struct {
	*memoryAppointmentRepo
}

func (failingRepo) Create(context.Context, *model.Appointment) error {
	return errors.New("connection reset")
}
