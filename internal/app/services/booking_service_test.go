package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/app/repositories"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

// fakeBookingStore keeps bookings in memory. WithTx runs fn against the same
// store; transactional atomicity is the real store's concern.
type fakeBookingStore struct {
	nextID   int64
	bookings map[int64]*models.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[int64]*models.Booking)}
}

func (f *fakeBookingStore) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingStore) ListForVenueDate(_ context.Context, venue string, date time.Time, excludeID int64) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.Venue == venue && b.Date.Equal(date) && b.ID != excludeID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Insert(_ context.Context, booking *models.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingStore) Update(_ context.Context, booking *models.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return apperrors.ErrBookingNotFound
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return apperrors.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) WithTx(ctx context.Context, fn func(ctx context.Context, store repositories.BookingStore) error) error {
	return fn(ctx, f)
}

func (f *fakeBookingStore) GetAll(_ context.Context, _ uint64, _ int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookingStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func lectureHallDetail() models.BookingDetail {
	return models.BookingDetail{
		VenueType: models.VenueLectureHall,
		Resources: []models.ResourceType{models.ResourceProjector},
	}
}

func createReq(venue, date, start, end string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Venue:     venue,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Detail:    lectureHallDetail(),
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)

	// Contained within the existing window.
	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:30", "10:30"), 2)
	assert.ErrorIs(t, err, apperrors.ErrBookingOverlap)

	// Partial overlap at the front.
	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "08:00", "09:01"), 2)
	assert.ErrorIs(t, err, apperrors.ErrBookingOverlap)
}

func TestCreateBookingAcceptsAdjacentAndDisjoint(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)

	// Back-to-back windows share only the boundary instant.
	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "11:00", "12:00"), 2)
	assert.NoError(t, err)

	// Same window, different venue.
	_, err = svc.CreateBooking(ctx, createReq("A401", "2024-02-25", "09:00", "11:00"), 2)
	assert.NoError(t, err)

	// Same venue and window, different date.
	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-26", "09:00", "11:00"), 2)
	assert.NoError(t, err)
}

func TestCreateBookingValidatesWindow(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "11:00", "11:00"), 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "9am", "11:00"), 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateBooking(ctx, createReq("B502", "25/02/2024", "09:00", "11:00"), 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateBookingValidatesDetail(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())
	ctx := context.Background()

	req := createReq("B502", "2024-02-25", "09:00", "11:00")
	req.Detail.VenueType = "BROOM_CLOSET"
	_, err := svc.CreateBooking(ctx, req, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = createReq("B502", "2024-02-25", "09:00", "11:00")
	req.Detail.Resources = append(req.Detail.Resources, "WHITEBOARD")
	_, err = svc.CreateBooking(ctx, req, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateBookingKeepsDetail(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	created, err := svc.CreateBooking(context.Background(), createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)
	assert.Equal(t, models.VenueLectureHall, created.Detail.VenueType)
	assert.Equal(t, []models.ResourceType{models.ResourceProjector}, created.Detail.Resources)
}

func TestUpdateBookingExcludesItself(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)

	// Shifting within its own window must not conflict with itself.
	updated, err := svc.UpdateBooking(ctx, created.ID, &dto.UpdateBookingRequest{
		Venue:     "B502",
		Date:      "2024-02-25",
		StartTime: "09:30",
		EndTime:   "10:30",
		Detail:    lectureHallDetail(),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", updated.StartTime)
	assert.Equal(t, "10:30", updated.EndTime)
}

func TestUpdateBookingRejectsOverlapWithOthers(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)

	second, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "11:00", "12:00"), 2)
	require.NoError(t, err)

	_, err = svc.UpdateBooking(ctx, second.ID, &dto.UpdateBookingRequest{
		Venue:     "B502",
		Date:      "2024-02-25",
		StartTime: "10:30",
		EndTime:   "12:00",
		Detail:    lectureHallDetail(),
	})
	assert.ErrorIs(t, err, apperrors.ErrBookingOverlap)
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	_, err := svc.UpdateBooking(context.Background(), 42, &dto.UpdateBookingRequest{
		Venue:     "B502",
		Date:      "2024-02-25",
		StartTime: "09:00",
		EndTime:   "10:00",
		Detail:    lectureHallDetail(),
	})
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:00", "11:00"), 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteBooking(ctx, created.ID), apperrors.ErrBookingNotFound)

	// The freed window is bookable again.
	_, err = svc.CreateBooking(ctx, createReq("B502", "2024-02-25", "09:30", "10:30"), 2)
	assert.NoError(t, err)
}
