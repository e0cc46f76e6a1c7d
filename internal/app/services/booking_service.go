package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/app/repositories"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/logger"
	"github.com/sachin/campushub/internal/pkg/timeslot"
)

const bookingDateLayout = "2006-01-02"

// BookingLister extends the transactional booking store with the paginated
// listing used by the read endpoints.
type BookingLister interface {
	repositories.BookingStore
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Booking, error)
	CountAll(ctx context.Context) (int64, error)
}

// BookingService manages venue bookings. A booking is accepted only when its
// time window does not overlap any accepted booking for the same venue and
// date; the check and the write run in one transaction.
type BookingService struct {
	store BookingLister
}

// NewBookingService creates a new booking service
func NewBookingService(store BookingLister) *BookingService {
	return &BookingService{
		store: store,
	}
}

// CreateBooking validates and stores a new booking for the requesting user
func (s *BookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest, userID int64) (*models.Booking, error) {
	window, date, err := parseBookingWindow(req.StartTime, req.EndTime, req.Date)
	if err != nil {
		return nil, err
	}

	if err := validateBookingDetail(req.Detail); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Venue:     req.Venue,
		Date:      date,
		StartTime: window.Start.String(),
		EndTime:   window.End.String(),
		Detail:    req.Detail,
		BookedBy:  userID,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, store repositories.BookingStore) error {
		if err := checkVenueConflict(ctx, store, booking.Venue, date, window, 0); err != nil {
			return err
		}
		return store.Insert(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("bookingId", booking.ID).
		Str("venue", booking.Venue).
		Msg("Booking created")

	return booking, nil
}

// UpdateBooking replaces an existing booking. The conflict check excludes the
// booking being updated, so shrinking or shifting within its own window is
// always allowed.
func (s *BookingService) UpdateBooking(ctx context.Context, id int64, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	window, date, err := parseBookingWindow(req.StartTime, req.EndTime, req.Date)
	if err != nil {
		return nil, err
	}

	if err := validateBookingDetail(req.Detail); err != nil {
		return nil, err
	}

	var booking *models.Booking
	err = s.store.WithTx(ctx, func(ctx context.Context, store repositories.BookingStore) error {
		existing, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := checkVenueConflict(ctx, store, req.Venue, date, window, id); err != nil {
			return err
		}

		existing.Venue = req.Venue
		existing.Date = date
		existing.StartTime = window.Start.String()
		existing.EndTime = window.End.String()
		existing.Detail = req.Detail

		if err := store.Update(ctx, existing); err != nil {
			return err
		}

		booking = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBookingByID retrieves a single booking
func (s *BookingService) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	return s.store.GetByID(ctx, id)
}

// GetAllBookings retrieves a page of bookings together with the total count
func (s *BookingService) GetAllBookings(ctx context.Context, offset uint64, limit int) ([]*models.Booking, int64, error) {
	bookings, err := s.store.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// DeleteBooking removes a booking
func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// checkVenueConflict rejects the proposed window when it overlaps any stored
// booking for the same venue and date. Stored windows that no longer parse
// fail the check rather than being silently skipped.
func checkVenueConflict(ctx context.Context, store repositories.BookingStore, venue string, date time.Time, window timeslot.Interval, excludeID int64) error {
	existing, err := store.ListForVenueDate(ctx, venue, date, excludeID)
	if err != nil {
		return err
	}

	for _, b := range existing {
		stored, err := timeslot.New(b.StartTime, b.EndTime)
		if err != nil {
			return fmt.Errorf("stored booking %d has invalid time window: %w", b.ID, err)
		}
		if window.Overlaps(stored) {
			return &apperrors.CustomError{
				Err: apperrors.ErrBookingOverlap,
				Message: fmt.Sprintf("venue %s is already booked from %s to %s on %s",
					venue, b.StartTime, b.EndTime, date.Format(bookingDateLayout)),
			}
		}
	}

	return nil
}

func validateBookingDetail(detail models.BookingDetail) error {
	if !detail.VenueType.Valid() {
		return fmt.Errorf("%w: unknown venue type %q", apperrors.ErrValidationFailed, detail.VenueType)
	}
	for _, resource := range detail.Resources {
		if !resource.Valid() {
			return fmt.Errorf("%w: unknown resource %q", apperrors.ErrValidationFailed, resource)
		}
	}
	return nil
}

func parseBookingWindow(startTime, endTime, dateStr string) (timeslot.Interval, time.Time, error) {
	window, err := timeslot.New(startTime, endTime)
	if err != nil {
		return timeslot.Interval{}, time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err)
	}

	date, err := time.Parse(bookingDateLayout, dateStr)
	if err != nil {
		return timeslot.Interval{}, time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	return window, date, nil
}
