package models

import "time"

// BookingDetail describes what the venue is and which equipment the booking
// requests.
type BookingDetail struct {
	VenueType VenueType      `json:"venueType"`
	Resources []ResourceType `json:"resources,omitempty"`
}

// Booking reserves a physical venue for a half-open [StartTime, EndTime)
// window on a single date. Accepted bookings for the same venue and date
// never overlap.
type Booking struct {
	ID        int64         `json:"id" db:"id"`
	Venue     string        `json:"venue" db:"venue"`
	Date      time.Time     `json:"date" db:"booking_date"`    // calendar date, no time component
	StartTime string        `json:"startTime" db:"start_time"` // "HH:MM"
	EndTime   string        `json:"endTime" db:"end_time"`     // "HH:MM"
	Detail    BookingDetail `json:"detail" db:"detail"`        // stored as JSONB
	BookedBy  int64         `json:"bookedBy" db:"booked_by"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}
