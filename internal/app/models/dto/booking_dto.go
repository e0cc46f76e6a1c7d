package dto

import "github.com/sachin/campushub/internal/app/models"

// CreateBookingRequest carries a proposed venue booking. Times are wall-clock
// "HH:MM" strings on the given date.
type CreateBookingRequest struct {
	Venue     string               `json:"venue" binding:"required"`
	Date      string               `json:"date" binding:"required"` // "2006-01-02"
	StartTime string               `json:"startTime" binding:"required"`
	EndTime   string               `json:"endTime" binding:"required"`
	Detail    models.BookingDetail `json:"detail" binding:"required"`
}

// UpdateBookingRequest carries a full replacement for an existing booking;
// the conflict check excludes the booking being updated.
type UpdateBookingRequest struct {
	Venue     string               `json:"venue" binding:"required"`
	Date      string               `json:"date" binding:"required"`
	StartTime string               `json:"startTime" binding:"required"`
	EndTime   string               `json:"endTime" binding:"required"`
	Detail    models.BookingDetail `json:"detail" binding:"required"`
}
