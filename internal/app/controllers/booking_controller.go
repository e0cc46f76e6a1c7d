package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/app/services"
	"github.com/sachin/campushub/internal/middleware"
	"github.com/sachin/campushub/internal/pkg/helpers"
)

// BookingController handles venue booking operations
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

func parseBookingID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking ID")
		errorDetail = errorDetail.WithDetails("Booking ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateBooking handles booking creation
// @Summary Book a venue
// @Description Reserves a venue for a time window on a date. The booking is rejected when the window overlaps an accepted booking for the same venue and date.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Booking information"
// @Success 201 {object} dto.APIResponse{data=models.Booking} "Booking created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Venue already booked during the requested window"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	booking, err := c.bookingService.CreateBooking(ctx, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      booking,
		Timestamp: time.Now(),
	})
}

// GetBookingByID retrieves a booking by ID
// @Summary Get booking details
// @Description Retrieves a single venue booking by its ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Booking} "Booking retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid booking ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id} [get]
func (c *BookingController) GetBookingByID(ctx *gin.Context) {
	id, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.bookingService.GetBookingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      booking,
		Timestamp: time.Now(),
	})
}

// GetAllBookings retrieves a page of bookings
// @Summary List bookings
// @Description Retrieves a paginated list of venue bookings, newest dates first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Bookings retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings [get]
func (c *BookingController) GetAllBookings(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	bookings, total, err := c.bookingService.GetAllBookings(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.PaginatedResponse{
			Items:      bookings,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateBooking updates an existing booking
// @Summary Update a booking
// @Description Replaces an existing booking. The conflict check excludes the booking being updated.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID" Format(int64) minimum(1)
// @Param request body dto.UpdateBookingRequest true "Booking information"
// @Success 200 {object} dto.APIResponse{data=models.Booking} "Booking updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Failure 409 {object} dto.ErrorResponse "Venue already booked during the requested window"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id} [put]
func (c *BookingController) UpdateBooking(ctx *gin.Context) {
	id, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	booking, err := c.bookingService.UpdateBooking(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      booking,
		Timestamp: time.Now(),
	})
}

// DeleteBooking removes a booking
// @Summary Delete a booking
// @Description Cancels a venue booking, freeing its time window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Booking deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid booking ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookings/{id} [delete]
func (c *BookingController) DeleteBooking(ctx *gin.Context) {
	id, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	if err := c.bookingService.DeleteBooking(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Booking deleted successfully"))
}
