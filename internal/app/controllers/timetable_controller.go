package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/app/services"
	"github.com/sachin/campushub/internal/middleware"
)

// TimetableController handles cohort timetable operations
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// CreateTimetable handles timetable creation
// @Summary Create a timetable
// @Description Creates the timetable for a cohort; each cohort has at most one
// @Tags timetables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimetableRequest true "Timetable information"
// @Success 201 {object} dto.APIResponse{data=models.Timetable} "Timetable created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Timetable already exists for this group"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables [post]
func (c *TimetableController) CreateTimetable(ctx *gin.Context) {
	var req dto.CreateTimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timetable data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	timetable, err := c.timetableService.CreateTimetable(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      timetable,
		Timestamp: time.Now(),
	})
}

// GetTimetableByGroupID retrieves a cohort's timetable
// @Summary Get a timetable
// @Description Retrieves the timetable for a cohort by its group identifier
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Cohort group identifier" example(Y1.S2.WE.COMPUTING.1)
// @Success 200 {object} dto.APIResponse{data=models.Timetable} "Timetable retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Timetable not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{groupId} [get]
func (c *TimetableController) GetTimetableByGroupID(ctx *gin.Context) {
	timetable, err := c.timetableService.GetTimetableByGroupID(ctx, ctx.Param("groupId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      timetable,
		Timestamp: time.Now(),
	})
}

// GetAllTimetables retrieves all timetables
// @Summary List timetables
// @Description Retrieves all cohort timetables
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Timetable} "Timetables retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables [get]
func (c *TimetableController) GetAllTimetables(ctx *gin.Context) {
	timetables, err := c.timetableService.GetAllTimetables(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      timetables,
		Timestamp: time.Now(),
	})
}

// UpdateTimetable updates a timetable and notifies its cohort
// @Summary Update a timetable
// @Description Applies the provided fields to a cohort's timetable and notifies every student of the cohort. The response reports the fan-out outcome.
// @Tags timetables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Cohort group identifier" example(Y1.S2.WE.COMPUTING.1)
// @Param request body dto.UpdateTimetableRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.TimetableUpdateResponse} "Timetable updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Timetable not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{groupId} [put]
func (c *TimetableController) UpdateTimetable(ctx *gin.Context) {
	var req dto.UpdateTimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timetable data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	timetable, result, err := c.timetableService.UpdateTimetable(ctx, ctx.Param("groupId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.TimetableUpdateResponse{
			Timetable: timetable,
			Notified:  result.Notified,
			Failed:    result.Failed,
		},
		Timestamp: time.Now(),
	})
}

// DeleteTimetable removes a cohort's timetable
// @Summary Delete a timetable
// @Description Removes the timetable for a cohort
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Cohort group identifier" example(Y1.S2.WE.COMPUTING.1)
// @Success 200 {object} dto.APIResponse "Timetable deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Timetable not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{groupId} [delete]
func (c *TimetableController) DeleteTimetable(ctx *gin.Context) {
	if err := c.timetableService.DeleteTimetable(ctx, ctx.Param("groupId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Timetable deleted successfully"))
}
