package dto

import "github.com/sachin/campushub/internal/app/models"

// CreateTimetableRequest carries a new cohort timetable
type CreateTimetableRequest struct {
	GroupID  string               `json:"groupId" binding:"required"`
	Year     int                  `json:"year" binding:"required"`
	Semester int                  `json:"semester" binding:"required"`
	Program  string               `json:"program" binding:"required"`
	Type     models.TimetableType `json:"type" binding:"required"`
	Days     []models.DaySchedule `json:"days"`
}

// UpdateTimetableRequest carries a full or partial timetable replacement.
// Nil fields are left unchanged.
type UpdateTimetableRequest struct {
	Year     *int                  `json:"year,omitempty"`
	Semester *int                  `json:"semester,omitempty"`
	Program  *string               `json:"program,omitempty"`
	Type     *models.TimetableType `json:"type,omitempty"`
	Days     *[]models.DaySchedule `json:"days,omitempty"`
}

// TimetableUpdateResponse reports the updated timetable together with the
// outcome of the notification fan-out to its cohort.
type TimetableUpdateResponse struct {
	Timetable *models.Timetable `json:"timetable"`
	Notified  int               `json:"notified"`
	Failed    []int64           `json:"failed,omitempty"`
}
