package models

import "time"

// Session is one scheduled class within a timetable day
type Session struct {
	CourseCode string      `json:"courseCode"`
	Kind       SessionKind `json:"kind"`
	StartTime  string      `json:"startTime"` // "HH:MM"
	EndTime    string      `json:"endTime"`   // "HH:MM"
	Instructor string      `json:"instructor"`
	Location   string      `json:"location"`
}

// DaySchedule groups the sessions of a single weekday
type DaySchedule struct {
	Day      string    `json:"day"`
	Sessions []Session `json:"sessions"`
}

// Timetable is the weekly schedule of one cohort. GroupID is unique across
// all timetables and matches the cohort label on student records.
type Timetable struct {
	ID        int64         `json:"id" db:"id"`
	GroupID   string        `json:"groupId" db:"group_id"`
	Year      int           `json:"year" db:"year"`
	Semester  int           `json:"semester" db:"semester"`
	Program   string        `json:"program" db:"program"`
	Type      TimetableType `json:"type" db:"type"`
	Days      []DaySchedule `json:"days" db:"days"` // stored as JSONB
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}
