package models

import "time"

// Enrollment links a student to a catalog course. A student is enrolled in a
// course at most once. Course and Student are populated on reads, not stored.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Course  *Course `json:"course,omitempty"`
	Student *User   `json:"student,omitempty"`
}
