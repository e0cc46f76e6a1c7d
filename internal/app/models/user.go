package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                    // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Jane Silva"`                       // Full name
	Email        string    `json:"email" db:"email" example:"jane@campus.edu"`                // Unique email address
	MobileNo     string    `json:"mobileNo" db:"mobile_no" example:"0771234567"`              // Ten digit mobile number
	UniversityID string    `json:"universityId" db:"university_id" example:"IT21430432"`      // Unique university identifier
	Password     string    `json:"-" db:"password"`                                           // Hashed password (excluded from JSON)
	Role         RoleType  `json:"role" db:"role" example:"STUDENT"`                          // ADMIN, FACULTY or STUDENT
	Faculty      string    `json:"faculty" db:"faculty" example:"Computing"`                  // Faculty the user belongs to
	Department   string    `json:"department" db:"department" example:"Computing CS"`         // Primary department name
	Program      string    `json:"program" db:"program" example:"BSc (Hons) in IT"`           // Study or employment program
	GroupName    *string   `json:"groupName,omitempty" db:"group_name"`                       // Cohort label; set only for students
	Year         *int      `json:"year,omitempty" db:"year" example:"1"`                      // Academic year (students only)
	Semester     *int      `json:"semester,omitempty" db:"semester" example:"2"`              // Semester (students only)
	DayType      *DayType  `json:"dayType,omitempty" db:"day_type" example:"WE"`              // WD or WE (students only)
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`  // Last update timestamp
}

// IsStudent reports whether the user carries the student role
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// Notification is an entry in a user's owned notification list. Notifications
// have no standalone API surface; they are read and marked through the owner.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
