package models

import "time"

// Course represents a catalog course
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"` // unique course code
	Description string    `json:"description" db:"description"`
	Program     string    `json:"program" db:"program"`
	Year        int       `json:"year" db:"year"`
	Semester    int       `json:"semester" db:"semester"`
	Credits     int       `json:"credits" db:"credits"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
