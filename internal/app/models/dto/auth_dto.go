package dto

import "github.com/sachin/campushub/internal/app/models"

// RegisterRequest carries the admin-initiated user registration payload.
// Year, Semester and DayType are required exactly when Role is STUDENT.
type RegisterRequest struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"required"`
	MobileNo     string          `json:"mobileNo" binding:"required"`
	UniversityID string          `json:"universityId" binding:"required"`
	Password     string          `json:"password" binding:"required"`
	Role         models.RoleType `json:"role" binding:"required"`
	Faculty      string          `json:"faculty" binding:"required"`
	Department   string          `json:"department" binding:"required"`
	Program      string          `json:"program" binding:"required"`
	Year         *int            `json:"year,omitempty"`
	Semester     *int            `json:"semester,omitempty"`
	DayType      *models.DayType `json:"dayType,omitempty"`
}

// LoginRequest carries login credentials; either email or university ID
// identifies the account.
type LoginRequest struct {
	Email        string `json:"email,omitempty"`
	UniversityID string `json:"universityId,omitempty"`
	Password     string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
