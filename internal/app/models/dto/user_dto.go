package dto

import (
	"time"

	"github.com/sachin/campushub/internal/app/models"
)

// UserResponse is the public view of a user record
type UserResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	MobileNo     string          `json:"mobileNo"`
	UniversityID string          `json:"universityId"`
	Role         models.RoleType `json:"role"`
	Faculty      string          `json:"faculty"`
	Department   string          `json:"department"`
	Program      string          `json:"program"`
	GroupName    *string         `json:"groupName,omitempty"`
	Year         *int            `json:"year,omitempty"`
	Semester     *int            `json:"semester,omitempty"`
	DayType      *models.DayType `json:"dayType,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		MobileNo:     u.MobileNo,
		UniversityID: u.UniversityID,
		Role:         u.Role,
		Faculty:      u.Faculty,
		Department:   u.Department,
		Program:      u.Program,
		GroupName:    u.GroupName,
		Year:         u.Year,
		Semester:     u.Semester,
		DayType:      u.DayType,
		CreatedAt:    u.CreatedAt,
	}
}
