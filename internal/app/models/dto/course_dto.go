package dto

// CreateCourseRequest carries a new catalog course
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
	Program     string `json:"program" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Semester    int    `json:"semester" binding:"required"`
	Credits     int    `json:"credits" binding:"required"`
}

// UpdateCourseRequest carries a full course replacement
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
	Program     string `json:"program" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Semester    int    `json:"semester" binding:"required"`
	Credits     int    `json:"credits" binding:"required"`
}
