package dto

// EnrollRequest enrolls a student in a catalog course
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"7"`
	CourseID  int64 `json:"courseId" binding:"required" example:"3"`
}
