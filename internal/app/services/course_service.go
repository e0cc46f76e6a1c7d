package services

import (
	"context"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/app/repositories"
)

// CourseService manages the course catalog
type CourseService struct {
	courses *repositories.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(courses *repositories.CourseRepository) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// CreateCourse stores a new catalog course; the course code must be unique
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Program:     req.Program,
		Year:        req.Year,
		Semester:    req.Semester,
		Credits:     req.Credits,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// GetAllCourses retrieves the full catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// UpdateCourse replaces an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Code = req.Code
	course.Description = req.Description
	course.Program = req.Program
	course.Year = req.Year
	course.Semester = req.Semester
	course.Credits = req.Credits

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course from the catalog
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
