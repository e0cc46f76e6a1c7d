package services

import (
	"context"
	"fmt"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/repositories"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

// NotificationStore is the persistence surface for user-owned notifications
type NotificationStore interface {
	NotificationAppender
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

// UserService handles user directory lookups and each user's owned
// notification list.
type UserService struct {
	users         *repositories.UserRepository
	notifications NotificationStore
	timetables    TimetableStore
}

// NewUserService creates a new user service
func NewUserService(users *repositories.UserRepository, notifications NotificationStore, timetables TimetableStore) *UserService {
	return &UserService{
		users:         users,
		notifications: notifications,
		timetables:    timetables,
	}
}

// GetUserByID retrieves a single user
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetAllUsers retrieves a page of users together with the total count
func (s *UserService) GetAllUsers(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error) {
	users, err := s.users.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetUsersByRole retrieves all users carrying the given role
func (s *UserService) GetUsersByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return s.users.GetByRole(ctx, role)
}

// GetMyNotifications retrieves the requesting user's notifications
func (s *UserService) GetMyNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkNotificationRead flags one of the requesting user's notifications as
// read. Another user's notification is indistinguishable from a missing one.
func (s *UserService) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	return s.notifications.MarkRead(ctx, userID, notificationID)
}

// GetMyTimetable retrieves the timetable of the requesting student's cohort
func (s *UserService) GetMyTimetable(ctx context.Context, userID int64) (*models.Timetable, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsStudent() || user.GroupName == nil {
		return nil, fmt.Errorf("%w: user %d has no cohort", apperrors.ErrTimetableNotFound, userID)
	}

	return s.timetables.GetByGroupID(ctx, *user.GroupName)
}
