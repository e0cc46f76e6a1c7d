package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/db"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/logger"
	"github.com/sachin/campushub/internal/pkg/timeslot"
)

// TimetableUpdateMessage is the notification appended to every student of a
// cohort whose timetable changed.
const TimetableUpdateMessage = "Timetable for your group has been updated. Please check the changes."

// TimetableStore is the persistence surface for cohort timetables
type TimetableStore interface {
	Create(ctx context.Context, timetable *models.Timetable) error
	GetByGroupID(ctx context.Context, groupID string) (*models.Timetable, error)
	GetAll(ctx context.Context) ([]*models.Timetable, error)
	Update(ctx context.Context, timetable *models.Timetable) error
	DeleteByGroupID(ctx context.Context, groupID string) error
}

// StudentRoster resolves the recipients of a cohort-wide notification
type StudentRoster interface {
	GetStudentsByGroup(ctx context.Context, groupName string) ([]*models.User, error)
}

// NotificationAppender appends a notification to one user's list
type NotificationAppender interface {
	Append(ctx context.Context, userID int64, message string) error
}

// PropagationResult reports the outcome of a notification fan-out: how many
// recipients were notified and which ones failed. A partial failure never
// rolls back the notifications that succeeded.
type PropagationResult struct {
	Notified int
	Failed   []int64
}

// TimetableService manages cohort timetables and propagates change
// notifications to the affected students.
type TimetableService struct {
	timetables    TimetableStore
	roster        StudentRoster
	notifications NotificationAppender
	cache         *db.Cache
}

// NewTimetableService creates a new timetable service. cache may be nil.
func NewTimetableService(timetables TimetableStore, roster StudentRoster, notifications NotificationAppender, cache *db.Cache) *TimetableService {
	return &TimetableService{
		timetables:    timetables,
		roster:        roster,
		notifications: notifications,
		cache:         cache,
	}
}

func timetableCacheKey(groupID string) string {
	return "timetable:" + groupID
}

// CreateTimetable stores a new cohort timetable. The group identifier must
// not already have one.
func (s *TimetableService) CreateTimetable(ctx context.Context, req *dto.CreateTimetableRequest) (*models.Timetable, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: type must be WEEKDAY or WEEKEND", apperrors.ErrValidationFailed)
	}
	if err := validateDays(req.Days); err != nil {
		return nil, err
	}

	timetable := &models.Timetable{
		GroupID:  req.GroupID,
		Year:     req.Year,
		Semester: req.Semester,
		Program:  req.Program,
		Type:     req.Type,
		Days:     req.Days,
	}

	if err := s.timetables.Create(ctx, timetable); err != nil {
		return nil, err
	}

	return timetable, nil
}

// GetTimetableByGroupID retrieves the timetable for a cohort, preferring the
// cache when available.
func (s *TimetableService) GetTimetableByGroupID(ctx context.Context, groupID string) (*models.Timetable, error) {
	var cached models.Timetable
	if err := s.cache.Get(ctx, timetableCacheKey(groupID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, db.ErrCacheMiss) {
		logger.Warn().Err(err).Str("groupId", groupID).Msg("Timetable cache read failed")
	}

	timetable, err := s.timetables.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, timetableCacheKey(groupID), timetable); err != nil {
		logger.Warn().Err(err).Str("groupId", groupID).Msg("Timetable cache write failed")
	}

	return timetable, nil
}

// GetAllTimetables retrieves all timetables
func (s *TimetableService) GetAllTimetables(ctx context.Context) ([]*models.Timetable, error) {
	return s.timetables.GetAll(ctx)
}

// UpdateTimetable applies the non-nil fields of req to the cohort's timetable
// and notifies every student of the cohort. The returned result reports the
// fan-out outcome; a failed notification does not fail the update.
func (s *TimetableService) UpdateTimetable(ctx context.Context, groupID string, req *dto.UpdateTimetableRequest) (*models.Timetable, PropagationResult, error) {
	timetable, err := s.timetables.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, PropagationResult{}, err
	}

	if req.Year != nil {
		timetable.Year = *req.Year
	}
	if req.Semester != nil {
		timetable.Semester = *req.Semester
	}
	if req.Program != nil {
		timetable.Program = *req.Program
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, PropagationResult{}, fmt.Errorf("%w: type must be WEEKDAY or WEEKEND", apperrors.ErrValidationFailed)
		}
		timetable.Type = *req.Type
	}
	if req.Days != nil {
		if err := validateDays(*req.Days); err != nil {
			return nil, PropagationResult{}, err
		}
		timetable.Days = *req.Days
	}

	if err := s.timetables.Update(ctx, timetable); err != nil {
		return nil, PropagationResult{}, err
	}

	if err := s.cache.Delete(ctx, timetableCacheKey(groupID)); err != nil {
		logger.Warn().Err(err).Str("groupId", groupID).Msg("Timetable cache invalidation failed")
	}

	result, err := s.PropagateTimetableChange(ctx, groupID, TimetableUpdateMessage)
	if err != nil {
		return nil, PropagationResult{}, err
	}

	return timetable, result, nil
}

// PropagateTimetableChange appends message to the notification list of every
// student whose cohort label equals groupID. Recipients that fail are
// collected in the result; the remaining recipients are still notified.
func (s *TimetableService) PropagateTimetableChange(ctx context.Context, groupID, message string) (PropagationResult, error) {
	students, err := s.roster.GetStudentsByGroup(ctx, groupID)
	if err != nil {
		return PropagationResult{}, fmt.Errorf("error resolving notification recipients: %w", err)
	}

	var result PropagationResult
	for _, student := range students {
		if err := s.notifications.Append(ctx, student.ID, message); err != nil {
			logger.Error().Err(err).
				Int64("userId", student.ID).
				Str("groupId", groupID).
				Msg("Failed to notify student of timetable change")
			result.Failed = append(result.Failed, student.ID)
			continue
		}
		result.Notified++
	}

	logger.Info().
		Str("groupId", groupID).
		Int("notified", result.Notified).
		Int("failed", len(result.Failed)).
		Msg("Timetable change propagated")

	return result, nil
}

// DeleteTimetable removes the cohort's timetable. Past notifications are
// kept.
func (s *TimetableService) DeleteTimetable(ctx context.Context, groupID string) error {
	if err := s.timetables.DeleteByGroupID(ctx, groupID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, timetableCacheKey(groupID)); err != nil {
		logger.Warn().Err(err).Str("groupId", groupID).Msg("Timetable cache invalidation failed")
	}

	return nil
}

// validateDays checks that every session window parses as a non-empty
// "HH:MM" interval and carries a known kind.
func validateDays(days []models.DaySchedule) error {
	for _, day := range days {
		for _, session := range day.Sessions {
			if !session.Kind.Valid() {
				return fmt.Errorf("%w: unknown session kind %q", apperrors.ErrValidationFailed, session.Kind)
			}
			if _, err := timeslot.New(session.StartTime, session.EndTime); err != nil {
				return fmt.Errorf("%w: session %s on %s: %s",
					apperrors.ErrValidationFailed, session.CourseCode, day.Day, err)
			}
		}
	}
	return nil
}
