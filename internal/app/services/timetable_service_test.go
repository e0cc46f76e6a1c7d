package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

type fakeTimetableStore struct {
	timetables map[string]*models.Timetable
	nextID     int64
}

func newFakeTimetableStore() *fakeTimetableStore {
	return &fakeTimetableStore{timetables: make(map[string]*models.Timetable)}
}

func (f *fakeTimetableStore) Create(_ context.Context, t *models.Timetable) error {
	if _, ok := f.timetables[t.GroupID]; ok {
		return apperrors.ErrGroupExists
	}
	f.nextID++
	t.ID = f.nextID
	copied := *t
	f.timetables[t.GroupID] = &copied
	return nil
}

func (f *fakeTimetableStore) GetByGroupID(_ context.Context, groupID string) (*models.Timetable, error) {
	t, ok := f.timetables[groupID]
	if !ok {
		return nil, apperrors.ErrTimetableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTimetableStore) GetAll(_ context.Context) ([]*models.Timetable, error) {
	var out []*models.Timetable
	for _, t := range f.timetables {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTimetableStore) Update(_ context.Context, t *models.Timetable) error {
	if _, ok := f.timetables[t.GroupID]; !ok {
		return apperrors.ErrTimetableNotFound
	}
	copied := *t
	f.timetables[t.GroupID] = &copied
	return nil
}

func (f *fakeTimetableStore) DeleteByGroupID(_ context.Context, groupID string) error {
	if _, ok := f.timetables[groupID]; !ok {
		return apperrors.ErrTimetableNotFound
	}
	delete(f.timetables, groupID)
	return nil
}

type fakeRoster struct {
	students map[string][]*models.User
	err      error
}

func (f *fakeRoster) GetStudentsByGroup(_ context.Context, groupName string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.students[groupName], nil
}

type fakeAppender struct {
	appended map[int64][]string
	failFor  map[int64]bool
}

func newFakeAppender() *fakeAppender {
	return &fakeAppender{
		appended: make(map[int64][]string),
		failFor:  make(map[int64]bool),
	}
}

func (f *fakeAppender) Append(_ context.Context, userID int64, message string) error {
	if f.failFor[userID] {
		return errors.New("write failed")
	}
	f.appended[userID] = append(f.appended[userID], message)
	return nil
}

func student(id int64, group string) *models.User {
	return &models.User{ID: id, Role: models.RoleStudent, GroupName: &group}
}

func validCreateReq(groupID string) *dto.CreateTimetableRequest {
	return &dto.CreateTimetableRequest{
		GroupID:  groupID,
		Year:     1,
		Semester: 2,
		Program:  "BSc (Hons) in IT",
		Type:     models.TimetableWeekend,
		Days: []models.DaySchedule{{
			Day: "Saturday",
			Sessions: []models.Session{{
				CourseCode: "IT1010",
				Kind:       models.SessionLecture,
				StartTime:  "09:00",
				EndTime:    "11:00",
				Instructor: "Dr. Perera",
				Location:   "B502",
			}},
		}},
	}
}

func newTimetableFixture(group string, studentIDs ...int64) (*TimetableService, *fakeTimetableStore, *fakeAppender) {
	store := newFakeTimetableStore()
	roster := &fakeRoster{students: make(map[string][]*models.User)}
	for _, id := range studentIDs {
		roster.students[group] = append(roster.students[group], student(id, group))
	}
	appender := newFakeAppender()
	return NewTimetableService(store, roster, appender, nil), store, appender
}

func TestCreateTimetableRejectsDuplicateGroup(t *testing.T) {
	svc, _, _ := newTimetableFixture("Y1.S2.WE.COMPUTING.1")
	ctx := context.Background()

	_, err := svc.CreateTimetable(ctx, validCreateReq("Y1.S2.WE.COMPUTING.1"))
	require.NoError(t, err)

	_, err = svc.CreateTimetable(ctx, validCreateReq("Y1.S2.WE.COMPUTING.1"))
	assert.ErrorIs(t, err, apperrors.ErrGroupExists)
}

func TestCreateTimetableValidatesSessions(t *testing.T) {
	svc, _, _ := newTimetableFixture("Y1.S2.WE.COMPUTING.1")

	req := validCreateReq("Y1.S2.WE.COMPUTING.1")
	req.Days[0].Sessions[0].EndTime = "09:00" // empty window

	_, err := svc.CreateTimetable(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validCreateReq("Y1.S2.WE.COMPUTING.1")
	req.Type = "DAILY"

	_, err = svc.CreateTimetable(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateTimetableNotifiesCohort(t *testing.T) {
	const group = "Y1.S2.WE.COMPUTING.1"
	svc, _, appender := newTimetableFixture(group, 11, 12, 13)
	ctx := context.Background()

	_, err := svc.CreateTimetable(ctx, validCreateReq(group))
	require.NoError(t, err)

	newProgram := "BSc (Hons) in SE"
	updated, result, err := svc.UpdateTimetable(ctx, group, &dto.UpdateTimetableRequest{
		Program: &newProgram,
	})
	require.NoError(t, err)

	assert.Equal(t, newProgram, updated.Program)
	assert.Equal(t, 3, result.Notified)
	assert.Empty(t, result.Failed)

	for _, id := range []int64{11, 12, 13} {
		require.Len(t, appender.appended[id], 1)
		assert.Equal(t, TimetableUpdateMessage, appender.appended[id][0])
	}
}

func TestUpdateTimetablePartialFanOutFailure(t *testing.T) {
	const group = "Y1.S2.WE.COMPUTING.1"
	svc, _, appender := newTimetableFixture(group, 11, 12, 13)
	appender.failFor[12] = true
	ctx := context.Background()

	_, err := svc.CreateTimetable(ctx, validCreateReq(group))
	require.NoError(t, err)

	year := 2
	updated, result, err := svc.UpdateTimetable(ctx, group, &dto.UpdateTimetableRequest{
		Year: &year,
	})
	require.NoError(t, err, "a failed recipient must not fail the update")

	assert.Equal(t, 2, updated.Year)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, []int64{12}, result.Failed)

	// The other recipients were still notified.
	assert.Len(t, appender.appended[11], 1)
	assert.Empty(t, appender.appended[12])
	assert.Len(t, appender.appended[13], 1)
}

func TestUpdateTimetableNoRecipients(t *testing.T) {
	const group = "Y4.S1.WD.ENGINEERING.1"
	svc, _, _ := newTimetableFixture(group)
	ctx := context.Background()

	_, err := svc.CreateTimetable(ctx, validCreateReq(group))
	require.NoError(t, err)

	_, result, err := svc.UpdateTimetable(ctx, group, &dto.UpdateTimetableRequest{})
	require.NoError(t, err)
	assert.Zero(t, result.Notified)
	assert.Empty(t, result.Failed)
}

func TestUpdateTimetableNotFound(t *testing.T) {
	svc, _, appender := newTimetableFixture("Y1.S2.WE.COMPUTING.1", 11)

	_, _, err := svc.UpdateTimetable(context.Background(), "Y9.S9.WD.NOWHERE.1", &dto.UpdateTimetableRequest{})
	assert.ErrorIs(t, err, apperrors.ErrTimetableNotFound)
	assert.Empty(t, appender.appended, "no notifications for a failed update")
}

func TestPropagateTimetableChangeRosterError(t *testing.T) {
	store := newFakeTimetableStore()
	roster := &fakeRoster{err: errors.New("db down")}
	svc := NewTimetableService(store, roster, newFakeAppender(), nil)

	_, err := svc.PropagateTimetableChange(context.Background(), "Y1.S2.WE.COMPUTING.1", TimetableUpdateMessage)
	assert.Error(t, err)
}

func TestDeleteTimetable(t *testing.T) {
	const group = "Y1.S2.WE.COMPUTING.1"
	svc, _, _ := newTimetableFixture(group)
	ctx := context.Background()

	_, err := svc.CreateTimetable(ctx, validCreateReq(group))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTimetable(ctx, group))
	assert.ErrorIs(t, svc.DeleteTimetable(ctx, group), apperrors.ErrTimetableNotFound)

	_, err = svc.GetTimetableByGroupID(ctx, group)
	assert.ErrorIs(t, err, apperrors.ErrTimetableNotFound)
}
