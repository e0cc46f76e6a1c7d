package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx,
// letting repository methods run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	NotificationRepository *NotificationRepository
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	TimetableRepository    *TimetableRepository
	BookingRepository      *BookingRepository
	GroupCounterRepository *GroupCounterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		BookingRepository:      NewBookingRepository(db),
		GroupCounterRepository: NewGroupCounterRepository(db),
	}
}
