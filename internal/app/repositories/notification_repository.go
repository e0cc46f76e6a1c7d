package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

// NotificationRepository handles the notification lists owned by users.
// Notifications are an owned sub-collection: every operation is scoped to a
// recipient and there is no standalone notification lookup.
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// Append adds an unread notification to a user's list
func (r *NotificationRepository) Append(ctx context.Context, userID int64, message string) error {
	query := `
		INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)
	`

	if _, err := r.db.Exec(ctx, query, userID, message); err != nil {
		return fmt.Errorf("error appending notification for user %d: %w", userID, err)
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead flags one of the user's notifications as read. The user scope is
// part of the predicate so a recipient can only mutate their own entries.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
