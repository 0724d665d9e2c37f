package postgres

import (
	"context"
	"fmt"

	"github.com/avc/starstore/internal/domain"
)

// NotificationRepository реализует domain.NotificationRepository
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository создает новый NotificationRepository
func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// SetNotification заменяет текущий баннер новым сообщением
func (r *NotificationRepository) SetNotification(ctx context.Context, message string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin notification transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err := tx.Exec(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("repository: failed to clear notifications: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO notifications (message) VALUES ($1)`, message); err != nil {
		return fmt.Errorf("repository: failed to insert notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit notification: %w", err)
	}

	return nil
}

// ListNotifications получает текущие баннер-уведомления
func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]*domain.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, message, created_at FROM notifications ORDER BY created_at DESC`)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating notifications: %w", err)
	}

	return notifications, nil
}
