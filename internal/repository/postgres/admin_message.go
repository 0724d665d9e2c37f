package postgres

import (
	"context"
	"fmt"

	"github.com/avc/starstore/internal/domain"
)

// AdminMessageRepository реализует domain.AdminMessageRepository
type AdminMessageRepository struct {
	db DBTX
}

// NewAdminMessageRepository создает новый AdminMessageRepository
func NewAdminMessageRepository(db DBTX) *AdminMessageRepository {
	return &AdminMessageRepository{db: db}
}

// SaveAdminMessages сохраняет ссылки на разосланные администраторам сообщения
func (r *AdminMessageRepository) SaveAdminMessages(ctx context.Context, refs []domain.AdminMessageRef) error {
	for _, ref := range refs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO admin_messages (order_id, admin_id, message_id)
			 VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			ref.OrderID, ref.AdminID, ref.MessageID,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to save admin message ref for order %q: %w", ref.OrderID, err)
		}
	}

	return nil
}

// ListAdminMessages получает ссылки на сообщения администраторам по заказу
func (r *AdminMessageRepository) ListAdminMessages(ctx context.Context, orderID string) ([]domain.AdminMessageRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT order_id, admin_id, message_id FROM admin_messages WHERE order_id = $1`,
		orderID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get admin message refs for order %q: %w", orderID, err)
	}
	defer rows.Close()

	var refs []domain.AdminMessageRef
	for rows.Next() {
		var ref domain.AdminMessageRef
		if err := rows.Scan(&ref.OrderID, &ref.AdminID, &ref.MessageID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan admin message ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating admin message refs: %w", err)
	}

	return refs, nil
}
