package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SellOrderRepository реализует domain.SellOrderRepository
type SellOrderRepository struct {
	db DBTX
}

// NewSellOrderRepository создает новый SellOrderRepository
func NewSellOrderRepository(db DBTX) *SellOrderRepository {
	return &SellOrderRepository{db: db}
}

const sellOrderColumns = `id, telegram_id, username, stars, wallet_address, status, reversible, created_at, paid_at, resolved_at`

func scanSellOrder(row pgx.Row) (*domain.SellOrder, error) {
	order := &domain.SellOrder{}
	err := row.Scan(&order.ID, &order.TelegramID, &order.Username, &order.Stars,
		&order.WalletAddress, &order.Status, &order.Reversible,
		&order.CreatedAt, &order.PaidAt, &order.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateSellOrder сохраняет новый заказ на продажу
func (r *SellOrderRepository) CreateSellOrder(ctx context.Context, order *domain.SellOrder) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sell_orders (id, telegram_id, username, stars, wallet_address, status, reversible)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		order.ID, order.TelegramID, order.Username, order.Stars,
		order.WalletAddress, order.Status, order.Reversible,
	).Scan(&order.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create sell order %q: %w", order.ID, err)
	}

	return nil
}

// GetSellOrder получает заказ на продажу по id
func (r *SellOrderRepository) GetSellOrder(ctx context.Context, id string) (*domain.SellOrder, error) {
	order, err := scanSellOrder(r.db.QueryRow(ctx,
		`SELECT `+sellOrderColumns+` FROM sell_orders WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get sell order %q: %w", id, err)
	}

	return order, nil
}

// ListSellOrdersByUser получает все заказы на продажу пользователя
func (r *SellOrderRepository) ListSellOrdersByUser(ctx context.Context, telegramID int64) ([]*domain.SellOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sellOrderColumns+` FROM sell_orders WHERE telegram_id = $1 ORDER BY created_at DESC`,
		telegramID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get sell orders for user %d: %w", telegramID, err)
	}
	defer rows.Close()

	var orders []*domain.SellOrder
	for rows.Next() {
		order, err := scanSellOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan sell order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating sell orders: %w", err)
	}

	return orders, nil
}

// MarkSellOrderPaid проставляет время оплаты заказа
func (r *SellOrderRepository) MarkSellOrderPaid(ctx context.Context, id string) (*domain.SellOrder, error) {
	order, err := scanSellOrder(r.db.QueryRow(ctx,
		`UPDATE sell_orders
		 SET paid_at = NOW()
		 WHERE id = $1 AND status = $2
		 RETURNING `+sellOrderColumns,
		id, domain.OrderStatusPending))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to mark sell order %q paid: %w", id, err)
	}

	return order, nil
}

// ResolveSellOrder переводит pending заказ в терминальный статус.
// Завершенный заказ перестает быть обратимым.
func (r *SellOrderRepository) ResolveSellOrder(ctx context.Context, id string, status domain.OrderStatus) (*domain.SellOrder, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for sell order %q: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for sell order %q: %w", id, err)
	}

	order, err := scanSellOrder(tx.QueryRow(ctx,
		`UPDATE sell_orders
		 SET status = $1,
		     resolved_at = NOW(),
		     reversible = CASE WHEN $1 = $4 THEN FALSE ELSE reversible END
		 WHERE id = $2 AND status = $3
		 RETURNING `+sellOrderColumns,
		status, id, domain.OrderStatusPending, domain.OrderStatusCompleted))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var existing domain.OrderStatus
			checkErr := tx.QueryRow(ctx, `SELECT status FROM sell_orders WHERE id = $1`, id).Scan(&existing)
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return nil, ErrOrderNotFound
			}
			if checkErr != nil {
				return nil, fmt.Errorf("repository: failed to check sell order %q: %w", id, checkErr)
			}
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("repository: failed to resolve sell order %q: %w", id, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit sell order resolution: %w", err)
	}

	return order, nil
}
