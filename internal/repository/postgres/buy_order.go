package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

// BuyOrderRepository реализует domain.BuyOrderRepository
type BuyOrderRepository struct {
	db DBTX
}

// NewBuyOrderRepository создает новый BuyOrderRepository
func NewBuyOrderRepository(db DBTX) *BuyOrderRepository {
	return &BuyOrderRepository{db: db}
}

// CreateBuyOrder сохраняет новый заказ на покупку
func (r *BuyOrderRepository) CreateBuyOrder(ctx context.Context, order *domain.BuyOrder) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO buy_orders (id, telegram_id, username, amount, stars, premium_months, wallet_address, is_premium, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		order.ID, order.TelegramID, order.Username, order.Amount, order.Stars,
		order.PremiumMonths, order.WalletAddress, order.IsPremium, order.Status,
	).Scan(&order.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create buy order %q: %w", order.ID, err)
	}

	return nil
}

// GetBuyOrder получает заказ на покупку по id
func (r *BuyOrderRepository) GetBuyOrder(ctx context.Context, id string) (*domain.BuyOrder, error) {
	order := &domain.BuyOrder{}

	err := r.db.QueryRow(ctx,
		`SELECT id, telegram_id, username, amount, stars, premium_months, wallet_address, is_premium, status, created_at, resolved_at
		 FROM buy_orders
		 WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.TelegramID, &order.Username, &order.Amount, &order.Stars,
		&order.PremiumMonths, &order.WalletAddress, &order.IsPremium, &order.Status,
		&order.CreatedAt, &order.ResolvedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get buy order %q: %w", id, err)
	}

	return order, nil
}

// ListBuyOrdersByUser получает все заказы на покупку пользователя
func (r *BuyOrderRepository) ListBuyOrdersByUser(ctx context.Context, telegramID int64) ([]*domain.BuyOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, telegram_id, username, amount, stars, premium_months, wallet_address, is_premium, status, created_at, resolved_at
		 FROM buy_orders
		 WHERE telegram_id = $1
		 ORDER BY created_at DESC`,
		telegramID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get buy orders for user %d: %w", telegramID, err)
	}
	defer rows.Close()

	var orders []*domain.BuyOrder
	for rows.Next() {
		order := &domain.BuyOrder{}
		err := rows.Scan(&order.ID, &order.TelegramID, &order.Username, &order.Amount, &order.Stars,
			&order.PremiumMonths, &order.WalletAddress, &order.IsPremium, &order.Status,
			&order.CreatedAt, &order.ResolvedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan buy order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating buy orders: %w", err)
	}

	return orders, nil
}

// ResolveBuyOrder переводит pending заказ в терминальный статус.
// Advisory lock по id сериализует конкурирующие разрешения одного заказа,
// условный UPDATE не дает терминальному заказу перейти куда-либо еще.
func (r *BuyOrderRepository) ResolveBuyOrder(ctx context.Context, id string, status domain.OrderStatus) (*domain.BuyOrder, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for buy order %q: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for buy order %q: %w", id, err)
	}

	order := &domain.BuyOrder{}
	err = tx.QueryRow(ctx,
		`UPDATE buy_orders
		 SET status = $1, resolved_at = NOW()
		 WHERE id = $2 AND status = $3
		 RETURNING id, telegram_id, username, amount, stars, premium_months, wallet_address, is_premium, status, created_at, resolved_at`,
		status, id, domain.OrderStatusPending,
	).Scan(&order.ID, &order.TelegramID, &order.Username, &order.Amount, &order.Stars,
		&order.PremiumMonths, &order.WalletAddress, &order.IsPremium, &order.Status,
		&order.CreatedAt, &order.ResolvedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Различаем "нет такого заказа" и "уже разрешен"
			var existing domain.OrderStatus
			checkErr := tx.QueryRow(ctx, `SELECT status FROM buy_orders WHERE id = $1`, id).Scan(&existing)
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return nil, ErrOrderNotFound
			}
			if checkErr != nil {
				return nil, fmt.Errorf("repository: failed to check buy order %q: %w", id, checkErr)
			}
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("repository: failed to resolve buy order %q: %w", id, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit buy order resolution: %w", err)
	}

	return order, nil
}
