package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

// GiftRepository реализует domain.GiftRepository
type GiftRepository struct {
	db DBTX
}

// NewGiftRepository создает новый GiftRepository
func NewGiftRepository(db DBTX) *GiftRepository {
	return &GiftRepository{db: db}
}

const giftColumns = `id, telegram_id, username, stars, wallet_address, giveaway_code, status, created_at, resolved_at`

func scanGift(row pgx.Row) (*domain.GiftOrder, error) {
	gift := &domain.GiftOrder{}
	err := row.Scan(&gift.ID, &gift.TelegramID, &gift.Username, &gift.Stars,
		&gift.WalletAddress, &gift.GiveawayCode, &gift.Status,
		&gift.CreatedAt, &gift.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return gift, nil
}

// CreateGift сохраняет новый подарочный заказ
func (r *GiftRepository) CreateGift(ctx context.Context, gift *domain.GiftOrder) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO gift_orders (id, telegram_id, username, stars, wallet_address, giveaway_code, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		gift.ID, gift.TelegramID, gift.Username, gift.Stars,
		gift.WalletAddress, gift.GiveawayCode, gift.Status,
	).Scan(&gift.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create gift order %q: %w", gift.ID, err)
	}

	return nil
}

// GetGift получает подарочный заказ по id
func (r *GiftRepository) GetGift(ctx context.Context, id string) (*domain.GiftOrder, error) {
	gift, err := scanGift(r.db.QueryRow(ctx,
		`SELECT `+giftColumns+` FROM gift_orders WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGiftNotFound
		}
		return nil, fmt.Errorf("repository: failed to get gift order %q: %w", id, err)
	}

	return gift, nil
}

// ResolveGift переводит pending подарочный заказ в терминальный статус
func (r *GiftRepository) ResolveGift(ctx context.Context, id string, status domain.OrderStatus) (*domain.GiftOrder, error) {
	gift, err := scanGift(r.db.QueryRow(ctx,
		`UPDATE gift_orders
		 SET status = $1, resolved_at = NOW()
		 WHERE id = $2 AND status = $3
		 RETURNING `+giftColumns,
		status, id, domain.OrderStatusPending))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var existing domain.OrderStatus
			checkErr := r.db.QueryRow(ctx, `SELECT status FROM gift_orders WHERE id = $1`, id).Scan(&existing)
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return nil, ErrGiftNotFound
			}
			if checkErr != nil {
				return nil, fmt.Errorf("repository: failed to check gift order %q: %w", id, checkErr)
			}
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("repository: failed to resolve gift order %q: %w", id, err)
	}

	return gift, nil
}
