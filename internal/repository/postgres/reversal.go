package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ReversalRepository реализует domain.ReversalRepository
type ReversalRepository struct {
	db DBTX
}

// NewReversalRepository создает новый ReversalRepository
func NewReversalRepository(db DBTX) *ReversalRepository {
	return &ReversalRepository{db: db}
}

const reversalColumns = `id, order_id, telegram_id, username, stars, status, requested_at, resolved_at`

func scanReversal(row pgx.Row) (*domain.ReversalRequest, error) {
	req := &domain.ReversalRequest{}
	err := row.Scan(&req.ID, &req.OrderID, &req.TelegramID, &req.Username,
		&req.Stars, &req.Status, &req.RequestedAt, &req.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// CreateReversal сохраняет новый запрос на возврат. На заказ допускается
// не больше одного pending запроса, дубликат отклоняется частичным
// уникальным индексом.
func (r *ReversalRepository) CreateReversal(ctx context.Context, req *domain.ReversalRequest) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO reversal_requests (id, order_id, telegram_id, username, stars, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING requested_at`,
		req.ID, req.OrderID, req.TelegramID, req.Username, req.Stars, req.Status,
	).Scan(&req.RequestedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrReversalExists
		}
		return fmt.Errorf("repository: failed to create reversal request %q: %w", req.ID, err)
	}

	return nil
}

// GetReversal получает запрос на возврат по id
func (r *ReversalRepository) GetReversal(ctx context.Context, id string) (*domain.ReversalRequest, error) {
	req, err := scanReversal(r.db.QueryRow(ctx,
		`SELECT `+reversalColumns+` FROM reversal_requests WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReversalNotFound
		}
		return nil, fmt.Errorf("repository: failed to get reversal request %q: %w", id, err)
	}

	return req, nil
}

// ApproveReversal одобряет запрос на возврат атомарно. Под advisory-
// блокировкой по id заказа статусы запроса и заказа перепроверяются,
// затем выполняется refund, и только после его успеха оба статуса
// фиксируются одной транзакцией. Сбой refund откатывает транзакцию,
// запрос остается pending. Блокировка общая с ResolveSellOrder, поэтому
// одобрение сериализуется и с разрешением заказа администратором.
func (r *ReversalRepository) ApproveReversal(ctx context.Context, id string, refund func(ctx context.Context, req *domain.ReversalRequest) error) (*domain.ReversalRequest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for reversal %q: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var orderID string
	err = tx.QueryRow(ctx, `SELECT order_id FROM reversal_requests WHERE id = $1`, id).Scan(&orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReversalNotFound
		}
		return nil, fmt.Errorf("repository: failed to look up reversal request %q: %w", id, err)
	}

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for order %q: %w", orderID, err)
	}

	req, err := scanReversal(tx.QueryRow(ctx,
		`SELECT `+reversalColumns+` FROM reversal_requests WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to reread reversal request %q: %w", id, err)
	}
	if !domain.CanTransitionReversal(req.Status, domain.ReversalStatusApproved) {
		return nil, ErrAlreadyResolved
	}

	var orderStatus domain.OrderStatus
	var reversible bool
	err = tx.QueryRow(ctx,
		`SELECT status, reversible FROM sell_orders WHERE id = $1`, req.OrderID,
	).Scan(&orderStatus, &reversible)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to check order %q: %w", req.OrderID, err)
	}
	if !reversible || !domain.CanTransitionSellOrder(orderStatus, domain.OrderStatusReversed) {
		return nil, ErrNotReversible
	}

	if err = refund(ctx, req); err != nil {
		return nil, err
	}

	req, err = scanReversal(tx.QueryRow(ctx,
		`UPDATE reversal_requests
		 SET status = $1, resolved_at = NOW()
		 WHERE id = $2
		 RETURNING `+reversalColumns,
		domain.ReversalStatusApproved, id))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to approve reversal request %q: %w", id, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE sell_orders SET status = $1, resolved_at = NOW(), reversible = FALSE WHERE id = $2`,
		domain.OrderStatusReversed, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to reverse order %q: %w", req.OrderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit reversal approval: %w", err)
	}

	return req, nil
}

// ResolveReversal переводит pending запрос в терминальный статус
func (r *ReversalRepository) ResolveReversal(ctx context.Context, id string, status domain.ReversalStatus) (*domain.ReversalRequest, error) {
	req, err := scanReversal(r.db.QueryRow(ctx,
		`UPDATE reversal_requests
		 SET status = $1, resolved_at = NOW()
		 WHERE id = $2 AND status = $3
		 RETURNING `+reversalColumns,
		status, id, domain.ReversalStatusPending))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var existing domain.ReversalStatus
			checkErr := r.db.QueryRow(ctx, `SELECT status FROM reversal_requests WHERE id = $1`, id).Scan(&existing)
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return nil, ErrReversalNotFound
			}
			if checkErr != nil {
				return nil, fmt.Errorf("repository: failed to check reversal request %q: %w", id, checkErr)
			}
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("repository: failed to resolve reversal request %q: %w", id, err)
	}

	return req, nil
}
