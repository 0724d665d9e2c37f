package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReversalRepository_CreateReversal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReversalRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		req := &domain.ReversalRequest{
			ID: "REV001", OrderID: "DEF456", TelegramID: 1, Username: "alice",
			Stars: 50, Status: domain.ReversalStatusPending,
		}

		rows := pgxmock.NewRows([]string{"requested_at"}).AddRow(now)
		mock.ExpectQuery(`INSERT INTO reversal_requests`).
			WithArgs(req.ID, req.OrderID, req.TelegramID, req.Username, req.Stars, req.Status).
			WillReturnRows(rows)

		err := repo.CreateReversal(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, now, req.RequestedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Pending request already exists for the order", func(t *testing.T) {
		req := &domain.ReversalRequest{
			ID: "REV002", OrderID: "DEF456", TelegramID: 1, Username: "alice",
			Stars: 50, Status: domain.ReversalStatusPending,
		}

		mock.ExpectQuery(`INSERT INTO reversal_requests`).
			WithArgs(req.ID, req.OrderID, req.TelegramID, req.Username, req.Stars, req.Status).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateReversal(ctx, req)
		assert.ErrorIs(t, err, ErrReversalExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReversalRepository_ApproveReversal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReversalRepository(mock)
	ctx := context.Background()

	reversalRows := func(status domain.ReversalStatus, resolved *time.Time) *pgxmock.Rows {
		return pgxmock.NewRows([]string{
			"id", "order_id", "telegram_id", "username", "stars", "status", "requested_at", "resolved_at",
		}).AddRow("REV001", "DEF456", int64(1), "alice", 50, status, time.Now(), resolved)
	}

	t.Run("Success refunds once and reverses the order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT order_id FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow("DEF456"))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("DEF456").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT (.+) FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(reversalRows(domain.ReversalStatusPending, nil))
		mock.ExpectQuery(`SELECT status, reversible FROM sell_orders WHERE id`).
			WithArgs("DEF456").
			WillReturnRows(pgxmock.NewRows([]string{"status", "reversible"}).
				AddRow(domain.OrderStatusPending, true))

		resolved := time.Now()
		mock.ExpectQuery(`UPDATE reversal_requests`).
			WithArgs(domain.ReversalStatusApproved, "REV001").
			WillReturnRows(reversalRows(domain.ReversalStatusApproved, &resolved))
		mock.ExpectExec(`UPDATE sell_orders`).
			WithArgs(domain.OrderStatusReversed, "DEF456").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		refunds := 0
		req, err := repo.ApproveReversal(ctx, "REV001", func(_ context.Context, req *domain.ReversalRequest) error {
			refunds++
			assert.Equal(t, int64(1), req.TelegramID)
			assert.Equal(t, 50, req.Stars)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, refunds)
		assert.Equal(t, domain.ReversalStatusApproved, req.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order already reversed skips refund", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT order_id FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow("DEF456"))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("DEF456").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT (.+) FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(reversalRows(domain.ReversalStatusPending, nil))
		mock.ExpectQuery(`SELECT status, reversible FROM sell_orders WHERE id`).
			WithArgs("DEF456").
			WillReturnRows(pgxmock.NewRows([]string{"status", "reversible"}).
				AddRow(domain.OrderStatusReversed, false))
		mock.ExpectRollback()

		refunds := 0
		_, err := repo.ApproveReversal(ctx, "REV001", func(context.Context, *domain.ReversalRequest) error {
			refunds++
			return nil
		})
		assert.ErrorIs(t, err, ErrNotReversible)
		assert.Zero(t, refunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Request already resolved skips refund", func(t *testing.T) {
		resolved := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT order_id FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow("DEF456"))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("DEF456").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT (.+) FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(reversalRows(domain.ReversalStatusApproved, &resolved))
		mock.ExpectRollback()

		refunds := 0
		_, err := repo.ApproveReversal(ctx, "REV001", func(context.Context, *domain.ReversalRequest) error {
			refunds++
			return nil
		})
		assert.ErrorIs(t, err, ErrAlreadyResolved)
		assert.Zero(t, refunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Refund failure rolls back without status changes", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT order_id FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow("DEF456"))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("DEF456").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT (.+) FROM reversal_requests WHERE id`).
			WithArgs("REV001").
			WillReturnRows(reversalRows(domain.ReversalStatusPending, nil))
		mock.ExpectQuery(`SELECT status, reversible FROM sell_orders WHERE id`).
			WithArgs("DEF456").
			WillReturnRows(pgxmock.NewRows([]string{"status", "reversible"}).
				AddRow(domain.OrderStatusPending, true))
		mock.ExpectRollback()

		refundErr := errors.New("telegram api down")
		_, err := repo.ApproveReversal(ctx, "REV001", func(context.Context, *domain.ReversalRequest) error {
			return refundErr
		})
		assert.ErrorIs(t, err, refundErr)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Request not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT order_id FROM reversal_requests WHERE id`).
			WithArgs("NOPE42").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.ApproveReversal(ctx, "NOPE42", func(context.Context, *domain.ReversalRequest) error {
			return nil
		})
		assert.ErrorIs(t, err, ErrReversalNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
