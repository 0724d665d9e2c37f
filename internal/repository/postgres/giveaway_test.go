package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiveawayRepository_CreateCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiveawayRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		code := &domain.GiveawayCode{
			Code:       "GIFT01",
			ClaimLimit: 10,
			Status:     domain.GiveawayStatusActive,
			ExpiresAt:  now.Add(30 * 24 * time.Hour),
		}

		rows := pgxmock.NewRows([]string{"created_at"}).AddRow(now)
		mock.ExpectQuery(`INSERT INTO giveaway_codes`).
			WithArgs(code.Code, code.ClaimLimit, code.Status, code.ExpiresAt).
			WillReturnRows(rows)

		err := repo.CreateCode(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, now, code.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate code", func(t *testing.T) {
		code := &domain.GiveawayCode{Code: "GIFT01", ClaimLimit: 10, Status: domain.GiveawayStatusActive}

		mock.ExpectQuery(`INSERT INTO giveaway_codes`).
			WithArgs(code.Code, code.ClaimLimit, code.Status, code.ExpiresAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateCode(ctx, code)
		assert.ErrorIs(t, err, ErrCodeExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGiveawayRepository_GetCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiveawayRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{
			"code", "claim_limit", "claimed_count", "status", "created_at", "expires_at",
		}).AddRow("GIFT01", 10, 3, domain.GiveawayStatusActive, now, now.Add(time.Hour))

		mock.ExpectQuery(`SELECT (.+) FROM giveaway_codes WHERE code`).
			WithArgs("GIFT01").
			WillReturnRows(rows)

		code, err := repo.GetCode(ctx, "GIFT01")
		require.NoError(t, err)
		assert.Equal(t, "GIFT01", code.Code)
		assert.Equal(t, 3, code.ClaimedCount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM giveaway_codes WHERE code`).
			WithArgs("NOPE42").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetCode(ctx, "NOPE42")
		assert.ErrorIs(t, err, ErrCodeNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGiveawayRepository_RegisterClaim(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiveawayRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("GIFT01").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE giveaway_codes`).
			WithArgs("GIFT01", domain.GiveawayStatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO giveaway_claims`).
			WithArgs("GIFT01", int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.RegisterClaim(ctx, "GIFT01", 1)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Limit exhausted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("GIFT01").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE giveaway_codes`).
			WithArgs("GIFT01", domain.GiveawayStatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err := repo.RegisterClaim(ctx, "GIFT01", 1)
		assert.ErrorIs(t, err, ErrCodeExhausted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate claim", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("GIFT01").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE giveaway_codes`).
			WithArgs("GIFT01", domain.GiveawayStatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO giveaway_claims`).
			WithArgs("GIFT01", int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.RegisterClaim(ctx, "GIFT01", 1)
		assert.ErrorIs(t, err, ErrCodeAlreadyClaimed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGiveawayRepository_SetCodeStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiveawayRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE giveaway_codes SET status`).
			WithArgs(domain.GiveawayStatusCompleted, "GIFT01").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetCodeStatus(ctx, "GIFT01", domain.GiveawayStatusCompleted)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE giveaway_codes SET status`).
			WithArgs(domain.GiveawayStatusExpired, "NOPE42").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetCodeStatus(ctx, "NOPE42", domain.GiveawayStatusExpired)
		assert.ErrorIs(t, err, ErrCodeNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGiveawayRepository_ExpireOverdueCodes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiveawayRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE giveaway_codes`).
		WithArgs(domain.GiveawayStatusExpired, domain.GiveawayStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	expired, err := repo.ExpireOverdueCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), expired)

	assert.NoError(t, mock.ExpectationsWereMet())
}
