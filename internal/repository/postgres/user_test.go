package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(int64(1), "alice").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.UpsertUser(ctx, 1, "alice")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(int64(1), "alice").
			WillReturnError(errors.New("connection refused"))

		err := repo.UpsertUser(ctx, 1, "alice")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ListUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	now := time.Now()
	rows := pgxmock.NewRows([]string{"telegram_id", "username", "created_at"}).
		AddRow(int64(1), "alice", now).
		AddRow(int64(2), "bob", now)

	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnRows(rows)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, int64(2), users[1].TelegramID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_IsBanned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Banned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"bool"}).AddRow(true)
		mock.ExpectQuery(`SELECT TRUE FROM banned_users`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		banned, err := repo.IsBanned(ctx, 1)
		require.NoError(t, err)
		assert.True(t, banned)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not banned", func(t *testing.T) {
		mock.ExpectQuery(`SELECT TRUE FROM banned_users`).
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		banned, err := repo.IsBanned(ctx, 2)
		require.NoError(t, err)
		assert.False(t, banned)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_BanUnban(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Ban", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO banned_users`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Ban(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unban", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM banned_users`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Unban(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
