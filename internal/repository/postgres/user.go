package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser регистрирует пользователя или обновляет его username
func (r *UserRepository) UpsertUser(ctx context.Context, telegramID int64, username string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (telegram_id, username)
		 VALUES ($1, $2)
		 ON CONFLICT (telegram_id) DO UPDATE SET username = EXCLUDED.username`,
		telegramID, username,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to upsert user %d: %w", telegramID, err)
	}

	return nil
}

// ListUsers получает всех зарегистрированных пользователей
func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT telegram_id, username, created_at FROM users ORDER BY created_at`)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.TelegramID, &user.Username, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}

// IsBanned проверяет наличие пользователя в бан-листе
func (r *UserRepository) IsBanned(ctx context.Context, telegramID int64) (bool, error) {
	var banned bool

	err := r.db.QueryRow(ctx,
		`SELECT TRUE FROM banned_users WHERE telegram_id = $1`, telegramID,
	).Scan(&banned)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("repository: failed to check ban for user %d: %w", telegramID, err)
	}

	return banned, nil
}

// Ban добавляет пользователя в бан-лист, повторный бан безвреден
func (r *UserRepository) Ban(ctx context.Context, telegramID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO banned_users (telegram_id) VALUES ($1)
		 ON CONFLICT (telegram_id) DO NOTHING`,
		telegramID,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to ban user %d: %w", telegramID, err)
	}

	return nil
}

// Unban убирает пользователя из бан-листа
func (r *UserRepository) Unban(ctx context.Context, telegramID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM banned_users WHERE telegram_id = $1`, telegramID)

	if err != nil {
		return fmt.Errorf("repository: failed to unban user %d: %w", telegramID, err)
	}

	return nil
}
