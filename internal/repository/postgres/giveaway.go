package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// GiveawayRepository реализует domain.GiveawayRepository
type GiveawayRepository struct {
	db DBTX
}

// NewGiveawayRepository создает новый GiveawayRepository
func NewGiveawayRepository(db DBTX) *GiveawayRepository {
	return &GiveawayRepository{db: db}
}

const giveawayColumns = `code, claim_limit, claimed_count, status, created_at, expires_at`

func scanGiveaway(row pgx.Row) (*domain.GiveawayCode, error) {
	code := &domain.GiveawayCode{}
	err := row.Scan(&code.Code, &code.ClaimLimit, &code.ClaimedCount,
		&code.Status, &code.CreatedAt, &code.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return code, nil
}

// CreateCode сохраняет новый код розыгрыша
func (r *GiveawayRepository) CreateCode(ctx context.Context, code *domain.GiveawayCode) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO giveaway_codes (code, claim_limit, status, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		code.Code, code.ClaimLimit, code.Status, code.ExpiresAt,
	).Scan(&code.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCodeExists
		}
		return fmt.Errorf("repository: failed to create giveaway code %q: %w", code.Code, err)
	}

	return nil
}

// GetCode получает код розыгрыша
func (r *GiveawayRepository) GetCode(ctx context.Context, code string) (*domain.GiveawayCode, error) {
	giveaway, err := scanGiveaway(r.db.QueryRow(ctx,
		`SELECT `+giveawayColumns+` FROM giveaway_codes WHERE code = $1`, code))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get giveaway code %q: %w", code, err)
	}

	return giveaway, nil
}

// RegisterClaim атомарно записывает claim пользователя: счетчик
// инкрементируется только пока код активен и лимит не исчерпан,
// повторный claim того же пользователя отклоняется уникальным ключом.
func (r *GiveawayRepository) RegisterClaim(ctx context.Context, code string, telegramID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin claim transaction for code %q: %w", code, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, code)
	if err != nil {
		return fmt.Errorf("repository: failed to acquire lock for code %q: %w", code, err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE giveaway_codes
		 SET claimed_count = claimed_count + 1
		 WHERE code = $1 AND status = $2 AND claimed_count < claim_limit`,
		code, domain.GiveawayStatusActive,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to increment claim count for code %q: %w", code, err)
	}
	if result.RowsAffected() == 0 {
		return ErrCodeExhausted
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO giveaway_claims (code, telegram_id) VALUES ($1, $2)`,
		code, telegramID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCodeAlreadyClaimed
		}
		return fmt.Errorf("repository: failed to register claim for code %q: %w", code, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit claim for code %q: %w", code, err)
	}

	return nil
}

// SetCodeStatus переводит код розыгрыша в новый статус
func (r *GiveawayRepository) SetCodeStatus(ctx context.Context, code string, status domain.GiveawayStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE giveaway_codes SET status = $1 WHERE code = $2`,
		status, code,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to set status of giveaway code %q: %w", code, err)
	}

	if result.RowsAffected() == 0 {
		return ErrCodeNotFound
	}

	return nil
}

// ExpireOverdueCodes переводит все просроченные активные коды в expired
func (r *GiveawayRepository) ExpireOverdueCodes(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE giveaway_codes
		 SET status = $1
		 WHERE status = $2 AND expires_at < NOW()`,
		domain.GiveawayStatusExpired, domain.GiveawayStatusActive,
	)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to expire giveaway codes: %w", err)
	}

	return result.RowsAffected(), nil
}

// GetActiveClaim получает активный код, заявленный пользователем
func (r *GiveawayRepository) GetActiveClaim(ctx context.Context, telegramID int64) (*domain.GiveawayCode, error) {
	giveaway, err := scanGiveaway(r.db.QueryRow(ctx,
		`SELECT g.code, g.claim_limit, g.claimed_count, g.status, g.created_at, g.expires_at
		 FROM giveaway_codes g
		 JOIN giveaway_claims c ON c.code = g.code
		 WHERE c.telegram_id = $1 AND g.status = $2
		 ORDER BY c.claimed_at DESC
		 LIMIT 1`,
		telegramID, domain.GiveawayStatusActive))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get active claim for user %d: %w", telegramID, err)
	}

	return giveaway, nil
}
