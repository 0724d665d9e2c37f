package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ReferralRepository реализует domain.ReferralRepository
type ReferralRepository struct {
	db DBTX
}

// NewReferralRepository создает новый ReferralRepository
func NewReferralRepository(db DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// CreateReferral создает реферальную связь. На одного приглашенного
// пользователя допускается ровно одна запись.
func (r *ReferralRepository) CreateReferral(ctx context.Context, referrerID, referredID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO referrals (referrer_id, referred_id, status)
		 VALUES ($1, $2, $3)`,
		referrerID, referredID, domain.ReferralStatusPending,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrReferralExists
		}
		return fmt.Errorf("repository: failed to create referral for user %d: %w", referredID, err)
	}

	return nil
}

// ActivatePendingReferral активирует pending реферал приглашенного
// пользователя. Повторные вызовы не находят pending запись — активация
// идемпотентна.
func (r *ReferralRepository) ActivatePendingReferral(ctx context.Context, referredID int64) (*domain.Referral, error) {
	ref := &domain.Referral{}

	err := r.db.QueryRow(ctx,
		`UPDATE referrals
		 SET status = $1, activated_at = NOW()
		 WHERE referred_id = $2 AND status = $3
		 RETURNING id, referrer_id, referred_id, status, referred_at, activated_at`,
		domain.ReferralStatusActive, referredID, domain.ReferralStatusPending,
	).Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Status, &ref.ReferredAt, &ref.ActivatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("repository: failed to activate referral for user %d: %w", referredID, err)
	}

	return ref, nil
}

// ListReferralsByReferrer получает все рефералы пользователя, новые первыми
func (r *ReferralRepository) ListReferralsByReferrer(ctx context.Context, referrerID int64) ([]*domain.Referral, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, referrer_id, referred_id, status, referred_at, activated_at
		 FROM referrals
		 WHERE referrer_id = $1
		 ORDER BY referred_at DESC`,
		referrerID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get referrals for user %d: %w", referrerID, err)
	}
	defer rows.Close()

	var referrals []*domain.Referral
	for rows.Next() {
		ref := &domain.Referral{}
		err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Status, &ref.ReferredAt, &ref.ActivatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan referral: %w", err)
		}
		referrals = append(referrals, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating referrals: %w", err)
	}

	return referrals, nil
}
