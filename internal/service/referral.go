package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/repository/postgres"
	"go.uber.org/zap"
)

// ReferralService реализует domain.ReferralService
type ReferralService struct {
	referralRepo domain.ReferralRepository
	notifier     domain.Notifier
	bonusStars   int
	logger       *zap.Logger
}

// NewReferralService создает новый ReferralService
func NewReferralService(referralRepo domain.ReferralRepository, notifier domain.Notifier, bonusStars int, logger *zap.Logger) *ReferralService {
	return &ReferralService{
		referralRepo: referralRepo,
		notifier:     notifier,
		bonusStars:   bonusStars,
		logger:       logger,
	}
}

// CreateReferral связывает приглашенного пользователя с реферером.
// Самоприглашение и повторная привязка игнорируются.
func (s *ReferralService) CreateReferral(ctx context.Context, referrerID, referredID int64) error {
	if referrerID == referredID {
		return nil
	}

	if err := s.referralRepo.CreateReferral(ctx, referrerID, referredID); err != nil {
		if errors.Is(err, postgres.ErrReferralExists) {
			return nil
		}
		return fmt.Errorf("referral service: failed to create referral: %w", err)
	}

	return nil
}

// ActivateOnPurchase активирует pending реферал покупателя после первой
// завершенной покупки. Повторные вызовы и отсутствие реферала безопасны.
func (s *ReferralService) ActivateOnPurchase(ctx context.Context, buyerID int64, username string) error {
	referral, err := s.referralRepo.ActivatePendingReferral(ctx, buyerID)
	if err != nil {
		if errors.Is(err, postgres.ErrReferralNotFound) {
			return nil
		}
		return fmt.Errorf("referral service: failed to activate referral for user %d: %w", buyerID, err)
	}

	text := fmt.Sprintf("🎉 Your referral @%s has made a purchase! You earned %d Stars.", username, s.bonusStars)
	if err := s.notifier.Notify(ctx, referral.ReferrerID, text); err != nil {
		s.logger.Warn("failed to notify referrer",
			zap.Int64("referrer_id", referral.ReferrerID),
			zap.Error(err),
		)
	}

	return nil
}

// Summary возвращает сводку реферальной программы пользователя:
// количество приглашенных, заработанные звезды и три последних реферала
func (s *ReferralService) Summary(ctx context.Context, referrerID int64) (*domain.ReferralSummary, error) {
	referrals, err := s.referralRepo.ListReferralsByReferrer(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("referral service: failed to list referrals for user %d: %w", referrerID, err)
	}

	summary := &domain.ReferralSummary{
		RecentReferrals: make([]domain.RecentReferral, 0, 3),
	}

	now := time.Now()
	for _, r := range referrals {
		summary.Count++
		if r.Status == domain.ReferralStatusActive {
			summary.EarnedStars += s.bonusStars
		}
		if len(summary.RecentReferrals) < 3 {
			summary.RecentReferrals = append(summary.RecentReferrals, domain.RecentReferral{
				Name:    r.ReferredID,
				Status:  r.Status,
				DaysAgo: int(now.Sub(r.ReferredAt).Hours() / 24),
			})
		}
	}

	return summary, nil
}
