package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/metrics"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/avc/starstore/internal/utils/orderid"
	"go.uber.org/zap"
)

// GiveawayService реализует domain.GiveawayService
type GiveawayService struct {
	giveawayRepo domain.GiveawayRepository
	giftRepo     domain.GiftRepository
	adminMsgRepo domain.AdminMessageRepository
	notifier     domain.Notifier
	newID        orderid.Generator
	bonusStars   int
	codeTTL      time.Duration
	metrics      *metrics.StoreMetrics
	logger       *zap.Logger
}

// NewGiveawayService создает новый GiveawayService
func NewGiveawayService(
	giveawayRepo domain.GiveawayRepository,
	giftRepo domain.GiftRepository,
	adminMsgRepo domain.AdminMessageRepository,
	notifier domain.Notifier,
	newID orderid.Generator,
	bonusStars int,
	codeTTL time.Duration,
	m *metrics.StoreMetrics,
	logger *zap.Logger,
) *GiveawayService {
	return &GiveawayService{
		giveawayRepo: giveawayRepo,
		giftRepo:     giftRepo,
		adminMsgRepo: adminMsgRepo,
		notifier:     notifier,
		newID:        newID,
		bonusStars:   bonusStars,
		codeTTL:      codeTTL,
		metrics:      m,
		logger:       logger,
	}
}

// IssueCode создает новый код розыгрыша. Пустой code означает
// автогенерацию.
func (s *GiveawayService) IssueCode(ctx context.Context, code string, limit int) (*domain.GiveawayCode, error) {
	if limit <= 0 {
		return nil, ErrInvalidClaimLimit
	}
	if code == "" {
		code = s.newID()
	}

	now := time.Now()
	giveaway := &domain.GiveawayCode{
		Code:       code,
		ClaimLimit: limit,
		Status:     domain.GiveawayStatusActive,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.codeTTL),
	}

	if err := s.giveawayRepo.CreateCode(ctx, giveaway); err != nil {
		if errors.Is(err, postgres.ErrCodeExists) {
			return nil, domain.ErrCodeExists
		}
		return nil, fmt.Errorf("giveaway service: failed to create code %q: %w", code, err)
	}

	return giveaway, nil
}

// Claim регистрирует заявку пользователя на код розыгрыша
func (s *GiveawayService) Claim(ctx context.Context, code string, telegramID int64) error {
	giveaway, err := s.giveawayRepo.GetCode(ctx, code)
	if err != nil {
		if errors.Is(err, postgres.ErrCodeNotFound) {
			return domain.ErrCodeNotFound
		}
		return fmt.Errorf("giveaway service: failed to load code %q: %w", code, err)
	}

	if giveaway.Status != domain.GiveawayStatusActive {
		s.metrics.RecordGiveawayClaim("inactive")
		return domain.ErrCodeNotActive
	}

	if time.Now().After(giveaway.ExpiresAt) {
		if err := s.setCodeStatus(ctx, giveaway, domain.GiveawayStatusExpired); err != nil {
			s.logger.Error("failed to expire code", zap.String("code", code), zap.Error(err))
		}
		s.metrics.RecordGiveawayClaim("expired")
		return domain.ErrCodeExpired
	}

	if err := s.giveawayRepo.RegisterClaim(ctx, code, telegramID); err != nil {
		switch {
		case errors.Is(err, postgres.ErrCodeAlreadyClaimed):
			s.metrics.RecordGiveawayClaim("duplicate")
			return domain.ErrCodeAlreadyClaimed
		case errors.Is(err, postgres.ErrCodeExhausted):
			s.metrics.RecordGiveawayClaim("exhausted")
			return domain.ErrCodeLimitReached
		}
		return fmt.Errorf("giveaway service: failed to register claim for code %q: %w", code, err)
	}

	s.metrics.RecordGiveawayClaim("ok")
	return nil
}

// OnBuyOrderCompleted порождает подарочный заказ, если у покупателя есть
// активная заявка на код розыгрыша. Отсутствие заявки не является ошибкой.
func (s *GiveawayService) OnBuyOrderCompleted(ctx context.Context, order *domain.BuyOrder) error {
	claim, err := s.giveawayRepo.GetActiveClaim(ctx, order.TelegramID)
	if err != nil {
		if errors.Is(err, postgres.ErrCodeNotFound) {
			return nil
		}
		return fmt.Errorf("giveaway service: failed to look up claim for user %d: %w", order.TelegramID, err)
	}

	gift := &domain.GiftOrder{
		ID:            s.newID(),
		TelegramID:    order.TelegramID,
		Username:      order.Username,
		Stars:         s.bonusStars,
		WalletAddress: order.WalletAddress,
		GiveawayCode:  claim.Code,
		Status:        domain.OrderStatusPending,
	}

	if err := s.giftRepo.CreateGift(ctx, gift); err != nil {
		return fmt.Errorf("giveaway service: failed to create gift for code %q: %w", claim.Code, err)
	}
	s.metrics.RecordOrderCreated("gift")

	if err := s.setCodeStatus(ctx, claim, domain.GiveawayStatusCompleted); err != nil {
		s.logger.Error("failed to complete code", zap.String("code", claim.Code), zap.Error(err))
	}

	text := fmt.Sprintf("🎁 Giveaway bonus!\n\nYour purchase qualified for the giveaway code %s.\n%d bonus Stars are pending admin confirmation.",
		claim.Code, gift.Stars)
	if err := s.notifier.Notify(ctx, gift.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify gift recipient", zap.String("gift", gift.ID), zap.Error(err))
	}

	adminText := fmt.Sprintf("🎁 Gift Order!\n\nGift ID: %s\nUser: @%s\nCode: %s\nStars: %d\nWallet Address: %s",
		gift.ID, gift.Username, gift.GiveawayCode, gift.Stars, gift.WalletAddress)
	s.fanOutToAdmins(ctx, gift.ID, adminText, &domain.AdminKeyboard{
		Buttons: []domain.AdminButton{
			{Text: "✅ Confirm Gift", Data: "confirm_gift_" + gift.ID},
			{Text: "❌ Decline Gift", Data: "decline_gift_" + gift.ID},
		},
	})

	return nil
}

// OnBuyOrderDeclined отклоняет заявку на код розыгрыша вместе с заказом
func (s *GiveawayService) OnBuyOrderDeclined(ctx context.Context, order *domain.BuyOrder) error {
	claim, err := s.giveawayRepo.GetActiveClaim(ctx, order.TelegramID)
	if err != nil {
		if errors.Is(err, postgres.ErrCodeNotFound) {
			return nil
		}
		return fmt.Errorf("giveaway service: failed to look up claim for user %d: %w", order.TelegramID, err)
	}

	if err := s.setCodeStatus(ctx, claim, domain.GiveawayStatusRejected); err != nil {
		return fmt.Errorf("giveaway service: failed to reject code %q: %w", claim.Code, err)
	}

	text := fmt.Sprintf("❌ Your giveaway claim for code %s was rejected because the qualifying order was declined.", claim.Code)
	if err := s.notifier.Notify(ctx, order.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify claim owner", zap.String("code", claim.Code), zap.Error(err))
	}

	return nil
}

// ResolveGift переводит подарочный заказ в терминальный статус
func (s *GiveawayService) ResolveGift(ctx context.Context, giftID string, decision domain.Decision) (*domain.GiftOrder, error) {
	var status domain.OrderStatus
	switch decision {
	case domain.DecisionComplete:
		status = domain.OrderStatusCompleted
	case domain.DecisionDecline:
		status = domain.OrderStatusDeclined
	default:
		return nil, ErrInvalidDecision
	}

	gift, err := s.giftRepo.ResolveGift(ctx, giftID, status)
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrGiftNotFound):
			return nil, domain.ErrGiftNotFound
		case errors.Is(err, postgres.ErrAlreadyResolved):
			return nil, domain.ErrAlreadyResolved
		}
		return nil, fmt.Errorf("giveaway service: failed to resolve gift %q: %w", giftID, err)
	}
	s.metrics.RecordOrderResolved("gift", string(decision))

	if err := s.notifier.Notify(ctx, gift.TelegramID, giftResolvedText(gift)); err != nil {
		s.logger.Warn("failed to notify gift recipient", zap.String("gift", gift.ID), zap.Error(err))
	}

	refs, err := s.adminMsgRepo.ListAdminMessages(ctx, gift.ID)
	if err != nil {
		s.logger.Error("failed to load admin message refs", zap.String("gift", gift.ID), zap.Error(err))
	} else {
		s.notifier.RetractKeyboards(ctx, refs)
	}

	return gift, nil
}

// ExpireOverdueCodes помечает просроченные активные коды. Возвращает
// количество затронутых кодов.
func (s *GiveawayService) ExpireOverdueCodes(ctx context.Context) (int64, error) {
	expired, err := s.giveawayRepo.ExpireOverdueCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("giveaway service: failed to expire codes: %w", err)
	}
	return expired, nil
}

// setCodeStatus меняет статус кода, сверяясь с таблицей переходов
func (s *GiveawayService) setCodeStatus(ctx context.Context, code *domain.GiveawayCode, to domain.GiveawayStatus) error {
	if !domain.CanTransitionGiveaway(code.Status, to) {
		return fmt.Errorf("giveaway service: invalid transition %s -> %s for code %q", code.Status, to, code.Code)
	}
	return s.giveawayRepo.SetCodeStatus(ctx, code.Code, to)
}

func (s *GiveawayService) fanOutToAdmins(ctx context.Context, giftID, text string, keyboard *domain.AdminKeyboard) {
	results := s.notifier.NotifyAdmins(ctx, text, keyboard)

	var refs []domain.AdminMessageRef
	for _, res := range results {
		if res.Err != nil {
			s.logger.Error("failed to notify admin",
				zap.Int64("admin_id", res.AdminID),
				zap.String("gift", giftID),
				zap.Error(res.Err),
			)
			continue
		}
		refs = append(refs, domain.AdminMessageRef{OrderID: giftID, AdminID: res.AdminID, MessageID: res.MessageID})
	}

	if len(refs) > 0 {
		if err := s.adminMsgRepo.SaveAdminMessages(ctx, refs); err != nil {
			s.logger.Error("failed to save admin message refs", zap.String("gift", giftID), zap.Error(err))
		}
	}
}

func giftResolvedText(gift *domain.GiftOrder) string {
	if gift.Status == domain.OrderStatusCompleted {
		return fmt.Sprintf("🎁 Your gift (ID: %s) has been confirmed!\n\n%d Stars are on the way.", gift.ID, gift.Stars)
	}
	return fmt.Sprintf("❌ Your gift (ID: %s) has been declined.\n\nPlease contact support if you believe this is a mistake.", gift.ID)
}
