package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/starstore/internal/domain"
	domainmocks "github.com/avc/starstore/internal/domain/mocks"
	"github.com/avc/starstore/internal/metrics"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type giveawayServiceMocks struct {
	giveawayRepo *domainmocks.GiveawayRepositoryMock
	giftRepo     *domainmocks.GiftRepositoryMock
	adminMsgRepo *domainmocks.AdminMessageRepositoryMock
	notifier     *domainmocks.NotifierMock
}

func newTestGiveawayService(t *testing.T) (*GiveawayService, *giveawayServiceMocks) {
	t.Helper()

	m := &giveawayServiceMocks{
		giveawayRepo: domainmocks.NewGiveawayRepositoryMock(t),
		giftRepo:     domainmocks.NewGiftRepositoryMock(t),
		adminMsgRepo: domainmocks.NewAdminMessageRepositoryMock(t),
		notifier:     domainmocks.NewNotifierMock(t),
	}
	logger, _ := zap.NewDevelopment()

	svc := NewGiveawayService(
		m.giveawayRepo,
		m.giftRepo,
		m.adminMsgRepo,
		m.notifier,
		func() string { return "GIFT01" },
		15,
		30*24*time.Hour,
		metrics.NewStoreMetrics(prometheus.NewRegistry()),
		logger,
	)
	return svc, m
}

func TestGiveawayService_IssueCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().CreateCode(mock.Anything, mock.Anything).Return(nil).Once()

		code, err := svc.IssueCode(ctx, "SUMMER", 5)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER", code.Code)
		assert.Equal(t, 5, code.ClaimLimit)
		assert.Equal(t, domain.GiveawayStatusActive, code.Status)
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), code.ExpiresAt, time.Minute)
	})

	t.Run("Generated code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().CreateCode(mock.Anything, mock.Anything).Return(nil).Once()

		code, err := svc.IssueCode(ctx, "", 1)
		require.NoError(t, err)
		assert.Equal(t, "GIFT01", code.Code)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		svc, _ := newTestGiveawayService(t)

		_, err := svc.IssueCode(ctx, "SUMMER", 0)
		assert.ErrorIs(t, err, ErrInvalidClaimLimit)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().CreateCode(mock.Anything, mock.Anything).
			Return(postgres.ErrCodeExists).Once()

		_, err := svc.IssueCode(ctx, "SUMMER", 5)
		assert.ErrorIs(t, err, domain.ErrCodeExists)
	})
}

func TestGiveawayService_Claim(t *testing.T) {
	ctx := context.Background()

	activeCode := func() *domain.GiveawayCode {
		return &domain.GiveawayCode{
			Code:       "SUMMER",
			ClaimLimit: 5,
			Status:     domain.GiveawayStatusActive,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "SUMMER").Return(activeCode(), nil).Once()
		m.giveawayRepo.EXPECT().RegisterClaim(mock.Anything, "SUMMER", int64(1)).Return(nil).Once()

		err := svc.Claim(ctx, "SUMMER", 1)
		require.NoError(t, err)
	})

	t.Run("Unknown code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "NOPE").
			Return(nil, postgres.ErrCodeNotFound).Once()

		err := svc.Claim(ctx, "NOPE", 1)
		assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	})

	t.Run("Inactive code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		code := activeCode()
		code.Status = domain.GiveawayStatusCompleted
		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "SUMMER").Return(code, nil).Once()

		err := svc.Claim(ctx, "SUMMER", 1)
		assert.ErrorIs(t, err, domain.ErrCodeNotActive)
	})

	t.Run("Expired code flips status", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		code := activeCode()
		code.ExpiresAt = time.Now().Add(-time.Hour)
		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "SUMMER").Return(code, nil).Once()
		m.giveawayRepo.EXPECT().SetCodeStatus(mock.Anything, "SUMMER", domain.GiveawayStatusExpired).
			Return(nil).Once()

		err := svc.Claim(ctx, "SUMMER", 1)
		assert.ErrorIs(t, err, domain.ErrCodeExpired)
	})

	t.Run("Duplicate claim", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "SUMMER").Return(activeCode(), nil).Once()
		m.giveawayRepo.EXPECT().RegisterClaim(mock.Anything, "SUMMER", int64(1)).
			Return(postgres.ErrCodeAlreadyClaimed).Once()

		err := svc.Claim(ctx, "SUMMER", 1)
		assert.ErrorIs(t, err, domain.ErrCodeAlreadyClaimed)
	})

	t.Run("Limit reached", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetCode(mock.Anything, "SUMMER").Return(activeCode(), nil).Once()
		m.giveawayRepo.EXPECT().RegisterClaim(mock.Anything, "SUMMER", int64(1)).
			Return(postgres.ErrCodeExhausted).Once()

		err := svc.Claim(ctx, "SUMMER", 1)
		assert.ErrorIs(t, err, domain.ErrCodeLimitReached)
	})
}

func TestGiveawayService_OnBuyOrderCompleted(t *testing.T) {
	ctx := context.Background()

	order := &domain.BuyOrder{
		ID: "ABC123", TelegramID: 1, Username: "alice",
		WalletAddress: "TWallet", Status: domain.OrderStatusCompleted,
	}

	t.Run("Spawns gift for active claim", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		claim := &domain.GiveawayCode{Code: "SUMMER", Status: domain.GiveawayStatusActive}
		m.giveawayRepo.EXPECT().GetActiveClaim(mock.Anything, int64(1)).Return(claim, nil).Once()
		m.giftRepo.EXPECT().CreateGift(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, gift *domain.GiftOrder) {
				assert.Equal(t, "GIFT01", gift.ID)
				assert.Equal(t, 15, gift.Stars)
				assert.Equal(t, "SUMMER", gift.GiveawayCode)
				assert.Equal(t, "TWallet", gift.WalletAddress)
			}).Return(nil).Once()
		m.giveawayRepo.EXPECT().SetCodeStatus(mock.Anything, "SUMMER", domain.GiveawayStatusCompleted).
			Return(nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().NotifyAdmins(mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.DeliveryResult{{AdminID: 10, MessageID: 3}}).Once()
		m.adminMsgRepo.EXPECT().SaveAdminMessages(mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.OnBuyOrderCompleted(ctx, order)
		require.NoError(t, err)
	})

	t.Run("No active claim", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetActiveClaim(mock.Anything, int64(1)).
			Return(nil, postgres.ErrCodeNotFound).Once()

		err := svc.OnBuyOrderCompleted(ctx, order)
		require.NoError(t, err)
	})
}

func TestGiveawayService_OnBuyOrderDeclined(t *testing.T) {
	ctx := context.Background()

	order := &domain.BuyOrder{ID: "ABC123", TelegramID: 1, Status: domain.OrderStatusDeclined}

	t.Run("Rejects claimed code", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		claim := &domain.GiveawayCode{Code: "SUMMER", Status: domain.GiveawayStatusActive}
		m.giveawayRepo.EXPECT().GetActiveClaim(mock.Anything, int64(1)).Return(claim, nil).Once()
		m.giveawayRepo.EXPECT().SetCodeStatus(mock.Anything, "SUMMER", domain.GiveawayStatusRejected).
			Return(nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		err := svc.OnBuyOrderDeclined(ctx, order)
		require.NoError(t, err)
	})

	t.Run("No active claim", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giveawayRepo.EXPECT().GetActiveClaim(mock.Anything, int64(1)).
			Return(nil, postgres.ErrCodeNotFound).Once()

		err := svc.OnBuyOrderDeclined(ctx, order)
		require.NoError(t, err)
	})
}

func TestGiveawayService_ResolveGift(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		gift := &domain.GiftOrder{ID: "GIFT01", TelegramID: 1, Stars: 15, Status: domain.OrderStatusCompleted}
		m.giftRepo.EXPECT().ResolveGift(mock.Anything, "GIFT01", domain.OrderStatusCompleted).
			Return(gift, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.adminMsgRepo.EXPECT().ListAdminMessages(mock.Anything, "GIFT01").Return(nil, nil).Once()
		m.notifier.EXPECT().RetractKeyboards(mock.Anything, mock.Anything).Return().Once()

		got, err := svc.ResolveGift(ctx, "GIFT01", domain.DecisionComplete)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, got.Status)
	})

	t.Run("Already resolved", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giftRepo.EXPECT().ResolveGift(mock.Anything, "GIFT01", domain.OrderStatusDeclined).
			Return(nil, postgres.ErrAlreadyResolved).Once()

		_, err := svc.ResolveGift(ctx, "GIFT01", domain.DecisionDecline)
		assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestGiveawayService(t)

		m.giftRepo.EXPECT().ResolveGift(mock.Anything, "NOPE42", domain.OrderStatusCompleted).
			Return(nil, postgres.ErrGiftNotFound).Once()

		_, err := svc.ResolveGift(ctx, "NOPE42", domain.DecisionComplete)
		assert.ErrorIs(t, err, domain.ErrGiftNotFound)
	})
}

func TestGiveawayService_ExpireOverdueCodes(t *testing.T) {
	ctx := context.Background()

	svc, m := newTestGiveawayService(t)

	m.giveawayRepo.EXPECT().ExpireOverdueCodes(mock.Anything).Return(int64(3), nil).Once()

	expired, err := svc.ExpireOverdueCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}
