package service

import (
	"context"
	"errors"
	"testing"

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

type reversalServiceMocks struct {
	reversalRepo *domainmocks.ReversalRepositoryMock
	sellRepo     *domainmocks.SellOrderRepositoryMock
	adminMsgRepo *domainmocks.AdminMessageRepositoryMock
	notifier     *domainmocks.NotifierMock
	payments     *domainmocks.PaymentsClientMock
}

func newTestReversalService(t *testing.T) (*ReversalService, *reversalServiceMocks) {
	t.Helper()

	m := &reversalServiceMocks{
		reversalRepo: domainmocks.NewReversalRepositoryMock(t),
		sellRepo:     domainmocks.NewSellOrderRepositoryMock(t),
		adminMsgRepo: domainmocks.NewAdminMessageRepositoryMock(t),
		notifier:     domainmocks.NewNotifierMock(t),
		payments:     domainmocks.NewPaymentsClientMock(t),
	}
	logger, _ := zap.NewDevelopment()

	svc := NewReversalService(
		m.reversalRepo,
		m.sellRepo,
		m.adminMsgRepo,
		m.notifier,
		m.payments,
		func() string { return "REV001" },
		metrics.NewStoreMetrics(prometheus.NewRegistry()),
		logger,
	)
	return svc, m
}

func TestReversalService_RequestReversal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		order := &domain.SellOrder{
			ID: "DEF456", TelegramID: 1, Username: "alice", Stars: 50,
			Status: domain.OrderStatusPending, Reversible: true,
		}
		m.sellRepo.EXPECT().GetSellOrder(mock.Anything, "DEF456").Return(order, nil).Once()
		m.reversalRepo.EXPECT().CreateReversal(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().NotifyAdmins(mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.DeliveryResult{{AdminID: 10, MessageID: 5}}).Once()
		m.adminMsgRepo.EXPECT().SaveAdminMessages(mock.Anything, []domain.AdminMessageRef{
			{OrderID: "REV001", AdminID: 10, MessageID: 5},
		}).Return(nil).Once()

		req, err := svc.RequestReversal(ctx, "DEF456", 1)
		require.NoError(t, err)
		assert.Equal(t, "REV001", req.ID)
		assert.Equal(t, "DEF456", req.OrderID)
		assert.Equal(t, domain.ReversalStatusPending, req.Status)
	})

	t.Run("Order not found", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		m.sellRepo.EXPECT().GetSellOrder(mock.Anything, "NOPE42").
			Return(nil, postgres.ErrOrderNotFound).Once()

		_, err := svc.RequestReversal(ctx, "NOPE42", 1)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Order owned by another user", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		order := &domain.SellOrder{
			ID: "DEF456", TelegramID: 2,
			Status: domain.OrderStatusPending, Reversible: true,
		}
		m.sellRepo.EXPECT().GetSellOrder(mock.Anything, "DEF456").Return(order, nil).Once()

		_, err := svc.RequestReversal(ctx, "DEF456", 1)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Order not reversible", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		order := &domain.SellOrder{
			ID: "DEF456", TelegramID: 1,
			Status: domain.OrderStatusCompleted, Reversible: false,
		}
		m.sellRepo.EXPECT().GetSellOrder(mock.Anything, "DEF456").Return(order, nil).Once()

		_, err := svc.RequestReversal(ctx, "DEF456", 1)
		assert.ErrorIs(t, err, domain.ErrNotReversible)
	})

	t.Run("Pending request already exists", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		order := &domain.SellOrder{
			ID: "DEF456", TelegramID: 1, Stars: 50,
			Status: domain.OrderStatusPending, Reversible: true,
		}
		m.sellRepo.EXPECT().GetSellOrder(mock.Anything, "DEF456").Return(order, nil).Once()
		m.reversalRepo.EXPECT().CreateReversal(mock.Anything, mock.Anything).
			Return(postgres.ErrReversalExists).Once()

		_, err := svc.RequestReversal(ctx, "DEF456", 1)
		assert.ErrorIs(t, err, domain.ErrReversalPending)
	})
}

func TestReversalService_ResolveReversal(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve refunds inside the repository transaction", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		approved := &domain.ReversalRequest{
			ID: "REV001", OrderID: "DEF456", TelegramID: 1, Stars: 50,
			Status: domain.ReversalStatusApproved,
		}
		pending := &domain.ReversalRequest{
			ID: "REV001", OrderID: "DEF456", TelegramID: 1, Stars: 50,
			Status: domain.ReversalStatusPending,
		}
		m.reversalRepo.EXPECT().ApproveReversal(mock.Anything, "REV001", mock.Anything).
			RunAndReturn(func(ctx context.Context, id string, refund func(context.Context, *domain.ReversalRequest) error) (*domain.ReversalRequest, error) {
				if err := refund(ctx, pending); err != nil {
					return nil, err
				}
				return approved, nil
			}).Once()
		m.payments.EXPECT().RefundStars(mock.Anything, int64(1), 50).Return(nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.adminMsgRepo.EXPECT().ListAdminMessages(mock.Anything, "REV001").Return(nil, nil).Once()
		m.notifier.EXPECT().RetractKeyboards(mock.Anything, mock.Anything).Return().Once()

		got, err := svc.ResolveReversal(ctx, "REV001", domain.DecisionComplete)
		require.NoError(t, err)
		assert.Equal(t, domain.ReversalStatusApproved, got.Status)
		m.payments.AssertNumberOfCalls(t, "RefundStars", 1)
	})

	t.Run("Refund failure keeps request pending", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		pending := &domain.ReversalRequest{
			ID: "REV001", OrderID: "DEF456", TelegramID: 1, Stars: 50,
			Status: domain.ReversalStatusPending,
		}
		m.reversalRepo.EXPECT().ApproveReversal(mock.Anything, "REV001", mock.Anything).
			RunAndReturn(func(ctx context.Context, id string, refund func(context.Context, *domain.ReversalRequest) error) (*domain.ReversalRequest, error) {
				return nil, refund(ctx, pending)
			}).Once()
		m.payments.EXPECT().RefundStars(mock.Anything, int64(1), 50).
			Return(errors.New("telegram api down")).Once()

		_, err := svc.ResolveReversal(ctx, "REV001", domain.DecisionComplete)
		assert.ErrorIs(t, err, domain.ErrRefundFailed)
	})

	t.Run("Second approval for the same order refunds nothing", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		// Первый запрос уже перевел заказ в reversed, второй натыкается
		// на проверку под блокировкой до вызова refund.
		m.reversalRepo.EXPECT().ApproveReversal(mock.Anything, "REV002", mock.Anything).
			Return(nil, postgres.ErrNotReversible).Once()

		_, err := svc.ResolveReversal(ctx, "REV002", domain.DecisionComplete)
		assert.ErrorIs(t, err, domain.ErrNotReversible)
		m.payments.AssertNotCalled(t, "RefundStars")
	})

	t.Run("Decline skips refund", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		declined := &domain.ReversalRequest{
			ID: "REV001", OrderID: "DEF456", TelegramID: 1, Stars: 50,
			Status: domain.ReversalStatusDeclined,
		}
		m.reversalRepo.EXPECT().ResolveReversal(mock.Anything, "REV001", domain.ReversalStatusDeclined).
			Return(declined, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		m.adminMsgRepo.EXPECT().ListAdminMessages(mock.Anything, "REV001").Return(nil, nil).Once()
		m.notifier.EXPECT().RetractKeyboards(mock.Anything, mock.Anything).Return().Once()

		got, err := svc.ResolveReversal(ctx, "REV001", domain.DecisionDecline)
		require.NoError(t, err)
		assert.Equal(t, domain.ReversalStatusDeclined, got.Status)
		m.payments.AssertNotCalled(t, "RefundStars")
	})

	t.Run("Already resolved", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		m.reversalRepo.EXPECT().ResolveReversal(mock.Anything, "REV001", domain.ReversalStatusDeclined).
			Return(nil, postgres.ErrAlreadyResolved).Once()

		_, err := svc.ResolveReversal(ctx, "REV001", domain.DecisionDecline)
		assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestReversalService(t)

		m.reversalRepo.EXPECT().ApproveReversal(mock.Anything, "NOPE42", mock.Anything).
			Return(nil, postgres.ErrReversalNotFound).Once()

		_, err := svc.ResolveReversal(ctx, "NOPE42", domain.DecisionComplete)
		assert.ErrorIs(t, err, domain.ErrReversalNotFound)
	})
}
