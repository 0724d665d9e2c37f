package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/metrics"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/avc/starstore/internal/utils/orderid"
	"go.uber.org/zap"
)

// ReversalService реализует domain.ReversalService
type ReversalService struct {
	reversalRepo domain.ReversalRepository
	sellRepo     domain.SellOrderRepository
	adminMsgRepo domain.AdminMessageRepository
	notifier     domain.Notifier
	payments     domain.PaymentsClient
	newID        orderid.Generator
	metrics      *metrics.StoreMetrics
	logger       *zap.Logger
}

// NewReversalService создает новый ReversalService
func NewReversalService(
	reversalRepo domain.ReversalRepository,
	sellRepo domain.SellOrderRepository,
	adminMsgRepo domain.AdminMessageRepository,
	notifier domain.Notifier,
	payments domain.PaymentsClient,
	newID orderid.Generator,
	m *metrics.StoreMetrics,
	logger *zap.Logger,
) *ReversalService {
	return &ReversalService{
		reversalRepo: reversalRepo,
		sellRepo:     sellRepo,
		adminMsgRepo: adminMsgRepo,
		notifier:     notifier,
		payments:     payments,
		newID:        newID,
		metrics:      m,
		logger:       logger,
	}
}

// RequestReversal создает запрос на возврат pending заказа на продажу.
// Запросить возврат может только владелец заказа, и только пока заказ
// обратим.
func (s *ReversalService) RequestReversal(ctx context.Context, orderID string, requesterID int64) (*domain.ReversalRequest, error) {
	order, err := s.sellRepo.GetSellOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("reversal service: failed to load order %q: %w", orderID, err)
	}
	// Чужие заказы выглядят как несуществующие
	if order.TelegramID != requesterID {
		return nil, domain.ErrOrderNotFound
	}
	if !order.Reversible || !domain.CanTransitionSellOrder(order.Status, domain.OrderStatusReversed) {
		return nil, domain.ErrNotReversible
	}

	req := &domain.ReversalRequest{
		ID:         s.newID(),
		OrderID:    order.ID,
		TelegramID: order.TelegramID,
		Username:   order.Username,
		Stars:      order.Stars,
		Status:     domain.ReversalStatusPending,
	}

	if err := s.reversalRepo.CreateReversal(ctx, req); err != nil {
		if errors.Is(err, postgres.ErrReversalExists) {
			return nil, domain.ErrReversalPending
		}
		return nil, fmt.Errorf("reversal service: failed to create reversal request: %w", err)
	}

	text := fmt.Sprintf("🔄 Reversal requested!\n\nRequest ID: %s\nOrder ID: %s\nStars: %d\nStatus: Pending admin review",
		req.ID, req.OrderID, req.Stars)
	if err := s.notifier.Notify(ctx, req.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify requester", zap.String("reversal", req.ID), zap.Error(err))
	}

	adminText := fmt.Sprintf("🔄 Reversal Request!\n\nRequest ID: %s\nOrder ID: %s\nUser: @%s\nStars: %d",
		req.ID, req.OrderID, req.Username, req.Stars)
	s.fanOutToAdmins(ctx, req.ID, adminText, &domain.AdminKeyboard{
		Buttons: []domain.AdminButton{
			{Text: "✅ Approve Refund", Data: "approve_reversal_" + req.ID},
			{Text: "❌ Decline Refund", Data: "decline_reversal_" + req.ID},
		},
	})

	return req, nil
}

// ResolveReversal разрешает запрос на возврат. Одобрение выполняется
// атомарно в репозитории: refund происходит под блокировкой по заказу,
// и при его сбое запрос остается pending.
func (s *ReversalService) ResolveReversal(ctx context.Context, reversalID string, decision domain.Decision) (*domain.ReversalRequest, error) {
	var resolved *domain.ReversalRequest
	var err error

	switch decision {
	case domain.DecisionComplete:
		resolved, err = s.reversalRepo.ApproveReversal(ctx, reversalID,
			func(ctx context.Context, req *domain.ReversalRequest) error {
				if err := s.payments.RefundStars(ctx, req.TelegramID, req.Stars); err != nil {
					return fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
				}
				return nil
			})
	case domain.DecisionDecline:
		resolved, err = s.reversalRepo.ResolveReversal(ctx, reversalID, domain.ReversalStatusDeclined)
	default:
		return nil, ErrInvalidDecision
	}

	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrReversalNotFound):
			return nil, domain.ErrReversalNotFound
		case errors.Is(err, postgres.ErrAlreadyResolved):
			return nil, domain.ErrAlreadyResolved
		case errors.Is(err, postgres.ErrOrderNotFound):
			return nil, domain.ErrOrderNotFound
		case errors.Is(err, postgres.ErrNotReversible):
			return nil, domain.ErrNotReversible
		case errors.Is(err, domain.ErrRefundFailed):
			return nil, fmt.Errorf("reversal service: refund for reversal %q failed: %w", reversalID, err)
		}
		return nil, fmt.Errorf("reversal service: failed to resolve reversal %q: %w", reversalID, err)
	}
	s.metrics.RecordReversal(string(decision))

	if err := s.notifier.Notify(ctx, resolved.TelegramID, reversalResolvedText(resolved)); err != nil {
		s.logger.Warn("failed to notify requester about resolution", zap.String("reversal", resolved.ID), zap.Error(err))
	}

	refs, err := s.adminMsgRepo.ListAdminMessages(ctx, resolved.ID)
	if err != nil {
		s.logger.Error("failed to load admin message refs", zap.String("reversal", resolved.ID), zap.Error(err))
	} else {
		s.notifier.RetractKeyboards(ctx, refs)
	}

	return resolved, nil
}

func (s *ReversalService) fanOutToAdmins(ctx context.Context, reversalID, text string, keyboard *domain.AdminKeyboard) {
	results := s.notifier.NotifyAdmins(ctx, text, keyboard)

	var refs []domain.AdminMessageRef
	for _, res := range results {
		if res.Err != nil {
			s.logger.Error("failed to notify admin",
				zap.Int64("admin_id", res.AdminID),
				zap.String("reversal", reversalID),
				zap.Error(res.Err),
			)
			continue
		}
		refs = append(refs, domain.AdminMessageRef{OrderID: reversalID, AdminID: res.AdminID, MessageID: res.MessageID})
	}

	if len(refs) > 0 {
		if err := s.adminMsgRepo.SaveAdminMessages(ctx, refs); err != nil {
			s.logger.Error("failed to save admin message refs", zap.String("reversal", reversalID), zap.Error(err))
		}
	}
}

func reversalResolvedText(req *domain.ReversalRequest) string {
	if req.Status == domain.ReversalStatusApproved {
		return fmt.Sprintf("✅ Your reversal request (ID: %s) has been approved.\n\n%d Stars have been refunded.", req.ID, req.Stars)
	}
	return fmt.Sprintf("❌ Your reversal request (ID: %s) has been declined.\n\nPlease contact support if you believe this is a mistake.", req.ID)
}
