package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/metrics"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/avc/starstore/internal/utils/orderid"
	"go.uber.org/zap"
)

// OrderService реализует domain.OrderService
type OrderService struct {
	buyRepo      domain.BuyOrderRepository
	sellRepo     domain.SellOrderRepository
	userRepo     domain.UserRepository
	adminMsgRepo domain.AdminMessageRepository
	giveaway     domain.GiveawayService
	referral     domain.ReferralService
	notifier     domain.Notifier
	payments     domain.PaymentsClient
	prices       PriceTable
	newID        orderid.Generator
	metrics      *metrics.StoreMetrics
	logger       *zap.Logger
}

// NewOrderService создает новый OrderService
func NewOrderService(
	buyRepo domain.BuyOrderRepository,
	sellRepo domain.SellOrderRepository,
	userRepo domain.UserRepository,
	adminMsgRepo domain.AdminMessageRepository,
	giveaway domain.GiveawayService,
	referral domain.ReferralService,
	notifier domain.Notifier,
	payments domain.PaymentsClient,
	prices PriceTable,
	newID orderid.Generator,
	m *metrics.StoreMetrics,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		buyRepo:      buyRepo,
		sellRepo:     sellRepo,
		userRepo:     userRepo,
		adminMsgRepo: adminMsgRepo,
		giveaway:     giveaway,
		referral:     referral,
		notifier:     notifier,
		payments:     payments,
		prices:       prices,
		newID:        newID,
		metrics:      m,
		logger:       logger,
	}
}

func decisionToOrderStatus(decision domain.Decision) (domain.OrderStatus, error) {
	switch decision {
	case domain.DecisionComplete:
		return domain.OrderStatusCompleted, nil
	case domain.DecisionDecline:
		return domain.OrderStatusDeclined, nil
	default:
		return "", ErrInvalidDecision
	}
}

// CreateBuyOrder создает pending заказ на покупку: сумма берется из прайса,
// покупатель и администраторы уведомляются сразу
func (s *OrderService) CreateBuyOrder(ctx context.Context, req *domain.CreateBuyOrderRequest) (*domain.BuyOrder, error) {
	banned, err := s.userRepo.IsBanned(ctx, req.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to check ban for user %d: %w", req.TelegramID, err)
	}
	if banned {
		return nil, domain.ErrBanned
	}

	var amount float64
	if req.IsPremium {
		amount, err = s.prices.PremiumAmount(req.PremiumMonths)
	} else {
		amount, err = s.prices.StarsAmount(req.Stars)
	}
	if err != nil {
		return nil, err
	}

	order := &domain.BuyOrder{
		ID:            s.newID(),
		TelegramID:    req.TelegramID,
		Username:      req.Username,
		Amount:        amount,
		WalletAddress: req.WalletAddress,
		IsPremium:     req.IsPremium,
		Status:        domain.OrderStatusPending,
	}
	if req.IsPremium {
		order.PremiumMonths = req.PremiumMonths
	} else {
		order.Stars = req.Stars
	}

	if err := s.buyRepo.CreateBuyOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("order service: failed to create buy order: %w", err)
	}
	s.metrics.RecordOrderCreated("buy")

	if err := s.notifier.Notify(ctx, order.TelegramID, buyOrderReceivedText(order)); err != nil {
		s.logger.Warn("failed to notify buyer", zap.String("order", order.ID), zap.Error(err))
	}

	s.fanOutToAdmins(ctx, order.ID, newBuyOrderAdminText(order), &domain.AdminKeyboard{
		Buttons: []domain.AdminButton{
			{Text: "Mark as Complete", Data: "complete_" + order.ID},
			{Text: "Decline Order", Data: "decline_" + order.ID},
		},
	})

	return order, nil
}

// CreateSellOrder создает pending обратимый заказ на продажу и выдает
// платежную ссылку. Администраторы уведомляются после подтверждения оплаты.
func (s *OrderService) CreateSellOrder(ctx context.Context, req *domain.CreateSellOrderRequest) (*domain.SellOrder, string, error) {
	if req.Stars <= 0 {
		return nil, "", ErrInvalidStarCount
	}

	banned, err := s.userRepo.IsBanned(ctx, req.TelegramID)
	if err != nil {
		return nil, "", fmt.Errorf("order service: failed to check ban for user %d: %w", req.TelegramID, err)
	}
	if banned {
		return nil, "", domain.ErrBanned
	}

	order := &domain.SellOrder{
		ID:            s.newID(),
		TelegramID:    req.TelegramID,
		Username:      req.Username,
		Stars:         req.Stars,
		WalletAddress: req.WalletAddress,
		Status:        domain.OrderStatusPending,
		Reversible:    true,
	}

	if err := s.sellRepo.CreateSellOrder(ctx, order); err != nil {
		return nil, "", fmt.Errorf("order service: failed to create sell order: %w", err)
	}
	s.metrics.RecordOrderCreated("sell")

	paymentLink, err := s.payments.CreateInvoiceLink(ctx, order.TelegramID, order.ID, order.Stars)
	if err != nil {
		return nil, "", fmt.Errorf("order service: failed to create invoice for order %q: %w", order.ID, err)
	}

	text := fmt.Sprintf("🛒 Sell order created!\n\nOrder ID: %s\nStars: %d\nStatus: Pending (Waiting for payment)\n\nPay here: %s",
		order.ID, order.Stars, paymentLink)
	if err := s.notifier.Notify(ctx, order.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify seller", zap.String("order", order.ID), zap.Error(err))
	}

	return order, paymentLink, nil
}

// ConfirmSellPayment обрабатывает подтверждение оплаты: проставляет paid_at
// и рассылает администраторам кнопки действий
func (s *OrderService) ConfirmSellPayment(ctx context.Context, orderID string) (*domain.SellOrder, error) {
	order, err := s.sellRepo.MarkSellOrderPaid(ctx, orderID)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to confirm payment for order %q: %w", orderID, err)
	}

	text := fmt.Sprintf("✅ Payment successful!\n\nOrder ID: %s\nStars: %d\nStatus: Pending (Waiting for admin verification)",
		order.ID, order.Stars)
	if err := s.notifier.Notify(ctx, order.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify seller about payment", zap.String("order", order.ID), zap.Error(err))
	}

	adminText := fmt.Sprintf("🛒 Payment Received!\n\nOrder ID: %s\nUser: @%s\nStars: %d\nWallet Address: %s",
		order.ID, order.Username, order.Stars, order.WalletAddress)
	s.fanOutToAdmins(ctx, order.ID, adminText, &domain.AdminKeyboard{
		Buttons: []domain.AdminButton{
			{Text: "✅ Mark as Complete", Data: "complete_" + order.ID},
			{Text: "❌ Decline Order", Data: "decline_" + order.ID},
		},
	})

	return order, nil
}

// ResolveBuyOrder переводит pending заказ на покупку в терминальный статус,
// уведомляет покупателя, снимает кнопки у администраторов и запускает
// реферальную активацию и выдачу подарка
func (s *OrderService) ResolveBuyOrder(ctx context.Context, orderID string, decision domain.Decision) (*domain.BuyOrder, error) {
	status, err := decisionToOrderStatus(decision)
	if err != nil {
		return nil, err
	}

	order, err := s.buyRepo.ResolveBuyOrder(ctx, orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrOrderNotFound):
			return nil, domain.ErrOrderNotFound
		case errors.Is(err, postgres.ErrAlreadyResolved):
			return nil, domain.ErrAlreadyResolved
		}
		return nil, fmt.Errorf("order service: failed to resolve buy order %q: %w", orderID, err)
	}
	s.metrics.RecordOrderResolved("buy", string(decision))

	if err := s.notifier.Notify(ctx, order.TelegramID, buyOrderResolvedText(order)); err != nil {
		s.logger.Warn("failed to notify buyer about resolution", zap.String("order", order.ID), zap.Error(err))
	}

	s.retractAdminKeyboards(ctx, order.ID)

	if status == domain.OrderStatusCompleted {
		if err := s.referral.ActivateOnPurchase(ctx, order.TelegramID, order.Username); err != nil {
			s.logger.Error("failed to activate referral", zap.String("order", order.ID), zap.Error(err))
		}
		if err := s.giveaway.OnBuyOrderCompleted(ctx, order); err != nil {
			s.logger.Error("failed to process giveaway claim", zap.String("order", order.ID), zap.Error(err))
		}
	} else {
		if err := s.giveaway.OnBuyOrderDeclined(ctx, order); err != nil {
			s.logger.Error("failed to reject giveaway claim", zap.String("order", order.ID), zap.Error(err))
		}
	}

	return order, nil
}

// ResolveSellOrder переводит pending заказ на продажу в терминальный статус
func (s *OrderService) ResolveSellOrder(ctx context.Context, orderID string, decision domain.Decision) (*domain.SellOrder, error) {
	status, err := decisionToOrderStatus(decision)
	if err != nil {
		return nil, err
	}

	order, err := s.sellRepo.ResolveSellOrder(ctx, orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrOrderNotFound):
			return nil, domain.ErrOrderNotFound
		case errors.Is(err, postgres.ErrAlreadyResolved):
			return nil, domain.ErrAlreadyResolved
		}
		return nil, fmt.Errorf("order service: failed to resolve sell order %q: %w", orderID, err)
	}
	s.metrics.RecordOrderResolved("sell", string(decision))

	text := fmt.Sprintf("Your order has been updated:\n\nOrder ID: %s\nStatus: %s", order.ID, orderStatusLabel(order.Status))
	if err := s.notifier.Notify(ctx, order.TelegramID, text); err != nil {
		s.logger.Warn("failed to notify seller about resolution", zap.String("order", order.ID), zap.Error(err))
	}

	s.retractAdminKeyboards(ctx, order.ID)

	return order, nil
}

// ListTransactions возвращает объединенную историю заказов пользователя,
// новые первыми
func (s *OrderService) ListTransactions(ctx context.Context, telegramID int64) ([]*domain.Transaction, error) {
	buys, err := s.buyRepo.ListBuyOrdersByUser(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list buy orders for user %d: %w", telegramID, err)
	}

	sells, err := s.sellRepo.ListSellOrdersByUser(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list sell orders for user %d: %w", telegramID, err)
	}

	transactions := make([]*domain.Transaction, 0, len(buys)+len(sells))
	for _, o := range buys {
		transactions = append(transactions, &domain.Transaction{
			ID:        o.ID,
			Type:      "buy",
			Stars:     o.Stars,
			Amount:    o.Amount,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	for _, o := range sells {
		transactions = append(transactions, &domain.Transaction{
			ID:        o.ID,
			Type:      "sell",
			Stars:     o.Stars,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return transactions, nil
}

// fanOutToAdmins рассылает сообщение администраторам и сохраняет ссылки
// на доставленные сообщения. Сбой по одному администратору не мешает
// остальным.
func (s *OrderService) fanOutToAdmins(ctx context.Context, orderID, text string, keyboard *domain.AdminKeyboard) {
	results := s.notifier.NotifyAdmins(ctx, text, keyboard)

	var refs []domain.AdminMessageRef
	for _, res := range results {
		if res.Err != nil {
			s.logger.Error("failed to notify admin",
				zap.Int64("admin_id", res.AdminID),
				zap.String("order", orderID),
				zap.Error(res.Err),
			)
			continue
		}
		refs = append(refs, domain.AdminMessageRef{OrderID: orderID, AdminID: res.AdminID, MessageID: res.MessageID})
	}

	if len(refs) > 0 {
		if err := s.adminMsgRepo.SaveAdminMessages(ctx, refs); err != nil {
			s.logger.Error("failed to save admin message refs", zap.String("order", orderID), zap.Error(err))
		}
	}
}

func (s *OrderService) retractAdminKeyboards(ctx context.Context, orderID string) {
	refs, err := s.adminMsgRepo.ListAdminMessages(ctx, orderID)
	if err != nil {
		s.logger.Error("failed to load admin message refs", zap.String("order", orderID), zap.Error(err))
		return
	}
	s.notifier.RetractKeyboards(ctx, refs)
}

func orderStatusLabel(status domain.OrderStatus) string {
	switch status {
	case domain.OrderStatusCompleted:
		return "✅ Order Completed"
	case domain.OrderStatusDeclined:
		return "❌ Order Declined"
	case domain.OrderStatusReversed:
		return "🔄 Order Reversed"
	default:
		return "🔄 Order Updated"
	}
}

func buyOrderReceivedText(order *domain.BuyOrder) string {
	if order.IsPremium {
		return fmt.Sprintf("🎉 Premium order received!\n\nOrder ID: %s\nAmount: %g USDT\nDuration: %d months\nStatus: Pending",
			order.ID, order.Amount, order.PremiumMonths)
	}
	return fmt.Sprintf("🎉 Order received!\n\nOrder ID: %s\nAmount: %g USDT\nStars: %d\nStatus: Pending",
		order.ID, order.Amount, order.Stars)
}

func newBuyOrderAdminText(order *domain.BuyOrder) string {
	if order.IsPremium {
		return fmt.Sprintf("🛒 New Premium Order!\n\nOrder ID: %s\nUser: @%s\nAmount: %g USDT\nDuration: %d months",
			order.ID, order.Username, order.Amount, order.PremiumMonths)
	}
	return fmt.Sprintf("🛒 New Order!\n\nOrder ID: %s\nUser: @%s\nAmount: %g USDT\nStars: %d",
		order.ID, order.Username, order.Amount, order.Stars)
}

func buyOrderResolvedText(order *domain.BuyOrder) string {
	if order.Status == domain.OrderStatusCompleted {
		return fmt.Sprintf("✅ Your order (ID: %s) has been confirmed!\n\nThank you for using StarStore!", order.ID)
	}
	return fmt.Sprintf("❌ Your order (ID: %s) has been declined.\n\nPlease contact support if you believe this is a mistake.", order.ID)
}
