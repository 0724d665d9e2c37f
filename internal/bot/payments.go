package bot

import (
	"context"
	"errors"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/repository/postgres"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handlePreCheckout подтверждает оплату только для известных pending
// заказов. Payload инвойса содержит ID заказа.
func (b *Bot) handlePreCheckout(ctx context.Context, query *tgbotapi.PreCheckoutQuery) {
	orderID := query.InvoicePayload

	answer := tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: query.ID,
		OK:                 true,
	}

	order, err := b.sellRepo.GetSellOrder(ctx, orderID)
	switch {
	case err != nil && errors.Is(err, postgres.ErrOrderNotFound):
		answer.OK = false
		answer.ErrorMessage = "Order not found"
	case err != nil:
		b.logger.Error("failed to load order for pre-checkout", zap.String("order", orderID), zap.Error(err))
		answer.OK = false
		answer.ErrorMessage = "Please try again later"
	case order.Status != domain.OrderStatusPending:
		answer.OK = false
		answer.ErrorMessage = "Order is no longer payable"
	}

	if _, err := b.api.Request(answer); err != nil {
		b.logger.Warn("failed to answer pre-checkout query", zap.String("order", orderID), zap.Error(err))
	}
}

// handleSuccessfulPayment фиксирует оплату заказа на продажу
func (b *Bot) handleSuccessfulPayment(ctx context.Context, msg *tgbotapi.Message) {
	orderID := msg.SuccessfulPayment.InvoicePayload

	if _, err := b.orderService.ConfirmSellPayment(ctx, orderID); err != nil {
		b.logger.Error("failed to confirm payment", zap.String("order", orderID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ We received your payment but could not update the order. Support has been notified.")
		return
	}
}
