package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/avc/starstore/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleCallback обрабатывает нажатия inline-кнопок администраторов.
// Каждый коллбэк получает ответ, иначе кнопка у пользователя "зависнет".
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if !b.isAdmin(query.From.ID) {
		b.answerCallback(query.ID, "⛔ Admins only")
		return
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, "complete_"):
		b.resolveOrderCallback(ctx, query, strings.TrimPrefix(data, "complete_"), domain.DecisionComplete)
	case strings.HasPrefix(data, "decline_gift_"):
		b.resolveGiftCallback(ctx, query, strings.TrimPrefix(data, "decline_gift_"), domain.DecisionDecline)
	case strings.HasPrefix(data, "confirm_gift_"):
		b.resolveGiftCallback(ctx, query, strings.TrimPrefix(data, "confirm_gift_"), domain.DecisionComplete)
	case strings.HasPrefix(data, "approve_reversal_"):
		b.resolveReversalCallback(ctx, query, strings.TrimPrefix(data, "approve_reversal_"), domain.DecisionComplete)
	case strings.HasPrefix(data, "decline_reversal_"):
		b.resolveReversalCallback(ctx, query, strings.TrimPrefix(data, "decline_reversal_"), domain.DecisionDecline)
	case strings.HasPrefix(data, "decline_"):
		b.resolveOrderCallback(ctx, query, strings.TrimPrefix(data, "decline_"), domain.DecisionDecline)
	default:
		b.answerCallback(query.ID, "Unknown action")
	}
}

// resolveOrderCallback разрешает заказ по его ID: сначала как покупку,
// затем как продажу. Идентификаторы заказов общие для обоих типов.
func (b *Bot) resolveOrderCallback(ctx context.Context, query *tgbotapi.CallbackQuery, orderID string, decision domain.Decision) {
	_, err := b.orderService.ResolveBuyOrder(ctx, orderID, decision)
	if err != nil && errors.Is(err, domain.ErrOrderNotFound) {
		_, err = b.orderService.ResolveSellOrder(ctx, orderID, decision)
	}
	if err != nil {
		b.answerCallback(query.ID, resolveFailureText(err))
		if !errors.Is(err, domain.ErrOrderNotFound) && !errors.Is(err, domain.ErrAlreadyResolved) {
			b.logger.Error("failed to resolve order",
				zap.String("order", orderID),
				zap.String("decision", string(decision)),
				zap.Error(err),
			)
		}
		return
	}

	b.answerCallback(query.ID, decisionAckText(decision))
}

func (b *Bot) resolveGiftCallback(ctx context.Context, query *tgbotapi.CallbackQuery, giftID string, decision domain.Decision) {
	if _, err := b.giveawayService.ResolveGift(ctx, giftID, decision); err != nil {
		b.answerCallback(query.ID, resolveFailureText(err))
		if !errors.Is(err, domain.ErrGiftNotFound) && !errors.Is(err, domain.ErrAlreadyResolved) {
			b.logger.Error("failed to resolve gift",
				zap.String("gift", giftID),
				zap.String("decision", string(decision)),
				zap.Error(err),
			)
		}
		return
	}

	b.answerCallback(query.ID, decisionAckText(decision))
}

func (b *Bot) resolveReversalCallback(ctx context.Context, query *tgbotapi.CallbackQuery, reversalID string, decision domain.Decision) {
	if _, err := b.reversalService.ResolveReversal(ctx, reversalID, decision); err != nil {
		switch {
		case errors.Is(err, domain.ErrRefundFailed):
			b.answerCallback(query.ID, "❌ Refund failed, try again")
		case errors.Is(err, domain.ErrReversalNotFound), errors.Is(err, domain.ErrOrderNotFound):
			b.answerCallback(query.ID, "Not found")
		case errors.Is(err, domain.ErrAlreadyResolved):
			b.answerCallback(query.ID, "Already resolved")
		case errors.Is(err, domain.ErrNotReversible):
			b.answerCallback(query.ID, "Order is no longer reversible")
		default:
			b.answerCallback(query.ID, "Something went wrong")
			b.logger.Error("failed to resolve reversal",
				zap.String("reversal", reversalID),
				zap.String("decision", string(decision)),
				zap.Error(err),
			)
		}
		return
	}

	b.answerCallback(query.ID, decisionAckText(decision))
}

func (b *Bot) answerCallback(callbackID, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn("failed to answer callback", zap.Error(err))
	}
}

func resolveFailureText(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrGiftNotFound):
		return "Not found"
	case errors.Is(err, domain.ErrAlreadyResolved):
		return "Already resolved"
	default:
		return "Something went wrong"
	}
}

func decisionAckText(decision domain.Decision) string {
	if decision == domain.DecisionComplete {
		return "✅ Completed"
	}
	return "❌ Declined"
}
