package bot

import (
	"context"
	"fmt"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// telegramSender покрывает используемую часть Bot API
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramNotifier реализует domain.Notifier поверх Bot API
type TelegramNotifier struct {
	sender   telegramSender
	adminIDs []int64
	metrics  *metrics.StoreMetrics
	logger   *zap.Logger
}

// NewTelegramNotifier создает новый TelegramNotifier
func NewTelegramNotifier(sender telegramSender, adminIDs []int64, m *metrics.StoreMetrics, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		sender:   sender,
		adminIDs: adminIDs,
		metrics:  m,
		logger:   logger,
	}
}

// Notify отправляет сообщение в чат
func (n *TelegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("notifier: failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

// NotifyAdmins рассылает сообщение всем администраторам. Сбой доставки
// одному администратору не прерывает рассылку остальным.
func (n *TelegramNotifier) NotifyAdmins(ctx context.Context, text string, keyboard *domain.AdminKeyboard) []domain.DeliveryResult {
	results := make([]domain.DeliveryResult, 0, len(n.adminIDs))

	for _, adminID := range n.adminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		if keyboard != nil {
			msg.ReplyMarkup = buildInlineKeyboard(keyboard)
		}

		sent, err := n.sender.Send(msg)
		if err != nil {
			n.metrics.RecordNotificationFailure()
			results = append(results, domain.DeliveryResult{AdminID: adminID, Err: err})
			continue
		}
		results = append(results, domain.DeliveryResult{AdminID: adminID, MessageID: sent.MessageID})
	}

	return results
}

// RetractKeyboards снимает inline-кнопки с ранее отправленных сообщений.
// Снятие по каждой ссылке выполняется независимо, сбои логируются.
func (n *TelegramNotifier) RetractKeyboards(ctx context.Context, refs []domain.AdminMessageRef) {
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}

	for _, ref := range refs {
		edit := tgbotapi.NewEditMessageReplyMarkup(ref.AdminID, ref.MessageID, empty)
		if _, err := n.sender.Request(edit); err != nil {
			n.logger.Warn("failed to retract keyboard",
				zap.Int64("admin_id", ref.AdminID),
				zap.Int("message_id", ref.MessageID),
				zap.Error(err),
			)
		}
	}
}

func buildInlineKeyboard(keyboard *domain.AdminKeyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard.Buttons))
	for _, button := range keyboard.Buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
