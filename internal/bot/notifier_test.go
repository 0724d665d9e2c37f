package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
	failFor   map[int64]error
	nextID    int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		if err := f.failFor[msg.ChatID]; err != nil {
			return tgbotapi.Message{}, err
		}
	}
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func newTestNotifier(sender telegramSender, adminIDs []int64) (*TelegramNotifier, *metrics.StoreMetrics) {
	logger, _ := zap.NewDevelopment()
	m := metrics.NewStoreMetrics(prometheus.NewRegistry())
	return NewTelegramNotifier(sender, adminIDs, m, logger), m
}

func TestTelegramNotifier_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sender := &fakeSender{}
		notifier, _ := newTestNotifier(sender, nil)

		err := notifier.Notify(ctx, 1, "hello")
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)

		msg := sender.sent[0].(tgbotapi.MessageConfig)
		assert.Equal(t, int64(1), msg.ChatID)
		assert.Equal(t, "hello", msg.Text)
	})

	t.Run("Send failure", func(t *testing.T) {
		sender := &fakeSender{failFor: map[int64]error{1: errors.New("blocked")}}
		notifier, _ := newTestNotifier(sender, nil)

		err := notifier.Notify(ctx, 1, "hello")
		assert.Error(t, err)
	})
}

func TestTelegramNotifier_NotifyAdmins(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers to every admin", func(t *testing.T) {
		sender := &fakeSender{}
		notifier, _ := newTestNotifier(sender, []int64{10, 20})

		keyboard := &domain.AdminKeyboard{Buttons: []domain.AdminButton{
			{Text: "✅ Complete", Data: "complete_ABC123"},
			{Text: "❌ Decline", Data: "decline_ABC123"},
		}}

		results := notifier.NotifyAdmins(ctx, "new order", keyboard)
		require.Len(t, results, 2)
		assert.Equal(t, int64(10), results[0].AdminID)
		assert.Equal(t, 1, results[0].MessageID)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, int64(20), results[1].AdminID)
		assert.Equal(t, 2, results[1].MessageID)

		require.Len(t, sender.sent, 2)
		msg := sender.sent[0].(tgbotapi.MessageConfig)
		markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		require.True(t, ok)
		require.Len(t, markup.InlineKeyboard, 2)
		assert.Equal(t, "complete_ABC123", *markup.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("Partial failure keeps delivering", func(t *testing.T) {
		sender := &fakeSender{failFor: map[int64]error{10: errors.New("blocked")}}
		notifier, m := newTestNotifier(sender, []int64{10, 20})

		results := notifier.NotifyAdmins(ctx, "new order", nil)
		require.Len(t, results, 2)
		assert.Error(t, results[0].Err)
		assert.NoError(t, results[1].Err)
		assert.Len(t, sender.sent, 1)

		// Сбой доставки учитывается ровно один раз
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailuresTotal))
	})
}

func TestTelegramNotifier_RetractKeyboards(t *testing.T) {
	sender := &fakeSender{}
	notifier, _ := newTestNotifier(sender, []int64{10, 20})

	refs := []domain.AdminMessageRef{
		{OrderID: "ABC123", AdminID: 10, MessageID: 1},
		{OrderID: "ABC123", AdminID: 20, MessageID: 2},
	}

	notifier.RetractKeyboards(context.Background(), refs)
	require.Len(t, sender.requested, 2)

	edit := sender.requested[0].(tgbotapi.EditMessageReplyMarkupConfig)
	assert.Equal(t, int64(10), edit.ChatID)
	assert.Equal(t, 1, edit.MessageID)
	assert.Empty(t, edit.ReplyMarkup.InlineKeyboard)
}
