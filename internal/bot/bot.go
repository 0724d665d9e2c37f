package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/avc/starstore/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Состояния диалога пользователя
const (
	stateAwaitingHelpMessage = "awaiting_help_message"
	stateAwaitingBroadcast   = "awaiting_broadcast"
)

// Bot обрабатывает обновления Telegram: команды, коллбэки и платежи
type Bot struct {
	api              *tgbotapi.BotAPI
	orderService     domain.OrderService
	reversalService  domain.ReversalService
	giveawayService  domain.GiveawayService
	referralService  domain.ReferralService
	userRepo         domain.UserRepository
	sellRepo         domain.SellOrderRepository
	notificationRepo domain.NotificationRepository
	notifier         domain.Notifier
	adminIDs         map[int64]bool
	logger           *zap.Logger

	mu         sync.Mutex
	userStates map[int64]string

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New создает нового бота
func New(
	api *tgbotapi.BotAPI,
	orderService domain.OrderService,
	reversalService domain.ReversalService,
	giveawayService domain.GiveawayService,
	referralService domain.ReferralService,
	userRepo domain.UserRepository,
	sellRepo domain.SellOrderRepository,
	notificationRepo domain.NotificationRepository,
	notifier domain.Notifier,
	adminIDs []int64,
	logger *zap.Logger,
) *Bot {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return &Bot{
		api:              api,
		orderService:     orderService,
		reversalService:  reversalService,
		giveawayService:  giveawayService,
		referralService:  referralService,
		userRepo:         userRepo,
		sellRepo:         sellRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		adminIDs:         admins,
		logger:           logger,
		userStates:       make(map[int64]string),
	}
}

// Start запускает цикл обработки обновлений
func (b *Bot) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				b.HandleUpdate(ctx, update)
			}
		}
	}()

	b.logger.Info("bot update loop started")
}

// Stop останавливает цикл обработки и дожидается его завершения
func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.api.StopReceivingUpdates()
	b.wg.Wait()
	b.logger.Info("bot update loop stopped")
}

// HandleUpdate обрабатывает одно обновление
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.PreCheckoutQuery != nil:
		b.handlePreCheckout(ctx, update.PreCheckoutQuery)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.SuccessfulPayment != nil {
		b.handleSuccessfulPayment(ctx, msg)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if state := b.getState(msg.From.ID); state != "" {
		b.handleStatefulMessage(ctx, msg, state)
		return
	}

	// Обычный текст трактуем как попытку claim кода розыгрыша
	code := strings.ToUpper(strings.TrimSpace(msg.Text))
	if code != "" {
		b.handleClaimAttempt(ctx, msg, code)
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminIDs[userID]
}

func (b *Bot) getState(userID int64) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.userStates[userID]
}

func (b *Bot) setState(userID int64, state string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if state == "" {
		delete(b.userStates, userID)
		return
	}
	b.userStates[userID] = state
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
