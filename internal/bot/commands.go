package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.cmdStart(ctx, msg)
	case "help":
		b.cmdHelp(ctx, msg)
	case "reply":
		b.cmdReply(ctx, msg)
	case "ban":
		b.cmdBan(ctx, msg)
	case "unban":
		b.cmdUnban(ctx, msg)
	case "broadcast":
		b.cmdBroadcast(ctx, msg)
	case "notify":
		b.cmdNotify(ctx, msg)
	case "create_giveaway":
		b.cmdCreateGiveaway(ctx, msg)
	case "reverse":
		b.cmdReverse(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use the web app to buy or sell Stars.")
	}
}

// cmdStart регистрирует пользователя и привязывает реферала из
// payload вида ref_<id>
func (b *Bot) cmdStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	if err := b.userRepo.UpsertUser(ctx, userID, msg.From.UserName); err != nil {
		b.logger.Error("failed to upsert user", zap.Int64("user_id", userID), zap.Error(err))
	}

	payload := strings.TrimSpace(msg.CommandArguments())
	if strings.HasPrefix(payload, "ref_") {
		referrerID, err := strconv.ParseInt(strings.TrimPrefix(payload, "ref_"), 10, 64)
		if err == nil {
			if err := b.referralService.CreateReferral(ctx, referrerID, userID); err != nil {
				b.logger.Error("failed to create referral",
					zap.Int64("referrer_id", referrerID),
					zap.Int64("referred_id", userID),
					zap.Error(err),
				)
			}
		}
	}

	b.reply(msg.Chat.ID, "👋 Welcome to StarStore!\n\nBuy and sell Telegram Stars.\nUse /help to contact support.")
}

// cmdHelp переводит пользователя в режим обращения в поддержку:
// следующее сообщение уходит администраторам
func (b *Bot) cmdHelp(ctx context.Context, msg *tgbotapi.Message) {
	b.setState(msg.From.ID, stateAwaitingHelpMessage)
	b.reply(msg.Chat.ID, "✍️ Describe your problem in the next message and we will forward it to support.")
}

// cmdReply отправляет ответ поддержки пользователю: /reply <id> <text>
func (b *Bot) cmdReply(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	parts := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(parts) != 2 {
		b.reply(msg.Chat.ID, "Usage: /reply <user_id> <message>")
		return
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Usage: /reply <user_id> <message>")
		return
	}

	if err := b.notifier.Notify(ctx, userID, "💬 Support reply:\n\n"+parts[1]); err != nil {
		b.logger.Warn("failed to deliver support reply", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to deliver the reply.")
		return
	}

	b.reply(msg.Chat.ID, "✅ Reply delivered.")
}

func (b *Bot) cmdBan(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(msg.CommandArguments()), 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Usage: /ban <user_id>")
		return
	}

	if err := b.userRepo.Ban(ctx, userID); err != nil {
		b.logger.Error("failed to ban user", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to ban the user.")
		return
	}

	if err := b.notifier.Notify(ctx, userID, "⛔ You have been banned from StarStore."); err != nil {
		b.logger.Warn("failed to notify banned user", zap.Int64("user_id", userID), zap.Error(err))
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("✅ User %d banned.", userID))
}

func (b *Bot) cmdUnban(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(msg.CommandArguments()), 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Usage: /unban <user_id>")
		return
	}

	if err := b.userRepo.Unban(ctx, userID); err != nil {
		b.logger.Error("failed to unban user", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to unban the user.")
		return
	}

	if err := b.notifier.Notify(ctx, userID, "✅ You have been unbanned. Welcome back!"); err != nil {
		b.logger.Warn("failed to notify unbanned user", zap.Int64("user_id", userID), zap.Error(err))
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("✅ User %d unbanned.", userID))
}

// cmdBroadcast переводит администратора в режим рассылки: следующее
// сообщение уходит всем пользователям
func (b *Bot) cmdBroadcast(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	b.setState(msg.From.ID, stateAwaitingBroadcast)
	b.reply(msg.Chat.ID, "✍️ Send the broadcast message. It will be delivered to all users.")
}

// cmdNotify задает баннер-уведомление веб-формы: /notify <text>
func (b *Bot) cmdNotify(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		b.reply(msg.Chat.ID, "Usage: /notify <message>")
		return
	}

	if err := b.notificationRepo.SetNotification(ctx, text); err != nil {
		b.logger.Error("failed to set notification", zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to set the notification.")
		return
	}

	b.reply(msg.Chat.ID, "✅ Notification set.")
}

// cmdCreateGiveaway создает код розыгрыша: /create_giveaway [code limit]
func (b *Bot) cmdCreateGiveaway(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "⛔ This command is for admins only.")
		return
	}

	code := ""
	limit := 1
	args := strings.Fields(msg.CommandArguments())
	if len(args) >= 1 {
		code = strings.ToUpper(args[0])
	}
	if len(args) >= 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			b.reply(msg.Chat.ID, "Usage: /create_giveaway [code] [limit]")
			return
		}
		limit = parsed
	}

	giveaway, err := b.giveawayService.IssueCode(ctx, code, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClaimLimit):
			b.reply(msg.Chat.ID, "❌ Claim limit must be positive.")
		case errors.Is(err, domain.ErrCodeExists):
			b.reply(msg.Chat.ID, "❌ This code already exists.")
		default:
			b.logger.Error("failed to create giveaway", zap.Error(err))
			b.reply(msg.Chat.ID, "❌ Failed to create the giveaway.")
		}
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("🎁 Giveaway created!\n\nCode: %s\nClaim limit: %d\nExpires: %s",
		giveaway.Code, giveaway.ClaimLimit, giveaway.ExpiresAt.Format("2006-01-02 15:04")))
}

// cmdReverse запрашивает возврат заказа на продажу: /reverse <orderID>
func (b *Bot) cmdReverse(ctx context.Context, msg *tgbotapi.Message) {
	orderID := strings.ToUpper(strings.TrimSpace(msg.CommandArguments()))
	if orderID == "" {
		b.reply(msg.Chat.ID, "Usage: /reverse <order_id>")
		return
	}

	req, err := b.reversalService.RequestReversal(ctx, orderID, msg.From.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			b.reply(msg.Chat.ID, "❌ Order not found.")
		case errors.Is(err, domain.ErrNotReversible):
			b.reply(msg.Chat.ID, "❌ This order can no longer be reversed.")
		case errors.Is(err, domain.ErrReversalPending):
			b.reply(msg.Chat.ID, "⏳ A reversal request for this order is already pending.")
		default:
			b.logger.Error("failed to request reversal", zap.String("order", orderID), zap.Error(err))
			b.reply(msg.Chat.ID, "❌ Failed to request the reversal.")
		}
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("🔄 Reversal request %s submitted for review.", req.ID))
}

func (b *Bot) handleStatefulMessage(ctx context.Context, msg *tgbotapi.Message, state string) {
	b.setState(msg.From.ID, "")

	switch state {
	case stateAwaitingHelpMessage:
		b.forwardHelpMessage(ctx, msg)
	case stateAwaitingBroadcast:
		b.runBroadcast(ctx, msg)
	}
}

func (b *Bot) forwardHelpMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := fmt.Sprintf("🆘 Support request\n\nFrom: @%s (ID: %d)\n\n%s", msg.From.UserName, msg.From.ID, msg.Text)
	results := b.notifier.NotifyAdmins(ctx, text, nil)

	delivered := 0
	for _, res := range results {
		if res.Err == nil {
			delivered++
			continue
		}
		b.logger.Warn("failed to forward support request", zap.Int64("admin_id", res.AdminID), zap.Error(res.Err))
	}

	if delivered == 0 {
		b.reply(msg.Chat.ID, "❌ Failed to reach support. Please try again later.")
		return
	}
	b.reply(msg.Chat.ID, "✅ Your message has been forwarded to support.")
}

func (b *Bot) runBroadcast(ctx context.Context, msg *tgbotapi.Message) {
	users, err := b.userRepo.ListUsers(ctx)
	if err != nil {
		b.logger.Error("failed to list users for broadcast", zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to load the user list.")
		return
	}

	sent, failed := 0, 0
	for _, user := range users {
		if err := b.notifier.Notify(ctx, user.TelegramID, msg.Text); err != nil {
			failed++
			b.logger.Warn("failed to deliver broadcast", zap.Int64("user_id", user.TelegramID), zap.Error(err))
			continue
		}
		sent++
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("📣 Broadcast finished.\n\nDelivered: %d\nFailed: %d", sent, failed))
}

func (b *Bot) handleClaimAttempt(ctx context.Context, msg *tgbotapi.Message, code string) {
	err := b.giveawayService.Claim(ctx, code, msg.From.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeNotFound):
			// Не каждый текст — код розыгрыша, молчим
		case errors.Is(err, domain.ErrCodeNotActive), errors.Is(err, domain.ErrCodeExpired):
			b.reply(msg.Chat.ID, "❌ This giveaway code is no longer active.")
		case errors.Is(err, domain.ErrCodeAlreadyClaimed):
			b.reply(msg.Chat.ID, "❌ You have already claimed this code.")
		case errors.Is(err, domain.ErrCodeLimitReached):
			b.reply(msg.Chat.ID, "❌ This giveaway code has reached its claim limit.")
		default:
			b.logger.Error("failed to process claim", zap.String("code", code), zap.Error(err))
			b.reply(msg.Chat.ID, "❌ Something went wrong. Please try again later.")
		}
		return
	}

	b.reply(msg.Chat.ID, "🎁 Code claimed! Make a purchase to receive your bonus Stars.")
}
