package app

import (
	"fmt"

	"github.com/avc/starstore/internal/bot"
	"github.com/avc/starstore/internal/config"
	"github.com/avc/starstore/internal/domain"
	"github.com/avc/starstore/internal/handlers"
	"github.com/avc/starstore/internal/metrics"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/avc/starstore/internal/service"
	"github.com/avc/starstore/internal/utils/orderid"
	"github.com/avc/starstore/internal/worker"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user         domain.UserRepository
	buyOrder     domain.BuyOrderRepository
	sellOrder    domain.SellOrderRepository
	reversal     domain.ReversalRepository
	referral     domain.ReferralRepository
	giveaway     domain.GiveawayRepository
	gift         domain.GiftRepository
	adminMessage domain.AdminMessageRepository
	notification domain.NotificationRepository
}

// services содержит все сервисы приложения
type services struct {
	order    domain.OrderService
	reversal domain.ReversalService
	giveaway *service.GiveawayService
	referral domain.ReferralService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	orders        *handlers.OrdersHandler
	referrals     *handlers.ReferralsHandler
	notifications *handlers.NotificationsHandler
	wallet        *handlers.WalletHandler
	health        *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos    *repositories
	services *services
	handlers *handlerSet
	notifier domain.Notifier
	sweeper  *worker.Sweeper
	bot      *bot.Bot
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, api *tgbotapi.BotAPI, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user:         postgres.NewUserRepository(dbPool),
		buyOrder:     postgres.NewBuyOrderRepository(dbPool),
		sellOrder:    postgres.NewSellOrderRepository(dbPool),
		reversal:     postgres.NewReversalRepository(dbPool),
		referral:     postgres.NewReferralRepository(dbPool),
		giveaway:     postgres.NewGiveawayRepository(dbPool),
		gift:         postgres.NewGiftRepository(dbPool),
		adminMessage: postgres.NewAdminMessageRepository(dbPool),
		notification: postgres.NewNotificationRepository(dbPool),
	}

	// Создание утилит
	storeMetrics := metrics.NewStoreMetrics(prometheus.DefaultRegisterer)
	newID, err := orderid.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to init order id generator: %w", err)
	}
	notifier := bot.NewTelegramNotifier(api, cfg.AdminIDs, storeMetrics, logger)
	payments := service.NewPaymentsClient(cfg.BotToken)

	// Создание сервисов
	referralService := service.NewReferralService(repos.referral, notifier, cfg.ReferralBonusStars, logger)
	giveawayService := service.NewGiveawayService(
		repos.giveaway,
		repos.gift,
		repos.adminMessage,
		notifier,
		newID,
		cfg.GiftBonusStars,
		cfg.GiveawayTTL,
		storeMetrics,
		logger,
	)
	orderService := service.NewOrderService(
		repos.buyOrder,
		repos.sellOrder,
		repos.user,
		repos.adminMessage,
		giveawayService,
		referralService,
		notifier,
		payments,
		service.DefaultPriceTable(),
		newID,
		storeMetrics,
		logger,
	)
	reversalService := service.NewReversalService(
		repos.reversal,
		repos.sellOrder,
		repos.adminMessage,
		notifier,
		payments,
		newID,
		storeMetrics,
		logger,
	)
	svcs := &services{
		order:    orderService,
		reversal: reversalService,
		giveaway: giveawayService,
		referral: referralService,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		orders:        handlers.NewOrdersHandler(orderService, logger),
		referrals:     handlers.NewReferralsHandler(referralService, logger),
		notifications: handlers.NewNotificationsHandler(repos.notification, logger),
		wallet:        handlers.NewWalletHandler(cfg.WalletAddress, logger),
		health:        handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание воркера и бота
	sweeper := worker.NewSweeper(giveawayService, cfg.GiveawaySweepInterval, logger)
	storeBot := bot.New(
		api,
		orderService,
		reversalService,
		giveawayService,
		referralService,
		repos.user,
		repos.sellOrder,
		repos.notification,
		notifier,
		cfg.AdminIDs,
		logger,
	)

	return &dependencies{
		repos:    repos,
		services: svcs,
		handlers: hdlrs,
		notifier: notifier,
		sweeper:  sweeper,
		bot:      storeBot,
	}, nil
}
