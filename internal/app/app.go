package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/starstore/internal/bot"
	"github.com/avc/starstore/internal/config"
	"github.com/avc/starstore/internal/worker"
	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config  *config.Config
	logger  *zap.Logger
	db      *pgxpool.Pool
	router  *chi.Mux
	bot     *bot.Bot
	sweeper *worker.Sweeper
	server  *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Подключение к Bot API
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to bot API: %w", err)
	}
	logger.Info("connected to bot API", zap.String("bot", api.Self.UserName))

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, api, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      dbPool,
		router:  router,
		bot:     deps.bot,
		sweeper: deps.sweeper,
		server:  server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск бота и воркера
	a.bot.Start(ctx)
	a.sweeper.Start(ctx)
	a.logger.Info("bot and sweeper started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
