package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress    string  // Адрес и порт запуска сервиса
	DatabaseURI   string  // URI подключения к БД
	BotToken      string  // Токен Telegram бота
	AdminIDs      []int64 // Telegram ID администраторов
	WalletAddress string  // Адрес кошелька для приема оплаты
	LogLevel      string  // Уровень логирования

	// Бонусы
	GiftBonusStars     int // Звезды за подарочный заказ розыгрыша
	ReferralBonusStars int // Звезды за активированного реферала

	// Розыгрыши
	GiveawayTTL           time.Duration // Срок жизни кода
	GiveawaySweepInterval time.Duration // Интервал сканирования просроченных кодов
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env опционален, локальное удобство
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              "info",
		GiftBonusStars:        15,
		ReferralBonusStars:    10,
		GiveawayTTL:           30 * 24 * time.Hour,
		GiveawaySweepInterval: time.Hour,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	// Токен бота только из env
	if envToken, ok := os.LookupEnv("BOT_TOKEN"); ok {
		cfg.BotToken = envToken
	}

	if envAdmins, ok := os.LookupEnv("ADMIN_TELEGRAM_IDS"); ok {
		ids, err := parseAdminIDs(envAdmins)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_IDS: %w", err)
		}
		cfg.AdminIDs = ids
	}

	if envWallet, ok := os.LookupEnv("WALLET_ADDRESS"); ok {
		cfg.WalletAddress = envWallet
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envGiftBonus, ok := os.LookupEnv("GIFT_BONUS_STARS"); ok {
		if stars, err := strconv.Atoi(envGiftBonus); err == nil && stars > 0 {
			cfg.GiftBonusStars = stars
		}
	}

	if envReferralBonus, ok := os.LookupEnv("REFERRAL_BONUS_STARS"); ok {
		if stars, err := strconv.Atoi(envReferralBonus); err == nil && stars > 0 {
			cfg.ReferralBonusStars = stars
		}
	}

	if envTTL, ok := os.LookupEnv("GIVEAWAY_TTL"); ok {
		if ttl, err := time.ParseDuration(envTTL); err == nil && ttl > 0 {
			cfg.GiveawayTTL = ttl
		}
	}

	if envSweepInterval, ok := os.LookupEnv("GIVEAWAY_SWEEP_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envSweepInterval); err == nil && interval > 0 {
			cfg.GiveawaySweepInterval = interval
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required (BOT_TOKEN env)")
	}

	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("at least one admin is required (ADMIN_TELEGRAM_IDS env)")
	}

	return cfg, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad admin id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
