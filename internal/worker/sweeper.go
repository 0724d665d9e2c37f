package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// GiveawayExpirer помечает просроченные активные коды розыгрыша
type GiveawayExpirer interface {
	ExpireOverdueCodes(ctx context.Context) (int64, error)
}

// Sweeper периодически переводит просроченные коды розыгрыша в expired
type Sweeper struct {
	expirer  GiveawayExpirer
	interval time.Duration
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewSweeper создает новый Sweeper
func NewSweeper(expirer GiveawayExpirer, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		expirer:  expirer,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает цикл сканирования
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop дожидается завершения цикла сканирования
func (s *Sweeper) Stop() {
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	s.logger.Info("giveaway sweeper started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("giveaway sweeper stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.expirer.ExpireOverdueCodes(ctx)
	if err != nil {
		s.logger.Error("failed to expire giveaway codes", zap.Error(err))
		return
	}
	if expired > 0 {
		s.logger.Info("expired giveaway codes", zap.Int64("count", expired))
	}
}
