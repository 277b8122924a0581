package cron

import (
	"context"
	"time"

	"drepto/utils"

	"go.uber.org/zap"
)

// Sweeper expires idle sessions and reports how many it closed.
type Sweeper interface {
	Sweep() int
}

// InitSessionJanitor sweeps idle portal sessions in the background until ctx is done.
func InitSessionJanitor(ctx context.Context, sweeper Sweeper, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	logger := utils.GetLogger()
	logger.Info("[SessionJanitor] Starting", zap.Duration("interval", interval))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				runSweep(logger, sweeper)
			case <-ctx.Done():
				logger.Info("[SessionJanitor] Stopped")
				return
			}
		}
	}()
}

// runSweep keeps the janitor alive if a session panics while closing.
func runSweep(logger *zap.Logger, sweeper Sweeper) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[SessionJanitor] Sweep panicked", zap.Any("panic", r))
		}
	}()
	if n := sweeper.Sweep(); n > 0 {
		logger.Debug("[SessionJanitor] Swept sessions", zap.Int("closed", n))
	}
}
