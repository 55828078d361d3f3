// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/store"
)

// BlacklistJanitor periodically removes blacklist rows whose expiry has
// passed. A revoked bearer token past its own exp claim is rejected by
// validation anyway, so the rows only cost table space once expired.
type BlacklistJanitor struct {
	tokenRepository store.TokenRepository
	interval        time.Duration
	logger          *logger.Logger

	// ctx ends the sweep loop on application shutdown.
	ctx context.Context
}

// NewBlacklistJanitor constructs a janitor sweeping at the given interval.
// The loop stops when ctx is cancelled.
func NewBlacklistJanitor(ctx context.Context, tokenRepository store.TokenRepository, interval time.Duration, logger *logger.Logger) *BlacklistJanitor {
	return &BlacklistJanitor{
		tokenRepository: tokenRepository,
		interval:        interval,
		logger:          logger,
		ctx:             ctx,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. A non-positive interval disables the janitor.
func (j *BlacklistJanitor) Run() {
	if j.interval <= 0 {
		j.logger.Info().Msg("blacklist janitor disabled")
		return
	}

	j.logger.Info().Dur("interval", j.interval).Msg("starting blacklist janitor")
	go j.loop()
}

func (j *BlacklistJanitor) loop() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			j.logger.Info().Msg("blacklist janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *BlacklistJanitor) sweep() {
	deleted, err := j.tokenRepository.DeleteExpiredBlacklisted(j.ctx, time.Now())
	if err != nil {
		j.logger.Err(err).Msg("blacklist sweep failed")
		return
	}
	if deleted > 0 {
		j.logger.Debug().Int64("deleted", deleted).Msg("expired blacklist rows removed")
	}
}
