// Package checker runs the periodic deadline check.
package checker

import (
	"context"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/usecase"

	"go.uber.org/zap"
)

// Checker triggers a full compliance pass on a fixed interval. Passes run
// sequentially in one goroutine; the engine itself does not lock out an
// overlapping pass, so the single-goroutine loop is what guarantees
// at-most-one run at a time.
type Checker struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	interval time.Duration
}

// New constructs a Checker.
func New(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, interval time.Duration) *Checker {
	return &Checker{
		log:      log.Named("checker"),
		uc:       uc,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, triggering one pass per interval tick.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Infow("checker started", "interval", c.interval)
	for {
		select {
		case <-ctx.Done():
			c.log.Infow("checker stopped")
			return
		case <-ticker.C:
			if err := c.uc.RunCheck(ctx); err != nil {
				c.log.Errorw("check pass failed", "error", err)
			}
		}
	}
}
