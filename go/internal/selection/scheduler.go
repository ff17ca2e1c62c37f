package selection

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTickInterval is roughly 60 Hz.
const DefaultTickInterval = time.Second / 60

// Run drives Tick at a fixed interval until ctx is cancelled. onFrame, if
// set, receives a snapshot after every tick. Ticks run on this goroutine
// only, so they can never overlap; a slow tick simply drops ticker fires.
func (c *Coordinator) Run(ctx context.Context, interval time.Duration, onFrame func(Frame)) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("selection ticker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("selection ticker shutting down")
			return nil
		case now := <-ticker.Chan():
			c.Tick(now)
			if onFrame != nil {
				onFrame(c.Snapshot())
			}
		}
	}
}
