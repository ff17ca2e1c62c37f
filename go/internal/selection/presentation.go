package selection

import (
	"time"

	"github.com/mcdev12/primus/go/internal/easing"
)

const noSample = -1.0

// presentation is the winner announcement timer. It runs one eased cycle,
// freezes when the eased value wraps, and then waits resetDelay.
type presentation struct {
	start     time.Time
	cycle     time.Duration
	prevEased float64
	progress  float64
	eased     float64
	finished  bool
	resetAt   time.Time
}

func newPresentation(now time.Time, cycle time.Duration) presentation {
	return presentation{start: now, cycle: cycle, prevEased: noSample}
}

// advance samples the timer and reports whether the session is due for reset.
func (p *presentation) advance(now time.Time, resetDelay time.Duration) bool {
	if !p.finished {
		elapsed := max(now.Sub(p.start), 0)
		progress := float64(elapsed%p.cycle) / float64(p.cycle)
		eased := easing.CircularInOut(progress)
		if p.prevEased != noSample && eased < p.prevEased {
			p.finished = true
			p.progress = 1
			p.eased = 1
			p.resetAt = now.Add(resetDelay)
		} else {
			p.prevEased = eased
			p.progress = progress
			p.eased = eased
		}
	}
	return p.finished && !now.Before(p.resetAt)
}
