package token

import "time"

// Stage is one of the five ordered phases of a token's animation.
type Stage int

const (
	StageShrink Stage = iota
	StageExpand
	StageArcReveal
	StageReadyHold
	StageSelectionHold
)

var stageDurations = [...]time.Duration{
	StageShrink:        500 * time.Millisecond,
	StageExpand:        500 * time.Millisecond,
	StageArcReveal:     650 * time.Millisecond,
	StageReadyHold:     1000 * time.Millisecond,
	StageSelectionHold: 1600 * time.Millisecond,
}

// Duration is the nominal length of one cycle of the stage.
func (s Stage) Duration() time.Duration {
	if s < StageShrink || s > StageSelectionHold {
		return 0
	}
	return stageDurations[s]
}

func (s Stage) String() string {
	switch s {
	case StageShrink:
		return "shrink"
	case StageExpand:
		return "expand"
	case StageArcReveal:
		return "arc_reveal"
	case StageReadyHold:
		return "ready_hold"
	case StageSelectionHold:
		return "selection_hold"
	default:
		return "unknown"
	}
}

// Signal is an edge-triggered notification produced by Advance.
type Signal int

const (
	SignalNone Signal = iota
	// SignalReady means the token reached ReadyHold, or re-asserted readiness there.
	SignalReady
	// SignalSelectionFinished means one SelectionHold cycle completed.
	SignalSelectionFinished
	// SignalGone is terminal: the shrink cycle completed and the token must be destroyed.
	SignalGone
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalReady:
		return "ready"
	case SignalSelectionFinished:
		return "selection_finished"
	case SignalGone:
		return "gone"
	default:
		return "unknown"
	}
}
