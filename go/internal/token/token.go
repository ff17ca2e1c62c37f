package token

import (
	"time"

	"github.com/mcdev12/primus/go/internal/colorpool"
	"github.com/mcdev12/primus/go/internal/easing"
)

// noSample marks the absence of a previous eased sample. Any real eased
// value is >= 0, so a wrap is never reported against it.
const noSample = -1.0

// ContactID identifies one physical contact for its whole duration.
type ContactID int64

// Clock is the subset of clockwork.Clock a token needs.
type Clock interface {
	Now() time.Time
}

// Options tune a token. Zero values fall back to the defaults used by the
// selector.
type Options struct {
	// Ease shapes every stage cycle. Defaults to easing.QuadraticInOut.
	Ease easing.Func

	// Inverse undoes Ease; it seeds Expand so the radius stays continuous.
	// Defaults to easing.InverseQuadraticInOut when Ease is defaulted.
	Inverse easing.Func

	Geometry Geometry

	// ArcStart is the random start angle of the reveal arc, in degrees.
	ArcStart float64
}

// Token is the per-contact state machine. It is not safe for concurrent
// use; the coordinator serializes every call.
type Token struct {
	id       ContactID
	color    colorpool.Color
	position Point
	clock    Clock

	ease     easing.Func
	inverse  easing.Func
	geometry Geometry
	arcStart float64

	stage      Stage
	growing    bool
	stageStart time.Time
	offset     time.Duration
	prevEased  float64
	progress   float64
	eased      float64
	ready      bool
	gone       bool

	visual     Visual
	shrinkFrom Visual
}

// New creates a growing token at the start of its Expand stage.
func New(id ContactID, color colorpool.Color, position Point, clock Clock, opts Options) *Token {
	if opts.Ease == nil {
		opts.Ease = easing.QuadraticInOut
		if opts.Inverse == nil {
			opts.Inverse = easing.InverseQuadraticInOut
		}
	}
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = DefaultGeometry(1)
	}

	t := &Token{
		id:       id,
		color:    color,
		position: position,
		clock:    clock,
		ease:     opts.Ease,
		inverse:  opts.Inverse,
		geometry: opts.Geometry,
		arcStart: opts.ArcStart,
		growing:  true,
	}
	t.enter(StageExpand, clock.Now())
	return t
}

func (t *Token) ID() ContactID          { return t.id }
func (t *Token) Color() colorpool.Color { return t.color }
func (t *Token) Position() Point        { return t.position }
func (t *Token) SetPosition(p Point)    { t.position = p }
func (t *Token) Stage() Stage           { return t.stage }
func (t *Token) Growing() bool          { return t.growing }
func (t *Token) Ready() bool            { return t.ready }
func (t *Token) Gone() bool             { return t.gone }
func (t *Token) Progress() float64      { return t.progress }
func (t *Token) Eased() float64         { return t.eased }
func (t *Token) Visual() Visual         { return t.visual }
func (t *Token) Geometry() Geometry     { return t.geometry }

// Expand restarts the growth animation. The clock is pre-seeded from the
// current radius so a token that is interrupted mid-shrink grows from where
// it is instead of popping back to zero.
func (t *Token) Expand() {
	ratio := 0.0
	if actual := t.geometry.ActualRadius(); actual > 0 {
		ratio = t.visual.Radius / actual
	}
	ratio = min(max(ratio, 0), 1)

	t.growing = true
	t.ready = false
	t.gone = false
	t.enter(StageExpand, t.clock.Now())

	if t.inverse != nil {
		cycle := StageExpand.Duration()
		offset := time.Duration(t.inverse(ratio) * float64(cycle))
		if offset >= cycle {
			offset = cycle - time.Millisecond
		}
		t.offset = max(offset, 0)
	}
}

// Shrink starts the exit animation. The token emits SignalGone when it completes.
func (t *Token) Shrink() {
	t.shrinkFrom = t.visual
	t.growing = false
	t.ready = false
	t.enter(StageShrink, t.clock.Now())
}

// StartSelection enters the selection hold.
func (t *Token) StartSelection() {
	t.enter(StageSelectionHold, t.clock.Now())
}

// StopSelection clears readiness and, if the token is holding for
// selection, demotes it to ReadyHold.
func (t *Token) StopSelection() {
	t.ready = false
	if t.stage == StageSelectionHold {
		t.enter(StageReadyHold, t.clock.Now())
	}
}

// FinishSelection demotes a token that won its round back to ReadyHold
// while keeping it ready.
func (t *Token) FinishSelection() {
	if t.stage == StageSelectionHold {
		t.enter(StageReadyHold, t.clock.Now())
	}
	if t.growing {
		t.ready = true
	}
}

// Advance samples the stage clock at now and returns at most one signal.
// A stage cycle is complete when the eased value strictly decreases
// against the previous sample; equal samples never count.
func (t *Token) Advance(now time.Time) Signal {
	if t.gone {
		return SignalNone
	}

	cycle := t.stage.Duration()
	elapsed := max(now.Sub(t.stageStart)+t.offset, 0)
	t.progress = float64(elapsed%cycle) / float64(cycle)
	t.eased = t.ease(t.progress)

	sig := t.step(now)
	t.updateVisual()
	return sig
}

func (t *Token) step(now time.Time) Signal {
	wrapped := t.prevEased != noSample && t.eased < t.prevEased

	if !t.growing {
		if wrapped && t.stage == StageShrink {
			t.gone = true
			t.progress = 1
			t.eased = 1
			return SignalGone
		}
		t.prevEased = t.eased
		return SignalNone
	}

	if !wrapped {
		t.prevEased = t.eased
		if t.stage == StageReadyHold && !t.ready {
			t.ready = true
			return SignalReady
		}
		return SignalNone
	}

	switch t.stage {
	case StageShrink, StageExpand:
		t.enter(t.stage+1, now)
		return SignalNone
	case StageArcReveal:
		t.enter(StageReadyHold, now)
		t.ready = true
		return SignalReady
	case StageReadyHold:
		t.prevEased = t.eased
		if !t.ready {
			t.ready = true
			return SignalReady
		}
		return SignalNone
	case StageSelectionHold:
		t.prevEased = t.eased
		return SignalSelectionFinished
	default:
		return SignalNone
	}
}

func (t *Token) enter(stage Stage, now time.Time) {
	t.stage = stage
	t.stageStart = now
	t.offset = 0
	t.prevEased = noSample
	t.progress = 0
	t.eased = 0
}

func (t *Token) updateVisual() {
	g := t.geometry
	e := t.eased

	if !t.growing {
		k := 1 - e
		t.visual = Visual{
			Radius:   t.shrinkFrom.Radius * k,
			ArcStart: t.shrinkFrom.ArcStart * k,
			ArcSweep: t.shrinkFrom.ArcSweep * k,
		}
		return
	}

	switch t.stage {
	case StageExpand:
		t.visual = Visual{Radius: g.ActualRadius() * e}
	case StageArcReveal:
		t.visual = Visual{
			Radius:   g.ActualRadius() + g.pulse(t.progress),
			ArcStart: t.arcStart + 90*e,
			ArcSweep: 360 * e,
		}
	case StageReadyHold:
		t.visual = Visual{
			Radius:   g.ActualRadius() + g.pulse(t.progress),
			ArcSweep: 360,
		}
	case StageSelectionHold:
		t.visual = Visual{
			Radius:       g.ActualRadius() + g.pulse(t.progress),
			ArcSweep:     360,
			Overlay:      true,
			OverlayStart: t.arcStart + t.arcStart*e,
			OverlaySweep: 360 * e,
		}
	}
}
