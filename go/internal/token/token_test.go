package token

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/primus/go/internal/colorpool"
)

const frame = 16 * time.Millisecond

func newTestToken(t *testing.T) (*Token, *clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	c := colorpool.DefaultPalette()[0]
	return New(7, c, Point{X: 10, Y: 20}, fc, Options{ArcStart: -90}), fc
}

// run advances the fake clock frame by frame and collects every non-empty signal.
func run(tok *Token, fc *clockwork.FakeClock, d time.Duration) []Signal {
	var out []Signal
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		fc.Advance(frame)
		if sig := tok.Advance(fc.Now()); sig != SignalNone {
			out = append(out, sig)
		}
	}
	return out
}

func TestNewTokenStartsExpanding(t *testing.T) {
	t.Parallel()

	tok, _ := newTestToken(t)
	require.Equal(t, ContactID(7), tok.ID())
	require.Equal(t, StageExpand, tok.Stage())
	require.True(t, tok.Growing())
	require.False(t, tok.Ready())
	require.Equal(t, Point{X: 10, Y: 20}, tok.Position())
}

func TestTokenReachesReadyHoldOnce(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)

	sigs := run(tok, fc, 1100*time.Millisecond)
	require.Empty(t, sigs)
	require.Equal(t, StageArcReveal, tok.Stage())

	sigs = run(tok, fc, 3*time.Second)
	require.Equal(t, []Signal{SignalReady}, sigs)
	require.Equal(t, StageReadyHold, tok.Stage())
	require.True(t, tok.Ready())
}

func TestAdvanceIgnoresEqualSamples(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	fc.Advance(100 * time.Millisecond)
	now := fc.Now()

	for i := 0; i < 50; i++ {
		require.Equal(t, SignalNone, tok.Advance(now))
		require.Equal(t, StageExpand, tok.Stage())
	}
}

func TestAdvanceIgnoresIncreasingSamples(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	start := fc.Now()

	for ms := 0; ms < 500; ms += 5 {
		require.Equal(t, SignalNone, tok.Advance(start.Add(time.Duration(ms)*time.Millisecond)))
		require.Equal(t, StageExpand, tok.Stage())
	}
	require.Equal(t, SignalNone, tok.Advance(start.Add(495*time.Millisecond)))
	require.Equal(t, StageExpand, tok.Stage())
}

func TestWrapRequiresStrictDecrease(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	start := fc.Now()

	require.Equal(t, SignalNone, tok.Advance(start.Add(490*time.Millisecond)))
	require.Equal(t, StageExpand, tok.Stage())

	// 510ms wraps to progress 0.02, below the 490ms sample.
	require.Equal(t, SignalNone, tok.Advance(start.Add(510*time.Millisecond)))
	require.Equal(t, StageArcReveal, tok.Stage())
}

func TestShrinkEmitsGoneOnce(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 200*time.Millisecond)

	tok.Shrink()
	require.Equal(t, StageShrink, tok.Stage())
	require.False(t, tok.Growing())

	sigs := run(tok, fc, 2*time.Second)
	require.Equal(t, []Signal{SignalGone}, sigs)
	require.True(t, tok.Gone())
	require.InDelta(t, 0, tok.Visual().Radius, 1e-9)
}

func TestResetNeverReportsSpuriousWrap(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 450*time.Millisecond)
	require.Greater(t, tok.Eased(), 0.9)

	for _, reset := range []func(){tok.Shrink, tok.Expand, tok.StartSelection} {
		reset()
		require.Equal(t, SignalNone, tok.Advance(fc.Now()))
	}
}

func TestSelectionHoldFinishesEachCycle(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 2*time.Second)
	require.True(t, tok.Ready())

	tok.StartSelection()
	require.Equal(t, StageSelectionHold, tok.Stage())
	require.True(t, tok.Ready())

	sigs := run(tok, fc, 1500*time.Millisecond)
	require.Empty(t, sigs)

	sigs = run(tok, fc, 200*time.Millisecond)
	require.Equal(t, []Signal{SignalSelectionFinished}, sigs)
	require.True(t, tok.Visual().Overlay)
}

func TestStopSelectionDemotesAndReassertsReady(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 2*time.Second)
	tok.StartSelection()
	run(tok, fc, 300*time.Millisecond)

	tok.StopSelection()
	require.Equal(t, StageReadyHold, tok.Stage())
	require.False(t, tok.Ready())

	fc.Advance(frame)
	require.Equal(t, SignalReady, tok.Advance(fc.Now()))
	require.True(t, tok.Ready())
}

func TestFinishSelectionKeepsReady(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 2*time.Second)
	tok.StartSelection()
	run(tok, fc, 300*time.Millisecond)

	tok.FinishSelection()
	require.Equal(t, StageReadyHold, tok.Stage())
	require.True(t, tok.Ready())

	require.Empty(t, run(tok, fc, 2*time.Second))
	require.True(t, tok.Ready())
}

func TestStopSelectionOutsideHoldOnlyClearsReady(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	run(tok, fc, 100*time.Millisecond)

	tok.StopSelection()
	require.Equal(t, StageExpand, tok.Stage())
	require.False(t, tok.Ready())
}

func TestExpandContinuesFromCurrentRadius(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	start := fc.Now()
	require.Equal(t, SignalNone, tok.Advance(start.Add(250*time.Millisecond)))
	half := tok.Geometry().ActualRadius() * 0.5
	require.InDelta(t, half, tok.Visual().Radius, 1e-9)

	fc.Advance(250 * time.Millisecond)
	tok.Shrink()
	require.Equal(t, SignalNone, tok.Advance(fc.Now()))
	require.InDelta(t, half, tok.Visual().Radius, 1e-9)

	tok.Expand()
	require.Equal(t, SignalNone, tok.Advance(fc.Now()))
	require.Equal(t, StageExpand, tok.Stage())
	require.InDelta(t, half, tok.Visual().Radius, 1e-6)
}

func TestVisualPerStage(t *testing.T) {
	t.Parallel()

	tok, fc := newTestToken(t)
	g := tok.Geometry()

	run(tok, fc, 700*time.Millisecond)
	require.Equal(t, StageArcReveal, tok.Stage())
	v := tok.Visual()
	require.Greater(t, v.ArcSweep, 0.0)
	require.Less(t, v.ArcSweep, 360.0)
	require.GreaterOrEqual(t, v.Radius, g.ActualRadius())

	run(tok, fc, 1500*time.Millisecond)
	require.Equal(t, StageReadyHold, tok.Stage())
	v = tok.Visual()
	require.Equal(t, 0.0, v.ArcStart)
	require.Equal(t, 360.0, v.ArcSweep)
	require.False(t, v.Overlay)
}

func TestDefaultGeometry(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry(2)
	require.InDelta(t, 230, g.Size, 1e-9)
	require.InDelta(t, 115, g.BaseRadius(), 1e-9)
	require.InDelta(t, 57.5, g.ActualRadius(), 1e-9)
	require.Equal(t, DefaultGeometry(1), DefaultGeometry(0))
}

func TestStageDurations(t *testing.T) {
	t.Parallel()

	require.Equal(t, 500*time.Millisecond, StageShrink.Duration())
	require.Equal(t, 500*time.Millisecond, StageExpand.Duration())
	require.Equal(t, 650*time.Millisecond, StageArcReveal.Duration())
	require.Equal(t, time.Second, StageReadyHold.Duration())
	require.Equal(t, 1600*time.Millisecond, StageSelectionHold.Duration())
	require.Equal(t, time.Duration(0), Stage(9).Duration())
}
