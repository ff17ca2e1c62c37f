package selection

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/colorpool"
	"github.com/mcdev12/primus/go/internal/selection/events"
	"github.com/mcdev12/primus/go/internal/token"
)

// Clock is the interface we use for time operations.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// Rand is the randomness the coordinator needs. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Notifier receives domain events. Notify is called with the coordinator
// lock held and must not block.
type Notifier interface {
	Notify(evt events.Event)
}

// Options configure a Coordinator.
type Options struct {
	Geometry          token.Geometry
	PresentationCycle time.Duration
	ResetDelay        time.Duration
	Rand              Rand
	Notifier          Notifier
}

const (
	defaultPresentationCycle = time.Second
	defaultResetDelay        = 2 * time.Second
)

// Coordinator owns the token registry and runs the selection protocol.
// Contact events and ticks may arrive from different goroutines; a single
// mutex guards all state.
type Coordinator struct {
	mu sync.Mutex

	clock    Clock
	rng      Rand
	pool     *colorpool.Pool
	notifier Notifier

	geometry          token.Geometry
	presentationCycle time.Duration
	resetDelay        time.Duration

	session *Session
}

// New creates a coordinator with a fresh idle session over the given palette.
func New(palette []colorpool.Color, clock Clock, opts Options) (*Coordinator, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		return nil, errors.New("coordinator requires a random source")
	}
	if opts.PresentationCycle <= 0 {
		opts.PresentationCycle = defaultPresentationCycle
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = defaultResetDelay
	}
	if opts.Geometry == (token.Geometry{}) {
		opts.Geometry = token.DefaultGeometry(1)
	}

	pool, err := colorpool.New(palette, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("create color pool: %w", err)
	}
	pool.Reshuffle()

	return &Coordinator{
		clock:             clock,
		rng:               opts.Rand,
		pool:              pool,
		notifier:          opts.Notifier,
		geometry:          opts.Geometry,
		presentationCycle: opts.PresentationCycle,
		resetDelay:        opts.ResetDelay,
		session:           newSession(clock.Now()),
	}, nil
}

// OnContactDown spawns a token for an unseen contact, or re-expands the
// token of a contact that is still shrinking. Contacts beyond the palette
// size are dropped.
func (c *Coordinator) OnContactDown(id token.ContactID, pos token.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	if s.roundComplete {
		return
	}

	existing, exists := s.tokens[id]
	if exists && existing.Growing() {
		return
	}

	c.stopAll("contact_down")

	if exists {
		existing.SetPosition(pos)
		existing.Expand()
		log.Debug().Int64("contact_id", int64(id)).Msg("token re-expanded")
		return
	}

	color, ok := c.pool.Borrow()
	if !ok {
		log.Warn().
			Int64("contact_id", int64(id)).
			Int("live", len(s.tokens)).
			Msg("color pool exhausted, dropping contact")
		return
	}

	tok := token.New(id, color, pos, c.clock, token.Options{
		Geometry: c.geometry,
		ArcStart: -float64(c.rng.IntN(360)),
	})
	tok.Expand()
	s.tokens[id] = tok

	log.Debug().
		Int64("contact_id", int64(id)).
		Str("color", color.Name).
		Int("live", len(s.tokens)).
		Msg("token spawned")
}

// OnContactMove updates the position of a contact's token.
func (c *Coordinator) OnContactMove(id token.ContactID, pos token.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.roundComplete {
		return
	}
	if tok, ok := c.session.tokens[id]; ok {
		tok.SetPosition(pos)
	}
}

// OnContactUp starts the exit animation of a released contact.
func (c *Coordinator) OnContactUp(id token.ContactID) {
	c.release(id, "contact_up")
}

// OnContactCancelled treats a contact that left the surface like a release.
func (c *Coordinator) OnContactCancelled(id token.ContactID) {
	c.release(id, "contact_cancelled")
}

func (c *Coordinator) release(id token.ContactID, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	tok, ok := s.tokens[id]
	if !ok || s.roundComplete {
		return
	}

	c.stopAll(reason)
	if tok.Growing() {
		tok.Shrink()
	}
}

// Stop cancels any pending selection hold on every live token.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopAll("stop")
}

// Tick advances every live token at now and handles the signals they emit.
// Ticks must not overlap; Run guarantees that.
func (c *Coordinator) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	for _, id := range s.contactIDs() {
		tok, ok := s.tokens[id]
		if !ok {
			// Discarded earlier in this tick.
			continue
		}

		switch tok.Advance(now) {
		case token.SignalReady:
			c.onTokenReady(now)
		case token.SignalSelectionFinished:
			c.onTokenSelectionFinished(now)
		case token.SignalGone:
			c.onTokenGone(tok, now)
		}

		if c.session != s {
			// A forced reset replaced the session mid-tick.
			return
		}
	}

	if s.roundComplete && s.presentation.advance(now, c.resetDelay) {
		c.resetSession(now, "round_complete")
	}
}

func (c *Coordinator) stopAll(reason string) {
	s := c.session
	holding := false
	for _, tok := range s.tokens {
		if tok.Stage() == token.StageSelectionHold {
			holding = true
		}
		tok.StopSelection()
	}

	if holding {
		now := c.clock.Now()
		log.Info().
			Str("session_id", s.ID.String()).
			Str("round_id", s.roundID.String()).
			Str("reason", reason).
			Msg("selection round cancelled")
		c.notify(events.EventTypeRoundCancelled, now, events.RoundCancelledPayload{
			RoundID:     s.roundID.String(),
			Reason:      reason,
			CancelledAt: now,
		})
	}
}

func (c *Coordinator) notify(eventType events.EventType, now time.Time, payload any) {
	if c.notifier == nil {
		return
	}
	evt, err := events.New(eventType, c.session.ID, now, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to build event")
		return
	}
	c.notifier.Notify(evt)
}
