package selection

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/selection/events"
	"github.com/mcdev12/primus/go/internal/token"
)

func (c *Coordinator) onTokenReady(now time.Time) {
	if c.session.roundComplete {
		return
	}
	c.evaluateGate(now)
}

// evaluateGate starts a selection round once at least two tokens exist
// and every one of them is ready.
func (c *Coordinator) evaluateGate(now time.Time) {
	s := c.session
	live := len(s.tokens)
	if live < 2 || s.readyCount() != live || s.allHolding() {
		return
	}

	ids := s.contactIDs()
	for _, id := range ids {
		s.tokens[id].StartSelection()
	}
	s.roundID = uuid.New()
	s.rounds++

	log.Info().
		Str("session_id", s.ID.String()).
		Str("round_id", s.roundID.String()).
		Int("live", live).
		Msg("selection round started")
	c.notify(events.EventTypeRoundStarted, now, events.RoundStartedPayload{
		RoundID:   s.roundID.String(),
		Contacts:  int64IDs(ids),
		StartedAt: now,
	})
}

// onTokenSelectionFinished draws the winner. It runs at most once per
// round no matter how many tokens finish their hold in the same tick.
func (c *Coordinator) onTokenSelectionFinished(now time.Time) {
	s := c.session
	if s.roundComplete || s.hasSelection {
		return
	}

	ids := s.contactIDs()
	if len(ids) < 2 {
		log.Error().
			Str("session_id", s.ID.String()).
			Int("live", len(ids)).
			Msg("selection finished without enough candidates, resetting session")
		c.resetSession(now, "selection_invariant")
		return
	}

	winner := ids[c.rng.IntN(len(ids))]
	for _, id := range ids {
		if id != winner {
			c.destroyToken(id)
		}
	}

	tok, ok := s.tokens[winner]
	if !ok {
		log.Error().
			Str("session_id", s.ID.String()).
			Int64("contact_id", int64(winner)).
			Msg("winner missing from live tokens, resetting session")
		c.resetSession(now, "selection_invariant")
		return
	}

	tok.FinishSelection()
	s.selectedID = winner
	s.hasSelection = true
	s.roundComplete = true
	s.completedAt = now
	s.presentation = newPresentation(now, c.presentationCycle)

	color := tok.Color()
	log.Info().
		Str("session_id", s.ID.String()).
		Str("round_id", s.roundID.String()).
		Int64("contact_id", int64(winner)).
		Str("color", color.Name).
		Int("candidates", len(ids)).
		Msg("winner selected")
	c.notify(events.EventTypeWinnerSelected, now, events.WinnerSelectedPayload{
		RoundID:    s.roundID.String(),
		ContactID:  int64(winner),
		Color:      color.Name,
		ColorHex:   color.Hex(),
		Candidates: int64IDs(ids),
		SelectedAt: now,
	})
}

func (c *Coordinator) onTokenGone(tok *token.Token, now time.Time) {
	s := c.session
	c.destroyToken(tok.ID())

	if len(s.tokens) == 0 {
		c.pool.Reshuffle()
		return
	}
	if !s.roundComplete {
		c.evaluateGate(now)
	}
}

// destroyToken returns the token's colour and removes it. Unknown ids are ignored.
func (c *Coordinator) destroyToken(id token.ContactID) {
	s := c.session
	tok, ok := s.tokens[id]
	if !ok {
		return
	}

	if err := c.pool.Return(tok.Color()); err != nil {
		log.Error().
			Err(err).
			Int64("contact_id", int64(id)).
			Str("color", tok.Color().String()).
			Msg("failed to return token color")
	}
	delete(s.tokens, id)

	log.Debug().
		Int64("contact_id", int64(id)).
		Int("live", len(s.tokens)).
		Msg("token destroyed")
}

// resetSession destroys every remaining token and begins a fresh idle session.
func (c *Coordinator) resetSession(now time.Time, reason string) {
	old := c.session
	for _, id := range old.contactIDs() {
		c.destroyToken(id)
	}
	c.pool.Reshuffle()

	next := newSession(now)
	c.notify(events.EventTypeSessionReset, now, events.SessionResetPayload{
		Reason:       reason,
		NextSession:  next.ID.String(),
		ResetAt:      now,
		RoundsPlayed: old.rounds,
	})
	c.session = next

	log.Info().
		Str("session_id", old.ID.String()).
		Str("next_session_id", next.ID.String()).
		Str("reason", reason).
		Msg("session reset")
}
