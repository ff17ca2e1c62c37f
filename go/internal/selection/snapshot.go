package selection

import (
	"time"

	"github.com/mcdev12/primus/go/internal/token"
)

// TokenView is what the rendering collaborator reads for one token.
type TokenView struct {
	ID       int64        `json:"id"`
	Color    string       `json:"color"`
	ColorHex string       `json:"color_hex"`
	Stage    string       `json:"stage"`
	Progress float64      `json:"progress"`
	Eased    float64      `json:"eased"`
	Growing  bool         `json:"growing"`
	Ready    bool         `json:"ready"`
	Position token.Point  `json:"position"`
	Visual   token.Visual `json:"visual"`
}

// PresentationView is the state of the winner announcement timer.
type PresentationView struct {
	Progress float64 `json:"progress"`
	Eased    float64 `json:"eased"`
	Finished bool    `json:"finished"`
}

// Frame is a consistent snapshot of the coordinator taken between ticks.
type Frame struct {
	SessionID     string            `json:"session_id"`
	Prompt        Prompt            `json:"prompt"`
	Text          string            `json:"text"`
	RoundComplete bool              `json:"round_complete"`
	SelectedID    *int64            `json:"selected_id,omitempty"`
	Presentation  *PresentationView `json:"presentation,omitempty"`
	Tokens        []TokenView       `json:"tokens"`
	PoolAvailable int               `json:"pool_available"`
	At            time.Time         `json:"at"`
}

// Snapshot returns the current frame.
func (c *Coordinator) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	prompt := s.prompt()
	f := Frame{
		SessionID:     s.ID.String(),
		Prompt:        prompt,
		Text:          prompt.Text(),
		RoundComplete: s.roundComplete,
		Tokens:        make([]TokenView, 0, len(s.tokens)),
		PoolAvailable: c.pool.Available(),
		At:            c.clock.Now(),
	}
	if s.hasSelection {
		id := int64(s.selectedID)
		f.SelectedID = &id
	}
	if s.roundComplete {
		f.Presentation = &PresentationView{
			Progress: s.presentation.progress,
			Eased:    s.presentation.eased,
			Finished: s.presentation.finished,
		}
	}

	for _, id := range s.contactIDs() {
		tok := s.tokens[id]
		color := tok.Color()
		f.Tokens = append(f.Tokens, TokenView{
			ID:       int64(id),
			Color:    color.Name,
			ColorHex: color.Hex(),
			Stage:    tok.Stage().String(),
			Progress: tok.Progress(),
			Eased:    tok.Eased(),
			Growing:  tok.Growing(),
			Ready:    tok.Ready(),
			Position: tok.Position(),
			Visual:   tok.Visual(),
		})
	}
	return f
}

// LiveCount is the number of tokens in the current session.
func (c *Coordinator) LiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.session.tokens)
}

// RoundComplete reports whether the current session has announced a winner.
func (c *Coordinator) RoundComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.roundComplete
}

// Winner returns the selected contact of the current session, if any.
func (c *Coordinator) Winner() (token.ContactID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.selectedID, c.session.hasSelection
}

// BorrowedColors is the number of palette colours currently lent to tokens.
func (c *Coordinator) BorrowedColors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool.Borrowed()
}
