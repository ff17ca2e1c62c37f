package selection

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/primus/go/internal/token"
)

// Prompt is the advisory prompt state shown to the players.
type Prompt string

const (
	PromptIdle       Prompt = "idle"
	PromptNeedsMore  Prompt = "needs more contacts"
	PromptWaiting    Prompt = "waiting"
	PromptAnnouncing Prompt = "announcing winner"
)

// Text is the on-screen text for the prompt.
func (p Prompt) Text() string {
	switch p {
	case PromptIdle:
		return "Tap And Hold"
	case PromptNeedsMore:
		return "One More Finger"
	case PromptWaiting:
		return "Wait"
	default:
		return ""
	}
}

// Session is one round of play, from the first contact to the winner reset.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	tokens map[token.ContactID]*token.Token

	roundID       uuid.UUID
	rounds        int
	selectedID    token.ContactID
	hasSelection  bool
	roundComplete bool
	completedAt   time.Time
	presentation  presentation
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: now,
		tokens:    make(map[token.ContactID]*token.Token),
	}
}

func (s *Session) prompt() Prompt {
	if s.roundComplete {
		return PromptAnnouncing
	}
	switch len(s.tokens) {
	case 0:
		return PromptIdle
	case 1:
		return PromptNeedsMore
	default:
		return PromptWaiting
	}
}

// contactIDs returns live ids in ascending order so iteration and the
// winner draw do not depend on map order.
func (s *Session) contactIDs() []token.ContactID {
	ids := make([]token.ContactID, 0, len(s.tokens))
	for id := range s.tokens {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Session) readyCount() int {
	n := 0
	for _, tok := range s.tokens {
		if tok.Ready() {
			n++
		}
	}
	return n
}

func (s *Session) allHolding() bool {
	for _, tok := range s.tokens {
		if tok.Stage() != token.StageSelectionHold {
			return false
		}
	}
	return len(s.tokens) > 0
}

func int64IDs(ids []token.ContactID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
