package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType names a selection domain event. It is also the last subject token
// when events are published to NATS.
type EventType string

const (
	EventTypeRoundStarted   EventType = "round_started"
	EventTypeRoundCancelled EventType = "round_cancelled"
	EventTypeWinnerSelected EventType = "winner_selected"
	EventTypeSessionReset   EventType = "session_reset"
)

// Event is the envelope shared by the coordinator, the dispatcher and the publishers.
type Event struct {
	ID        uuid.UUID       `json:"event_id"`
	Type      EventType       `json:"event_type"`
	SessionID uuid.UUID       `json:"session_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// New wraps payload in an envelope with a fresh event ID.
func New(eventType EventType, sessionID uuid.UUID, at time.Time, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: at,
		Payload:   data,
	}, nil
}

// RoundStartedPayload is emitted when every live token is ready and the selection hold begins.
type RoundStartedPayload struct {
	RoundID   string    `json:"round_id"`
	Contacts  []int64   `json:"contacts"`
	StartedAt time.Time `json:"started_at"`
}

// RoundCancelledPayload is emitted when a contact joins or leaves during the selection hold.
type RoundCancelledPayload struct {
	RoundID     string    `json:"round_id"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// WinnerSelectedPayload is emitted once per round.
type WinnerSelectedPayload struct {
	RoundID    string    `json:"round_id"`
	ContactID  int64     `json:"contact_id"`
	Color      string    `json:"color"`
	ColorHex   string    `json:"color_hex"`
	Candidates []int64   `json:"candidates"`
	SelectedAt time.Time `json:"selected_at"`
}

// SessionResetPayload is emitted when a session is torn down and a fresh idle one begins.
type SessionResetPayload struct {
	Reason       string    `json:"reason"`
	NextSession  string    `json:"next_session_id"`
	ResetAt      time.Time `json:"reset_at"`
	RoundsPlayed int       `json:"rounds_played"`
}
