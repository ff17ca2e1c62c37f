package gateway

import (
	"time"

	"github.com/mcdev12/primus/go/internal/selection"
	"github.com/mcdev12/primus/go/internal/token"
)

// ContactSink receives contact lifecycle events from surface clients.
type ContactSink interface {
	OnContactDown(id token.ContactID, pos token.Point)
	OnContactMove(id token.ContactID, pos token.Point)
	OnContactUp(id token.ContactID)
	OnContactCancelled(id token.ContactID)
}

// SnapshotProvider returns the current frame.
type SnapshotProvider interface {
	Snapshot() selection.Frame
}

// ContactMessageType is the kind of contact event a client sends.
type ContactMessageType string

const (
	ContactDown   ContactMessageType = "down"
	ContactMove   ContactMessageType = "move"
	ContactUp     ContactMessageType = "up"
	ContactExit   ContactMessageType = "exit"
	ContactCancel ContactMessageType = "cancel"
)

// ContactMessage is sent by surface clients.
type ContactMessage struct {
	Type      ContactMessageType `json:"type"`
	ContactID int64              `json:"contact_id"`
	X         float64            `json:"x"`
	Y         float64            `json:"y"`
}

// ServerMessageType is the kind of message the gateway pushes.
type ServerMessageType string

const ServerMessageFrame ServerMessageType = "frame"

// ServerMessage wraps everything the gateway pushes to clients.
type ServerMessage struct {
	Type      ServerMessageType `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      selection.Frame   `json:"data"`
}
