package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/selection"
	"github.com/mcdev12/primus/go/internal/token"
)

// ConnectionManager owns the websocket clients attached to the surface.
// Contact ids share one namespace across all connections.
type ConnectionManager struct {
	connections map[*Connection]bool
	mu          sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig
	sink     ContactSink

	frames chan selection.Frame
}

// Connection is a single websocket client.
type Connection struct {
	ID      string
	Conn    *websocket.Conn
	Send    chan []byte
	Manager *ConnectionManager

	ConnectedAt time.Time

	// contacts still down on this connection, owned by readPump
	contacts map[token.ContactID]bool
}

// ConnectionConfig holds configuration for websocket connections.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConnectionConfig returns default websocket configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		SendBufferSize:  32,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// NewConnectionManager creates a connection manager feeding contacts into sink.
func NewConnectionManager(config ConnectionConfig, sink ContactSink) *ConnectionManager {
	if config.SendBufferSize <= 0 {
		config.SendBufferSize = 32
	}
	return &ConnectionManager{
		connections: make(map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config: config,
		sink:   sink,
		frames: make(chan selection.Frame, 8),
	}
}

// Start fans frames out to connected clients until ctx is cancelled.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case frame := <-cm.frames:
			cm.handleBroadcast(frame)
		}
	}
}

// UpgradeConnection upgrades an HTTP request to a surface connection.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:          uuid.New().String(),
		Conn:        conn,
		Send:        make(chan []byte, cm.config.SendBufferSize),
		Manager:     cm,
		ConnectedAt: time.Now(),
		contacts:    make(map[token.ContactID]bool),
	}

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("connection_id", connection.ID).
		Str("remote_addr", r.RemoteAddr).
		Msg("surface connection established")

	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.connections[conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Int("total_connections", len(cm.connections)).
		Msg("connection registered")
}

func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.connections[conn]; !exists {
		return
	}
	delete(cm.connections, conn)
	close(conn.Send)

	log.Info().
		Str("connection_id", conn.ID).
		Msg("connection unregistered")
}

// BroadcastFrame queues a frame for every connected client. Frames are
// dropped when the fan-out falls behind; the next one supersedes them.
func (cm *ConnectionManager) BroadcastFrame(frame selection.Frame) {
	select {
	case cm.frames <- frame:
	default:
		log.Debug().Msg("frame channel full, dropping frame")
	}
}

func (cm *ConnectionManager) handleBroadcast(frame selection.Frame) {
	data, err := json.Marshal(ServerMessage{
		Type:      ServerMessageFrame,
		Timestamp: frame.At,
		Data:      frame,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal frame for broadcast")
		return
	}

	var slow []*Connection
	cm.mu.RLock()
	for conn := range cm.connections {
		select {
		case conn.Send <- data:
		default:
			slow = append(slow, conn)
		}
	}
	cm.mu.RUnlock()

	for _, conn := range slow {
		log.Warn().
			Str("connection_id", conn.ID).
			Msg("connection send buffer full, closing connection")
		cm.unregisterConnection(conn)
		conn.Conn.Close()
	}
}

// Stats describes the attached clients.
type Stats struct {
	TotalConnections int `json:"total_connections"`
	LiveTokens       int `json:"live_tokens"`
	PoolAvailable    int `json:"pool_available"`
}

// GetConnectionStats returns statistics about active connections.
func (cm *ConnectionManager) GetConnectionStats() Stats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return Stats{TotalConnections: len(cm.connections)}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write frame")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to send ping")
				return
			}
		}
	}
}

func (c *Connection) readPump() {
	defer func() {
		c.cancelContacts()
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected websocket close")
			}
			return
		}

		c.handleClientMessage(message)
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}

func (c *Connection) handleClientMessage(message []byte) {
	var msg ContactMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Debug().
			Err(err).
			Str("connection_id", c.ID).
			Msg("ignoring malformed contact message")
		return
	}

	id := token.ContactID(msg.ContactID)
	pos := token.Point{X: msg.X, Y: msg.Y}
	sink := c.Manager.sink

	switch msg.Type {
	case ContactDown:
		c.contacts[id] = true
		sink.OnContactDown(id, pos)
	case ContactMove:
		sink.OnContactMove(id, pos)
	case ContactUp:
		delete(c.contacts, id)
		sink.OnContactUp(id)
	case ContactExit, ContactCancel:
		delete(c.contacts, id)
		sink.OnContactCancelled(id)
	default:
		log.Debug().
			Str("connection_id", c.ID).
			Str("type", string(msg.Type)).
			Msg("unknown contact message type")
	}
}

// cancelContacts releases every contact the client left down.
func (c *Connection) cancelContacts() {
	for id := range c.contacts {
		c.Manager.sink.OnContactCancelled(id)
		delete(c.contacts, id)
	}
}
