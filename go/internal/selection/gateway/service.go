package gateway

import (
	"context"
	"net/http"

	"github.com/mcdev12/primus/go/internal/selection"
)

// Surface is the coordinator view the gateway needs.
type Surface interface {
	ContactSink
	SnapshotProvider
}

// Service bundles the websocket fan-out and the snapshot RPC.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	surface           Surface
}

// NewService creates a gateway over the given surface.
func NewService(config ConnectionConfig, surface Surface) *Service {
	cm := NewConnectionManager(config, surface)
	return &Service{
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm, surface),
		surface:           surface,
	}
}

// Start runs the frame fan-out until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	s.connectionManager.Start(ctx)
}

// Broadcast pushes a frame to every surface client.
func (s *Service) Broadcast(frame selection.Frame) {
	s.connectionManager.BroadcastFrame(frame)
}

// RegisterRoutes mounts the websocket endpoints and the snapshot RPC.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	path, handler := NewSnapshotHandler(s.surface)
	mux.Handle(path, handler)
}

// GetStats returns connection statistics.
func (s *Service) GetStats() Stats {
	return s.connectionManager.GetConnectionStats()
}
