package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WebSocketHandler serves the surface and stats endpoints.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	snapshots         SnapshotProvider
}

// NewWebSocketHandler creates a new websocket handler.
func NewWebSocketHandler(cm *ConnectionManager, snapshots SnapshotProvider) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		snapshots:         snapshots,
	}
}

// HandleSurface upgrades a surface client.
func (h *WebSocketHandler) HandleSurface(w http.ResponseWriter, r *http.Request) {
	if err := h.connectionManager.UpgradeConnection(w, r); err != nil {
		// the upgrader has already written an HTTP error
		log.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("failed to upgrade surface connection")
	}
}

// HandleConnectionStats reports attached clients and live tokens.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	stats := h.connectionManager.GetConnectionStats()
	if h.snapshots != nil {
		frame := h.snapshots.Snapshot()
		stats.LiveTokens = len(frame.Tokens)
		stats.PoolAvailable = frame.PoolAvailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Error().Err(err).Msg("failed to write connection stats")
	}
}

// RegisterRoutes registers websocket routes with an HTTP mux.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/surface", h.HandleSurface)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
