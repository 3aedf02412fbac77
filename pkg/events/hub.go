package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"lokarni/pkg/assets"
)

const (
	TypeAssetImported = "asset.imported"
	TypeAssetUpdated  = "asset.updated"
	TypeAssetRemoved  = "asset.removed"
)

// Event is one asset change pushed to connected views. Removed events carry
// only the id; the asset no longer exists (or fell out of the active view).
type Event struct {
	Type    string        `json:"type"`
	Asset   *assets.Asset `json:"asset,omitempty"`
	AssetID int64         `json:"asset_id,omitempty"`
}

func AssetImported(a assets.Asset) Event {
	return Event{Type: TypeAssetImported, Asset: &a, AssetID: a.ID}
}

func AssetUpdated(a assets.Asset) Event {
	return Event{Type: TypeAssetUpdated, Asset: &a, AssetID: a.ID}
}

func AssetRemoved(id int64) Event {
	return Event{Type: TypeAssetRemoved, AssetID: id}
}

// Client is one connected view
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan Event    // Channel carrying events to this client
	Done chan struct{} // Signal to stop reading/writing
}

// Hub manages all active WebSocket subscribers and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Add registers a new subscriber connection
func (h *Hub) Add(id string, conn *websocket.Conn) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Replace a stale connection reusing the same id
	if existing, ok := h.clients[id]; ok {
		close(existing.Done)
		existing.Conn.Close()
	}

	client := &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan Event, 32), // Buffered to absorb bursts
		Done: make(chan struct{}),
	}

	h.clients[id] = client
	return client
}

// Remove unregisters a subscriber connection
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[id]; ok {
		close(client.Done)
		delete(h.clients, id)
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Broadcast fans an event out to every subscriber. Slow clients whose
// buffers are full miss the event rather than blocking the mutation path;
// they resynchronize on their next full refresh.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.Send <- event:
		case <-client.Done:
		default:
		}
	}
}
