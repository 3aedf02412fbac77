package events

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades UI connections and pumps hub events to them.
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub:    hub,
		logger: log.New(log.Writer(), "[events] ", log.LstdFlags),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Local gateway; CORS is enforced on the HTTP surface
		return true
	},
}

// HandleWebSocketGin upgrades the connection and subscribes it to the
// asset change feed.
func (h *Handler) HandleWebSocketGin(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	client := h.hub.Add(uuid.NewString(), conn)
	h.logger.Printf("subscriber %s connected", client.ID)

	go h.readLoop(client)
	go h.writeLoop(client)
}

// readLoop drains the connection. Subscribers never send application data;
// reading is what detects disconnects and answers pings.
func (h *Handler) readLoop(client *Client) {
	defer func() {
		h.hub.Remove(client.ID)
		client.Conn.Close()
		h.logger.Printf("subscriber %s disconnected", client.ID)
	}()

	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-client.Done:
			return
		default:
		}

		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for subscriber %s: %v", client.ID, err)
			}
			return
		}
	}
}

// writeLoop pushes events and keepalive pings to the connection.
func (h *Handler) writeLoop(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-client.Done:
			return

		case event, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for subscriber %s: %v", client.ID, err)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for subscriber %s: %v", client.ID, err)
				return
			}
		}
	}
}
