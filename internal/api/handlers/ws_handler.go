package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// BroadcastHandler connects websocket clients to the hub.
type BroadcastHandler struct {
	hub *notify.Hub
}

func NewBroadcastHandler(hub *notify.Hub) *BroadcastHandler {
	return &BroadcastHandler{hub: hub}
}

// Serve godoc
// @Summary Broadcast channel
// @Description Every text message sent is relayed verbatim to all connected clients. Domain events are pushed as JSON.
// @Tags broadcast
// @Security BearerAuth
// @Param token query string false "Session token when headers cannot be set"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /ws [get]
func (h *BroadcastHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	l := h.hub.Register()
	done := make(chan struct{})

	// Writer: drains the listener and keeps the connection alive.
	go func() {
		defer func() {
			_ = conn.Close()
			close(done)
		}()
		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		for {
			select {
			case msg, ok := <-l.Messages():
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("websocket closed")
			}
			break
		}
		if typ == websocket.TextMessage {
			h.hub.Broadcast(msg)
		}
	}

	h.hub.Unregister(l)
	<-done
}
