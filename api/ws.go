/*
ws.go - Websocket notification push

PURPOSE:
  Pushes notifications to the UI as they appear instead of making the
  browser poll /api/notifications. One message per batch; the connection
  carries nothing else. State still travels over plain HTTP.

DESIGN:
  The drain is destructive, so a websocket client and a poller should not
  run at the same time; whichever drains first wins the batch.
*/
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const notifyPollInterval = 500 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin policy is handled by the CORS layer for HTTP; the
	// websocket handshake checks nothing extra for a local dev server.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Websocket upgrades the connection and streams notification batches.
func (h *Handler) Websocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Reads are only used to detect the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(notifyPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			notes := h.Session.DrainNotifications()
			if len(notes) == 0 {
				continue
			}
			if err := conn.WriteJSON(NotificationsResponse{Notifications: notes}); err != nil {
				log.Printf("[WS] Write failed: %v", err)
				return
			}
		}
	}
}
