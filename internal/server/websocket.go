package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades to WebSocket and streams change notes to the
// rendering layer. Each note names the channel that committed; database
// notes additionally carry the stale detail-view identity when the held
// rows should be refetched.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Subscribe to committed changes.
	changes := s.store.Subscribe()

	// Read pump — detect client disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}()

	// Write pump — send change notes as JSON.
	for note := range changes {
		if err := conn.WriteJSON(note); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}
