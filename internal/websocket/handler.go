package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub for its school.
func ServeWs(hub *Hub, c *websocket.Conn, schoolID, userID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, SchoolID: schoolID, UserID: userID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all
	// work in new goroutines.
	go client.writePump()
	client.readPump()
}
