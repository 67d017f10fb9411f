package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"schoolhub-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub tracks connected staff clients grouped by school. Menu change
// events fan out to every connection of the affected school, locally
// and via Redis to other instances.
type Hub struct {
	// SchoolID -> connected staff clients (multi-device, multi-user)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Optional: nil means
	// single-instance mode.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SchoolID] = append(h.clients[client.SchoolID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"school_id": client.SchoolID,
				"user_id":   client.UserID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SchoolID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SchoolID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SchoolID]) == 0 {
					delete(h.clients, client.SchoolID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToSchool pushes a message to every connected client of one
// school, then mirrors it to Redis for other instances.
func (h *Hub) BroadcastToSchool(schoolID uuid.UUID, message []byte) {
	h.DeliverLocal(schoolID, message)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_school_id": schoolID.String(),
			"message":          json.RawMessage(message),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "menu_events", jsonPayload)
	}
}

// DeliverLocal pushes a message to this instance's connections for one
// school without mirroring it anywhere. Remote bridges (Redis, NATS)
// deliver through this to avoid echo loops. A client whose send buffer
// is full is handed to unregister; only the Run loop closes Send.
func (h *Hub) DeliverLocal(schoolID uuid.UUID, message []byte) {
	h.mu.RLock()
	clients, ok := h.clients[schoolID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
				"school_id": schoolID,
				"user_id":   client.UserID,
			})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared "menu_events" channel and
	// delivers to whichever school connections it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "menu_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetSchoolID string          `json:"target_school_id"`
			Message        json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		sid, err := uuid.Parse(payload.TargetSchoolID)
		if err != nil {
			continue
		}

		h.DeliverLocal(sid, payload.Message)
	}
}
