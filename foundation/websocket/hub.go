// Package websocket carries sessions over a browser connection: narration
// comes in as text or audio messages, synchronized frames and story
// updates go back out. One connection is one session.
package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/superfeelapi/goStorySymphony/business/worker"
	"github.com/superfeelapi/goStorySymphony/foundation/pubsub"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer; audio segments are chunky.
	maxMessageSize = 512 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub owns the live session clients and spawns one worker per session.
type Hub struct {
	sessions map[string]*Client
	mu       sync.RWMutex

	workerSettings worker.Settings
	broker         *pubsub.Broker
	logger         *zap.SugaredLogger
}

// NewHub wires the hub. workerSettings is the template each session's
// worker starts from; the hub fills in the session ID.
func NewHub(workerSettings worker.Settings, broker *pubsub.Broker, logger *zap.SugaredLogger) *Hub {
	return &Hub{
		sessions:       make(map[string]*Client),
		workerSettings: workerSettings,
		broker:         broker,
		logger:         logger,
	}
}

// HandleWebSocket upgrades the connection and starts a session.
func (h *Hub) HandleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Errorw("hub: websocket upgrade failed", "ERROR", err)
		return err
	}

	sessionID := uuid.New().String()

	settings := h.workerSettings
	settings.SessionID = sessionID

	// Subscribe before the worker runs so no frame beats the subscriber.
	sub := pubsub.NewSubscriber(64)
	h.broker.Subscribe("session:"+sessionID, sub)

	client := &Client{
		hub:       h,
		conn:      conn,
		sessionID: sessionID,
		worker:    worker.Run(settings),
		sub:       sub,
		send:      make(chan OutboundMessage, 64),
		logger:    h.logger,
	}

	h.mu.Lock()
	h.sessions[sessionID] = client
	h.mu.Unlock()
	h.logger.Infow("hub: session started", "sessionID", sessionID)

	go client.writePump()
	go client.forwardPump()
	go client.readPump()

	client.enqueue(OutboundMessage{Type: MessageTypeSessionStarted, SessionID: sessionID})
	return nil
}

// SessionCount reports live sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	if _, exists := h.sessions[client.sessionID]; exists {
		delete(h.sessions, client.sessionID)
	}
	h.mu.Unlock()
	h.logger.Infow("hub: session ended", "sessionID", client.sessionID)
}
