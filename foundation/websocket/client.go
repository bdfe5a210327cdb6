package websocket

import (
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/superfeelapi/goStorySymphony/business/timeline"
	"github.com/superfeelapi/goStorySymphony/business/worker"
	"github.com/superfeelapi/goStorySymphony/foundation/pubsub"
)

// Client is the middleman between one websocket connection and its
// session worker.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	sessionID string
	worker    *worker.Worker
	sub       *pubsub.Subscriber

	// Buffered channel of outbound messages.
	send chan OutboundMessage

	closeOnce sync.Once
	logger    *zap.SugaredLogger
}

// readPump pumps inbound messages from the connection into the worker.
func (c *Client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Errorw("client: websocket read", "sessionID", c.sessionID, "ERROR", err)
			}
			return
		}

		switch messageType {
		case websocket.TextMessage:
			if done := c.processMessage(message); done {
				return
			}

		case websocket.BinaryMessage:
			// Raw audio segments skip the JSON envelope.
			c.worker.SubmitAudio(message)
		}
	}
}

func (c *Client) processMessage(raw []byte) bool {
	var msg InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.enqueue(OutboundMessage{Type: MessageTypeError, SessionID: c.sessionID, Error: "malformed message"})
		return false
	}

	switch msg.Type {
	case MessageTypeTextInput:
		c.worker.SubmitText(msg.Text)

	case MessageTypeAudioData:
		audio, err := base64.StdEncoding.DecodeString(msg.AudioData)
		if err != nil {
			c.enqueue(OutboundMessage{Type: MessageTypeError, SessionID: c.sessionID, Error: "malformed audio data"})
			return false
		}
		c.worker.SubmitAudio(audio)

	case MessageTypeRendererReady:
		switch msg.Renderer {
		case "music":
			c.worker.RendererReady(timeline.MusicRenderer)
		case "visual":
			c.worker.RendererReady(timeline.VisualRenderer)
		default:
			c.enqueue(OutboundMessage{Type: MessageTypeError, SessionID: c.sessionID, Error: "unknown renderer"})
		}

	case MessageTypeEndSession:
		return true

	default:
		c.enqueue(OutboundMessage{Type: MessageTypeError, SessionID: c.sessionID, Error: "unknown message type"})
	}

	return false
}

// forwardPump forwards the session's published frames and updates into
// the outbound queue.
func (c *Client) forwardPump() {
	for data := range c.sub.GetChannel() {
		switch payload := data.(type) {
		case timeline.SyncFrame:
			c.enqueue(OutboundMessage{Type: MessageTypeSyncFrame, SessionID: c.sessionID, Payload: payload})

		case worker.StoryUpdate:
			c.enqueue(OutboundMessage{Type: MessageTypeStoryUpdate, SessionID: c.sessionID, Payload: payload})

		default:
			c.logger.Warnw("client: unexpected payload on session topic", "sessionID", c.sessionID)
		}
	}
	close(c.send)
}

// writePump pumps outbound messages onto the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, open := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Errorw("client: websocket write", "sessionID", c.sessionID, "ERROR", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) enqueue(msg OutboundMessage) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warnw("client: outbound queue full, dropping message",
			"sessionID", c.sessionID, "type", msg.Type)
	}
}

// close tears the session down exactly once: the worker shuts, the topic
// subscription closes (which drains the pumps), and the hub forgets the
// session.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.worker.Shutdown(nil)
		if err := c.hub.broker.Unsubscribe("session:"+c.sessionID, c.sub); err != nil {
			c.logger.Warnw("client: unsubscribe", "sessionID", c.sessionID, "ERROR", err)
		}
		c.hub.drop(c)
		c.conn.Close()
	})
}
