package websocket

// MessageType defines the type of a websocket message.
type MessageType string

// Inbound message types.
const (
	MessageTypeTextInput     MessageType = "text_input"
	MessageTypeAudioData     MessageType = "audio_data"
	MessageTypeRendererReady MessageType = "renderer_ready"
	MessageTypeEndSession    MessageType = "end_session"
)

// Outbound message types.
const (
	MessageTypeSessionStarted MessageType = "session_started"
	MessageTypeSyncFrame      MessageType = "sync_frame"
	MessageTypeStoryUpdate    MessageType = "story_update"
	MessageTypeError          MessageType = "error"
)

// InboundMessage is the envelope a client sends. Fields beyond Type are
// populated per message type.
type InboundMessage struct {
	Type MessageType `json:"type"`

	// text_input
	Text string `json:"text,omitempty"`

	// audio_data, base64 encoded
	AudioData string `json:"audio_data,omitempty"`

	// renderer_ready: "music" or "visual"
	Renderer string `json:"renderer,omitempty"`
}

// OutboundMessage is the envelope the server sends. Payload carries a
// SyncFrame or a StoryUpdate depending on Type.
type OutboundMessage struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Payload   any         `json:"payload,omitempty"`
	Error     string      `json:"error,omitempty"`
}
