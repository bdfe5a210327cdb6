package worker

import (
	"time"

	"go.uber.org/zap"

	"github.com/superfeelapi/goStorySymphony/business/mapping"
	"github.com/superfeelapi/goStorySymphony/foundation/pubsub"
)

type Settings struct {
	Config
	Logger *zap.SugaredLogger
	Table  *mapping.Table
	Broker *pubsub.Broker
}

type Config struct {
	SessionID           string
	ClassifierEndpoint  string
	TranscriberEndpoint string
	DwellDuration       time.Duration
	MinFrameInterval    time.Duration
}

// =====================================================================================================================

// TextSegment is one narrated segment awaiting classification. CapturedAt
// is stamped when the segment enters the session, so racing classifier
// responses resolve in arrival order.
type TextSegment struct {
	Text       string
	CapturedAt time.Time
}

// AudioSegment is one captured audio chunk awaiting transcription.
type AudioSegment struct {
	Data       []byte
	CapturedAt time.Time
}

// StoryUpdate echoes a processed segment back to the client alongside the
// frame stream.
type StoryUpdate struct {
	SessionID   string        `json:"session_id"`
	Text        string        `json:"text"`
	Emotion     string        `json:"emotion"`
	Intensity   float64       `json:"intensity"`
	Valence     float64       `json:"valence"`
	Arousal     float64       `json:"arousal"`
	AccentColor mapping.Color `json:"accent_color"`
}
