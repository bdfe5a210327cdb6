// Package emotion holds the emotion vocabulary, the per-session emotional
// arc, and the tracker that smooths raw classifier output into playable
// targets.
package emotion

import "fmt"

// Emotion is one label out of the fixed classification vocabulary.
type Emotion string

const (
	Joy      Emotion = "joy"
	Sadness  Emotion = "sadness"
	Anger    Emotion = "anger"
	Fear     Emotion = "fear"
	Surprise Emotion = "surprise"
	Neutral  Emotion = "neutral"
)

// Vocabulary lists every emotion the classifier may produce.
var Vocabulary = []Emotion{Joy, Sadness, Anger, Fear, Surprise, Neutral}

func (e Emotion) Valid() bool {
	switch e {
	case Joy, Sadness, Anger, Fear, Surprise, Neutral:
		return true
	}
	return false
}

func (e Emotion) String() string {
	return string(e)
}

// Parse maps a classifier label onto the vocabulary.
func Parse(label string) (Emotion, error) {
	e := Emotion(label)
	if !e.Valid() {
		return Neutral, fmt.Errorf("emotion label[%s] is not in the vocabulary", label)
	}
	return e, nil
}

// =====================================================================================================================

// valence/arousal coordinates per emotion at full intensity.
var valenceArousal = map[Emotion][2]float64{
	Joy:      {0.8, 0.5},
	Sadness:  {-0.8, -0.5},
	Anger:    {-0.5, 0.8},
	Fear:     {-0.7, 0.7},
	Surprise: {0.1, 0.9},
	Neutral:  {0.0, 0.0},
}

// ValenceArousal projects an emotion at a given intensity onto the
// valence/arousal plane. Both axes scale linearly with intensity.
func ValenceArousal(e Emotion, intensity float64) (valence, arousal float64) {
	va := valenceArousal[e]
	intensity = ClampIntensity(intensity)
	return va[0] * intensity, va[1] * intensity
}

// ClampIntensity bounds an intensity score to [0, 1].
func ClampIntensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
