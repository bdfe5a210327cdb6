// Package classifier is the HTTP adapter for the emotion classification
// collaborator.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiTimeout = 15 * time.Second

// ErrUnavailable wraps any transport or server failure. Callers substitute
// the neutral default and keep playing; unavailability never halts a
// session.
var ErrUnavailable = fmt.Errorf("classifier unavailable")

type Request struct {
	Text string `json:"text"`
}

type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Result struct {
	Emotions        []Score `json:"emotions"`
	DominantEmotion string  `json:"dominant_emotion"`
}

// Classify sends one text segment for classification. The context bounds
// and cancels the call; a cancelled classification returns before any
// session state is touched.
func Classify(ctx context.Context, apiEndpoint string, text string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	payload, err := json.Marshal(Request{Text: text})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiEndpoint+"/detect", bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: %s: %s", ErrUnavailable, resp.Status, string(body))
	}

	var r Result
	if err := json.Unmarshal(body, &r); err != nil {
		return Result{}, fmt.Errorf("%w: decode: %s", ErrUnavailable, err)
	}

	return r, nil
}

// Dominant picks the top-scoring label, preferring the server's own call
// when present.
func (r Result) Dominant() (string, float64) {
	if r.DominantEmotion != "" {
		for _, e := range r.Emotions {
			if e.Label == r.DominantEmotion {
				return e.Label, e.Score
			}
		}
	}

	var label string
	var best float64
	for _, e := range r.Emotions {
		if e.Score > best {
			label, best = e.Label, e.Score
		}
	}

	return label, best
}
