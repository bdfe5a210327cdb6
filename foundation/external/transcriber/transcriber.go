// Package transcriber is the HTTP adapter for the speech-to-text
// collaborator. Audio segments go in, text comes out; everything emotional
// happens downstream.
package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiTimeout = 30 * time.Second

type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Transcribe sends one captured audio segment and returns its transcript.
func Transcribe(ctx context.Context, apiEndpoint string, audio []byte) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiEndpoint+"/transcribe", bytes.NewReader(audio))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	client := http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("transcriber %s: %s", resp.Status, string(body))
	}

	var r Result
	if err := json.Unmarshal(body, &r); err != nil {
		return Result{}, fmt.Errorf("transcriber decode: %w", err)
	}

	return r, nil
}
