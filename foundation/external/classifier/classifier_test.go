package classifier_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/superfeelapi/goStorySymphony/foundation/external/classifier"
)

func TestClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			t.Errorf("path got %s, want /detect", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"emotions": [
				{"label": "joy", "score": 0.8},
				{"label": "surprise", "score": 0.15}
			],
			"dominant_emotion": "joy"
		}`))
	}))
	defer server.Close()

	result, err := classifier.Classify(context.Background(), server.URL, "I feel joyful and alive today")
	if err != nil {
		t.Fatal(err)
	}

	label, score := result.Dominant()
	if label != "joy" {
		t.Errorf("label got %s, want joy", label)
	}
	if score != 0.8 {
		t.Errorf("score got %f, want 0.8", score)
	}
}

func TestClassifyUnavailable(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := classifier.Classify(context.Background(), server.URL, "some text")
		if !errors.Is(err, classifier.ErrUnavailable) {
			t.Fatalf("got %v, want ErrUnavailable", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := classifier.Classify(context.Background(), server.URL, "some text")
		if !errors.Is(err, classifier.ErrUnavailable) {
			t.Fatalf("got %v, want ErrUnavailable", err)
		}
	})
}

func TestDominantWithoutServerCall(t *testing.T) {
	r := classifier.Result{
		Emotions: []classifier.Score{
			{Label: "fear", Score: 0.3},
			{Label: "anger", Score: 0.6},
		},
	}

	label, score := r.Dominant()
	if label != "anger" || score != 0.6 {
		t.Errorf("got (%s, %f), want (anger, 0.6)", label, score)
	}
}
