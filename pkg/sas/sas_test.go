package sas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkghttp "fluency-srv/pkg/http"
)

func TestScoreReading(t *testing.T) {
	t.Run("sends the api key and decodes the result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("x-api-key"); got != "secret" {
				t.Errorf("x-api-key header %q, want %q", got, "secret")
			}
			var req ScoreRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if req.S3URL != "https://bucket.s3.example.com/a.wav" || req.ReferenceTextID != "ref1" {
				t.Errorf("unexpected request payload: %+v", req)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"audio_type": "Ok",
				"file_id": "f-1",
				"decoded_text": "the fox runs",
				"no_words": 3,
				"no_corr": 3,
				"wcpm": 82.5,
				"word_scores": [["fox", 0.97], ["runs", 0.91]]
			}`))
		}))
		defer srv.Close()

		client := New(SASConfig{BaseURL: srv.URL, APIKey: "secret"})
		resp, err := client.ScoreReading(context.Background(), ScoreRequest{
			S3URL: "https://bucket.s3.example.com/a.wav", ReferenceTextID: "ref1",
		})
		if err != nil {
			t.Fatalf("ScoreReading failed: %v", err)
		}
		if resp.AudioType != AudioTypeOK {
			t.Errorf("audio_type %q, want %q", resp.AudioType, AudioTypeOK)
		}
		if resp.FileID != "f-1" || resp.NoWords != 3 || resp.WCPM != 82.5 {
			t.Errorf("scoring fields decoded wrong: %+v", resp)
		}
		if len(resp.WordScores) != 2 || resp.WordScores[0][0] != "fox" {
			t.Errorf("word_scores decoded wrong: %v", resp.WordScores)
		}
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := New(SASConfig{BaseURL: srv.URL, APIKey: "secret"})
		if _, err := client.ScoreReading(context.Background(), ScoreRequest{}); err == nil {
			t.Fatal("expected an error on a 502")
		}
	})

	t.Run("deadline overrun is ErrTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		client := New(SASConfig{
			BaseURL:    srv.URL,
			APIKey:     "secret",
			HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: 50 * time.Millisecond}),
		})
		_, err := client.ScoreReading(context.Background(), ScoreRequest{})
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("got %v, want ErrTimeout", err)
		}
	})

	t.Run("context deadline is ErrTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		client := New(SASConfig{BaseURL: srv.URL, APIKey: "secret"})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.ScoreReading(ctx, ScoreRequest{})
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("got %v, want ErrTimeout", err)
		}
	})

	t.Run("malformed body fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := New(SASConfig{BaseURL: srv.URL, APIKey: "secret"})
		if _, err := client.ScoreReading(context.Background(), ScoreRequest{}); err == nil {
			t.Fatal("expected an error on a malformed body")
		}
	})
}
