package s3relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadAudio(t *testing.T) {
	t.Run("posts the payload and returns the assigned url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req uploadRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if req.AudioFile != "b64-payload" {
				t.Errorf("audioFile %q, want %q", req.AudioFile, "b64-payload")
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"s3Url": "https://bucket.s3.example.com/audio/1.wav"}`))
		}))
		defer srv.Close()

		relay := New(RelayConfig{BaseURL: srv.URL})
		url, err := relay.UploadAudio(context.Background(), "b64-payload")
		if err != nil {
			t.Fatalf("UploadAudio failed: %v", err)
		}
		if url != "https://bucket.s3.example.com/audio/1.wav" {
			t.Errorf("url %q", url)
		}
	})

	t.Run("non-2xx status fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		relay := New(RelayConfig{BaseURL: srv.URL})
		_, err := relay.UploadAudio(context.Background(), "b64")
		if err == nil || !strings.Contains(err.Error(), "unexpected status code") {
			t.Fatalf("got %v, want a status code error", err)
		}
	})

	t.Run("missing s3Url fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		relay := New(RelayConfig{BaseURL: srv.URL})
		if _, err := relay.UploadAudio(context.Background(), "b64"); err == nil {
			t.Fatal("expected an error when the relay returns no url")
		}
	})

	t.Run("malformed body fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		relay := New(RelayConfig{BaseURL: srv.URL})
		if _, err := relay.UploadAudio(context.Background(), "b64"); err == nil {
			t.Fatal("expected an error on a malformed body")
		}
	})
}
