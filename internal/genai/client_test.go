package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexushq/nexus-service/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return Init(config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
	})
}

func candidateResponse(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return body
}

func TestGenerateContent_Success(t *testing.T) {
	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write(candidateResponse("generated text"))
	})

	text, err := client.GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if text != "generated text" {
		t.Errorf("unexpected text %q", text)
	}
	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("unexpected request path %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header not set, got %q", gotKey)
	}
}

func TestGenerateContent_NoKey(t *testing.T) {
	client := Init(config.AIConfig{Model: "gemini-2.5-flash"})

	if _, err := client.GenerateContent(context.Background(), "hello"); err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerateTaskDescription_Fallbacks(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		client := Init(config.AIConfig{Model: "gemini-2.5-flash"})
		if got := client.GenerateTaskDescription(context.Background(), "Build settings page"); got != FallbackTaskUnavailable {
			t.Errorf("expected unavailable fallback, got %q", got)
		}
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})
		if got := client.GenerateTaskDescription(context.Background(), "Build settings page"); got != FallbackTaskFailed {
			t.Errorf("expected failed fallback, got %q", got)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})
		if got := client.GenerateTaskDescription(context.Background(), "Build settings page"); got != FallbackTaskEmpty {
			t.Errorf("expected empty fallback, got %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write(candidateResponse("Implement the settings page."))
		})
		if got := client.GenerateTaskDescription(context.Background(), "Build settings page"); got != "Implement the settings page." {
			t.Errorf("unexpected description %q", got)
		}
	})
}

func TestChatReply_Fallbacks(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		client := Init(config.AIConfig{Model: "gemini-2.5-flash"})
		if got := client.ChatReply(context.Background(), "@ai hello"); got != FallbackChatUnavailable {
			t.Errorf("expected unavailable fallback, got %q", got)
		}
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		if got := client.ChatReply(context.Background(), "@ai hello"); got != FallbackChatFailed {
			t.Errorf("expected failed fallback, got %q", got)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})
		if got := client.ChatReply(context.Background(), "@ai hello"); got != FallbackChatEmpty {
			t.Errorf("expected empty fallback, got %q", got)
		}
	})
}
