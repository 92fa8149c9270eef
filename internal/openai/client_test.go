package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChat_MissingAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the network without a credential")
	}))
	defer srv.Close()

	c := NewWithBaseURL("", srv.URL)
	_, err := c.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		if payload["model"] != "gpt-4o-mini" {
			t.Errorf("model not forwarded: %v", payload["model"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  the reply  "}},
			},
		})
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	reply, err := c.Chat(context.Background(), ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "the reply" {
		t.Errorf("expected trimmed reply, got %q", reply)
	}
}

func TestChat_EmptyReply(t *testing.T) {
	cases := map[string]string{
		"no choices":    `{"choices": []}`,
		"empty content": `{"choices": [{"message": {"role": "assistant", "content": "   "}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewWithBaseURL("test-key", srv.URL)
			_, err := c.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})
			if !errors.Is(err, ErrEmptyReply) {
				t.Errorf("expected ErrEmptyReply, got %v", err)
			}
		})
	}
}

func TestChat_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	_, err := c.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestGenerateImages_DecodesPayloads(t *testing.T) {
	png := []byte("fake png bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"b64_json": base64.StdEncoding.EncodeToString(png)},
				{"b64_json": ""}, // no data, must be skipped
			},
		})
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	images, err := c.GenerateImages(context.Background(), ImageRequest{
		Model: "gpt-image-1", Prompt: "a cat", Size: "1024x1024", Quality: "high", N: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 1 || string(images[0]) != string(png) {
		t.Errorf("expected one decoded image, got %d", len(images))
	}
}

func TestGenerateImages_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	_, err := c.GenerateImages(context.Background(), ImageRequest{Model: "gpt-image-1", Prompt: "x", N: 1})
	if err == nil {
		t.Error("expected error for empty response data")
	}
}

func TestGenerateImages_MissingAPIKey(t *testing.T) {
	c := New("")
	_, err := c.GenerateImages(context.Background(), ImageRequest{Model: "gpt-image-1", Prompt: "x", N: 1})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}
