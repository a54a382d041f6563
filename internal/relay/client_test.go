// internal/relay/client_test.go
package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}
	if client.config.Timeout != 10*time.Second {
		t.Errorf("Expected default timeout, got %v", client.config.Timeout)
	}
	if client.Enabled() {
		t.Error("Unconfigured client must not report enabled")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Token:      "bot-token",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if !client.Enabled() {
		t.Error("Configured client must report enabled")
	}
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/messages" {
			t.Errorf("Expected /messages path, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer bot-token" {
			t.Errorf("Expected bearer token, got %q", got)
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.ChannelID != "C123" || req.Text == "" {
			http.Error(w, "Missing required fields", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SendMessageResponse{Ok: true})
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
		Token:   "bot-token",
	})

	if err := client.SendMessage(context.Background(), "C123", "hello"); err != nil {
		t.Errorf("SendMessage failed: %v", err)
	}
}

func TestSendMessageRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(SendMessageResponse{Ok: false, Error: "channel_not_found"})
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
		Token:   "bot-token",
	})

	err := client.SendMessage(context.Background(), "C404", "hello")
	if err == nil {
		t.Fatal("Expected error for rejected message")
	}
}

func TestSendMessageValidation(t *testing.T) {
	client := NewClient(&Config{BaseURL: "http://example.com", Token: "t"})

	if err := client.SendMessage(context.Background(), "", "text"); err == nil {
		t.Error("Expected error for missing channel")
	}
	if err := client.SendMessage(context.Background(), "C123", ""); err == nil {
		t.Error("Expected error for missing text")
	}

	disabled := NewClient(nil)
	if err := disabled.SendMessage(context.Background(), "C123", "text"); err == nil {
		t.Error("Expected error for unconfigured client")
	}
}
