package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "123"); err == nil {
		t.Error("expected an error for a missing bot token")
	}
	if _, err := NewClient("token", ""); err == nil {
		t.Error("expected an error for a missing channel ID")
	}
	if _, err := NewClient("token", "123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSendMessage(t *testing.T) {
	var gotPath, gotAuth, gotContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("invalid request payload: %v", err)
		}
		gotContent = payload.Content

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	client, err := NewClient("secret-token", "42")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.baseURL = server.URL

	if err := client.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotPath != "/channels/42/messages" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bot secret-token" {
		t.Errorf("unexpected Authorization header: %s", gotAuth)
	}
	if gotContent != "hello" {
		t.Errorf("unexpected content: %s", gotContent)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Missing Access","code":50001}`))
	}))
	defer server.Close()

	client, err := NewClient("token", "42")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.baseURL = server.URL

	err = client.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "Missing Access") {
		t.Errorf("error should carry status and body, got: %v", err)
	}
}

func TestSendMessageEmptyText(t *testing.T) {
	client, err := NewClient("token", "42")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if err := client.SendMessage(context.Background(), ""); err == nil {
		t.Error("expected an error for empty message text")
	}
}
