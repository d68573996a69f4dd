package crmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRelayPostsEnrichedPayload(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewWithClient(map[FormKind]string{FormContact: server.URL}, server.Client())
	fixed := time.Date(2025, 7, 4, 10, 30, 0, 0, time.UTC)
	relay.now = func() time.Time { return fixed }

	ok := relay.Relay(context.Background(), FormContact, map[string]any{
		"email":   "lead@example.com",
		"message": "Please contact me",
	})
	if !ok {
		t.Fatalf("expected relay to succeed")
	}
	if received["email"] != "lead@example.com" {
		t.Fatalf("expected original fields to pass through, got %v", received)
	}
	if received["submittedAt"] != "2025-07-04T10:30:00Z" {
		t.Fatalf("expected RFC3339 submittedAt, got %v", received["submittedAt"])
	}
	if received["source"] != "trustgate-website/contact" {
		t.Fatalf("expected source tag, got %v", received["source"])
	}
}

func TestRelayUnconfiguredKindDoesNoNetworkIO(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	relay := NewWithClient(map[FormKind]string{FormContact: server.URL}, server.Client())

	if ok := relay.Relay(context.Background(), FormNewsletter, map[string]any{"email": "a@b.c"}); ok {
		t.Fatalf("expected false for unconfigured kind")
	}
	if calls != 0 {
		t.Fatalf("expected no webhook calls, got %d", calls)
	}
}

func TestRelayReturnsFalseOnRejectionAndTransportError(t *testing.T) {
	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer rejecting.Close()

	relay := NewWithClient(map[FormKind]string{FormContact: rejecting.URL}, rejecting.Client())
	if ok := relay.Relay(context.Background(), FormContact, map[string]any{}); ok {
		t.Fatalf("expected false on non-2xx response")
	}

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	relay = NewWithClient(map[FormKind]string{FormContact: dead.URL}, http.DefaultClient)
	if ok := relay.Relay(context.Background(), FormContact, map[string]any{}); ok {
		t.Fatalf("expected false on transport error")
	}
}

func TestFormKindValid(t *testing.T) {
	for _, kind := range []FormKind{FormContact, FormNewsletter, FormRiskAssessment} {
		if !kind.Valid() {
			t.Fatalf("expected %s to be valid", kind)
		}
	}
	if FormKind("spam").Valid() {
		t.Fatalf("expected unknown kind to be invalid")
	}
}
