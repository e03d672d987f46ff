package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoPostStream_LeavesBodyOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("Accept") != "text/event-stream" {
			t.Errorf("unexpected accept header %q", r.Header.Get("Accept"))
		}
		if r.Header.Get("x-test-auth") != "secret" {
			t.Errorf("custom header missing: %q", r.Header.Get("x-test-auth"))
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"a\":1}\n\n"))
	}))
	defer server.Close()

	response, err := DoPostStream(context.Background(), nil, server.URL,
		map[string]any{"model": "gpt-4o"},
		HeaderOption{Key: "x-test-auth", Value: "secret"},
	)
	if err != nil {
		t.Fatalf("DoPostStream failed: %v", err)
	}
	defer CloseWithLog(response.Body)

	payload, err := NewSSEScanner(response.Body).Next()
	if err != nil || payload != `{"a":1}` {
		t.Errorf("expected readable body, got (%q, %v)", payload, err)
	}
}

func TestDoPostStream_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := DoPostStream(context.Background(), nil, server.URL, map[string]any{})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("error should carry status and body: %v", err)
	}
}

func TestDoPostStream_HTMLErrorBodyConverted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body><h1>Bad Gateway</h1><p>upstream timed out</p></body></html>"))
	}))
	defer server.Close()

	_, err := DoPostStream(context.Background(), nil, server.URL, map[string]any{})
	if err == nil {
		t.Fatal("expected an error for a 502 response")
	}
	if strings.Contains(err.Error(), "<h1>") {
		t.Errorf("HTML markup should have been converted away: %v", err)
	}
	if !strings.Contains(err.Error(), "Bad Gateway") || !strings.Contains(err.Error(), "upstream timed out") {
		t.Errorf("converted body should keep the page text: %v", err)
	}
}

func TestDoPostStream_UnmarshalableBody(t *testing.T) {
	if _, err := DoPostStream(context.Background(), nil, "http://unused.test", map[string]any{"bad": func() {}}); err == nil {
		t.Error("expected a marshal error")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("short strings must pass through: %q", got)
	}

	long := strings.Repeat("x", 600)
	got := TruncateString(long, 0)
	if len(got) >= len(long) {
		t.Errorf("expected truncation, got %d chars", len(got))
	}
	if !strings.Contains(got, "total: 600 chars") {
		t.Errorf("truncation suffix missing: %q", got)
	}
}
