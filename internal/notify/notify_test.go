package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/notify"
)

func TestSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
	}))
	defer srv.Close()

	n := notify.New(srv.URL, srv.Client())
	n.Send("Time log submitted", "date=03-10-2026 hours=09:00")

	embeds, ok := got["embeds"].([]any)
	if !ok || len(embeds) != 1 {
		t.Fatalf("payload = %v, want one embed", got)
	}
	embed := embeds[0].(map[string]any)
	if embed["title"] != "Time log submitted" {
		t.Errorf("title = %v, want %q", embed["title"], "Time log submitted")
	}
}

func TestSend_EmptyURLIsNoop(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	n := notify.New("", srv.Client())
	n.Send("anything", "anything")
	if calls != 0 {
		t.Errorf("calls = %d, want 0 for empty webhook URL", calls)
	}
}

func TestSend_FailureIsNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	n := notify.New(srv.URL, nil)
	// Must not panic or propagate the error.
	n.Send("title", "message")
}
