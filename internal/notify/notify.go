// Package notify posts run outcomes to an optional chat webhook so an
// unattended schedule has a visible failure signal.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// Notifier sends Discord-compatible embed messages to a webhook URL.
// A Notifier with an empty URL is valid and does nothing.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a Notifier. client may be nil, in which case
// http.DefaultClient is used.
func New(webhookURL string, client *http.Client) *Notifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &Notifier{webhookURL: webhookURL, httpClient: client}
}

// Send posts a titled message. Delivery is best effort: a webhook
// failure is reported on stderr but never fails the run.
func (n *Notifier) Send(title, message string) {
	if n.webhookURL == "" {
		return
	}
	payload := map[string]any{
		"embeds": []map[string]any{
			{"title": title, "description": message},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not encode notification: %v\n", err)
		return
	}
	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not send notification: %v\n", err)
		return
	}
	resp.Body.Close()
}
