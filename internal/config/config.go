package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every setting the tool reads from the environment.
// It is built once at process start and passed down; no package reads
// the environment after Load returns.
type Config struct {
	// OAuth client credentials and the long-lived refresh token.
	ClientID     string
	ClientSecret string
	RefreshToken string

	// AuthHost is the Zoho accounts data-center host the token exchange
	// goes to, e.g. "accounts.zoho.in" or "accounts.zoho.com".
	AuthHost string

	// Target of the time log inside Zoho Projects.
	PortalID  string
	ProjectID string
	TaskID    string

	// UserID is the Zoho user the log is attributed to. Optional; when
	// empty the API attributes the log to the token's owner.
	UserID string

	BillStatus  string
	NotesPrefix string

	// Timezone is the IANA zone used to resolve "yesterday".
	Timezone string

	// StartClock and EndClock are 24-hour "HH:MM" wall-clock times; the
	// logged duration is EndClock minus StartClock.
	StartClock string
	EndClock   string

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration

	// WebhookURL receives a success/failure notification. Optional.
	WebhookURL string
}

// Defaults for the optional settings, matching the Zoho India data
// center the tool was originally deployed against.
const (
	DefaultAuthHost    = "accounts.zoho.in"
	DefaultBillStatus  = "Billable"
	DefaultNotesPrefix = "GitHub auto log"
	DefaultTimezone    = "Asia/Kolkata"
	DefaultStartClock  = "09:30"
	DefaultEndClock    = "18:30"
	DefaultHTTPTimeout = 30 * time.Second
)

// getenv returns the value of name, or fallback when unset or empty.
func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. It returns an
// error naming the first required variable that is missing, so the
// caller can abort before any network call is made.
func Load() (Config, error) {
	cfg := Config{
		ClientID:     os.Getenv("ZOHO_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
		RefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
		AuthHost:     getenv("ZOHO_DC", DefaultAuthHost),
		PortalID:     os.Getenv("ZOHO_PORTAL_ID"),
		ProjectID:    os.Getenv("ZOHO_PROJECT_ID"),
		TaskID:       os.Getenv("ZOHO_TASK_ID"),
		UserID:       os.Getenv("ZOHO_USER_ID"),
		BillStatus:   getenv("ZOHO_BILL_STATUS", DefaultBillStatus),
		NotesPrefix:  getenv("ZOHO_NOTES_PREFIX", DefaultNotesPrefix),
		Timezone:     getenv("ZOHO_TIMEZONE", DefaultTimezone),
		StartClock:   getenv("ZOHO_TIME_START", DefaultStartClock),
		EndClock:     getenv("ZOHO_TIME_END", DefaultEndClock),
		HTTPTimeout:  DefaultHTTPTimeout,
		WebhookURL:   os.Getenv("ZOHO_WEBHOOK_URL"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"ZOHO_CLIENT_ID", cfg.ClientID},
		{"ZOHO_CLIENT_SECRET", cfg.ClientSecret},
		{"ZOHO_REFRESH_TOKEN", cfg.RefreshToken},
		{"ZOHO_PORTAL_ID", cfg.PortalID},
		{"ZOHO_PROJECT_ID", cfg.ProjectID},
		{"ZOHO_TASK_ID", cfg.TaskID},
	}
	for _, r := range required {
		if r.value == "" {
			return Config{}, fmt.Errorf("missing required environment variable: %s", r.name)
		}
	}

	if v := os.Getenv("ZOHO_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ZOHO_HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}
