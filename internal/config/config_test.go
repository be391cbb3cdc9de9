package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/config"
)

// setRequired populates every required variable with a placeholder.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ZOHO_CLIENT_ID", "client-id")
	t.Setenv("ZOHO_CLIENT_SECRET", "client-secret")
	t.Setenv("ZOHO_REFRESH_TOKEN", "refresh-token")
	t.Setenv("ZOHO_PORTAL_ID", "portal-1")
	t.Setenv("ZOHO_PROJECT_ID", "project-1")
	t.Setenv("ZOHO_TASK_ID", "task-1")
}

// clearOptional blanks every optional variable so defaults apply even
// when the test environment happens to define them.
func clearOptional(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ZOHO_DC", "ZOHO_USER_ID", "ZOHO_BILL_STATUS", "ZOHO_NOTES_PREFIX",
		"ZOHO_TIMEZONE", "ZOHO_TIME_START", "ZOHO_TIME_END",
		"ZOHO_HTTP_TIMEOUT", "ZOHO_WEBHOOK_URL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	clearOptional(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AuthHost != config.DefaultAuthHost {
		t.Errorf("AuthHost = %q, want %q", cfg.AuthHost, config.DefaultAuthHost)
	}
	if cfg.BillStatus != "Billable" {
		t.Errorf("BillStatus = %q, want %q", cfg.BillStatus, "Billable")
	}
	if cfg.Timezone != "Asia/Kolkata" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Asia/Kolkata")
	}
	if cfg.StartClock != "09:30" || cfg.EndClock != "18:30" {
		t.Errorf("clock defaults = %q/%q, want 09:30/18:30", cfg.StartClock, cfg.EndClock)
	}
	if cfg.HTTPTimeout != config.DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, config.DefaultHTTPTimeout)
	}
	if cfg.UserID != "" {
		t.Errorf("UserID = %q, want empty", cfg.UserID)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("ZOHO_DC", "accounts.zoho.com")
	t.Setenv("ZOHO_USER_ID", "user-77")
	t.Setenv("ZOHO_BILL_STATUS", "Non Billable")
	t.Setenv("ZOHO_TIME_START", "08:00")
	t.Setenv("ZOHO_TIME_END", "16:00")
	t.Setenv("ZOHO_HTTP_TIMEOUT", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AuthHost != "accounts.zoho.com" {
		t.Errorf("AuthHost = %q, want %q", cfg.AuthHost, "accounts.zoho.com")
	}
	if cfg.UserID != "user-77" {
		t.Errorf("UserID = %q, want %q", cfg.UserID, "user-77")
	}
	if cfg.BillStatus != "Non Billable" {
		t.Errorf("BillStatus = %q, want %q", cfg.BillStatus, "Non Billable")
	}
	if cfg.StartClock != "08:00" || cfg.EndClock != "16:00" {
		t.Errorf("clocks = %q/%q, want 08:00/16:00", cfg.StartClock, cfg.EndClock)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	required := []string{
		"ZOHO_CLIENT_ID", "ZOHO_CLIENT_SECRET", "ZOHO_REFRESH_TOKEN",
		"ZOHO_PORTAL_ID", "ZOHO_PROJECT_ID", "ZOHO_TASK_ID",
	}
	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			clearOptional(t)
			t.Setenv(missing, "")

			_, err := config.Load()
			if err == nil {
				t.Fatalf("expected error when %s is missing", missing)
			}
			if !strings.Contains(err.Error(), missing) {
				t.Errorf("error %q should name %s", err, missing)
			}
		})
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("ZOHO_HTTP_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Error("expected error for invalid ZOHO_HTTP_TIMEOUT")
	}
}
