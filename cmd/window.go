package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/config"
	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/timewindow"
)

var (
	windowTZ    string
	windowStart string
	windowEnd   string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the date and duration that would be logged",
	Long: `window computes yesterday's date and the start→end duration from the
configured time zone and clock times, without contacting Zoho.
Credentials are not required.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&windowTZ, "timezone", "", "IANA time zone (default: ZOHO_TIMEZONE)")
	windowCmd.Flags().StringVar(&windowStart, "start", "", "Start clock time HH:MM (default: ZOHO_TIME_START)")
	windowCmd.Flags().StringVar(&windowEnd, "end", "", "End clock time HH:MM (default: ZOHO_TIME_END)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	tz := windowTZ
	if tz == "" {
		tz = envOr("ZOHO_TIMEZONE", config.DefaultTimezone)
	}
	start := windowStart
	if start == "" {
		start = envOr("ZOHO_TIME_START", config.DefaultStartClock)
	}
	end := windowEnd
	if end == "" {
		end = envOr("ZOHO_TIME_END", config.DefaultEndClock)
	}

	win, err := timewindow.Compute(tz, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("date:  %s\n", win.Date)
	fmt.Printf("hours: %s\n", win.Hours)
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
