package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/config"
	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/notify"
	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/timewindow"
	"github.com/Arunkumarpodili/zoho-timelog-automation/internal/zoho"
)

var logDryRun bool

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log yesterday's time entry against the configured task",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().BoolVar(&logDryRun, "dry-run", false, "Print the entry that would be submitted without calling Zoho")
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client := zoho.NewClient(cfg.AuthHost, cfg.HTTPTimeout)
	notifier := notify.New(cfg.WebhookURL, nil)

	if err := run(context.Background(), cfg, client, notifier, logDryRun); err != nil {
		fmt.Fprintln(os.Stderr, err)
		notifier.Send("Time log failed", err.Error())
		os.Exit(1)
	}
	return nil
}

// run executes the pipeline: compute the window, acquire an access
// token, submit the log. The window is computed first so an invalid
// configuration aborts before any network call.
func run(ctx context.Context, cfg config.Config, client *zoho.Client, notifier *notify.Notifier, dryRun bool) error {
	win, err := timewindow.Compute(cfg.Timezone, cfg.StartClock, cfg.EndClock)
	if err != nil {
		return err
	}
	fmt.Printf("Logging time for date=%s, hours=%s\n", win.Date, win.Hours)

	entry := zoho.TimeLog{
		Date:       win.Date,
		Hours:      win.Hours,
		BillStatus: cfg.BillStatus,
		Notes:      fmt.Sprintf("%s - %s", cfg.NotesPrefix, win.Date),
		Owner:      cfg.UserID,
	}

	if dryRun {
		fmt.Printf("Dry run: would submit %+v to portal=%s project=%s task=%s\n",
			entry, cfg.PortalID, cfg.ProjectID, cfg.TaskID)
		return nil
	}

	tok, err := client.AcquireToken(ctx, cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken)
	if err != nil {
		return fmt.Errorf("acquiring access token: %w", err)
	}

	body, err := client.AddLog(ctx, tok, cfg.PortalID, cfg.ProjectID, cfg.TaskID, entry)
	if err != nil {
		return err
	}

	fmt.Println("Zoho response body:", body)
	notifier.Send("Time log submitted", fmt.Sprintf("date=%s hours=%s", win.Date, win.Hours))
	return nil
}
