// cmd/daemon.go
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/pipeline"
	"github.com/julienpequegnot/tagdesk/internal/scheduler"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run in daemon mode",
	Long:  `Runs tagdesk in the foreground, fetching and scoring new articles on a cron schedule.`,
	RunE:  runDaemon,
}

var (
	daemonSchedule string
	daemonOnce     bool
)

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.Flags().StringVar(&daemonSchedule, "schedule", "", "Override the cron schedule (empty = use config)")
	daemonCmd.Flags().BoolVar(&daemonOnce, "once", false, "Run once and exit")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	expr := cfg.Daemon.Schedule
	if daemonSchedule != "" {
		expr = daemonSchedule
	}
	if err := scheduler.Validate(expr); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := pipeline.NewEngine(cfg)
	if err != nil {
		return err
	}
	p := pipeline.New(db, cfg, engine)
	ctx := cmd.Context()

	run := func() {
		if err := p.Run(ctx); err != nil {
			slog.Error("pipeline failed", "error", err)
		}
	}

	fmt.Printf("tagdesk daemon starting (schedule: %s, timezone: %s)\n", expr, cfg.Daemon.Timezone)
	run()

	if daemonOnce {
		fmt.Println("Single run complete.")
		return nil
	}

	s := scheduler.New(cfg.Daemon.Timezone)
	if err := s.Schedule(expr, run); err != nil {
		return err
	}
	s.Start()
	fmt.Printf("Daemon running. Next run at %s. Press Ctrl+C to stop.\n",
		s.Next().In(s.Location()).Format("2006-01-02 15:04 MST"))

	<-ctx.Done()
	fmt.Println("\nShutting down...")
	<-s.Stop().Done()
	return nil
}
