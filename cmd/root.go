package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func Start() {
	cfg := newCfg("env")
	slog.SetLogLoggerLevel(slog.Level(cfg.GetInt("log.level")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{Use: "event-ticket"}
	cmd := []*cobra.Command{
		{
			Use:   "serve-http",
			Short: "Run HTTP server",
			Run: func(cmd *cobra.Command, args []string) {
				runHttpServerCmd(ctx)
			},
		},
		{
			Use:   "serve-cron",
			Short: "Run transaction expiry and auto-cancel sweeps",
			Run: func(cmd *cobra.Command, args []string) {
				runCronCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:email",
			Short: "Run queue email server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueEmailCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:user",
			Short: "Run queue user server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueUserCmd(ctx)
			},
		},
		{
			Use:   "dev",
			Short: "Run dev server, for testing purpose",
			Run: func(cmd *cobra.Command, args []string) {
				runHttpServerCmd(ctx)
			},
			PreRun: func(cmd *cobra.Command, args []string) {
				go func() {
					runCronCmd(ctx)
				}()
				go func() {
					runQueueEmailCmd(ctx)
				}()
				go func() {
					runQueueUserCmd(ctx)
				}()
			},
		},
	}

	rootCmd.AddCommand(cmd...)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
