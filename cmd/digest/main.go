package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yeojugoodnews/subsidy-digest/internal/bootstrap"
	"github.com/yeojugoodnews/subsidy-digest/internal/config"
	"github.com/yeojugoodnews/subsidy-digest/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("subsidy-digest", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	report, err := app.Digest.Run(ctx)
	if err != nil {
		logger.Error("digest_run_failed", "run_id", report.RunID, "status", report.Status, "error", err)
		app.Close()
		os.Exit(1)
	}

	logger.Info("digest_report",
		"run_id", report.RunID,
		"status", report.Status,
		"fetched", report.Fetched,
		"local", report.Local,
		"title", report.Title,
		"thumbnail", report.Thumbnail.Produced,
		"media_id", report.MediaID,
		"publish_status", report.Publish.Status,
		"link", report.Publish.Link,
		"local_path", report.Publish.LocalPath,
		"export_path", report.ExportPath,
	)
}
