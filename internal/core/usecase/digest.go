package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

const VariantInteractive = "interactive"

type DigestOptions struct {
	Policy        string
	Days          int
	CategoryID    int
	StaticPageKey string
	Now           func() time.Time
	NewRunID      func() string
}

type DigestDeps struct {
	Fetcher     ports.ServiceFetcher
	Filter      *LocalityFilter
	Categorizer *Categorizer
	Renderer    ports.DigestRenderer
	Thumbnails  ports.ThumbnailGenerator
	Publisher   ports.Publisher
	Storage     ports.ObjectStorage
	Exporter    ports.DigestExporter
	Notifier    ports.EventNotifier
	Observer    ports.RunObserver
}

// DigestUseCase runs fetch, filter, categorize, render, thumbnail and
// publish strictly in sequence.
type DigestUseCase struct {
	deps DigestDeps
	opts DigestOptions
}

func NewDigestUseCase(deps DigestDeps, opts DigestOptions) *DigestUseCase {
	if opts.Policy == "" {
		opts.Policy = PolicyRecent
	}
	if opts.Days <= 0 {
		opts.Days = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}
	if deps.Observer == nil {
		deps.Observer = nopObserver{}
	}
	return &DigestUseCase{deps: deps, opts: opts}
}

func (uc *DigestUseCase) Run(ctx context.Context) (domain.RunReport, error) {
	now := uc.opts.Now()
	report := domain.RunReport{
		RunID:     uc.opts.NewRunID(),
		StartedAt: now,
	}
	logger := slog.With("run_id", report.RunID)
	logger.Info("digest_run_started", "policy", uc.opts.Policy, "variant", uc.deps.Renderer.Variant())
	defer uc.flushMetrics(logger)

	records := uc.fetch(ctx)
	report.Fetched = len(records)
	uc.deps.Observer.ObserveRecords("fetched", len(records))
	logger.Info("digest_fetched", "records", len(records))

	local := uc.deps.Filter.Filter(records)
	report.Local = len(local)
	uc.deps.Observer.ObserveRecords("local", len(local))
	logger.Info("digest_filtered", "records", len(local))

	if len(local) == 0 {
		report.Status = domain.RunNoMatches
		report.FinishedAt = uc.opts.Now()
		logger.Info("digest_run_finished", "status", report.Status)
		return report, nil
	}

	digest := uc.deps.Categorizer.Group(local, now)
	report.Counts = digest.Counts()

	doc, err := uc.deps.Renderer.Render(digest)
	if err != nil {
		report.Status = domain.RunRenderFailure
		report.FinishedAt = uc.opts.Now()
		return report, fmt.Errorf("render digest: %w", err)
	}
	uc.saveStaticPage(ctx, logger, doc)

	report.Title = Title(now, len(local))

	report.Thumbnail = uc.thumbnail(ctx, logger, digest)
	post := domain.Post{
		Title:      report.Title,
		Content:    doc.HTML,
		CategoryID: uc.opts.CategoryID,
	}
	if report.Thumbnail.Produced {
		media, ok := uc.deps.Publisher.UploadMedia(ctx, filepath.Base(report.Thumbnail.Path), "image/png", report.Thumbnail.Data)
		if ok {
			post.FeaturedMediaID = media.ID
			report.MediaID = media.ID
			logger.Info("thumbnail_uploaded", "media_id", media.ID, "url", media.URL)
		}
	}

	report.Publish = uc.deps.Publisher.Publish(ctx, post)
	uc.deps.Observer.ObservePublish(report.Publish.Status)
	switch report.Publish.Status {
	case domain.PublishPublished:
		logger.Info("digest_published", "link", report.Publish.Link)
	case domain.PublishSavedLocally:
		logger.Info("digest_saved_locally", "path", report.Publish.LocalPath)
	default:
		logger.Warn("digest_publish_failed", "error", report.Publish.Err)
	}

	report.ExportPath = uc.export(ctx, logger, digest)
	uc.notify(ctx, logger, report)

	report.Status = domain.RunCompleted
	report.FinishedAt = uc.opts.Now()
	logger.Info("digest_run_finished", "status", report.Status, "duration_ms", float64(report.FinishedAt.Sub(report.StartedAt).Microseconds())/1000.0)
	return report, nil
}

func Title(now time.Time, total int) string {
	return fmt.Sprintf("%d월 정부 지원금·보조금 안내 (%d건)", int(now.Month()), total)
}

func (uc *DigestUseCase) fetch(ctx context.Context) []domain.ServiceRecord {
	if uc.opts.Policy == PolicyFull {
		return uc.deps.Fetcher.FetchAll(ctx)
	}
	return uc.deps.Fetcher.FetchRecent(ctx, uc.opts.Days)
}

func (uc *DigestUseCase) saveStaticPage(ctx context.Context, logger *slog.Logger, doc domain.RenderedDocument) {
	if doc.Variant != VariantInteractive || uc.opts.StaticPageKey == "" || uc.deps.Storage == nil {
		return
	}
	if err := uc.deps.Storage.Save(ctx, uc.opts.StaticPageKey, strings.NewReader(doc.HTML)); err != nil {
		logger.Warn("static_page_write_failed", "key", uc.opts.StaticPageKey, "error", err)
		return
	}
	logger.Info("static_page_written", "path", uc.deps.Storage.Path(uc.opts.StaticPageKey))
}

func (uc *DigestUseCase) thumbnail(ctx context.Context, logger *slog.Logger, digest domain.Digest) domain.ThumbnailOutcome {
	if uc.deps.Thumbnails == nil {
		uc.deps.Observer.ObserveThumbnail(false)
		return domain.ThumbnailOutcome{Reason: "thumbnail generator not configured"}
	}
	outcome := uc.deps.Thumbnails.Generate(ctx, digest)
	uc.deps.Observer.ObserveThumbnail(outcome.Produced)
	if outcome.Produced {
		logger.Info("thumbnail_generated", "path", outcome.Path, "bytes", len(outcome.Data))
	} else {
		logger.Info("thumbnail_skipped", "reason", outcome.Reason)
	}
	return outcome
}

func (uc *DigestUseCase) export(ctx context.Context, logger *slog.Logger, digest domain.Digest) string {
	if uc.deps.Exporter == nil {
		return ""
	}
	path, err := uc.deps.Exporter.Export(ctx, digest)
	if err != nil {
		logger.Warn("digest_export_failed", "error", err)
		return ""
	}
	logger.Info("digest_exported", "path", path)
	return path
}

func (uc *DigestUseCase) notify(ctx context.Context, logger *slog.Logger, report domain.RunReport) {
	if uc.deps.Notifier == nil {
		return
	}
	event := domain.DigestEvent{
		RunID:     report.RunID,
		Title:     report.Title,
		Status:    report.Publish.Status,
		Link:      report.Publish.Link,
		LocalPath: report.Publish.LocalPath,
		Total:     report.Local,
		Counts:    report.Counts,
		At:        uc.opts.Now(),
	}
	if err := uc.deps.Notifier.NotifyDigestPublished(ctx, event); err != nil {
		logger.Warn("digest_notify_failed", "error", err)
	}
}

func (uc *DigestUseCase) flushMetrics(logger *slog.Logger) {
	if err := uc.deps.Observer.Flush(); err != nil {
		logger.Warn("metrics_flush_failed", "error", err)
	}
}
