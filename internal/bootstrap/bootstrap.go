package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yeojugoodnews/subsidy-digest/internal/config"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/usecase"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/catalog"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/export/xlsx"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/gov24"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/notify/nats"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/render/interactive"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/render/static"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/resilience"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/storage/localfs"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/thumbnail"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/wordpress"
	"github.com/yeojugoodnews/subsidy-digest/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Digest  ports.DigestRunner
	Metrics *metrics.RunMetrics

	closeFn func()
}

func New(_ context.Context, cfg config.Config) (*App, error) {
	table, err := loadCategories(cfg.CategoryTablePath)
	if err != nil {
		return nil, fmt.Errorf("load category table: %w", err)
	}

	storage, err := localfs.New(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	renderer, err := newRenderer(cfg.RenderVariant, cfg.InteractiveTemplatePath)
	if err != nil {
		return nil, err
	}
	policy, err := fetchPolicy(cfg.FetchPolicy)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.HTTPTimeoutSecond) * time.Second
	executor := resilience.NewExecutor(resilience.DefaultConfig())
	runMetrics := metrics.NewRunMetrics("subsidy-digest", cfg.MetricsTextfile)

	source := gov24.New(cfg.Gov24BaseURL, cfg.SubsidyAPIKey, gov24.Options{
		Timeout:            timeout,
		RatePerSecond:      cfg.FetchRatePerSec,
		ResilienceExecutor: executor,
	})
	fetcher := usecase.NewFetchServicesUseCase(source, runMetrics, usecase.FetchOptions{
		PageSize: cfg.FetchPageSize,
		MaxPages: cfg.FetchMaxPages,
	})

	publisher := wordpress.New(domain.Credentials{
		SiteURL:     cfg.WPURL,
		Username:    cfg.WPUser,
		AppPassword: cfg.WPAppPassword,
	}, storage, wordpress.Options{
		Timeout:            timeout,
		FallbackKey:        cfg.FallbackOutputFile,
		ResilienceExecutor: executor,
	})

	thumbs := thumbnail.New(storage, thumbnail.Options{
		Enabled:  cfg.ThumbnailEnabled,
		FileName: cfg.ThumbnailFile,
		Fonts:    thumbnail.Fonts{Bold: cfg.FontBoldPath, Regular: cfg.FontRegularPath},
		Painter:  thumbnail.NewGGPainter(),
	})

	deps := usecase.DigestDeps{
		Fetcher:     fetcher,
		Filter:      usecase.NewLocalityFilter(usecase.DefaultLocalityRules()),
		Categorizer: usecase.NewCategorizer(table),
		Renderer:    renderer,
		Thumbnails:  thumbs,
		Publisher:   publisher,
		Storage:     storage,
		Observer:    runMetrics,
	}
	if cfg.XLSXExportFile != "" {
		deps.Exporter = xlsx.New(storage, cfg.XLSXExportFile)
	}

	closeFn := func() {}
	if cfg.NATSURL != "" {
		notifier, err := nats.New(cfg.NATSURL, cfg.NATSSubject, nats.Options{ResilienceExecutor: executor})
		if err != nil {
			// Notification is optional; a missing broker must not stop the digest.
			slog.Warn("notifier_disabled", "url", cfg.NATSURL, "error", err)
		} else {
			deps.Notifier = notifier
			closeFn = notifier.Close
		}
	}

	digestUC := usecase.NewDigestUseCase(deps, usecase.DigestOptions{
		Policy:        policy,
		Days:          cfg.FetchDays,
		CategoryID:    cfg.WPCategoryID,
		StaticPageKey: cfg.StaticPageFile,
	})

	return &App{
		Config:  cfg,
		Digest:  digestUC,
		Metrics: runMetrics,
		closeFn: closeFn,
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

func loadCategories(path string) (*domain.CategoryTable, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func newRenderer(variant, templatePath string) (ports.DigestRenderer, error) {
	switch variant {
	case "", interactive.Variant:
		if templatePath != "" {
			return interactive.Load(templatePath)
		}
		return interactive.New(), nil
	case static.Variant:
		return static.New(), nil
	default:
		return nil, domain.WrapError(domain.ErrInvalidInput, "select renderer", fmt.Errorf("unknown variant %q", variant))
	}
}

func fetchPolicy(policy string) (string, error) {
	switch policy {
	case "", usecase.PolicyRecent:
		return usecase.PolicyRecent, nil
	case usecase.PolicyFull:
		return usecase.PolicyFull, nil
	default:
		return "", domain.WrapError(domain.ErrInvalidInput, "select fetch policy", fmt.Errorf("unknown policy %q", policy))
	}
}
