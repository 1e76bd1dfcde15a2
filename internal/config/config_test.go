package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SUBSIDY_API_KEY", "WP_URL", "WP_CATEGORY_ID", "FETCH_POLICY", "FETCH_DAYS",
		"FETCH_RATE_PER_SEC", "RENDER_VARIANT", "THUMBNAIL_ENABLED", "NATS_URL", "XLSX_EXPORT_FILE",
		"INTERACTIVE_TEMPLATE_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.SubsidyAPIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.SubsidyAPIKey)
	}
	if cfg.WPURL != "https://yeojugoodnews.com" {
		t.Fatalf("expected default site url, got %q", cfg.WPURL)
	}
	if cfg.WPCategoryID != 139 {
		t.Fatalf("expected default category 139, got %d", cfg.WPCategoryID)
	}
	if cfg.FetchPolicy != "recent" || cfg.FetchDays != 30 {
		t.Fatalf("expected recent/30 fetch defaults, got %q/%d", cfg.FetchPolicy, cfg.FetchDays)
	}
	if cfg.FetchRatePerSec != 5 {
		t.Fatalf("expected default rate 5, got %v", cfg.FetchRatePerSec)
	}
	if cfg.RenderVariant != "interactive" {
		t.Fatalf("expected interactive variant, got %q", cfg.RenderVariant)
	}
	if !cfg.ThumbnailEnabled {
		t.Fatalf("expected thumbnail enabled by default")
	}
	if cfg.NATSURL != "" || cfg.XLSXExportFile != "" || cfg.InteractiveTemplatePath != "" {
		t.Fatalf("optional features should default to disabled")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("WP_CATEGORY_ID", "42")
	t.Setenv("FETCH_POLICY", "full")
	t.Setenv("FETCH_DAYS", "7")
	t.Setenv("FETCH_RATE_PER_SEC", "2.5")
	t.Setenv("RENDER_VARIANT", "static")
	t.Setenv("THUMBNAIL_ENABLED", "false")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("INTERACTIVE_TEMPLATE_PATH", "/etc/digest/page.html")

	cfg := Load()
	if cfg.WPCategoryID != 42 {
		t.Fatalf("expected category override, got %d", cfg.WPCategoryID)
	}
	if cfg.FetchPolicy != "full" || cfg.FetchDays != 7 {
		t.Fatalf("expected full/7, got %q/%d", cfg.FetchPolicy, cfg.FetchDays)
	}
	if cfg.FetchRatePerSec != 2.5 {
		t.Fatalf("expected rate 2.5, got %v", cfg.FetchRatePerSec)
	}
	if cfg.RenderVariant != "static" || cfg.ThumbnailEnabled {
		t.Fatalf("expected static variant without thumbnail")
	}
	if cfg.NATSURL != "nats://localhost:4222" {
		t.Fatalf("expected nats url override, got %q", cfg.NATSURL)
	}
	if cfg.InteractiveTemplatePath != "/etc/digest/page.html" {
		t.Fatalf("expected template path override, got %q", cfg.InteractiveTemplatePath)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("FETCH_DAYS", "thirty")
	t.Setenv("FETCH_RATE_PER_SEC", "fast")
	t.Setenv("THUMBNAIL_ENABLED", "maybe")

	cfg := Load()
	if cfg.FetchDays != 30 || cfg.FetchRatePerSec != 5 || !cfg.ThumbnailEnabled {
		t.Fatalf("expected fallbacks, got days=%d rate=%v thumb=%v", cfg.FetchDays, cfg.FetchRatePerSec, cfg.ThumbnailEnabled)
	}
}
