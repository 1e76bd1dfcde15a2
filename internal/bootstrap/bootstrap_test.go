package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yeojugoodnews/subsidy-digest/internal/config"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/render/interactive"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/render/static"
)

func TestNewRenderer(t *testing.T) {
	for variant, want := range map[string]string{
		"":            interactive.Variant,
		"interactive": interactive.Variant,
		"static":      static.Variant,
	} {
		r, err := newRenderer(variant, "")
		if err != nil {
			t.Fatalf("newRenderer(%q) error = %v", variant, err)
		}
		if r.Variant() != want {
			t.Fatalf("newRenderer(%q) variant = %q, want %q", variant, r.Variant(), want)
		}
	}

	if _, err := newRenderer("pdf", ""); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown variant, got %v", err)
	}
}

func TestNewRendererUsesTemplateOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html.tmpl")
	if err := os.WriteFile(path, []byte(`<p>{{.Payload.Total}}</p>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	r, err := newRenderer("interactive", path)
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}
	out, err := r.Render(domain.Digest{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.HTML != "<p>0</p>" || out.Variant != interactive.Variant {
		t.Fatalf("unexpected render %+v", out)
	}
}

func TestFetchPolicy(t *testing.T) {
	for in, want := range map[string]string{"": "recent", "recent": "recent", "full": "full"} {
		got, err := fetchPolicy(in)
		if err != nil || got != want {
			t.Fatalf("fetchPolicy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := fetchPolicy("ful"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown policy, got %v", err)
	}
}

func TestNewRejectsUnknownFetchPolicy(t *testing.T) {
	cfg := config.Config{OutputDir: t.TempDir(), FetchPolicy: "everything"}
	if _, err := New(context.Background(), cfg); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown fetch policy, got %v", err)
	}
}

func TestNewWiresOfflineApp(t *testing.T) {
	cfg := config.Config{
		OutputDir:          t.TempDir(),
		RenderVariant:      "static",
		FallbackOutputFile: "out.html",
		FetchPolicy:        "recent",
		FetchDays:          30,
	}
	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if app.Digest == nil || app.Metrics == nil {
		t.Fatalf("expected digest runner and metrics to be wired")
	}
}

func TestNewRejectsBadCategoryTable(t *testing.T) {
	cfg := config.Config{OutputDir: t.TempDir(), CategoryTablePath: "/nonexistent/categories.yaml"}
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing category table")
	}
}
