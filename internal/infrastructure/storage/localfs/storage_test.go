package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := storage.Save(context.Background(), "pages/out.html", strings.NewReader("<p>hi</p>")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := storage.Save(context.Background(), "pages/out.html", strings.NewReader("<p>again</p>")); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	rc, err := storage.Open(context.Background(), "pages/out.html")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()
	raw, _ := io.ReadAll(rc)
	if string(raw) != "<p>again</p>" {
		t.Fatalf("unexpected content %q", raw)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "pages"))
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestPathStaysUnderBase(t *testing.T) {
	dir := t.TempDir()
	storage, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := storage.Path("../../etc/passwd")
	if !strings.HasPrefix(got, dir) {
		t.Fatalf("path escaped base dir: %s", got)
	}
}

func TestSaveRejectsEmptyKey(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = storage.Save(context.Background(), " ", strings.NewReader("x"))
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
