package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

func TestDefaultTable(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	match := table.Categories()
	if len(match) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(match))
	}
	if match[0].ID != "senior" || match[1].ID != "youth" {
		t.Fatalf("unexpected match order: %s, %s", match[0].ID, match[1].ID)
	}

	display := table.DisplayOrder()
	if display[0].Name != "청년" || display[len(display)-1].ID != "other" {
		t.Fatalf("unexpected display order: %+v", display)
	}
	if table.CatchAllID() != "other" {
		t.Fatalf("expected catch-all other, got %s", table.CatchAllID())
	}

	youth, ok := table.Get("youth")
	if !ok || youth.Keywords[0] != "청년" || youth.Color != "#60a5fa" {
		t.Fatalf("unexpected youth category: %+v", youth)
	}

	again, _ := Default()
	if again != table {
		t.Fatalf("Default() should return the same registry")
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.yaml")
	content := `
categories:
  - id: a
    name: A
    keywords: [x]
  - id: rest
    name: Rest
    catch_all: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.CatchAllID() != "rest" || len(table.DisplayOrder()) != 2 {
		t.Fatalf("unexpected table %+v", table.DisplayOrder())
	}
}

func TestParseRejectsTableWithoutCatchAll(t *testing.T) {
	_, err := Parse([]byte("categories:\n  - id: a\n    keywords: [x]\n"))
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
