package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

//go:embed categories.yaml
var embeddedTable []byte

type document struct {
	Categories   []domain.Category `yaml:"categories"`
	DisplayOrder []string          `yaml:"display_order"`
}

var (
	defaultOnce  sync.Once
	defaultTable *domain.CategoryTable
	defaultErr   error
)

func Default() (*domain.CategoryTable, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(embeddedTable)
	})
	return defaultTable, defaultErr
}

func Load(path string) (*domain.CategoryTable, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category table: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*domain.CategoryTable, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse category table", err)
	}
	return domain.NewCategoryTable(doc.Categories, doc.DisplayOrder)
}
