package usecase

import (
	"strings"
	"time"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

type Categorizer struct {
	table *domain.CategoryTable
}

func NewCategorizer(table *domain.CategoryTable) *Categorizer {
	return &Categorizer{table: table}
}

func (c *Categorizer) Categorize(rec domain.ServiceRecord) string {
	text := searchText(rec)
	for _, cat := range c.table.Categories() {
		if cat.CatchAll {
			continue
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				return cat.ID
			}
		}
	}
	return c.table.CatchAllID()
}

// Group categorizes records into display-ordered sections. Empty
// categories are kept so renderers can show an empty state.
func (c *Categorizer) Group(records []domain.ServiceRecord, now time.Time) domain.Digest {
	byID := make(map[string][]domain.ServiceRecord)
	for _, rec := range records {
		id := c.Categorize(rec)
		byID[id] = append(byID[id], rec)
	}

	display := c.table.DisplayOrder()
	sections := make([]domain.Section, 0, len(display))
	for _, cat := range display {
		sections = append(sections, domain.Section{
			Category: cat,
			Items:    byID[cat.ID],
		})
	}
	return domain.Digest{Sections: sections, GeneratedAt: now}
}

func searchText(rec domain.ServiceRecord) string {
	return rec.Get(domain.FieldName) + " " + rec.Get(domain.FieldTarget) + " " + rec.Get(domain.FieldContent)
}
