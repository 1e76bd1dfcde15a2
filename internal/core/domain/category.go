package domain

import (
	"errors"
	"fmt"
)

type Category struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Icon       string   `yaml:"icon" json:"icon"`
	Color      string   `yaml:"color" json:"color"`
	Background string   `yaml:"background" json:"bg"`
	Keywords   []string `yaml:"keywords" json:"-"`
	CatchAll   bool     `yaml:"catch_all" json:"-"`
}

// CategoryTable is the read-only category registry. Categories keep their
// declared order for matching and a separate order for display.
type CategoryTable struct {
	categories []Category
	display    []Category
	byID       map[string]Category
	catchAll   string
}

func NewCategoryTable(categories []Category, displayOrder []string) (*CategoryTable, error) {
	if len(categories) == 0 {
		return nil, WrapError(ErrInvalidInput, "category table", errors.New("no categories"))
	}

	byID := make(map[string]Category, len(categories))
	catchAll := ""
	for _, c := range categories {
		if c.ID == "" {
			return nil, WrapError(ErrInvalidInput, "category table", errors.New("category without id"))
		}
		if _, dup := byID[c.ID]; dup {
			return nil, WrapError(ErrInvalidInput, "category table", fmt.Errorf("duplicate category %q", c.ID))
		}
		if c.CatchAll {
			if catchAll != "" {
				return nil, WrapError(ErrInvalidInput, "category table", fmt.Errorf("second catch-all %q", c.ID))
			}
			if len(c.Keywords) > 0 {
				return nil, WrapError(ErrInvalidInput, "category table", fmt.Errorf("catch-all %q has keywords", c.ID))
			}
			catchAll = c.ID
		}
		c.Keywords = append([]string(nil), c.Keywords...)
		byID[c.ID] = c
	}
	if catchAll == "" {
		return nil, WrapError(ErrInvalidInput, "category table", errors.New("no catch-all category"))
	}

	if len(displayOrder) == 0 {
		for _, c := range categories {
			displayOrder = append(displayOrder, c.ID)
		}
	}
	if len(displayOrder) != len(categories) {
		return nil, WrapError(ErrInvalidInput, "category table",
			fmt.Errorf("display order lists %d of %d categories", len(displayOrder), len(categories)))
	}
	display := make([]Category, 0, len(displayOrder))
	seen := make(map[string]struct{}, len(displayOrder))
	for _, id := range displayOrder {
		c, ok := byID[id]
		if !ok {
			return nil, WrapError(ErrInvalidInput, "category table", fmt.Errorf("unknown category %q in display order", id))
		}
		if _, dup := seen[id]; dup {
			return nil, WrapError(ErrInvalidInput, "category table", fmt.Errorf("category %q repeated in display order", id))
		}
		seen[id] = struct{}{}
		display = append(display, c)
	}

	ordered := make([]Category, 0, len(categories))
	for _, c := range categories {
		ordered = append(ordered, byID[c.ID])
	}

	return &CategoryTable{
		categories: ordered,
		display:    display,
		byID:       byID,
		catchAll:   catchAll,
	}, nil
}

func (t *CategoryTable) Categories() []Category {
	return cloneCategories(t.categories)
}

func (t *CategoryTable) DisplayOrder() []Category {
	return cloneCategories(t.display)
}

func (t *CategoryTable) Get(id string) (Category, bool) {
	c, ok := t.byID[id]
	c.Keywords = append([]string(nil), c.Keywords...)
	return c, ok
}

func (t *CategoryTable) CatchAllID() string {
	return t.catchAll
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		c.Keywords = append([]string(nil), c.Keywords...)
		out[i] = c
	}
	return out
}
