package interactive

import (
	"fmt"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

const (
	ItemCap       = 15
	targetLimit   = 100
	contentLimit  = 200
	methodLimit   = 100
	defaultPeriod = "상시"
)

type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Org     string `json:"org"`
	Target  string `json:"target"`
	Content string `json:"content"`
	Method  string `json:"method"`
	Period  string `json:"period"`
	URL     string `json:"url,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type CategoryMeta struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
	Total int    `json:"total"`
}

type Payload struct {
	Order      []string                `json:"order"`
	Categories map[string]CategoryMeta `json:"categories"`
	Items      map[string][]Item       `json:"items"`
	Total      int                     `json:"total"`
	UpdatedAt  string                  `json:"updatedAt"`
}

func BuildPayload(digest domain.Digest) Payload {
	p := Payload{
		Order:      make([]string, 0, len(digest.Sections)),
		Categories: make(map[string]CategoryMeta, len(digest.Sections)),
		Items:      make(map[string][]Item, len(digest.Sections)),
		Total:      digest.Total(),
		UpdatedAt:  digest.GeneratedAt.Format("2006-01-02 15:04"),
	}
	for _, s := range digest.Sections {
		id := s.Category.ID
		p.Order = append(p.Order, id)
		p.Categories[id] = CategoryMeta{
			ID:    id,
			Name:  s.Category.Name,
			Icon:  s.Category.Icon,
			Color: s.Category.Color,
			Bg:    s.Category.Background,
			Total: s.Total(),
		}

		head := s.Head(ItemCap)
		items := make([]Item, 0, len(head))
		for i, rec := range head {
			items = append(items, toItem(fmt.Sprintf("%s-%d", id, i), rec))
		}
		p.Items[id] = items
	}
	return p
}

func toItem(id string, rec domain.ServiceRecord) Item {
	period := rec.Get(domain.FieldPeriod)
	if period == "" {
		period = defaultPeriod
	}
	return Item{
		ID:      id,
		Name:    rec.Get(domain.FieldName),
		Org:     rec.Get(domain.FieldOrgName),
		Target:  domain.Truncate(rec.Get(domain.FieldTarget), targetLimit),
		Content: domain.Truncate(rec.Get(domain.FieldContent), contentLimit),
		Method:  domain.Truncate(rec.Get(domain.FieldMethod), methodLimit),
		Period:  period,
		URL:     rec.Get(domain.FieldDetailURL),
		Phone:   rec.Get(domain.FieldPhone),
	}
}
