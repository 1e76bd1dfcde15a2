package static

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

const (
	Variant = "static"

	ItemCap       = 10
	descLimit     = 100
	targetLimit   = 50
	sourceURL     = "https://www.gov.kr/portal/rcvfvrSvc/main"
	timestampForm = "2006-01-02 15:04"
)

//go:embed digest.html.tmpl
var digestTemplate string

type Renderer struct {
	tmpl *template.Template
}

var _ ports.DigestRenderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("digest").Parse(digestTemplate))}
}

func (r *Renderer) Variant() string { return Variant }

type card struct {
	Name   string
	Org    string
	Desc   string
	Target string
	URL    string
}

type section struct {
	Icon  string
	Name  string
	Color string
	Total int
	Cards []card
}

type view struct {
	Total     int
	Sections  []section
	UpdatedAt string
	SourceURL string
}

func (r *Renderer) Render(digest domain.Digest) (domain.RenderedDocument, error) {
	v := view{
		Total:     digest.Total(),
		UpdatedAt: digest.GeneratedAt.Format(timestampForm),
		SourceURL: sourceURL,
	}
	for _, s := range digest.Sections {
		if s.Total() == 0 {
			continue
		}
		sec := section{
			Icon:  s.Category.Icon,
			Name:  s.Category.Name,
			Color: s.Category.Color,
			Total: s.Total(),
		}
		for _, rec := range s.Head(ItemCap) {
			sec.Cards = append(sec.Cards, toCard(rec))
		}
		v.Sections = append(v.Sections, sec)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return domain.RenderedDocument{}, fmt.Errorf("execute static template: %w", err)
	}
	return domain.RenderedDocument{Variant: Variant, HTML: buf.String()}, nil
}

func toCard(rec domain.ServiceRecord) card {
	desc := rec.Get(domain.FieldSummary)
	if desc == "" {
		desc = domain.Truncate(rec.Get(domain.FieldContent), descLimit)
	}
	return card{
		Name:   rec.Get(domain.FieldName),
		Org:    rec.Get(domain.FieldOrgName),
		Desc:   desc,
		Target: domain.Truncate(rec.Get(domain.FieldTarget), targetLimit),
		URL:    rec.Get(domain.FieldDetailURL),
	}
}
