package interactive

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

const Variant = "interactive"

//go:embed page.html.tmpl
var pageTemplate string

type Renderer struct {
	tmpl *template.Template
}

var _ ports.DigestRenderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("page").Parse(pageTemplate))}
}

// Load renders the payload with the page template at path instead of the
// embedded one. The template receives the same view as the default page.
func Load(path string) (*Renderer, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse interactive template", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Variant() string { return Variant }

type panel struct {
	Meta  CategoryMeta
	Items []Item
}

type view struct {
	Payload Payload
	State   domain.ViewState
	Panels  []panel
}

func (r *Renderer) Render(digest domain.Digest) (domain.RenderedDocument, error) {
	payload := BuildPayload(digest)
	v := view{
		Payload: payload,
		State:   domain.NewViewState(payload.Order),
		Panels:  make([]panel, 0, len(payload.Order)),
	}
	for _, id := range payload.Order {
		v.Panels = append(v.Panels, panel{Meta: payload.Categories[id], Items: payload.Items[id]})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return domain.RenderedDocument{}, fmt.Errorf("execute interactive template: %w", err)
	}
	return domain.RenderedDocument{Variant: Variant, HTML: buf.String()}, nil
}
