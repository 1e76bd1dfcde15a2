package domain

import "time"

// Section holds every record assigned to one category. Renderers apply
// their own item cap; Total always reports the uncapped count.
type Section struct {
	Category Category
	Items    []ServiceRecord
}

func (s Section) Total() int {
	return len(s.Items)
}

func (s Section) Head(limit int) []ServiceRecord {
	if limit < 0 || len(s.Items) <= limit {
		return s.Items
	}
	return s.Items[:limit]
}

type Digest struct {
	Sections    []Section
	GeneratedAt time.Time
}

func (d Digest) Total() int {
	total := 0
	for _, s := range d.Sections {
		total += s.Total()
	}
	return total
}

func (d Digest) Counts() map[string]int {
	out := make(map[string]int, len(d.Sections))
	for _, s := range d.Sections {
		out[s.Category.ID] = s.Total()
	}
	return out
}

type RenderedDocument struct {
	Variant string
	HTML    string
}

// ThumbnailOutcome reports whether a thumbnail was produced. A missing
// drawing capability or font is an expected outcome, not an error.
type ThumbnailOutcome struct {
	Produced bool
	Path     string
	Data     []byte
	Reason   string
}

type RunStatus string

const (
	RunCompleted     RunStatus = "completed"
	RunNoMatches     RunStatus = "no_matches"
	RunRenderFailure RunStatus = "render_failed"
)

type RunReport struct {
	RunID      string
	Status     RunStatus
	Fetched    int
	Local      int
	Counts     map[string]int
	Title      string
	Thumbnail  ThumbnailOutcome
	MediaID    int
	Publish    PublishResult
	ExportPath string
	StartedAt  time.Time
	FinishedAt time.Time
}

type DigestEvent struct {
	RunID     string         `json:"run_id"`
	Title     string         `json:"title"`
	Status    PublishStatus  `json:"status"`
	Link      string         `json:"link,omitempty"`
	LocalPath string         `json:"local_path,omitempty"`
	Total     int            `json:"total"`
	Counts    map[string]int `json:"counts"`
	At        time.Time      `json:"at"`
}
