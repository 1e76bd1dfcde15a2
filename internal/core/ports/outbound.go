package ports

import (
	"context"
	"io"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

// ServiceSource reads one page of the upstream listing.
type ServiceSource interface {
	FetchPage(ctx context.Context, page, perPage int) (domain.ServicePage, error)
}

// DigestRenderer turns a categorized digest into one HTML document.
type DigestRenderer interface {
	Variant() string
	Render(digest domain.Digest) (domain.RenderedDocument, error)
}

// ThumbnailGenerator draws the summary image. Absence of the drawing
// capability is reported through the outcome.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, digest domain.Digest) domain.ThumbnailOutcome
}

// Publisher posts content to the blog, falling back to a local file.
type Publisher interface {
	Publish(ctx context.Context, post domain.Post) domain.PublishResult
	UploadMedia(ctx context.Context, filename, contentType string, data []byte) (domain.Media, bool)
}

// ObjectStorage stores generated artifacts.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Path(key string) string
}

// DigestExporter writes the digest in a secondary format.
type DigestExporter interface {
	Export(ctx context.Context, digest domain.Digest) (string, error)
}

// EventNotifier announces finished runs.
type EventNotifier interface {
	NotifyDigestPublished(ctx context.Context, event domain.DigestEvent) error
}

// RunObserver records pipeline counters.
type RunObserver interface {
	ObservePage(policy string, rows int, err error)
	ObserveRecords(stage string, count int)
	ObservePublish(status domain.PublishStatus)
	ObserveThumbnail(produced bool)
	Flush() error
}
