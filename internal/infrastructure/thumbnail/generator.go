package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

type Fonts struct {
	Bold    string
	Regular string
}

type Painter interface {
	Paint(layout Layout, fonts Fonts) ([]byte, error)
}

type Options struct {
	Enabled  bool
	Fonts    Fonts
	FileName string
	Painter  Painter
}

type Generator struct {
	storage ports.ObjectStorage
	opts    Options
}

var _ ports.ThumbnailGenerator = (*Generator)(nil)

func New(storage ports.ObjectStorage, opts Options) *Generator {
	if opts.FileName == "" {
		opts.FileName = "subsidy_thumbnail.png"
	}
	return &Generator{storage: storage, opts: opts}
}

// Generate never fails the pipeline: every reason not to produce an image
// is reported in the outcome.
func (g *Generator) Generate(ctx context.Context, digest domain.Digest) domain.ThumbnailOutcome {
	if !g.opts.Enabled {
		return domain.ThumbnailOutcome{Reason: "thumbnail disabled"}
	}
	if g.opts.Painter == nil {
		return domain.ThumbnailOutcome{Reason: "drawing capability unavailable"}
	}
	for _, path := range []string{g.opts.Fonts.Bold, g.opts.Fonts.Regular} {
		if err := checkFont(path); err != nil {
			return domain.ThumbnailOutcome{Reason: err.Error()}
		}
	}

	data, err := g.opts.Painter.Paint(BuildLayout(digest), g.opts.Fonts)
	if err != nil {
		return domain.ThumbnailOutcome{Reason: err.Error()}
	}

	outcome := domain.ThumbnailOutcome{Produced: true, Path: g.opts.FileName, Data: data}
	if g.storage == nil {
		return outcome
	}
	if err := g.storage.Save(ctx, g.opts.FileName, bytes.NewReader(data)); err != nil {
		slog.Warn("thumbnail_write_failed", "file", g.opts.FileName, "error", err)
		return outcome
	}
	outcome.Path = g.storage.Path(g.opts.FileName)
	return outcome
}

func checkFont(path string) error {
	if path == "" {
		return domain.WrapError(domain.ErrCapabilityUnavailable, "load font", fmt.Errorf("font path not configured"))
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.WrapError(domain.ErrCapabilityUnavailable, "load font", err)
	}
	if info.IsDir() {
		return domain.WrapError(domain.ErrCapabilityUnavailable, "load font", fmt.Errorf("%s is a directory", path))
	}
	return nil
}
