package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

const (
	PolicyRecent = "recent"
	PolicyFull   = "full"

	defaultPageSize = 100
	defaultMaxPages = 10
)

type FetchOptions struct {
	PageSize int
	MaxPages int
	Now      func() time.Time
}

// FetchServicesUseCase pages through the listing one request at a time.
// A failed page ends paging; whatever was gathered so far is returned.
type FetchServicesUseCase struct {
	source   ports.ServiceSource
	observer ports.RunObserver
	pageSize int
	maxPages int
	now      func() time.Time
}

func NewFetchServicesUseCase(source ports.ServiceSource, observer ports.RunObserver, opts FetchOptions) *FetchServicesUseCase {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &FetchServicesUseCase{
		source:   source,
		observer: observer,
		pageSize: opts.PageSize,
		maxPages: opts.MaxPages,
		now:      opts.Now,
	}
}

// FetchRecent keeps records modified or registered within the last days.
// Dates compare as YYYY-MM-DD strings.
func (uc *FetchServicesUseCase) FetchRecent(ctx context.Context, days int) []domain.ServiceRecord {
	cutoff := uc.now().AddDate(0, 0, -days).Format("2006-01-02")

	out := make([]domain.ServiceRecord, 0)
	for page := 1; page <= uc.maxPages; page++ {
		result, ok := uc.fetchPage(ctx, PolicyRecent, page)
		if !ok || len(result.Records) == 0 {
			break
		}

		for _, rec := range result.Records {
			if rec.DatePrefix(domain.FieldModifiedAt) >= cutoff || rec.DatePrefix(domain.FieldRegisteredAt) >= cutoff {
				out = append(out, rec)
			}
		}

		if len(result.Records) < uc.pageSize {
			break
		}
	}
	return out
}

func (uc *FetchServicesUseCase) FetchAll(ctx context.Context) []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, 0)
	for page := 1; page <= uc.maxPages; page++ {
		result, ok := uc.fetchPage(ctx, PolicyFull, page)
		if !ok || len(result.Records) == 0 {
			break
		}

		out = append(out, result.Records...)
		if result.TotalCount > 0 && len(out) >= result.TotalCount {
			break
		}
	}
	return out
}

func (uc *FetchServicesUseCase) fetchPage(ctx context.Context, policy string, page int) (domain.ServicePage, bool) {
	result, err := uc.source.FetchPage(ctx, page, uc.pageSize)
	uc.observer.ObservePage(policy, len(result.Records), err)
	if err != nil {
		if domain.IsKind(err, domain.ErrMissingAPIKey) {
			slog.Info("fetch_disabled", "reason", "api key not configured")
		} else {
			slog.Warn("fetch_page_failed", "policy", policy, "page", page, "error", err)
		}
		return domain.ServicePage{}, false
	}
	slog.Debug("fetch_page", "policy", policy, "page", page, "rows", len(result.Records), "total_count", result.TotalCount)
	return result, true
}

type nopObserver struct{}

func (nopObserver) ObservePage(string, int, error) {}
func (nopObserver) ObserveRecords(string, int) {}
func (nopObserver) ObservePublish(domain.PublishStatus) {}
func (nopObserver) ObserveThumbnail(bool) {}
func (nopObserver) Flush() error { return nil }
