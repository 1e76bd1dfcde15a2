package ports

import (
	"context"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

// DigestRunner is the inbound contract for one fetch-to-publish pass.
type DigestRunner interface {
	Run(ctx context.Context) (domain.RunReport, error)
}

// ServiceFetcher collects listing records under one of the fetch policies.
type ServiceFetcher interface {
	FetchRecent(ctx context.Context, days int) []domain.ServiceRecord
	FetchAll(ctx context.Context) []domain.ServiceRecord
}
