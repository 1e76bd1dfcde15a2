package gov24

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/resilience"
)

const DefaultBaseURL = "https://api.odcloud.kr/api/gov24/v3"

type Options struct {
	Timeout            time.Duration
	RatePerSecond      float64
	HTTPClient         *http.Client
	ResilienceExecutor *resilience.Executor
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
}

var _ ports.ServiceSource = (*Client)(nil)

func New(baseURL, apiKey string, options Options) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if options.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.RatePerSecond), 1)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		limiter:    limiter,
		executor:   options.ResilienceExecutor,
	}
}

type serviceListResponse struct {
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalCount int              `json:"totalCount"`
	Data       []map[string]any `json:"data"`
}

func (c *Client) FetchPage(ctx context.Context, page, perPage int) (domain.ServicePage, error) {
	if c.apiKey == "" {
		return domain.ServicePage{}, domain.WrapError(domain.ErrMissingAPIKey, "gov24 serviceList", fmt.Errorf("SUBSIDY_API_KEY is empty"))
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.ServicePage{}, fmt.Errorf("gov24 rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(perPage))
	q.Set("serviceKey", c.apiKey)

	var response serviceListResponse
	call := func(callCtx context.Context) error {
		response = serviceListResponse{}
		return c.getJSON(callCtx, "/serviceList", q, &response, "serviceList")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "gov24.serviceList", call, classifyGov24Error)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return domain.ServicePage{}, wrapTemporaryIfNeeded("gov24 serviceList", err)
	}

	records := make([]domain.ServiceRecord, 0, len(response.Data))
	for _, row := range response.Data {
		records = append(records, toRecord(row))
	}
	return domain.ServicePage{Records: records, TotalCount: response.TotalCount}, nil
}

// toRecord flattens a JSON row to text fields. Numbers keep their literal
// form and nulls are dropped.
func toRecord(row map[string]any) domain.ServiceRecord {
	rec := make(domain.ServiceRecord, len(row))
	for k, v := range row {
		switch val := v.(type) {
		case nil:
		case string:
			rec[k] = val
		case json.Number:
			rec[k] = val.String()
		case bool:
			rec[k] = strconv.FormatBool(val)
		default:
			rec[k] = fmt.Sprint(val)
		}
	}
	return rec
}
