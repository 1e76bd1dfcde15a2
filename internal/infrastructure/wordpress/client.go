package wordpress

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/resilience"
)

const (
	postsPath = "/wp-json/wp/v2/posts"
	mediaPath = "/wp-json/wp/v2/media"
)

type Options struct {
	Timeout            time.Duration
	HTTPClient         *http.Client
	FallbackKey        string
	ResilienceExecutor *resilience.Executor
}

type Client struct {
	creds       domain.Credentials
	httpClient  *http.Client
	storage     ports.ObjectStorage
	fallbackKey string
	executor    *resilience.Executor
}

var _ ports.Publisher = (*Client)(nil)

func New(creds domain.Credentials, storage ports.ObjectStorage, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	fallbackKey := options.FallbackKey
	if fallbackKey == "" {
		fallbackKey = "subsidy_output.html"
	}
	creds.SiteURL = strings.TrimRight(creds.SiteURL, "/")
	return &Client{
		creds:       creds,
		httpClient:  httpClient,
		storage:     storage,
		fallbackKey: fallbackKey,
		executor:    options.ResilienceExecutor,
	}
}

type createPostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Categories    []int  `json:"categories,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

type createPostResponse struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

func (c *Client) Publish(ctx context.Context, post domain.Post) domain.PublishResult {
	if !c.creds.Complete() {
		return c.saveLocally(ctx, post)
	}

	payload := createPostRequest{
		Title:         post.Title,
		Content:       post.Content,
		Status:        "publish",
		FeaturedMedia: post.FeaturedMediaID,
	}
	if post.CategoryID > 0 {
		payload.Categories = []int{post.CategoryID}
	}

	var response createPostResponse
	err := c.execute(ctx, "wordpress.posts", func(callCtx context.Context) error {
		response = createPostResponse{}
		return c.postJSON(callCtx, postsPath, payload, &response, "create post")
	})
	if err != nil {
		return domain.PublishResult{Status: domain.PublishFailed, Err: wrapTemporaryIfNeeded("wordpress create post", err)}
	}
	return domain.PublishResult{Status: domain.PublishPublished, Link: response.Link}
}

func (c *Client) UploadMedia(ctx context.Context, filename, contentType string, data []byte) (domain.Media, bool) {
	if !c.creds.Complete() {
		return domain.Media{}, false
	}

	var media domain.Media
	err := c.execute(ctx, "wordpress.media", func(callCtx context.Context) error {
		media = domain.Media{}
		headers := http.Header{}
		headers.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		headers.Set("Content-Type", contentType)
		return c.post(callCtx, mediaPath, headers, bytes.NewReader(data), &media, "upload media")
	})
	if err != nil {
		slog.Warn("wordpress_media_upload_failed", "filename", filename, "error", err)
		return domain.Media{}, false
	}
	return media, true
}

func (c *Client) saveLocally(ctx context.Context, post domain.Post) domain.PublishResult {
	if c.storage == nil {
		return domain.PublishResult{
			Status: domain.PublishFailed,
			Err:    domain.WrapError(domain.ErrMissingCredentials, "wordpress publish", fmt.Errorf("no local storage configured")),
		}
	}
	if err := c.storage.Save(ctx, c.fallbackKey, strings.NewReader(standalonePage(post))); err != nil {
		return domain.PublishResult{Status: domain.PublishFailed, Err: fmt.Errorf("save local fallback: %w", err)}
	}
	return domain.PublishResult{Status: domain.PublishSavedLocally, LocalPath: c.storage.Path(c.fallbackKey)}
}

func standalonePage(post domain.Post) string {
	trimmed := strings.TrimSpace(post.Content)
	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") {
		return post.Content
	}
	return "<!DOCTYPE html><html><head><meta charset='utf-8'><title>" + html.EscapeString(post.Title) +
		"</title></head><body style='background:#000;padding:20px;'>" + post.Content + "</body></html>"
}

func (c *Client) execute(ctx context.Context, operation string, call func(context.Context) error) error {
	if c.executor != nil {
		return c.executor.Execute(ctx, operation, call, classifyWordPressError)
	}
	return call(ctx)
}
