package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return c.post(ctx, path, headers, bytes.NewReader(body), out, operation)
}

func (c *Client) post(ctx context.Context, path string, headers http.Header, body io.Reader, out any, operation string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.SiteURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.SetBasicAuth(c.creds.Username, c.creds.AppPassword)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wordpress %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPStatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
