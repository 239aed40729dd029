package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/iho/goexpense/internal/adapter/http/dto"
)

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(opts *options) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(opts.baseURL, "/"),
		http:    &http.Client{Timeout: opts.timeout},
	}
}

func (c *apiClient) listExpenses(ctx context.Context, q url.Values) (*dto.ExpenseListResponse, error) {
	var out dto.ExpenseListResponse
	if err := c.get(ctx, "/api/v1/expenses", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) summary(ctx context.Context, q url.Values) (*dto.SummaryResponse, error) {
	var out dto.SummaryResponse
	if err := c.get(ctx, "/api/v1/analytics/summary", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) get(ctx context.Context, path string, q url.Values, out any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, describeAPIError(apiErr))
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func describeAPIError(e dto.ErrorResponse) string {
	if e.Message == "" {
		return e.Error
	}
	return e.Error + ": " + e.Message
}
