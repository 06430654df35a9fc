package gbd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gbd-extract/internal/model"
)

// RemoteError wraps any failure of the shared-function service: transport
// errors, non-2xx responses and malformed bodies. Callers surface it, they
// never retry.
type RemoteError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gbd service %s returned status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("gbd service %s failed: %v", e.Endpoint, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client talks to the shared-function service over HTTP+JSON. The base URL
// is an explicit configuration value; nothing is inferred from the host
// platform.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the service at baseURL. The underlying
// HTTP client carries no timeout: the single retrieval call blocks until
// the service responds, matching how the shared functions behave.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// GetCauseDraws performs one blocking retrieval of draw-level cause
// estimates matching the filter.
func (c *Client) GetCauseDraws(ctx context.Context, filter model.DrawsFilter) (model.ResultTable, error) {
	return c.retrieve(ctx, "/api/v1/draws", filter)
}

// GetPopulations performs one blocking retrieval of population counts
// matching the filter.
func (c *Client) GetPopulations(ctx context.Context, filter model.PopulationFilter) (model.ResultTable, error) {
	return c.retrieve(ctx, "/api/v1/populations", filter)
}

func (c *Client) retrieve(ctx context.Context, endpoint string, filter interface{}) (model.ResultTable, error) {
	var table model.ResultTable

	payload, err := json.Marshal(filter)
	if err != nil {
		return table, &RemoteError{Endpoint: endpoint, Err: fmt.Errorf("encode filter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return table, &RemoteError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return table, &RemoteError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return table, &RemoteError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return table, &RemoteError{Endpoint: endpoint, Err: fmt.Errorf("decode result table: %w", err)}
	}

	// A ragged table means the service sent us something broken.
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return model.ResultTable{}, &RemoteError{
				Endpoint: endpoint,
				Err:      fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(table.Columns)),
			}
		}
	}

	return table, nil
}
