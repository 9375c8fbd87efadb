package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultOrder       = "DA"
	defaultStockFilter = "T"
	defaultLimit       = 500
)

var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

// Client talks to the vendor inventory API. One POST per source code,
// fixed query (ascending order, in-stock only, capped page size);
// pagination beyond the cap is not requested.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: httpClient}
}

// FetchBySourceCode returns every listing the vendor publishes under
// one source code. A non-2xx status, transport failure or a body that
// is not a JSON array is an error; the caller decides how soft to fail.
func (c *Client) FetchBySourceCode(ctx context.Context, sourceCode string) ([]Item, error) {
	body, err := json.Marshal(query{
		SourceCode:  sourceCode,
		Order:       defaultOrder,
		StockFilter: defaultStockFilter,
		Limit:       defaultLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query for %s: %w", sourceCode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", sourceCode, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source %s: %w", sourceCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("vendor status %d for source %s", resp.StatusCode, sourceCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", sourceCode, err)
	}

	// The contract is a bare JSON array; anything else (an error
	// object, an HTML page) counts as a malformed response.
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("malformed response for source %s: %w", sourceCode, err)
	}

	return items, nil
}
