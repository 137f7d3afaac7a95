package kassal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/renvare/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Kassalapp grocery API (kassal.app),
// the retail product search collaborator for Norwegian grocery chains.
type Client struct {
	httpClient  *http.Client
	apiToken    string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Kassalapp API client
func NewClient(apiToken, baseURL string) *Client {
	// Kassalapp allows 60 requests per minute per token
	limiter := rate.NewLimiter(rate.Limit(1), 5) // 1 req/sec, burst of 5

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiToken:    apiToken,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchProducts searches the Kassalapp product catalog and returns matching
// products mapped to the domain model. Retries transient failures up to 3
// times with linear backoff.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if c.debug {
		log.Printf("[KASSAL] SearchProducts called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/api/v1/products", c.baseURL)
	params := url.Values{}
	params.Add("search", query)
	params.Add("size", "20")
	params.Add("sort", "price_asc")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[KASSAL] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(backoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[KASSAL] API error (attempt %d) - Status: %d, Body: %s",
					attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrProductNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrKassalAPIFailure, resp.StatusCode)
			time.Sleep(backoff(attempt))
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(searchResp.Data) == 0 {
			return nil, domain.ErrProductNotFound
		}

		if c.debug {
			log.Printf("[KASSAL] Found %d products for query: %q", len(searchResp.Data), query)
		}
		return mapProducts(searchResp.Data), nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with bearer auth
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Renvare/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKassalAPIFailure, err)
	}

	return resp, nil
}

// backoff returns the sleep duration before the given retry attempt
func backoff(attempt int) time.Duration {
	return time.Duration(attempt*500) * time.Millisecond
}
