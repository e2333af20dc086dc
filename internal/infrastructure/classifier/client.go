package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/cleanfood/backend/internal/domain"
)

// maxAttempts bounds retries against the remote backend
const maxAttempts = 3

// Client calls a remote cleanliness-analysis backend over HTTP
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// classifyRequest is the wire payload sent to the backend
type classifyRequest struct {
	Canonical []string `json:"canonical"`
	Hits      []string `json:"hits"`
}

// classifyResponse is the wire payload returned by the backend
type classifyResponse struct {
	IsClean bool `json:"isClean"`
}

// NewClient creates a new remote classifier client. requestsPerMinute caps
// outbound traffic to the backend; zero or negative disables the cap.
func NewClient(baseURL string, requestsPerMinute int) *Client {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(limit, 5),
	}
}

// SetDebug enables request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Classify asks the remote backend whether the product is intrinsically
// clean. Transient failures are retried with backoff.
func (c *Client) Classify(ctx context.Context, canonical []string, avoidHits []string) (bool, error) {
	body, err := json.Marshal(classifyRequest{Canonical: canonical, Hits: avoidHits})
	if err != nil {
		return false, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/classify", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return false, fmt.Errorf("rate limiter error: %w", err)
		}

		result, err := c.doClassify(ctx, reqURL, body)
		if err == nil {
			return result, nil
		}

		lastErr = err
		if c.debug {
			log.Printf("[CLASSIFIER] request error (attempt %d): %v", attempt, err)
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(time.Duration(attempt*500) * time.Millisecond):
		}
	}

	return false, lastErr
}

// doClassify executes one request/response cycle
func (c *Client) doClassify(ctx context.Context, reqURL string, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CleanFood/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrClassifierFailure, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: status %d, body: %s", domain.ErrClassifierFailure, resp.StatusCode, string(respBody))
	}

	var parsed classifyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return parsed.IsClean, nil
}
