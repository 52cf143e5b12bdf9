package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PlausibilityChecker reports how plausible a first name is according to an
// external service. Implementations are advisory: callers must treat any
// error as "no opinion".
type PlausibilityChecker interface {
	Plausibility(firstName string) (float64, error)
}

// HTTPPlausibilityChecker queries a genderize.io-style endpoint returning a
// JSON body with a "probability" field. Every request is bounded by Timeout
// so a slow service can never stall extraction.
type HTTPPlausibilityChecker struct {
	BaseURL string
	Timeout time.Duration
	client  *http.Client
}

// NewHTTPPlausibilityChecker builds a checker for the given endpoint.
func NewHTTPPlausibilityChecker(baseURL string, timeout time.Duration) *HTTPPlausibilityChecker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPPlausibilityChecker{
		BaseURL: baseURL,
		Timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Plausibility performs the lookup keyed by first name.
func (c *HTTPPlausibilityChecker) Plausibility(firstName string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?name=%s", c.BaseURL, url.QueryEscape(firstName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building plausibility request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("plausibility lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("plausibility lookup: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Probability float64 `json:"probability"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding plausibility response: %w", err)
	}
	return body.Probability, nil
}
