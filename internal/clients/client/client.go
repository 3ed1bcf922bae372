package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
)

// HttpClient is implemented by the concrete API clients so SendRequest can
// build requests against their base URL with their timeout.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the parameterized form of Path, used as the metrics
	// label to keep cardinality bounded.
	TemplatePath string
	Headers      map[string]string
}

// HttpError is returned for any non-2xx response so callers can branch on the
// status code instead of parsing error strings.
type HttpError struct {
	StatusCode int
	Body       []byte
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, string(e.Body))
}

func IsHttpError(err error) (*HttpError, bool) {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// SendRequest issues a single JSON request and decodes the JSON response into
// O. No retries; every call is best-effort single-attempt.
func SendRequest[I, O any](
	ctx context.Context,
	c HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*O, error) {
	url := c.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.GetDefaultRequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	timer := metrics.StartClientRequestDurationTimer(c.GetBaseURL(), method, opts.TemplatePath)

	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		timer(0)
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	timer(resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HttpError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	var output O
	if err := json.Unmarshal(respBody, &output); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &output, nil
}
