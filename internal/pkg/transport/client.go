package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
)

// Response is the outcome of a request that actually reached a server
type Response struct {
	StatusCode int
	Body       []byte
	Strategy   string
}

// IsSuccess reports whether the response carries a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// FallbackClient issues one outbound call through an ordered strategy
// chain. Strategies are tried strictly in order, never concurrently: a
// request can carry a real-world side effect (sending a message, creating
// a charge), so dispatching it through several relays at once risks
// duplicate effects.
type FallbackClient struct {
	httpClient *http.Client
}

// NewFallbackClient creates a fallback client with the given per-attempt timeout
func NewFallbackClient(timeout time.Duration) *FallbackClient {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &FallbackClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send tries each strategy in order until one yields a response. Any
// response actually received, including non-2xx, is returned immediately
// without attempting further strategies: the caller needs the error
// payload. A strategy is skipped only on a transport-level failure. If
// every strategy fails at the transport level the call fails with a
// ConnectivityError carrying the last cause.
func (c *FallbackClient) Send(ctx context.Context, method, targetURL string, headers map[string]string, body []byte, strategies []Strategy) (*Response, error) {
	var lastErr error

	for _, strategy := range strategies {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, strategy.Rewrite(targetURL), reader)
		if err != nil {
			lastErr = err
			continue
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.Warn("relay strategy failed",
				logger.String("strategy", strategy.Name()),
				logger.Err(err))
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return &Response{
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Strategy:   strategy.Name(),
		}, nil
	}

	return nil, &apperrors.ConnectivityError{Cause: lastErr}
}
