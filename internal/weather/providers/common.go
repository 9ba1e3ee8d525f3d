package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ASolomatin/weather-mcp/internal/version"
	"github.com/ASolomatin/weather-mcp/internal/weather"
)

var userAgent = fmt.Sprintf("weather-mcp/%s", version.Version)

// newCircuitBreaker builds the breaker shared by all outbound provider
// requests. Client-side errors (4xx, including not-found) do not count as
// breaker failures; transport errors and 5xx do.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var notFound *weather.NotFoundError
			if errors.As(err, &notFound) {
				return true
			}
			var provErr *weather.ProviderError
			return errors.As(err, &provErr) && provErr.StatusCode < 500
		},
	})
}

// getJSON performs a GET through the circuit breaker and returns the raw
// response body. Non-2xx statuses are mapped to the typed error taxonomy:
// 404 to *weather.NotFoundError, everything else to *weather.ProviderError
// carrying the status and the provider's error message. A 2xx response with
// an empty or null body yields a nil slice.
func getJSON(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, u, query string) ([]byte, error) {
	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, &weather.NotFoundError{Query: query}
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return nil, &weather.ProviderError{
				StatusCode: resp.StatusCode,
				Message:    errorMessage(resp.StatusCode, body),
			}
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	body := result.([]byte)
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	return body, nil
}

// errorMessage extracts the message from an OpenWeatherMap error body
// ({"cod": ..., "message": ...}; cod may be a string or a number).
func errorMessage(status int, body []byte) string {
	var payload struct {
		Cod     json.RawMessage `json:"cod"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
