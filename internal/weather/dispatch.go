package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ProviderCall performs one provider lookup for an already-composed query.
// It is the only blocking step of a dispatch.
type ProviderCall func(ctx context.Context, query string) (Response, error)

// FormatFunc renders a successful payload as text.
type FormatFunc func(Response) string

// Dispatcher runs the weather-query pipeline: validate the location, compose
// the provider query, call the provider, classify the outcome, and render
// text. Every path yields a string; no error escapes Run.
type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Run executes one lookup. The returned string is either the formatted
// payload or the user-facing text for the failure that occurred.
func (d *Dispatcher) Run(ctx context.Context, city, countryCode string, call ProviderCall, format FormatFunc) string {
	loc, err := NewLocationQuery(city, countryCode)
	if err != nil {
		d.logger.Warn("rejected location input", "error", err.Error())
		return err.Error()
	}

	d.logger.Info("retrieving weather data", "city", loc.City(), "countryCode", loc.CountryCode())

	payload, err := call(ctx, loc.String())
	if err != nil {
		return d.failureText(loc.City(), err)
	}
	if payload == nil {
		d.logger.Error("provider returned no payload", "city", loc.City())
		return fmt.Sprintf("Error retrieving weather data for %s.", loc.City())
	}

	d.logger.Info("successfully retrieved weather data", "city", loc.City())
	return format(payload)
}

func (d *Dispatcher) failureText(city string, err error) string {
	var notFound *NotFoundError
	var provErr *ProviderError
	switch {
	case errors.As(err, &notFound):
		d.logger.Warn("city not found", "city", city)
		return fmt.Sprintf("City '%s' not found. Please check the name and try again.", city)
	case errors.As(err, &provErr):
		d.logger.Error("provider rejected request", "city", city, "status", provErr.StatusCode, "error", provErr.Message)
		return fmt.Sprintf("Invalid request for city '%s'. Response code: %d Error details: %s", city, provErr.StatusCode, provErr.Message)
	default:
		d.logger.Error("weather lookup failed", "city", city, "error", err)
		return fmt.Sprintf("Error retrieving weather data for %s. Error details: %s", city, err.Error())
	}
}
