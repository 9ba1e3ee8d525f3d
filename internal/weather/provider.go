package weather

import "context"

// Facets of the provider's combined endpoint that the alerts lookup excludes
// so only alert data is fetched.
const (
	FacetCurrent  = "current"
	FacetMinutely = "minutely"
	FacetHourly   = "hourly"
	FacetDaily    = "daily"
)

// Provider abstracts the external weather-data service. Implementations must
// be safe for concurrent use; lookups for different locations may run at the
// same time. Each call may fail with *NotFoundError, *ProviderError, or an
// untyped transport error, and may return a nil payload with a nil error
// when the provider answered with no usable body.
type Provider interface {
	QueryCurrent(ctx context.Context, query string) (*WeatherSnapshot, error)
	QueryForecast(ctx context.Context, query string, maxEntries int) (*ForecastSeries, error)
	QueryAlerts(ctx context.Context, query string, exclude []string) (*AlertSet, error)
}
