package weather

import "context"

// maxForecastEntries is the most three-hour entries the provider's forecast
// endpoint serves per request; we always ask for all of them.
const maxForecastEntries = 40

// alertExclusions trims the combined endpoint's response down to the alerts
// facet.
var alertExclusions = []string{FacetCurrent, FacetMinutely, FacetHourly, FacetDaily}

// Service exposes the three weather tool operations, each binding the
// dispatcher to one provider call and the shared formatter.
type Service struct {
	provider   Provider
	dispatcher *Dispatcher
}

func NewService(provider Provider, dispatcher *Dispatcher) *Service {
	return &Service{
		provider:   provider,
		dispatcher: dispatcher,
	}
}

// CurrentWeather returns the formatted current conditions for the city, or
// the user-facing text for whatever went wrong.
func (s *Service) CurrentWeather(ctx context.Context, city, countryCode string) string {
	return s.dispatcher.Run(ctx, city, countryCode, func(ctx context.Context, query string) (Response, error) {
		snapshot, err := s.provider.QueryCurrent(ctx, query)
		if snapshot == nil || err != nil {
			return nil, err
		}
		return snapshot, nil
	}, Format)
}

// Forecast returns the formatted forecast for the city, requesting every
// entry the provider will serve.
func (s *Service) Forecast(ctx context.Context, city, countryCode string) string {
	return s.dispatcher.Run(ctx, city, countryCode, func(ctx context.Context, query string) (Response, error) {
		series, err := s.provider.QueryForecast(ctx, query, maxForecastEntries)
		if series == nil || err != nil {
			return nil, err
		}
		return series, nil
	}, Format)
}

// Alerts returns the formatted active weather alerts for the city.
func (s *Service) Alerts(ctx context.Context, city, countryCode string) string {
	return s.dispatcher.Run(ctx, city, countryCode, func(ctx context.Context, query string) (Response, error) {
		alerts, err := s.provider.QueryAlerts(ctx, query, alertExclusions)
		if alerts == nil || err != nil {
			return nil, err
		}
		return alerts, nil
	}, Format)
}
