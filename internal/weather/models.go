package weather

import (
	"fmt"
	"strings"
	"time"
)

// LocationQuery is a location that has passed validation. Construct through
// NewLocationQuery; the zero value is not usable.
type LocationQuery struct {
	city        string
	countryCode string
}

// NewLocationQuery validates the raw inputs and returns the normalized
// location. City is trimmed, the country code upper-cased; an empty country
// code means "not provided".
func NewLocationQuery(city, countryCode string) (LocationQuery, error) {
	if err := Validate(city, countryCode); err != nil {
		return LocationQuery{}, err
	}
	return LocationQuery{
		city:        strings.TrimSpace(city),
		countryCode: strings.ToUpper(strings.TrimSpace(countryCode)),
	}, nil
}

func (l LocationQuery) City() string { return l.city }

func (l LocationQuery) CountryCode() string { return l.countryCode }

// String yields the composite provider query: "London" or "London,UK".
func (l LocationQuery) String() string {
	if l.countryCode == "" {
		return l.city
	}
	return fmt.Sprintf("%s,%s", l.city, l.countryCode)
}

// WeatherSnapshot is one point-in-time weather reading for a city.
// Rain3h/Snow3h are nil when the provider did not report them, which is
// distinct from a reported volume of zero.
type WeatherSnapshot struct {
	City          string
	Temperature   float64  // °C
	Humidity      float64  // %
	Pressure      float64  // hPa
	WindSpeed     float64  // m/s
	WindDirection float64  // degrees
	Cloudiness    float64  // %
	Visibility    float64  // m
	Rain3h        *float64 // mm over the last 3 hours
	Snow3h        *float64 // mm over the last 3 hours
	Sunrise       time.Time
	Sunset        time.Time
	ConditionID   int
	Condition     string
}

// ForecastEntry is one forecast data point. It carries the snapshot
// measurements plus the time the forecast is for; forecast entries have no
// sunrise/sunset.
type ForecastEntry struct {
	Timestamp     time.Time
	Temperature   float64
	Humidity      float64
	Pressure      float64
	WindSpeed     float64
	WindDirection float64
	Cloudiness    float64
	Visibility    float64
	Rain3h        *float64
	Snow3h        *float64
	ConditionID   int
	Condition     string
}

// ForecastSeries is an ordered forecast for a city. Entries keep the
// provider's chronological order and must not be resorted.
type ForecastSeries struct {
	City    string
	Entries []ForecastEntry
}

// Alert is a single active weather alert.
type Alert struct {
	Start       time.Time
	End         time.Time
	Event       string
	Description string
	Sender      string
}

// AlertSet is the ordered list of active alerts for a location. A present
// but empty set means "no active alerts", not a missing response.
type AlertSet struct {
	Alerts []Alert
}

// Response is the closed set of payload shapes a provider call can yield.
// The formatter matches it exhaustively.
type Response interface {
	weatherResponse()
}

func (*WeatherSnapshot) weatherResponse() {}
func (*ForecastSeries) weatherResponse()  {}
func (*AlertSet) weatherResponse()        {}
