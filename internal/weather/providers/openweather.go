package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ASolomatin/weather-mcp/internal/weather"
)

const (
	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"
	geocodePath  = "/geo/1.0/direct"
	oneCallPath  = "/data/3.0/onecall"
)

// OpenWeatherClient implements the weather.Provider interface for
// OpenWeatherMap. It is safe for concurrent use.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(client *http.Client, apiKey, baseURL string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

// QueryCurrent fetches the current conditions for a composite city query.
func (c *OpenWeatherClient) QueryCurrent(ctx context.Context, query string) (*weather.WeatherSnapshot, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("units", "metric")

	body, err := c.get(ctx, currentPath, values, query)
	if err != nil || body == nil {
		return nil, err
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
			Pressure float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   float64 `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Visibility float64         `json:"visibility"`
		Rain       *precipVolume   `json:"rain"`
		Snow       *precipVolume   `json:"snow"`
		Sys        struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
		Timezone int              `json:"timezone"`
		Weather  []conditionEntry `json:"weather"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode current weather response: %w", err)
	}

	zone := time.FixedZone("", payload.Timezone)
	cond := firstCondition(payload.Weather)

	return &weather.WeatherSnapshot{
		City:          payload.Name,
		Temperature:   payload.Main.Temp,
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Cloudiness:    payload.Clouds.All,
		Visibility:    payload.Visibility,
		Rain3h:        payload.Rain.volume(),
		Snow3h:        payload.Snow.volume(),
		Sunrise:       time.Unix(payload.Sys.Sunrise, 0).In(zone),
		Sunset:        time.Unix(payload.Sys.Sunset, 0).In(zone),
		ConditionID:   cond.ID,
		Condition:     cond.Description,
	}, nil
}

// QueryForecast fetches up to maxEntries three-hour forecast entries,
// keeping the provider's chronological order.
func (c *OpenWeatherClient) QueryForecast(ctx context.Context, query string, maxEntries int) (*weather.ForecastSeries, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("units", "metric")
	values.Set("cnt", strconv.Itoa(maxEntries))

	body, err := c.get(ctx, forecastPath, values, query)
	if err != nil || body == nil {
		return nil, err
	}

	var payload struct {
		City struct {
			Name     string `json:"name"`
			Timezone int    `json:"timezone"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				Humidity float64 `json:"humidity"`
				Pressure float64 `json:"pressure"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
				Deg   float64 `json:"deg"`
			} `json:"wind"`
			Clouds struct {
				All float64 `json:"all"`
			} `json:"clouds"`
			Visibility float64          `json:"visibility"`
			Rain       *precipVolume    `json:"rain"`
			Snow       *precipVolume    `json:"snow"`
			Weather    []conditionEntry `json:"weather"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	zone := time.FixedZone("", payload.City.Timezone)
	series := &weather.ForecastSeries{
		City:    payload.City.Name,
		Entries: make([]weather.ForecastEntry, 0, len(payload.List)),
	}
	for _, item := range payload.List {
		cond := firstCondition(item.Weather)
		series.Entries = append(series.Entries, weather.ForecastEntry{
			Timestamp:     time.Unix(item.Dt, 0).In(zone),
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Pressure:      item.Main.Pressure,
			WindSpeed:     item.Wind.Speed,
			WindDirection: item.Wind.Deg,
			Cloudiness:    item.Clouds.All,
			Visibility:    item.Visibility,
			Rain3h:        item.Rain.volume(),
			Snow3h:        item.Snow.volume(),
			ConditionID:   cond.ID,
			Condition:     cond.Description,
		})
	}
	return series, nil
}

// QueryAlerts resolves the query to coordinates through the provider's own
// geocoding endpoint, then fetches the combined endpoint with the given
// facets excluded. An unknown city geocodes to an empty list, which maps to
// *weather.NotFoundError.
func (c *OpenWeatherClient) QueryAlerts(ctx context.Context, query string, exclude []string) (*weather.AlertSet, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", "1")

	body, err := c.get(ctx, geocodePath, values, query)
	if err != nil || body == nil {
		return nil, err
	}

	var places []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}
	if len(places) == 0 {
		return nil, &weather.NotFoundError{Query: query}
	}

	values = url.Values{}
	values.Set("lat", strconv.FormatFloat(places[0].Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(places[0].Lon, 'f', -1, 64))
	values.Set("units", "metric")
	values.Set("exclude", strings.Join(exclude, ","))

	body, err = c.get(ctx, oneCallPath, values, query)
	if err != nil || body == nil {
		return nil, err
	}

	var payload struct {
		TimezoneOffset int `json:"timezone_offset"`
		Alerts         []struct {
			SenderName  string `json:"sender_name"`
			Event       string `json:"event"`
			Start       int64  `json:"start"`
			End         int64  `json:"end"`
			Description string `json:"description"`
		} `json:"alerts"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode alerts response: %w", err)
	}

	zone := time.FixedZone("", payload.TimezoneOffset)
	set := &weather.AlertSet{Alerts: make([]weather.Alert, 0, len(payload.Alerts))}
	for _, a := range payload.Alerts {
		set.Alerts = append(set.Alerts, weather.Alert{
			Start:       time.Unix(a.Start, 0).In(zone),
			End:         time.Unix(a.End, 0).In(zone),
			Event:       a.Event,
			Description: a.Description,
			Sender:      a.SenderName,
		})
	}
	return set, nil
}

func (c *OpenWeatherClient) get(ctx context.Context, path string, values url.Values, query string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}
	values.Set("appid", c.apiKey)
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	return getJSON(ctx, c.client, c.circuit, u, query)
}

// precipVolume is OpenWeatherMap's rain/snow object. The provider may send
// an empty object for trace precipitation, which counts as a reported
// volume of zero.
type precipVolume struct {
	ThreeH *float64 `json:"3h"`
	OneH   *float64 `json:"1h"`
}

func (p *precipVolume) volume() *float64 {
	if p == nil {
		return nil
	}
	v := 0.0
	switch {
	case p.ThreeH != nil:
		v = *p.ThreeH
	case p.OneH != nil:
		v = *p.OneH
	}
	return &v
}

type conditionEntry struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

func firstCondition(entries []conditionEntry) conditionEntry {
	if len(entries) == 0 {
		return conditionEntry{}
	}
	return entries[0]
}
