package weather

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func sampleSnapshot() *WeatherSnapshot {
	zone := time.FixedZone("", 0)
	return &WeatherSnapshot{
		City:          "London",
		Temperature:   20.5,
		Humidity:      65,
		Pressure:      1013,
		WindSpeed:     4.1,
		WindDirection: 250,
		Cloudiness:    75,
		Visibility:    10000,
		Rain3h:        floatPtr(2.5),
		Sunrise:       time.Date(2025, 6, 1, 4, 45, 12, 0, zone),
		Sunset:        time.Date(2025, 6, 1, 21, 8, 30, 0, zone),
		ConditionID:   500,
		Condition:     "light rain",
	}
}

func TestFormatSnapshot(t *testing.T) {
	text := Format(sampleSnapshot())

	assert.Contains(t, text, "Current weather in London:")
	assert.Contains(t, text, "Temperature: 20.5°C")
	assert.Contains(t, text, "Humidity: 65%")
	assert.Contains(t, text, "Pressure: 1013 hPa")
	assert.Contains(t, text, "Wind Speed: 4.1 m/s")
	assert.Contains(t, text, "Wind Direction: 250°")
	assert.Contains(t, text, "Cloudiness: 75%")
	assert.Contains(t, text, "Visibility: 10000 m")
	assert.Contains(t, text, "Rain: 2.5 mm (last 3 hours)")
	assert.NotContains(t, text, "Snow:")
	assert.Contains(t, text, "Sunrise: 04:45:12")
	assert.Contains(t, text, "Sunset: 21:08:30")
	assert.Contains(t, text, "Condition: 500")
	assert.Contains(t, text, "Description: light rain")
}

func TestFormatSnapshotOmitsAbsentPrecipitation(t *testing.T) {
	snap := sampleSnapshot()
	snap.Rain3h = nil

	text := Format(snap)
	assert.NotContains(t, text, "Rain:")
	assert.NotContains(t, text, "Snow:")
}

func TestFormatSnapshotZeroVolumeStillShown(t *testing.T) {
	snap := sampleSnapshot()
	snap.Rain3h = floatPtr(0)
	snap.Snow3h = floatPtr(0)

	text := Format(snap)
	assert.Contains(t, text, "Rain: 0 mm (last 3 hours)")
	assert.Contains(t, text, "Snow: 0 mm (last 3 hours)")
}

func TestFormatForecast(t *testing.T) {
	zone := time.FixedZone("", 3600)
	series := &ForecastSeries{
		City: "Berlin",
		Entries: []ForecastEntry{
			{
				Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, zone),
				Temperature:   18,
				Humidity:      60,
				Pressure:      1015,
				WindSpeed:     3.2,
				WindDirection: 180,
				Cloudiness:    40,
				Visibility:    10000,
				ConditionID:   802,
				Condition:     "scattered clouds",
			},
			{
				Timestamp:     time.Date(2025, 6, 1, 15, 0, 0, 0, zone),
				Temperature:   21.3,
				Humidity:      55,
				Pressure:      1014,
				WindSpeed:     4,
				WindDirection: 200,
				Cloudiness:    20,
				Visibility:    10000,
				Rain3h:        floatPtr(1.2),
				ConditionID:   500,
				Condition:     "light rain",
			},
		},
	}

	text := Format(series)
	require.True(t, strings.HasPrefix(text, "Weather forecast for Berlin:"))
	assert.Equal(t, 2, strings.Count(text, strings.Repeat("-", 40)))
	assert.Contains(t, text, "Forecast time: 2025-06-01 12:00:00")
	assert.Contains(t, text, "Forecast time: 2025-06-01 15:00:00")
	assert.Contains(t, text, "Temperature: 21.3°C")
	assert.Contains(t, text, "Rain: 1.2 mm (last 3 hours)")
	assert.NotContains(t, text, "Sunrise:")
	assert.NotContains(t, text, "Sunset:")

	// Provider order is kept: the noon entry renders before the afternoon one.
	assert.Less(t,
		strings.Index(text, "Forecast time: 2025-06-01 12:00:00"),
		strings.Index(text, "Forecast time: 2025-06-01 15:00:00"),
	)
}

func TestFormatAlerts(t *testing.T) {
	zone := time.FixedZone("", -4*3600)
	set := &AlertSet{
		Alerts: []Alert{
			{
				Start:       time.Date(2025, 6, 1, 9, 0, 0, 0, zone),
				End:         time.Date(2025, 6, 1, 18, 0, 0, 0, zone),
				Event:       "Severe Thunderstorm Warning",
				Description: "Damaging winds and large hail expected.",
				Sender:      "NWS Boston",
			},
		},
	}

	text := Format(set)
	require.True(t, strings.HasPrefix(text, "Weather Alerts:"))
	assert.Contains(t, text, "Start: 2025-06-01 09:00:00")
	assert.Contains(t, text, "End: 2025-06-01 18:00:00")
	assert.Contains(t, text, "Event: Severe Thunderstorm Warning")
	assert.Contains(t, text, "Description: Damaging winds and large hail expected.")
	assert.Contains(t, text, "Sender: NWS Boston")
}

func TestFormatEmptyAlertSet(t *testing.T) {
	assert.Equal(t, "Weather Alerts:", Format(&AlertSet{}))
}

func TestFormatIsIdempotent(t *testing.T) {
	snap := sampleSnapshot()
	assert.Equal(t, Format(snap), Format(snap))

	set := &AlertSet{Alerts: []Alert{{Event: "Flood Watch"}}}
	assert.Equal(t, Format(set), Format(set))
}

type bogusResponse struct{}

func (bogusResponse) weatherResponse() {}

func TestFormatPanicsOnUnknownShape(t *testing.T) {
	assert.Panics(t, func() {
		Format(bogusResponse{})
	})
}
