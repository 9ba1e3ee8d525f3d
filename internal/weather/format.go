package weather

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	timeOfDayLayout = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

var separator = strings.Repeat("-", 40)

// Format renders a provider payload as multi-line text. The set of response
// shapes is closed; an unknown dynamic type is a programming error and
// panics.
func Format(r Response) string {
	switch v := r.(type) {
	case *WeatherSnapshot:
		return formatSnapshot(v)
	case *ForecastSeries:
		return formatForecast(v)
	case *AlertSet:
		return formatAlerts(v)
	default:
		panic(fmt.Sprintf("weather: unsupported response type %T", r))
	}
}

func formatSnapshot(s *WeatherSnapshot) string {
	lines := []string{fmt.Sprintf("Current weather in %s:", s.City)}
	lines = append(lines, measurementLines(
		s.Temperature, s.Humidity, s.Pressure,
		s.WindSpeed, s.WindDirection, s.Cloudiness, s.Visibility,
		s.Rain3h, s.Snow3h,
	)...)
	lines = append(lines,
		fmt.Sprintf("Sunrise: %s", s.Sunrise.Format(timeOfDayLayout)),
		fmt.Sprintf("Sunset: %s", s.Sunset.Format(timeOfDayLayout)),
		fmt.Sprintf("Condition: %d", s.ConditionID),
		fmt.Sprintf("Description: %s", s.Condition),
	)
	return strings.Join(lines, "\n")
}

func formatForecast(f *ForecastSeries) string {
	lines := []string{fmt.Sprintf("Weather forecast for %s:", f.City)}
	for _, e := range f.Entries {
		lines = append(lines,
			separator,
			fmt.Sprintf("Forecast time: %s", e.Timestamp.Format(timestampLayout)),
		)
		lines = append(lines, measurementLines(
			e.Temperature, e.Humidity, e.Pressure,
			e.WindSpeed, e.WindDirection, e.Cloudiness, e.Visibility,
			e.Rain3h, e.Snow3h,
		)...)
		lines = append(lines,
			fmt.Sprintf("Condition: %d", e.ConditionID),
			fmt.Sprintf("Description: %s", e.Condition),
		)
	}
	return strings.Join(lines, "\n")
}

func formatAlerts(a *AlertSet) string {
	lines := []string{"Weather Alerts:"}
	for _, alert := range a.Alerts {
		lines = append(lines,
			separator,
			fmt.Sprintf("Start: %s", alert.Start.Format(timestampLayout)),
			fmt.Sprintf("End: %s", alert.End.Format(timestampLayout)),
			fmt.Sprintf("Event: %s", alert.Event),
			fmt.Sprintf("Description: %s", alert.Description),
			fmt.Sprintf("Sender: %s", alert.Sender),
		)
	}
	return strings.Join(lines, "\n")
}

func measurementLines(temp, humidity, pressure, windSpeed, windDir, clouds, visibility float64, rain, snow *float64) []string {
	lines := []string{
		fmt.Sprintf("Temperature: %s°C", num(temp)),
		fmt.Sprintf("Humidity: %s%%", num(humidity)),
		fmt.Sprintf("Pressure: %s hPa", num(pressure)),
		fmt.Sprintf("Wind Speed: %s m/s", num(windSpeed)),
		fmt.Sprintf("Wind Direction: %s°", num(windDir)),
		fmt.Sprintf("Cloudiness: %s%%", num(clouds)),
		fmt.Sprintf("Visibility: %s m", num(visibility)),
	}
	if rain != nil {
		lines = append(lines, fmt.Sprintf("Rain: %s mm (last 3 hours)", num(*rain)))
	}
	if snow != nil {
		lines = append(lines, fmt.Sprintf("Snow: %s mm (last 3 hours)", num(*snow)))
	}
	return lines
}

// num renders a measurement with only the digits it carries.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
