package mcpapi

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ASolomatin/weather-mcp/internal/weather"
)

// LocationInput is the argument shape shared by all three weather tools.
type LocationInput struct {
	City        string `json:"city" jsonschema:"name of the city to look up"`
	CountryCode string `json:"countryCode,omitempty" jsonschema:"optional 2-letter country code (e.g. 'US', 'UK')"`
}

// RegisterTools wires the weather tool handlers into the MCP server.
func RegisterTools(server *mcp.Server, service *weather.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getCurrentWeather",
		Description: "Get the current weather conditions for a city.",
	}, textHandler(service.CurrentWeather))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getWeatherForecast",
		Description: "Get the weather forecast for a city.",
	}, textHandler(service.Forecast))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getWeatherAlerts",
		Description: "Get the active weather alerts for a city.",
	}, textHandler(service.Alerts))
}

// textHandler adapts a service operation to the SDK's typed tool handler.
// Operations always yield user-facing text, including for failures, so the
// handler never reports a protocol-level error.
func textHandler(op func(ctx context.Context, city, countryCode string) string) mcp.ToolHandlerFor[LocationInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LocationInput) (*mcp.CallToolResult, any, error) {
		text := op(ctx, in.City, in.CountryCode)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}
