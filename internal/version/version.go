// Package version holds the release version reported in the MCP
// implementation info and the outbound User-Agent.
package version

const Version = "0.1.0"
