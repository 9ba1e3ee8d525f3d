package weather

import "fmt"

// InputError reports a location argument that failed validation. Message is
// the exact text surfaced to the caller.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NotFoundError means the provider does not know the queried location.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location %q not found", e.Query)
}

// ProviderError means the provider was reachable but rejected or failed the
// request with an HTTP status.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}
