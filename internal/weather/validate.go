package weather

import (
	"strings"
	"unicode"
)

// Validate checks the raw city and country code against the input rules.
// Rules are evaluated in order and the first violation wins, so callers can
// rely on which message is produced for multi-violation input. An empty
// countryCode means "not provided" and is accepted.
func Validate(city, countryCode string) error {
	if strings.TrimSpace(city) == "" {
		return &InputError{
			Field:   "city",
			Message: "City name cannot be empty or whitespace.",
		}
	}
	for _, r := range city {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' {
			return &InputError{
				Field:   "city",
				Message: "City name can only contain letters, spaces, and hyphens.",
			}
		}
	}
	if countryCode != "" {
		code := strings.TrimSpace(countryCode)
		if code == "" {
			return &InputError{
				Field:   "countryCode",
				Message: "Country code cannot be empty or whitespace.",
			}
		}
		if !isTwoLetterCode(code) {
			return &InputError{
				Field:   "countryCode",
				Message: "Country code must be a 2-letter uppercase code (e.g., 'US', 'UK').",
			}
		}
	}
	return nil
}

func isTwoLetterCode(code string) bool {
	runes := []rune(code)
	if len(runes) != 2 {
		return false
	}
	return unicode.IsLetter(runes[0]) && unicode.IsLetter(runes[1])
}
