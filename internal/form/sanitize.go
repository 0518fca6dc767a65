package form

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Sanitize normalizes raw user input before validation. It only trims and
// collapses whitespace (and lowercases the email) — no characters are added
// or escaped, so the length rules see exactly what the user typed. Output
// encoding belongs to whatever renders the submission.
func Sanitize(in Input) Input {
	return Input{
		Name:    sanitizeName(in.Name),
		Email:   sanitizeEmail(in.Email),
		Message: sanitizeMessage(in.Message),
	}
}

func sanitizeName(input string) string {
	// Collapse runs of whitespace
	name := multiSpace.ReplaceAllString(input, " ")

	return strings.TrimSpace(name)
}

func sanitizeEmail(input string) string {
	email := strings.ToLower(input)

	return strings.TrimSpace(email)
}

func sanitizeMessage(input string) string {
	// Keep line breaks intact, only trim the ends
	return strings.TrimSpace(input)
}
