// Package errors redacts credentials from strings and errors before they
// reach diagnostic logs. Raw system log lines often carry tokens and
// passwords.
package errors

import (
	"regexp"
)

// Credential patterns to redact
var credentialPatterns = []*regexp.Regexp{
	// Bearer tokens in headers
	regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_.-]+`),
	// Authorization headers (matches "authorization: value" or "authorization value")
	regexp.MustCompile(`(?i)authorization[:\s]+[^\s]+`),
	// API key in URLs or key=value pairs
	regexp.MustCompile(`(?i)api[_-]?key[=:][^\s&"']+`),
	// Passwords in key=value pairs
	regexp.MustCompile(`(?i)(password|passwd|pwd)[=:]\s*[^\s&"']+`),
	// Tokens and secrets in query strings
	regexp.MustCompile(`(?i)(token|secret)=[^\s&"']+`),
	// AWS access key IDs
	regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
}

const redactedPlaceholder = "[REDACTED]"

// SanitizeError returns err with any credentials in its message redacted.
// The original error stays reachable through errors.Unwrap.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}

	sanitized := SanitizeString(err.Error())
	if sanitized == err.Error() {
		// No changes needed, return original error to preserve error chain
		return err
	}

	return &sanitizedError{
		original:  err,
		sanitized: sanitized,
	}
}

// SanitizeString redacts credential patterns from a string.
func SanitizeString(s string) string {
	result := s
	for _, pattern := range credentialPatterns {
		result = pattern.ReplaceAllString(result, redactedPlaceholder)
	}
	return result
}

// ContainsCredentials reports whether s matches any credential pattern.
func ContainsCredentials(s string) bool {
	for _, pattern := range credentialPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

type sanitizedError struct {
	original  error
	sanitized string
}

func (e *sanitizedError) Error() string {
	return e.sanitized
}

func (e *sanitizedError) Unwrap() error {
	return e.original
}
