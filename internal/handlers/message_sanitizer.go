package handlers

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Message length limits
const (
	MaxMessageLength = 2000
	MinMessageLength = 1
)

// Dangerous patterns for XSS prevention
var (
	scriptTagRegex = regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`)
	onEventRegex   = regexp.MustCompile(`(?i)\s+on\w+\s*=`)
)

// SanitizeMessageBody cleans and validates a message body.
// Returns the sanitized body or an error if validation fails.
func SanitizeMessageBody(body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", errors.New("message cannot be empty")
	}

	if utf8.RuneCountInString(body) > MaxMessageLength {
		return "", errors.New("message exceeds maximum length")
	}

	// Remove script tags
	body = scriptTagRegex.ReplaceAllString(body, "")

	// Remove inline event handlers (onclick, onload, etc.)
	body = onEventRegex.ReplaceAllString(body, " ")

	// Escape HTML entities to prevent XSS
	body = html.EscapeString(body)

	body = strings.TrimSpace(body)

	if body == "" {
		return "", errors.New("message cannot be empty after sanitization")
	}

	return body, nil
}
