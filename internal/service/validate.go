package service

import (
	"strings"
	"unicode/utf8"

	"github.com/carson-networks/ledger-server/internal/apperr"
)

// requireText trims value and checks it is non-empty and at most maxLen
// characters long.
func requireText(field, value string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperr.Invalid(field, "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", apperr.Invalid(field, "must be at most %d characters", maxLen)
	}
	return trimmed, nil
}
