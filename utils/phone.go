package utils

import (
	"fmt"
	"regexp"
	"strings"

	"community_portal/internal/apperr"
)

const countryCode = "+977"

var (
	localPhoneRe     = regexp.MustCompile(`^\d{10}$`)
	canonicalPhoneRe = regexp.MustCompile(`^\+977\d{10}$`)
)

// NormalizePhone converts a submitted phone number to the canonical stored
// form. A bare ten-digit local number gets the country code prepended; an
// already-prefixed number passes through. Anything else is a validation error.
func NormalizePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if localPhoneRe.MatchString(phone) {
		return countryCode + phone, nil
	}
	if canonicalPhoneRe.MatchString(phone) {
		return phone, nil
	}
	return "", fmt.Errorf("%w: phone must be %s followed by 10 digits", apperr.ErrValidation, countryCode)
}
