package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var nepaliPhoneRe = regexp.MustCompile(`^\+977\d{10}$`)

// IsNepaliPhone validates the canonical subscriber phone format:
// the +977 country code followed by exactly ten digits.
func IsNepaliPhone(fl validator.FieldLevel) bool {
	return nepaliPhoneRe.MatchString(fl.Field().String())
}
