package checkout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fjod/go_storefront/internal/domain"
)

// FieldErrors maps a shipping form field to its violation message.
// An empty map means the form is valid.
type FieldErrors map[string]string

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateShipping checks the checkout form. Notes are optional and
// unconstrained; every other field has a minimum length.
func ValidateShipping(info domain.ShippingInfo) FieldErrors {
	errs := FieldErrors{}

	requireLen(errs, "first_name", info.FirstName, 2, "first name must have at least 2 characters")
	requireLen(errs, "last_name", info.LastName, 2, "last name must have at least 2 characters")
	requireLen(errs, "phone", info.Phone, 8, "phone must have at least 8 characters")
	requireLen(errs, "address", info.Address, 5, "address must have at least 5 characters")
	requireLen(errs, "city", info.City, 2, "city must have at least 2 characters")
	requireLen(errs, "zip_code", info.ZipCode, 4, "postal code must have at least 4 characters")

	if !emailRegexp.MatchString(strings.TrimSpace(info.Email)) {
		errs["email"] = "enter a valid email address"
	}

	return errs
}

func requireLen(errs FieldErrors, field, value string, min int, message string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		errs[field] = message
	}
}
