package checkout

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "600123456",
		Address:   "Calle Mayor 10",
		City:      "Madrid",
		ZipCode:   "28001",
	}
}

func TestValidateShipping_Valid(t *testing.T) {
	assert.Empty(t, ValidateShipping(validShipping()))
}

func TestValidateShipping_NotesAreOptional(t *testing.T) {
	info := validShipping()
	info.Notes = ""
	assert.Empty(t, ValidateShipping(info))

	info.Notes = "leave at the front desk"
	assert.Empty(t, ValidateShipping(info))
}

func TestValidateShipping_MinLengths(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ShippingInfo)
		field  string
	}{
		{"short first name", func(i *domain.ShippingInfo) { i.FirstName = "A" }, "first_name"},
		{"short last name", func(i *domain.ShippingInfo) { i.LastName = "L" }, "last_name"},
		{"short phone", func(i *domain.ShippingInfo) { i.Phone = "1234567" }, "phone"},
		{"short address", func(i *domain.ShippingInfo) { i.Address = "c/ 1" }, "address"},
		{"short city", func(i *domain.ShippingInfo) { i.City = "M" }, "city"},
		{"short zip", func(i *domain.ShippingInfo) { i.ZipCode = "280" }, "zip_code"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := validShipping()
			tc.mutate(&info)

			errs := ValidateShipping(info)

			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestValidateShipping_WhitespaceDoesNotCount(t *testing.T) {
	info := validShipping()
	info.FirstName = "  A  "

	errs := ValidateShipping(info)

	assert.Contains(t, errs, "first_name")
}

func TestValidateShipping_Email(t *testing.T) {
	for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "@c.com", "a@.com "} {
		info := validShipping()
		info.Email = bad
		assert.Contains(t, ValidateShipping(info), "email", "email %q should be rejected", bad)
	}

	for _, good := range []string{"ada@example.com", "a.b+tag@sub.example.io"} {
		info := validShipping()
		info.Email = good
		assert.Empty(t, ValidateShipping(info), "email %q should be accepted", good)
	}
}

func TestValidateShipping_ReportsAllViolations(t *testing.T) {
	errs := ValidateShipping(domain.ShippingInfo{})
	assert.Len(t, errs, 7)
}
