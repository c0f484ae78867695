package checkout

import (
	"testing"

	"github.com/Luchito30/ShopCart/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name@sub.domain.org", true},
		{"bad", false},
		{"@b.com", false},
		{"a@", false},
		{"a@b", false}, // no dot in domain
		{"a b@c.com", false},
		{"a@b c.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestSecurityCodeLength(t *testing.T) {
	assert.Equal(t, 4, SecurityCodeLength(domain.NetworkAmex))
	assert.Equal(t, 3, SecurityCodeLength(domain.NetworkVisa))
	assert.Equal(t, 3, SecurityCodeLength(domain.NetworkMastercard))
	assert.Equal(t, 3, SecurityCodeLength(domain.NetworkUnknown))
}

func cashDetails(email, street, postal, city string) domain.PaymentDetails {
	return domain.PaymentDetails{
		Method: domain.PaymentCash,
		Cash: &domain.CashDetails{
			Email:      email,
			Street:     street,
			PostalCode: postal,
			City:       city,
		},
	}
}

func TestComplete_Cash(t *testing.T) {
	ok, _ := Complete(cashDetails("a@b.com", "Main", "1000", "X"))
	assert.True(t, ok)

	tests := []struct {
		name    string
		details domain.PaymentDetails
	}{
		{"invalid email", cashDetails("bad", "Main", "1000", "X")},
		{"missing street", cashDetails("a@b.com", "", "1000", "X")},
		{"missing postal code", cashDetails("a@b.com", "Main", "", "X")},
		{"missing city", cashDetails("a@b.com", "Main", "1000", "")},
		{"no payload", domain.PaymentDetails{Method: domain.PaymentCash}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Complete(tt.details)
			assert.False(t, ok)
			assert.NotEmpty(t, reason)
		})
	}
}

func validCard(network domain.CardNetwork, number, code string) domain.PaymentDetails {
	return domain.PaymentDetails{
		Method: domain.PaymentCard,
		Card: &domain.CardDetails{
			Network:      network,
			CardHolder:   "John Doe",
			CardNumber:   number,
			ExpiryDate:   "12/30",
			SecurityCode: code,
			Street:       "Main",
			PostalCode:   "1000",
			City:         "X",
		},
	}
}

func TestComplete_Card(t *testing.T) {
	visa := "4242 4242 4242 4242" // 19 chars formatted
	amex := "3714 496353 98431"   // 17 chars formatted

	ok, reason := Complete(validCard(domain.NetworkVisa, visa, "123"))
	assert.True(t, ok, reason)

	ok, reason = Complete(validCard(domain.NetworkAmex, amex, "1234"))
	assert.True(t, ok, reason)

	broken := []struct {
		name   string
		mutate func(*domain.CardDetails)
	}{
		{"missing holder", func(c *domain.CardDetails) { c.CardHolder = "" }},
		{"short number", func(c *domain.CardDetails) { c.CardNumber = "4242 4242" }},
		{"short expiry", func(c *domain.CardDetails) { c.ExpiryDate = "12/3" }},
		{"wrong code length", func(c *domain.CardDetails) { c.SecurityCode = "12" }},
		{"missing street", func(c *domain.CardDetails) { c.Street = "" }},
		{"missing postal code", func(c *domain.CardDetails) { c.PostalCode = "" }},
		{"missing city", func(c *domain.CardDetails) { c.City = "" }},
	}

	for _, tt := range broken {
		t.Run(tt.name, func(t *testing.T) {
			d := validCard(domain.NetworkVisa, visa, "123")
			tt.mutate(d.Card)
			ok, reason := Complete(d)
			assert.False(t, ok)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestComplete_AmexCodeLengthDiffers(t *testing.T) {
	amex := "3714 496353 98431"

	// A 3-digit code is enough for visa but not for amex.
	ok, _ := Complete(validCard(domain.NetworkAmex, amex, "123"))
	assert.False(t, ok)

	ok, _ = Complete(validCard(domain.NetworkAmex, amex, "1234"))
	assert.True(t, ok)
}

func TestComplete_UnknownMethod(t *testing.T) {
	ok, reason := Complete(domain.PaymentDetails{Method: "barter"})
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}
