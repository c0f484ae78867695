package checkout

import (
	"regexp"

	"github.com/Luchito30/ShopCart/internal/card"
	"github.com/Luchito30/ShopCart/internal/domain"
)

// ExpiryLength is the exact length of a complete MM/YY expiry.
const ExpiryLength = 5

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the classic local@domain.tld shape: non-whitespace local
// part, non-whitespace domain with at least one dot.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// SecurityCodeLength is the required code length for a network: 4 digits for
// amex, 3 for everything else.
func SecurityCodeLength(network domain.CardNetwork) int {
	if network == domain.NetworkAmex {
		return 4
	}
	return 3
}

// Complete checks that every field required by the payment method is present
// and well formed. Each field is enumerated explicitly per variant; there is
// no dynamic field lookup. The card number is compared against the formatted
// display length for its network, matching exactly what the formatter emits.
func Complete(d domain.PaymentDetails) (bool, string) {
	switch d.Method {
	case domain.PaymentCash:
		if d.Cash == nil {
			return false, "please complete the payment and address information"
		}
		switch {
		case !ValidEmail(d.Cash.Email):
			return false, "please enter a valid email address"
		case d.Cash.Street == "", d.Cash.PostalCode == "", d.Cash.City == "":
			return false, "please complete the payment and address information"
		}
		return true, ""

	case domain.PaymentCard:
		if d.Card == nil {
			return false, "please complete the card and address information"
		}
		switch {
		case d.Card.CardHolder == "":
			return false, "please enter the card holder's name"
		case len(d.Card.CardNumber) != card.FormattedLength(d.Card.Network):
			return false, "please enter a complete card number"
		case len(d.Card.ExpiryDate) != ExpiryLength:
			return false, "please enter the expiry date as MM/YY"
		case len(d.Card.SecurityCode) != SecurityCodeLength(d.Card.Network):
			return false, "please enter the security code"
		case d.Card.Street == "", d.Card.PostalCode == "", d.Card.City == "":
			return false, "please complete the card and address information"
		}
		return true, ""
	}

	return false, "unknown payment method"
}
