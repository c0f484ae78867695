package domain

// PaymentMethod selects which set of payment fields a checkout collects.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// String representation (for logging)
func (m PaymentMethod) String() string {
	return string(m)
}

// CardNetwork is the card scheme, which determines formatting and
// field-length rules.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkUnknown    CardNetwork = "unknown"
)

// CashDetails are the fields required to pay on delivery.
type CashDetails struct {
	Email      string `json:"email"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// CardDetails are the fields required to pay by card. CardNumber holds the
// formatted display string (digits grouped with spaces), not raw digits.
type CardDetails struct {
	Network      CardNetwork `json:"network"`
	CardHolder   string      `json:"card_holder"`
	CardNumber   string      `json:"card_number"`
	ExpiryDate   string      `json:"expiry_date"`
	SecurityCode string      `json:"security_code"`
	Street       string      `json:"street"`
	PostalCode   string      `json:"postal_code"`
	City         string      `json:"city"`
}

// PaymentDetails is a tagged variant: exactly one of Cash or Card is set,
// matching Method. Validation switches on the tag and enumerates each field
// explicitly, so a renamed field breaks at compile time instead of silently.
type PaymentDetails struct {
	Method PaymentMethod `json:"method"`
	Cash   *CashDetails  `json:"cash,omitempty"`
	Card   *CardDetails  `json:"card,omitempty"`
}
