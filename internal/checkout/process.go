// Package checkout implements the short-lived state machine that turns a
// non-empty cart plus payment details into a completed order, and the
// validators that gate it.
package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/Luchito30/ShopCart/internal/card"
	"github.com/Luchito30/ShopCart/internal/cart"
	"github.com/Luchito30/ShopCart/internal/domain"
	"github.com/Luchito30/ShopCart/internal/notify"
	"github.com/google/uuid"
)

// State of a checkout process.
type State string

const (
	StateCollectingCash State = "COLLECTING_CASH"
	StateCollectingCard State = "COLLECTING_CARD"
	StateValidating     State = "VALIDATING"
	StateCompleted      State = "COMPLETED"
	StateCancelled      State = "CANCELLED"
)

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// String representation (for logging)
func (s State) String() string {
	return string(s)
}

// Input field names accepted by SetField.
const (
	FieldEmail        = "email"
	FieldCardHolder   = "card_holder"
	FieldCardNumber   = "card_number"
	FieldExpiryDate   = "expiry_date"
	FieldSecurityCode = "security_code"
	FieldStreet       = "street"
	FieldPostalCode   = "postal_code"
	FieldCity         = "city"
)

// Input length caps, mirroring the storefront form constraints.
const (
	maxEmailLen   = 50
	maxHolderLen  = 30
	maxAddressLen = 30
	maxCodeLen    = 4
	maxCardDigits = 16
	amexDigits    = 15
)

// Fields is a snapshot of the collected inputs, post-filtering, as the user
// would see them.
type Fields struct {
	Email        string             `json:"email"`
	CardHolder   string             `json:"card_holder"`
	CardNumber   string             `json:"card_number"`
	ExpiryDate   string             `json:"expiry_date"`
	SecurityCode string             `json:"security_code"`
	Network      domain.CardNetwork `json:"network"`
	Street       string             `json:"street"`
	PostalCode   string             `json:"postal_code"`
	City         string             `json:"city"`
}

// Process is one checkout attempt. It exists from a confirmed begin until
// Completed or Cancelled and is then discarded along with its fields.
type Process struct {
	mu     sync.Mutex
	state  State
	method domain.PaymentMethod
	fields Fields
	cart   *cart.Store
}

// Begin starts a checkout for a non-empty cart. The user is asked to confirm
// (finalize or keep shopping); a declined confirmation returns (nil, nil):
// no process, no error, and the cart stays as it is.
func Begin(c *cart.Store, n notify.Notifier) (*Process, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	ok := n.Confirm(notify.Notification{
		Kind:    notify.Confirm,
		Title:   "Finalize purchase?",
		Message: "Finalize the purchase, or keep adding products to the cart?",
	})
	if !ok {
		return nil, nil
	}

	return &Process{
		state:  StateCollectingCash,
		method: domain.PaymentCash,
		fields: Fields{Network: domain.NetworkUnknown},
		cart:   c,
	}, nil
}

// State returns the current machine state.
func (p *Process) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Method returns the currently selected payment method.
func (p *Process) Method() domain.PaymentMethod {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.method
}

// Fields returns a snapshot of the collected inputs.
func (p *Process) Fields() Fields {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fields
}

// SetMethod switches the payment method. Switching resets the card-specific
// fields so stale card data cannot leak across methods; the address fields
// (street, postal code, city) are method-independent and survive.
func (p *Process) SetMethod(m domain.PaymentMethod) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.IsTerminal() {
		return ErrCheckoutFinished
	}
	if m == p.method {
		return nil
	}

	p.fields.CardHolder = ""
	p.fields.CardNumber = ""
	p.fields.ExpiryDate = ""
	p.fields.SecurityCode = ""
	p.fields.Network = domain.NetworkUnknown

	p.method = m
	if m == domain.PaymentCard {
		p.state = StateCollectingCard
	} else {
		p.state = StateCollectingCash
	}
	return nil
}

// SetField stores one input value after running it through its filter. The
// card number is reformatted from the complete filtered input on every call,
// and the network is re-detected from it.
func (p *Process) SetField(name, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.IsTerminal() {
		return ErrCheckoutFinished
	}

	switch name {
	case FieldEmail:
		p.fields.Email = truncate(value, maxEmailLen)
	case FieldCardHolder:
		p.fields.CardHolder = truncate(card.FilterHolder(value), maxHolderLen)
	case FieldCardNumber:
		digits := card.FilterDigits(value)
		network := card.DetectNetwork(digits)
		digits = truncate(digits, cardDigitLimit(network))
		p.fields.CardNumber = card.FormatForDisplay(digits, network)
		p.fields.Network = network
	case FieldExpiryDate:
		p.fields.ExpiryDate = card.FormatExpiry(value)
	case FieldSecurityCode:
		p.fields.SecurityCode = truncate(card.FilterDigits(value), maxCodeLen)
	case FieldStreet:
		p.fields.Street = truncate(value, maxAddressLen)
	case FieldPostalCode:
		p.fields.PostalCode = card.FilterPostalCode(value)
	case FieldCity:
		p.fields.City = truncate(value, maxAddressLen)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func cardDigitLimit(network domain.CardNetwork) int {
	if network == domain.NetworkAmex {
		return amexDigits
	}
	return maxCardDigits
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Submit validates the collected fields for the current method. On failure
// the process returns to its collecting state with a validation-error
// notification and the cart untouched. On success it builds the order,
// clears the cart and completes. Notifications go to the caller's notifier,
// since each submit belongs to a different interaction.
func (p *Process) Submit(n notify.Notifier) (*domain.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.IsTerminal() {
		return nil, ErrCheckoutFinished
	}

	collecting := p.state
	p.state = StateValidating

	details := p.details()
	ok, reason := Complete(details)
	if !ok {
		p.state = collecting
		n.Notify(notify.Notification{
			Kind:    notify.Error,
			Title:   "Validation Error",
			Message: reason,
		})
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, reason)
	}

	order := &domain.Order{
		ID:        uuid.New().String(),
		Method:    p.method,
		Details:   details,
		Lines:     p.cart.Lines(),
		Total:     p.cart.Total(),
		CreatedAt: time.Now(),
	}

	p.cart.Clear()
	p.state = StateCompleted
	n.Notify(p.successNotification())
	return order, nil
}

// Cancel abandons the attempt. Allowed at any point before completion; the
// cart is left untouched.
func (p *Process) Cancel() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateCompleted {
		return ErrCheckoutFinished
	}
	p.state = StateCancelled
	return nil
}

func (p *Process) details() domain.PaymentDetails {
	if p.method == domain.PaymentCard {
		return domain.PaymentDetails{
			Method: domain.PaymentCard,
			Card: &domain.CardDetails{
				Network:      p.fields.Network,
				CardHolder:   p.fields.CardHolder,
				CardNumber:   p.fields.CardNumber,
				ExpiryDate:   p.fields.ExpiryDate,
				SecurityCode: p.fields.SecurityCode,
				Street:       p.fields.Street,
				PostalCode:   p.fields.PostalCode,
				City:         p.fields.City,
			},
		}
	}
	return domain.PaymentDetails{
		Method: domain.PaymentCash,
		Cash: &domain.CashDetails{
			Email:      p.fields.Email,
			Street:     p.fields.Street,
			PostalCode: p.fields.PostalCode,
			City:       p.fields.City,
		},
	}
}

func (p *Process) successNotification() notify.Notification {
	if p.method == domain.PaymentCard {
		return notify.Notification{
			Kind:    notify.Success,
			Title:   "Payment Approved",
			Message: "Your product will be delivered within 48 hours.",
		}
	}
	return notify.Notification{
		Kind:  notify.Success,
		Title: "Purchase Approved",
		Message: fmt.Sprintf(
			"A payment receipt will be sent to %s. You have 72 hours to pay; once the payment clears, your product will be shipped.",
			p.fields.Email,
		),
	}
}
