package domain

import "time"

// Order is the output of a successful checkout: a snapshot of the cart plus
// the payment details that paid for it. Orders are handed back to the caller
// and not persisted anywhere.
type Order struct {
	ID        string         `json:"id"`
	Method    PaymentMethod  `json:"method"`
	Details   PaymentDetails `json:"details"`
	Lines     []CartLine     `json:"lines"`
	Total     float64        `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
}
