package httpapi

import "github.com/Luchito30/ShopCart/internal/notify"

// collector is the per-request Notifier: notifications raised by the core
// are gathered and returned in the response envelope, and the confirm
// decision is whatever the client sent with the request.
type collector struct {
	confirm bool
	notes   []notify.Notification
}

func (c *collector) Notify(n notify.Notification) {
	c.notes = append(c.notes, n)
}

func (c *collector) Confirm(n notify.Notification) bool {
	c.notes = append(c.notes, n)
	return c.confirm
}
