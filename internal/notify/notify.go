// Package notify is the contract between the core and whatever presents
// messages to the user. The core raises notifications and asks yes/no
// questions; how those are rendered is the presentation layer's problem.
package notify

// Kind of a notification.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
	Confirm Kind = "confirm"
)

// Notification is a message for the user.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notifier is implemented by the presentation boundary. Confirm returns the
// user's yes/no decision for a Confirm-kind notification.
type Notifier interface {
	Notify(n Notification)
	Confirm(n Notification) bool
}

// Discard ignores every notification and declines every confirmation.
type Discard struct{}

func (Discard) Notify(Notification) {}

func (Discard) Confirm(Notification) bool { return false }
