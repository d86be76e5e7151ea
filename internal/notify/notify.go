// Package notify carries short user-facing notifications (toasts) from
// services to whatever surface displays them.
package notify

// Variant selects how a notification is presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a single toast.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Destructive reports whether the notification signals a failure.
func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(Notification)

// Notify implements Notifier.
func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Queue buffers notifications for a single consumer, typically the TUI
// update loop. Sends never block: when the buffer is full the notification
// is dropped.
type Queue struct {
	ch chan Notification
}

// NewQueue returns a queue holding up to size pending notifications.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Notification, size)}
}

// Notify implements Notifier.
func (q *Queue) Notify(n Notification) {
	select {
	case q.ch <- n:
	default:
	}
}

// C returns the receive side of the queue.
func (q *Queue) C() <-chan Notification {
	return q.ch
}
