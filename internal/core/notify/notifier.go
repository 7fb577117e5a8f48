package notify

import "fmt"

// Notifier is the convenience facade over a Store: pre-classified
// constructors that rely entirely on the store's duration policy.
// It holds no state of its own.
type Notifier struct {
	store *Store
}

// NewNotifier creates a facade over the given store.
func NewNotifier(store *Store) *Notifier {
	return &Notifier{store: store}
}

// Success raises a success notification.
func (n *Notifier) Success(title, message string) (string, error) {
	return n.store.Add(Spec{Kind: KindSuccess, Title: title, Message: message})
}

// Error raises an error notification.
func (n *Notifier) Error(title, message string) (string, error) {
	return n.store.Add(Spec{Kind: KindError, Title: title, Message: message})
}

// Warning raises a warning notification.
func (n *Notifier) Warning(title, message string) (string, error) {
	return n.store.Add(Spec{Kind: KindWarning, Title: title, Message: message})
}

// Info raises an info notification.
func (n *Notifier) Info(title, message string) (string, error) {
	return n.store.Add(Spec{Kind: KindInfo, Title: title, Message: message})
}

// Successf raises a success notification with a formatted title.
func (n *Notifier) Successf(format string, args ...any) (string, error) {
	return n.Success(fmt.Sprintf(format, args...), "")
}

// Errorf raises an error notification with a formatted title.
func (n *Notifier) Errorf(format string, args ...any) (string, error) {
	return n.Error(fmt.Sprintf(format, args...), "")
}

// Warningf raises a warning notification with a formatted title.
func (n *Notifier) Warningf(format string, args ...any) (string, error) {
	return n.Warning(fmt.Sprintf(format, args...), "")
}

// Infof raises an info notification with a formatted title.
func (n *Notifier) Infof(format string, args ...any) (string, error) {
	return n.Info(fmt.Sprintf(format, args...), "")
}

// Dismiss removes a notification by id. Pass-through to the store.
func (n *Notifier) Dismiss(id string) {
	n.store.Remove(id)
}

// ClearAll removes every active notification. Pass-through to the store.
func (n *Notifier) ClearAll() {
	n.store.ClearAll()
}
