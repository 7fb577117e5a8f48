package logging

import (
	"github.com/rs/zerolog"

	"github.com/forkrul/toast/internal/core/notify"
)

// NotifyHook forwards warn-and-above log events to the notification
// store so background failures surface as toasts. Install it on a
// derived logger via logger.Hook(hook), never on the logger the
// notify package itself writes to, or archive failures would feed
// back into the store.
type NotifyHook struct {
	store  *notify.Store
	source string
}

// NewNotifyHook creates a hook that raises notifications tagged with
// the given source.
func NewNotifyHook(store *notify.Store, source string) NotifyHook {
	return NotifyHook{store: store, source: source}
}

// Run implements zerolog.Hook.
func (h NotifyHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if h.store == nil || msg == "" {
		return
	}

	var kind notify.Kind
	switch level {
	case zerolog.WarnLevel:
		kind = notify.KindWarning
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		kind = notify.KindError
	default:
		return
	}

	// Built from a non-empty message and a known kind, so Add cannot fail.
	_, _ = h.store.Add(notify.Spec{
		Kind:   kind,
		Title:  msg,
		Source: h.source,
	})
}
