package tui

import (
	"time"

	"github.com/forkrul/toast/internal/core/notify"
)

const (
	defaultMaxVisible = 5
	toastWidth        = 50
)

// ToastController tracks what the toast surface currently displays.
// It never owns notification state: the active set lives in the
// store, and the controller only caches the latest snapshot pushed
// through the subscription, plus the display selection.
type ToastController struct {
	snapshot   []notify.Record
	maxVisible int

	// selected counts back from the newest visible toast: 0 is the
	// newest, 1 the one above it, and so on.
	selected int
	ticking  bool
}

// NewToastController creates a controller displaying at most
// maxVisible toasts at once.
func NewToastController(maxVisible int) *ToastController {
	if maxVisible < 1 {
		maxVisible = defaultMaxVisible
	}
	return &ToastController{maxVisible: maxVisible}
}

// SetSnapshot replaces the cached snapshot with the store's latest
// and clamps the selection to the new visible window.
func (c *ToastController) SetSnapshot(records []notify.Record) {
	c.snapshot = records
	if n := len(c.Visible()); c.selected >= n {
		c.selected = max(n-1, 0)
	}
}

// Visible returns the displayed window: the newest maxVisible
// records, oldest first. Older active records stay in the store and
// reappear as newer ones are removed.
func (c *ToastController) Visible() []notify.Record {
	if len(c.snapshot) <= c.maxVisible {
		return c.snapshot
	}
	return c.snapshot[len(c.snapshot)-c.maxVisible:]
}

// HasToasts returns true if anything is displayed.
func (c *ToastController) HasToasts() bool {
	return len(c.snapshot) > 0
}

// HiddenCount returns how many active records fall outside the
// visible window.
func (c *ToastController) HiddenCount() int {
	return max(len(c.snapshot)-c.maxVisible, 0)
}

// Selected returns the currently targeted record.
func (c *ToastController) Selected() (notify.Record, bool) {
	visible := c.Visible()
	if len(visible) == 0 {
		return notify.Record{}, false
	}
	return visible[len(visible)-1-c.selected], true
}

// IsSelected reports whether the given id is the selection target.
func (c *ToastController) IsSelected(id string) bool {
	if rec, ok := c.Selected(); ok {
		return rec.ID == id
	}
	return false
}

// SelectOlder moves the selection one toast up the stack.
func (c *ToastController) SelectOlder() {
	if c.selected < len(c.Visible())-1 {
		c.selected++
	}
}

// SelectNewer moves the selection one toast down the stack.
func (c *ToastController) SelectNewer() {
	if c.selected > 0 {
		c.selected--
	}
}

// Remaining returns how long the record stays visible from now, and
// whether it expires at all.
func (c *ToastController) Remaining(r notify.Record, now time.Time) (time.Duration, bool) {
	if r.Sticky() {
		return 0, false
	}
	return r.CreatedAt.Add(r.Duration).Sub(now), true
}

// Ticking returns whether the redraw timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the redraw timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
