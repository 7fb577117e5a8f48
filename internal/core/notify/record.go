// Package notify implements the ephemeral notification engine: the
// active set of records, their timed lifecycle, and the facade used
// by callers to raise notifications.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Kind classifies a notification and selects its default duration.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Default auto-expiry durations. Error notifications stay visible
// longer than the rest.
const (
	DefaultDuration      = 5 * time.Second
	DefaultErrorDuration = 8 * time.Second
)

// Valid reports whether k is one of the four supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	}
	return false
}

// Contract violations rejected by Store.Add.
var (
	ErrEmptyTitle  = errors.New("title is required")
	ErrInvalidKind = errors.New("kind must be one of success, error, warning, info")
)

// Action is a labeled effect attached to a record. Invoking an action
// dismisses the record after the effect has been attempted.
type Action struct {
	Label  string
	Effect func() error
}

// Record is one notification's immutable value snapshot. Records are
// never mutated in place; lifecycle transitions remove them from the
// active set.
type Record struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	Duration  time.Duration // <= 0 means no auto-expiry
	Actions   []Action
	Source    string
	CreatedAt time.Time
}

// Sticky reports whether the record persists until explicitly dismissed.
func (r Record) Sticky() bool {
	return r.Duration <= 0
}

// Spec describes a record to be created. All fields except Title are
// optional; a nil Duration resolves to the kind's default.
type Spec struct {
	Kind     Kind
	Title    string
	Message  string
	Duration *time.Duration
	Actions  []Action
	Source   string
}

// Validate checks the caller contract: a non-empty title and a
// recognized kind. Violations are programming errors at the call
// site and are rejected synchronously.
func (s Spec) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("title", s.Title, func(title string) error {
			if strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}
			return nil
		}),
		criterio.Run("kind", s.Kind, func(k Kind) error {
			if !k.Valid() {
				return fmt.Errorf("%w: got %q", ErrInvalidKind, k)
			}
			return nil
		}),
	)
}
