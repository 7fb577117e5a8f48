package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkrul/toast/internal/core/notify"
)

func snapshotOf(n int) []notify.Record {
	records := make([]notify.Record, n)
	for i := range n {
		records[i] = notify.Record{
			ID:    fmt.Sprintf("id-%d", i),
			Kind:  notify.KindInfo,
			Title: fmt.Sprintf("toast %d", i),
		}
	}
	return records
}

func TestToastController_SetSnapshot(t *testing.T) {
	c := NewToastController(5)

	c.SetSnapshot(snapshotOf(2))

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Visible(), 2)
	assert.Zero(t, c.HiddenCount())
}

func TestToastController_Visible_caps_at_max(t *testing.T) {
	c := NewToastController(3)

	c.SetSnapshot(snapshotOf(5))

	visible := c.Visible()
	require.Len(t, visible, 3)
	// Newest three, oldest first.
	assert.Equal(t, "id-2", visible[0].ID)
	assert.Equal(t, "id-4", visible[2].ID)
	assert.Equal(t, 2, c.HiddenCount())
}

func TestToastController_Selected_defaults_to_newest(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot(snapshotOf(3))

	rec, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "id-2", rec.ID)
	assert.True(t, c.IsSelected("id-2"))
}

func TestToastController_selection_moves(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot(snapshotOf(3))

	c.SelectOlder()
	rec, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "id-1", rec.ID)

	c.SelectOlder()
	c.SelectOlder() // clamped at oldest visible
	rec, _ = c.Selected()
	assert.Equal(t, "id-0", rec.ID)

	c.SelectNewer()
	rec, _ = c.Selected()
	assert.Equal(t, "id-1", rec.ID)
}

func TestToastController_selection_clamps_on_shrink(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot(snapshotOf(3))
	c.SelectOlder()
	c.SelectOlder()

	c.SetSnapshot(snapshotOf(1))

	rec, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "id-0", rec.ID)
}

func TestToastController_Selected_empty(t *testing.T) {
	c := NewToastController(5)

	_, ok := c.Selected()
	assert.False(t, ok)
	assert.False(t, c.HasToasts())
}

func TestToastController_Remaining(t *testing.T) {
	c := NewToastController(5)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	expiring := notify.Record{Duration: 5 * time.Second, CreatedAt: now.Add(-2 * time.Second)}
	remaining, expires := c.Remaining(expiring, now)
	assert.True(t, expires)
	assert.Equal(t, 3*time.Second, remaining)

	sticky := notify.Record{Duration: 0, CreatedAt: now}
	_, expires = c.Remaining(sticky, now)
	assert.False(t, expires)
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController(5)
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())

	c.SetTicking(false)
	assert.False(t, c.Ticking())
}
