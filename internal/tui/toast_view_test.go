package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/pkg/tuitest"
)

func TestToastView_empty(t *testing.T) {
	v := NewToastView(NewToastController(5))

	assert.Empty(t, v.View())
}

func TestToastView_renders_titles_oldest_first(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot([]notify.Record{
		{ID: "1", Kind: notify.KindSuccess, Title: "first", CreatedAt: time.Now()},
		{ID: "2", Kind: notify.KindError, Title: "second", CreatedAt: time.Now()},
	})
	v := NewToastView(c)

	out := tuitest.StripANSI(v.View())
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")
	require.GreaterOrEqual(t, firstIdx, 0)
	require.GreaterOrEqual(t, secondIdx, 0)
	assert.Less(t, firstIdx, secondIdx, "oldest toast renders above the newest")
}

func TestToastView_shows_hidden_count(t *testing.T) {
	c := NewToastController(2)
	c.SetSnapshot(snapshotOf(5))
	v := NewToastView(c)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "+3 more")
}

func TestToastView_sticky_marker(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot([]notify.Record{
		{ID: "1", Kind: notify.KindError, Title: "pinned toast", Duration: 0, CreatedAt: time.Now()},
	})
	v := NewToastView(c)

	assert.Contains(t, tuitest.StripANSI(v.View()), "pinned")
}

func TestToastView_action_hints(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot([]notify.Record{{
		ID:        "1",
		Kind:      notify.KindWarning,
		Title:     "overwritten",
		Duration:  5 * time.Second,
		CreatedAt: time.Now(),
		Actions:   []notify.Action{{Label: "Undo"}},
	}})
	v := NewToastView(c)

	assert.Contains(t, tuitest.StripANSI(v.View()), "1:Undo")
}

func TestToastView_Overlay_places_bottom_right(t *testing.T) {
	c := NewToastController(5)
	c.SetSnapshot([]notify.Record{
		{ID: "1", Kind: notify.KindInfo, Title: "hello", Duration: 5 * time.Second, CreatedAt: time.Now()},
	})
	v := NewToastView(c)

	background := strings.TrimRight(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := tuitest.StripANSI(v.Overlay(background, 80, 24))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	assert.Contains(t, out, "hello")
	// Top of the screen is untouched background.
	assert.Equal(t, strings.Repeat(".", 80), lines[0])
}

func TestToastView_Overlay_without_toasts_returns_background(t *testing.T) {
	v := NewToastView(NewToastController(5))

	assert.Equal(t, "bg", v.Overlay("bg", 80, 24))
}

func TestKeyMap_shortHelp_includes_selection(t *testing.T) {
	keys := defaultKeyMap()

	var helpKeys []string
	for _, b := range keys.shortHelp() {
		helpKeys = append(helpKeys, b.Help().Key)
	}

	assert.Contains(t, helpKeys, "↑/k")
	assert.Contains(t, helpKeys, "↓/j")
}
