package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkrul/toast/internal/core/config"
	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/pkg/tuitest"
)

func testModel(t *testing.T, mutate func(*config.Config)) *Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}

	store := notify.NewStore()
	m := New(Deps{
		Config:   &cfg,
		Store:    store,
		Notifier: notify.NewNotifier(store),
	})
	m.Update(tuitest.WindowSize(80, 24))
	return m
}

// drain applies pending snapshot pushes the way the Update loop would.
func drain(m *Model) {
	m.Update(drainSnapshotMsg{})
}

func TestModel_keys_raise_notifications(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('s'))
	m.Update(tuitest.KeyPress('e'))

	require.Equal(t, 2, m.store.Len())

	drain(m)
	visible := m.controller.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, notify.KindSuccess, visible[0].Kind)
	assert.Equal(t, notify.KindError, visible[1].Kind)
}

func TestModel_dismiss_selected(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('s'))
	m.Update(tuitest.KeyPress('i'))
	drain(m)

	// Newest is selected by default.
	m.Update(tuitest.KeyPress('x'))
	drain(m)

	require.Equal(t, 1, m.store.Len())
	assert.Equal(t, notify.KindSuccess, m.store.Snapshot()[0].Kind)
}

func TestModel_clear_all(t *testing.T) {
	m := testModel(t, nil)

	for _, r := range []rune{'s', 'e', 'w'} {
		m.Update(tuitest.KeyPress(r))
	}
	m.Update(tuitest.KeyPress('c'))
	drain(m)

	assert.Zero(t, m.store.Len())
	assert.False(t, m.controller.HasToasts())
}

func TestModel_quiet_sources_hidden_but_active(t *testing.T) {
	m := testModel(t, func(cfg *config.Config) {
		cfg.Quiet = []string{"demo/net*"}
	})

	m.Update(tuitest.KeyPress('p')) // sticky toast with source demo/network
	m.Update(tuitest.KeyPress('s'))
	drain(m)

	assert.Equal(t, 2, m.store.Len(), "quiet records stay in the store")
	assert.Len(t, m.controller.Visible(), 1, "quiet records are not displayed")
}

func TestModel_action_invocation_from_detail(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('a'))
	drain(m)

	m.Update(tuitest.KeyEnter())
	require.Equal(t, stateDetail, m.state)

	m.Update(tuitest.KeyPress('1')) // Undo action: raises a success toast
	drain(m)

	assert.Equal(t, stateNormal, m.state)
	snap := m.store.Snapshot()
	require.Len(t, snap, 1, "actioned record removed, undo confirmation added")
	assert.Equal(t, notify.KindSuccess, snap[0].Kind)
	assert.Equal(t, "Restored", snap[0].Title)
}

func TestModel_failed_action_raises_error(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('a'))
	drain(m)
	m.Update(tuitest.KeyEnter())

	m.Update(tuitest.KeyPress('2')) // failing action
	drain(m)

	snap := m.store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, notify.KindError, snap[0].Kind)
	assert.Contains(t, snap[0].Title, "Action failed")
}

func TestModel_history_modal_toggles(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('h'))
	assert.Equal(t, stateHistory, m.state)

	m.Update(tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_view_renders_toasts(t *testing.T) {
	m := testModel(t, nil)

	m.Update(tuitest.KeyPress('s'))
	drain(m)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "toast playground")
	assert.Contains(t, out, "Build #1 finished")
}

func TestModel_quit_unsubscribes(t *testing.T) {
	m := testModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	// Store changes after quit no longer reach the buffer.
	_, err := m.notifier.Info("late", "")
	require.NoError(t, err)
	_, ok := m.buffer.Drain()
	assert.False(t, ok)
}
