// Package tui implements the interactive toast playground: a Bubble
// Tea surface that renders exactly the store's current snapshot.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/forkrul/toast/internal/core/config"
	"github.com/forkrul/toast/internal/core/logging"
	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateHistory
	stateDetail
)

// Deps carries everything the surface needs. The store is the single
// source of truth; the model never keeps an independent active set.
type Deps struct {
	Config   *config.Config
	Store    *notify.Store
	Notifier *notify.Notifier
	Archive  notify.Archive
}

// Model is the main Bubble Tea model for the playground.
type Model struct {
	cfg      *config.Config
	store    *notify.Store
	notifier *notify.Notifier
	archive  notify.Archive

	keys       keyMap
	help       help.Model
	controller *ToastController
	toastView  *ToastView
	buffer     *NotificationBuffer

	unsubscribe func()
	state       UIState
	history     *HistoryModal
	detail      *DetailModal

	width    int
	height   int
	seq      int
	quitting bool
	log      zerolog.Logger
}

// New creates the playground model and subscribes it to the store.
func New(deps Deps) *Model {
	m := &Model{
		cfg:        deps.Config,
		store:      deps.Store,
		notifier:   deps.Notifier,
		archive:    deps.Archive,
		keys:       defaultKeyMap(),
		help:       help.New(),
		controller: NewToastController(deps.Config.Toasts.MaxVisible),
		buffer:     NewNotificationBuffer(),
		log:        logging.Component("tui"),
	}
	m.toastView = NewToastView(m.controller)
	m.unsubscribe = deps.Store.Subscribe(m.buffer.Push)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.buffer.WaitForSignal()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case drainSnapshotMsg:
		cmds := []tea.Cmd{m.buffer.WaitForSignal()}
		if snapshot, ok := m.buffer.Drain(); ok {
			m.controller.SetSnapshot(m.displayed(snapshot))
		}
		if m.controller.HasToasts() && !m.controller.Ticking() {
			m.controller.SetTicking(true)
			cmds = append(cmds, scheduleToastTick(m.cfg.Toasts.TickInterval()))
		}
		return m, tea.Batch(cmds...)

	case toastTickMsg:
		if !m.controller.HasToasts() {
			m.controller.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick(m.cfg.Toasts.TickInterval())

	case tea.KeyMsg:
		switch m.state {
		case stateHistory:
			return m.updateHistory(msg)
		case stateDetail:
			return m.updateDetail(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

// displayed filters quiet sources out of the rendered set. Muted
// records stay active in the store and in history; suppression is
// display policy only.
func (m *Model) displayed(snapshot []notify.Record) []notify.Record {
	if len(m.cfg.Quiet) == 0 {
		return snapshot
	}
	out := make([]notify.Record, 0, len(snapshot))
	for _, r := range snapshot {
		if !m.cfg.IsQuiet(r.Source) {
			out = append(out, r)
		}
	}
	return out
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Success):
		m.seq++
		m.raise(m.notifier.Successf("Build #%d finished", m.seq))
	case key.Matches(msg, m.keys.Error):
		m.seq++
		m.raise(m.notifier.Error(fmt.Sprintf("Deploy #%d failed", m.seq), sampleErrorBody))
	case key.Matches(msg, m.keys.Warning):
		m.seq++
		m.raise(m.notifier.Warningf("Disk usage at %d%%", 80+m.seq%20))
	case key.Matches(msg, m.keys.Info):
		m.seq++
		m.raise(m.notifier.Infof("Sync cycle %d complete", m.seq))

	case key.Matches(msg, m.keys.Sticky):
		sticky := time.Duration(0)
		_, err := m.store.Add(notify.Spec{
			Kind:     notify.KindError,
			Title:    "Connection lost",
			Message:  "The upstream went away. This toast stays until dismissed.",
			Duration: &sticky,
			Source:   "demo/network",
		})
		m.raise("", err)

	case key.Matches(msg, m.keys.Actioned):
		_, err := m.store.Add(notify.Spec{
			Kind:    notify.KindWarning,
			Title:   "File overwritten",
			Message: "`report.md` was replaced by a newer version.",
			Source:  "demo/files",
			Actions: []notify.Action{
				{Label: "Undo", Effect: m.undoEffect},
				{Label: "Fail", Effect: failingEffect},
			},
		})
		m.raise("", err)

	case key.Matches(msg, m.keys.SelectOlder):
		m.controller.SelectOlder()
	case key.Matches(msg, m.keys.SelectNewer):
		m.controller.SelectNewer()

	case key.Matches(msg, m.keys.Dismiss):
		if rec, ok := m.controller.Selected(); ok {
			m.store.Remove(rec.ID)
		}
	case key.Matches(msg, m.keys.ClearAll):
		m.store.ClearAll()

	case key.Matches(msg, m.keys.Detail):
		if rec, ok := m.controller.Selected(); ok {
			m.detail = NewDetailModal(rec)
			m.state = stateDetail
		}
	case key.Matches(msg, m.keys.History):
		m.history = NewHistoryModal(m.archive, m.width, m.height)
		m.state = stateHistory
	}

	return m, nil
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "h":
		m.history = nil
		m.state = stateNormal
		return m, nil
	case "C":
		if err := m.history.Clear(); err != nil {
			m.log.Error().Err(err).Msg("failed to clear history")
		}
		return m, nil
	}
	return m, m.history.Update(msg)
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "esc", "q":
		m.closeDetail()
	case "x":
		m.store.Remove(m.detail.Record().ID)
		m.closeDetail()
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx, ok := m.detail.ActionIndex(rune(s[0])); ok {
				id := m.detail.Record().ID
				m.closeDetail()
				if err := m.store.Invoke(id, idx); err != nil {
					m.raise(m.notifier.Errorf("Action failed: %v", err))
				}
			}
		}
	}
	return m, nil
}

func (m *Model) closeDetail() {
	m.detail = nil
	m.state = stateNormal
}

// raise logs facade errors. Contract violations cannot happen from
// the fixed demo specs, but the log keeps surprises visible.
func (m *Model) raise(_ string, err error) {
	if err != nil {
		m.log.Error().Err(err).Msg("failed to raise notification")
	}
}

func (m *Model) undoEffect() error {
	_, err := m.notifier.Success("Restored", "`report.md` is back.")
	return err
}

func failingEffect() error {
	return fmt.Errorf("the archive copy is gone")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	background := m.renderBackground()

	switch m.state {
	case stateHistory:
		return m.centerOverlay(background, m.history.View())
	case stateDetail:
		return m.centerOverlay(background, m.detail.View())
	default:
		return m.toastView.Overlay(background, m.width, m.height)
	}
}

func (m *Model) renderBackground() string {
	header := styles.HeaderStyle.Render("toast playground")
	count := styles.TextMutedStyle.Render(fmt.Sprintf("%d active", m.store.Len()))
	top := header + "  " + count

	helpLine := m.help.ShortHelpView(m.keys.shortHelp())

	body := lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center,
		styles.TextMutedStyle.Render("raise a few notifications"))

	return strings.Join([]string{top, body, helpLine}, "\n")
}

func (m *Model) centerOverlay(background, modal string) string {
	positioned := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	return composeOverlay(background, positioned, m.width)
}

const sampleErrorBody = `The rollout was halted after the health check failed.

- region: **eu-west-1**
- attempts: 3

See the deploy log for details.`
