package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkrul/toast/internal/core/logging"
	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

const (
	historyModalMinWidth  = 60
	historyModalMaxHeight = 30
	historyModalMargin    = 4
	historyModalChrome    = 6 // title + divider + help + spacing
)

// HistoryModal displays a scrollable archive of past notifications.
type HistoryModal struct {
	archive  notify.Archive
	viewport viewport.Model
	width    int
	height   int
}

// NewHistoryModal creates a modal showing the notification archive.
func NewHistoryModal(archive notify.Archive, width, height int) *HistoryModal {
	modalWidth := max(width*2/3, historyModalMinWidth)
	if modalWidth > width-historyModalMargin {
		modalWidth = width - historyModalMargin
	}
	modalHeight := min(height-historyModalMargin, historyModalMaxHeight)

	vp := viewport.New(modalWidth-4, modalHeight-historyModalChrome)

	m := &HistoryModal{
		archive:  archive,
		viewport: vp,
		width:    modalWidth,
		height:   modalHeight,
	}

	m.refreshContent()
	return m
}

func (m *HistoryModal) refreshContent() {
	if m.archive == nil {
		m.viewport.SetContent(styles.TextMutedStyle.Render("History is disabled"))
		return
	}

	history, err := m.archive.List(context.Background())
	if err != nil {
		logger := logging.Component("tui")
		logger.Error().Err(err).Msg("failed to load notification history")
		m.viewport.SetContent(styles.TextErrorStyle.Render(fmt.Sprintf("failed to load history: %v", err)))
		return
	}

	if len(history) == 0 {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	var b strings.Builder
	for i, r := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatHistoryLine(r))
	}

	m.viewport.SetContent(b.String())
}

func formatHistoryLine(r notify.Record) string {
	ts := styles.TextMutedStyle.Render(r.CreatedAt.Format("15:04:05"))

	var icon string
	var titleStyle = styles.TextPrimaryStyle
	switch r.Kind {
	case notify.KindSuccess:
		icon = styles.TextSuccessStyle.Render(styles.IconNotifySuccess)
	case notify.KindError:
		icon = styles.TextErrorStyle.Render(styles.IconNotifyError)
		titleStyle = styles.TextErrorStyle
	case notify.KindWarning:
		icon = styles.TextWarningStyle.Render(styles.IconNotifyWarning)
		titleStyle = styles.TextWarningStyle
	default:
		icon = styles.TextPrimaryStyle.Render(styles.IconNotifyInfo)
	}

	line := fmt.Sprintf("%s %s %s", ts, icon, titleStyle.Render(r.Title))
	if r.Source != "" {
		line += " " + styles.TextMutedStyle.Render("("+r.Source+")")
	}
	return line
}

// Update forwards key events to the viewport for scrolling.
func (m *HistoryModal) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// Clear deletes the archive and refreshes the view.
func (m *HistoryModal) Clear() error {
	if m.archive == nil {
		return nil
	}
	if err := m.archive.Clear(context.Background()); err != nil {
		return err
	}
	m.refreshContent()
	return nil
}

// View renders the modal.
func (m *HistoryModal) View() string {
	title := styles.ModalTitleStyle.Render("Notification History")
	divider := styles.DividerStyle.Render(strings.Repeat("─", max(m.width-6, 1)))
	help := styles.ModalHelpStyle.Render("↑/↓ scroll · C clear · esc close")

	content := strings.Join([]string{title, divider, m.viewport.View(), help}, "\n")
	return styles.ModalStyle.Width(m.width - 2).Render(content)
}
