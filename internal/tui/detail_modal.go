package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/forkrul/toast/internal/core/logging"
	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

const (
	detailModalWidth    = 64
	detailWrapWidth     = detailModalWidth - 8
	detailMessageHeight = 16
)

// DetailModal shows a single notification with its message body
// rendered as markdown and its actions listed for invocation.
type DetailModal struct {
	record   notify.Record
	rendered string
}

// NewDetailModal renders the record's message through glamour once,
// at open time.
func NewDetailModal(record notify.Record) *DetailModal {
	m := &DetailModal{record: record}

	if record.Message == "" {
		m.rendered = styles.TextMutedStyle.Render("(no message)")
		return m
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(detailWrapWidth),
	)
	if err == nil {
		if out, rerr := r.Render(record.Message); rerr == nil {
			m.rendered = strings.TrimRight(out, "\n")
			return m
		}
	}

	logger := logging.Component("tui")
	logger.Debug().Err(err).Msg("markdown rendering unavailable, using plain text")
	m.rendered = record.Message
	return m
}

// Record returns the displayed record.
func (m *DetailModal) Record() notify.Record {
	return m.record
}

// ActionIndex maps a pressed digit key to an action index, if valid.
func (m *DetailModal) ActionIndex(digit rune) (int, bool) {
	idx := int(digit - '1')
	if idx < 0 || idx >= len(m.record.Actions) {
		return 0, false
	}
	return idx, true
}

// View renders the modal.
func (m *DetailModal) View() string {
	var icon string
	switch m.record.Kind {
	case notify.KindSuccess:
		icon = styles.TextSuccessStyle.Render(styles.IconNotifySuccess)
	case notify.KindError:
		icon = styles.TextErrorStyle.Render(styles.IconNotifyError)
	case notify.KindWarning:
		icon = styles.TextWarningStyle.Render(styles.IconNotifyWarning)
	default:
		icon = styles.TextPrimaryStyle.Render(styles.IconNotifyInfo)
	}

	title := fmt.Sprintf("%s %s", icon, styles.ModalTitleStyle.Render(m.record.Title))
	divider := styles.DividerStyle.Render(strings.Repeat("─", detailModalWidth-8))

	lines := []string{title, divider, m.rendered}

	if len(m.record.Actions) > 0 {
		lines = append(lines, divider)
		for i, a := range m.record.Actions {
			lines = append(lines, fmt.Sprintf("%s %s",
				styles.TextPrimaryStyle.Render(fmt.Sprintf("[%d]", i+1)),
				a.Label,
			))
		}
	}

	meta := m.record.CreatedAt.Format("15:04:05")
	if m.record.Source != "" {
		meta += " · " + m.record.Source
	}
	lines = append(lines,
		styles.TextMutedStyle.Render(meta),
		styles.ModalHelpStyle.Render("1-9 run action · x dismiss · esc close"),
	)

	return styles.ModalStyle.Width(detailModalWidth).Render(strings.Join(lines, "\n"))
}
