package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the controller's visible window and composites it
// as an overlay in the lower-right corner.
type ToastView struct {
	controller *ToastController
	now        func() time.Time
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller, now: time.Now}
}

// View renders the toast stack as a single string with toasts stacked
// vertically, oldest at top, newest at bottom.
func (v *ToastView) View() string {
	visible := v.controller.Visible()
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(visible)+1)
	if hidden := v.controller.HiddenCount(); hidden > 0 {
		rendered = append(rendered, styles.TextMutedStyle.Render(fmt.Sprintf("  +%d more", hidden)))
	}
	for _, r := range visible {
		rendered = append(rendered, v.renderToast(r))
	}

	return strings.Join(rendered, "\n")
}

func (v *ToastView) renderToast(r notify.Record) string {
	var icon string
	var style lipgloss.Style

	switch r.Kind {
	case notify.KindSuccess:
		icon = styles.IconNotifySuccess
		style = styles.ToastSuccessStyle
	case notify.KindError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case notify.KindWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	title := styles.ToastTitleStyle.Render(r.Title)
	content := icon + " " + title

	if meta := v.renderMeta(r); meta != "" {
		content += "\n" + styles.TextMutedStyle.Render(meta)
	}

	if v.controller.IsSelected(r.ID) {
		style = style.BorderForeground(styles.CurrentPalette.Foreground)
	}

	return style.Width(toastWidth).Render(content)
}

// renderMeta builds the second toast line: remaining time, stickiness,
// and action hints.
func (v *ToastView) renderMeta(r notify.Record) string {
	var parts []string

	if remaining, expires := v.controller.Remaining(r, v.now()); !expires {
		parts = append(parts, styles.IconSticky+" pinned")
	} else if remaining > 0 {
		parts = append(parts, fmt.Sprintf("%.0fs", remaining.Seconds()))
	}

	for i, a := range r.Actions {
		parts = append(parts, fmt.Sprintf("%s %d:%s", styles.IconAction, i+1, a.Label))
	}

	return strings.Join(parts, "  ")
}

// Overlay composites the toast stack over the background in the
// lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toasts := v.View()
	if toasts == "" {
		return background
	}

	positioned := lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, toasts)
	return composeOverlay(background, positioned, width)
}
