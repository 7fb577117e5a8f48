package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/forkrul/toast/internal/core/logging"
	"github.com/forkrul/toast/internal/tui"
)

type DemoCmd struct {
	flags *Flags
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Open the interactive toast playground",
		UsageText: "toast demo",
		Description: `Runs a full-screen playground for raising, selecting, and
dismissing notifications. Useful for trying out themes, durations,
and quiet rules against a live store.`,
		Action: cmd.Run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	model := tui.New(tui.Deps{
		Config:   cmd.flags.Config,
		Store:    cmd.flags.Store,
		Notifier: cmd.flags.Notifier,
		Archive:  cmd.flags.Archive,
	})

	logger := logging.Component("demo")
	logger.Debug().Msg("starting playground")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
