package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

type ComposeCmd struct {
	flags *Flags

	kind    string
	title   string
	message string
	source  string
	sticky  bool
}

// NewComposeCmd creates a new compose command.
func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

// Register adds the compose command to the application.
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compose",
		Usage:     "Interactively compose a notification",
		UsageText: "toast compose",
		Description: `Opens a form to build a notification, then records it in the
history archive. Equivalent to 'toast send' with the fields filled in
interactively.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ComposeCmd) run(_ context.Context, _ *cli.Command) error {
	// Without an archive the record would vanish at process exit.
	if cmd.flags.Archive == nil {
		return fmt.Errorf("history is disabled (set history.enabled in the config)")
	}

	cmd.kind = string(notify.KindInfo)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Info", string(notify.KindInfo)),
					huh.NewOption("Success", string(notify.KindSuccess)),
					huh.NewOption("Warning", string(notify.KindWarning)),
					huh.NewOption("Error", string(notify.KindError)),
				).
				Value(&cmd.kind),
			huh.NewInput().
				Title("Title").
				Validate(validateTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Message").
				Description("Optional markdown body").
				Value(&cmd.message),
			huh.NewInput().
				Title("Source").
				Description("Origin tag used by quiet rules (optional)").
				Value(&cmd.source),
			huh.NewConfirm().
				Title("Pin until dismissed?").
				Value(&cmd.sticky),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return fmt.Errorf("compose form: %w", err)
	}

	spec := notify.Spec{
		Kind:    notify.Kind(cmd.kind),
		Title:   cmd.title,
		Message: cmd.message,
		Source:  cmd.source,
	}
	if cmd.sticky {
		d := time.Duration(0)
		spec.Duration = &d
	}

	id, err := cmd.flags.Store.Add(spec)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
