package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/forkrul/toast/internal/core/notify"
)

type SendCmd struct {
	flags *Flags

	kind       string
	title      string
	message    string
	durationMs int64
	source     string
}

// NewSendCmd creates a new send command.
func NewSendCmd(flags *Flags) *SendCmd {
	return &SendCmd{flags: flags}
}

// Register adds the send command to the application.
func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "send",
		Usage:     "Record a notification in the archive",
		UsageText: "toast send --title <title> [--kind <kind>] [--message <body>] [--duration <ms>] [--source <source>]",
		Description: `Validates a notification and records it in the history archive.

There is no long-lived surface attached to a one-shot invocation, so the
notification is archived immediately rather than displayed. Use 'toast demo'
to see live notifications.

Examples:
  toast send --title "Build finished"
  toast send --kind error --title "Deploy failed" --message "exit status 1"
  toast send --title "Pinned note" --duration 0 --source "ci/release"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "notification kind (success, error, warning, info)",
				Value:       string(notify.KindInfo),
				Destination: &cmd.kind,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "notification title",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "optional markdown body",
				Destination: &cmd.message,
			},
			&cli.Int64Flag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "display duration in milliseconds (0 = sticky, unset = kind default)",
				Value:       -1,
				Destination: &cmd.durationMs,
			},
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "origin tag used by quiet rules (e.g. ci/build)",
				Destination: &cmd.source,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SendCmd) run(_ context.Context, _ *cli.Command) error {
	// Without an archive the record would vanish at process exit.
	if cmd.flags.Archive == nil {
		return fmt.Errorf("history is disabled (set history.enabled in the config)")
	}

	spec := notify.Spec{
		Kind:    notify.Kind(cmd.kind),
		Title:   cmd.title,
		Message: cmd.message,
		Source:  cmd.source,
	}
	if cmd.durationMs >= 0 {
		d := time.Duration(cmd.durationMs) * time.Millisecond
		spec.Duration = &d
	}

	id, err := cmd.flags.Store.Add(spec)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
