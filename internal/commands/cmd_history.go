package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/forkrul/toast/internal/core/notify"
	"github.com/forkrul/toast/internal/core/styles"
)

type HistoryCmd struct {
	flags *Flags

	limit int
}

// NewHistoryCmd creates a new history command.
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application.
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "List archived notifications, newest first",
		UsageText: "toast history [--limit <n>]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum entries to print (0 = all)",
				Destination: &cmd.limit,
			},
		},
		Action: cmd.runList,
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Delete all archived notifications",
				UsageText: "toast history clear",
				Action:    cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) runList(ctx context.Context, _ *cli.Command) error {
	if cmd.flags.Archive == nil {
		return fmt.Errorf("history is disabled (set history.enabled in the config)")
	}

	records, err := cmd.flags.Archive.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println(styles.TextMutedStyle.Render("No archived notifications."))
		return nil
	}

	if cmd.limit > 0 && len(records) > cmd.limit {
		records = records[:cmd.limit]
	}

	for _, r := range records {
		fmt.Println(formatHistoryEntry(r))
	}
	return nil
}

func (cmd *HistoryCmd) runClear(ctx context.Context, _ *cli.Command) error {
	if cmd.flags.Archive == nil {
		return fmt.Errorf("history is disabled (set history.enabled in the config)")
	}

	count, err := cmd.flags.Archive.Count(ctx)
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}

	if err := cmd.flags.Archive.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	fmt.Printf("Cleared %d archived notification(s)\n", count)
	return nil
}

func formatHistoryEntry(r notify.Record) string {
	icon := styles.TextPrimaryStyle.Render(styles.IconNotifyInfo)
	switch r.Kind {
	case notify.KindSuccess:
		icon = styles.TextSuccessStyle.Render(styles.IconNotifySuccess)
	case notify.KindWarning:
		icon = styles.TextWarningStyle.Render(styles.IconNotifyWarning)
	case notify.KindError:
		icon = styles.TextErrorStyle.Render(styles.IconNotifyError)
	}

	line := fmt.Sprintf("%s %s %s",
		styles.TextMutedStyle.Render(r.CreatedAt.Format("2006-01-02 15:04:05")),
		icon,
		r.Title,
	)
	if r.Source != "" {
		line += " " + styles.TextMutedStyle.Render("("+r.Source+")")
	}
	return line
}
