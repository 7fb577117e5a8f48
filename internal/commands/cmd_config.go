package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/forkrul/toast/internal/core/styles"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toast config validate",
				Description: "Validates the configuration file, checking durations, quiet glob patterns, theme names, and file paths.",
				Action:      cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	for _, warn := range cfg.Warnings() {
		line := fmt.Sprintf("%s %s: %s",
			styles.TextWarningStyle.Render(styles.IconNotifyWarning),
			warn.Category,
			warn.Message,
		)
		fmt.Println(line)
		if warn.Item != "" {
			fmt.Printf("  Item: %s\n", warn.Item)
		}
	}

	if err := cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		fmt.Printf("%s %v\n", styles.TextErrorStyle.Render(styles.IconNotifyError), err)
		return cli.Exit("", 1)
	}

	fmt.Printf("%s Configuration is valid\n", styles.TextSuccessStyle.Render(styles.IconNotifySuccess))
	return nil
}
