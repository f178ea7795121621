package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/config"
)

// RootOptions holds global flags and the loaded configuration
type RootOptions struct {
	Config    *config.Config
	LogLevel  string
	LogFormat string
}

// NewRootCommand creates the gildedrose command. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "gildedrose",
		Short: "Gilded Rose inventory update engine",
		Long: `Ages the Gilded Rose stock one day at a time.

Each item's category is decided by its name: Aged Brie, backstage passes,
Sulfuras, Conjured items and everything else each follow their own rules
for sellIn and quality.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Config.LogLevel = strings.ToLower(opts.LogLevel)
			opts.Config.LogFormat = strings.ToLower(opts.LogFormat)
			if err := config.Validate(opts.Config); err != nil {
				return WrapExitError(ExitCommandError, ErrMsgInvalidFlags, err)
			}
			bootstrap.SetupLogger(opts.Config, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")

	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewNightlyCommand(opts))

	return cmd
}
