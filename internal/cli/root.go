package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hairykiwi/csv2kicad/pkg/buildinfo"
)

// Execute runs the csv2kicad CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (convert, info,
// completion), configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "csv2kicad",
		Short:        "Convert EnergyMicro pin CSV tables to KiCad symbol libraries",
		Long:         `csv2kicad converts EnergyMicro EFM32 pin-description CSV files into KiCad legacy schematic symbol libraries (.lib) with matching documentation files (.dcm).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
