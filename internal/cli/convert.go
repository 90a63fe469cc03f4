package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hairykiwi/csv2kicad/pkg/config"
	"github.com/hairykiwi/csv2kicad/pkg/errors"
	"github.com/hairykiwi/csv2kicad/pkg/pipeline"
)

// defaultLibraryName is the output base name when converting a whole
// directory of device CSVs.
const defaultLibraryName = "energymicro-efm32"

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output    string // output base path (derived from input if empty)
	configp   string // optional TOML style file
	keywords  string // override documentation keywords
	datasheet string // override documentation datasheet URL
}

// newConvertCmd creates the convert command. It accepts either a single CSV
// file or a directory; a directory converts every *.csv inside it into one
// combined library.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <file.csv|directory>",
		Short: "Convert pin CSV files into a .lib/.dcm library pair",
		Long: `Convert EnergyMicro pin-description CSV files into a KiCad legacy
symbol library (.lib) and documentation library (.dcm).

A single file produces a library next to it; a directory combines every
*.csv it contains into one library, the way the published EnergyMicro
library was assembled.

Examples:
  csv2kicad convert efm32tg108.csv                  # efm32tg108.lib/.dcm
  csv2kicad convert devices/                        # energymicro-efm32.lib/.dcm
  csv2kicad convert devices/ -o lib/efm32           # lib/efm32.lib/.dcm
  csv2kicad convert efm32tg108.csv --config style.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (without extension)")
	cmd.Flags().StringVar(&opts.configp, "config", "", "TOML style file overriding drawing constants")
	cmd.Flags().StringVar(&opts.keywords, "keywords", "", "override documentation keywords")
	cmd.Flags().StringVar(&opts.datasheet, "datasheet", "", "override documentation datasheet URL")

	return cmd
}

// runConvert resolves inputs and outputs, builds the pipeline, and reports
// the result.
func runConvert(cmd *cobra.Command, opts *convertOpts, input string) error {
	logger := loggerFromContext(cmd.Context())

	cfg := config.Default()
	if opts.configp != "" {
		loaded, err := config.Load(opts.configp)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded style file", "path", opts.configp)
	}
	if opts.keywords != "" {
		cfg.Doc.Keywords = opts.keywords
	}
	if opts.datasheet != "" {
		cfg.Doc.Datasheet = opts.datasheet
	}

	inputs, isDir, err := collectInputs(input)
	if err != nil {
		return err
	}
	libPath, docPath := deriveOutputs(opts.output, input, isDir)

	runner := pipeline.NewRunner(pipeline.Options{
		Geometry: cfg.Geometry,
		Doc:      cfg.Doc.DocOptions(),
		LibPath:  libPath,
		DocPath:  docPath,
	}, logger)

	prog := newProgress(logger)
	results, err := runner.Convert(cmd.Context(), inputs)
	if err != nil {
		printError("conversion failed: %v", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Converted %d device(s)", len(results)))

	unclassified := 0
	for _, res := range results {
		unclassified += len(res.Layout.Unclassified)
	}
	printSuccess("Wrote %s and %s", libPath, docPath)
	if unclassified > 0 {
		printWarning("%d pin(s) did not match any placement rule, see log", unclassified)
	}
	return nil
}

// collectInputs expands the input argument into the list of CSV files to
// convert. A directory is scanned non-recursively for *.csv files, sorted by
// name so repeated runs emit devices in the same order.
func collectInputs(input string) (inputs []string, isDir bool, err error) {
	st, err := os.Stat(input)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "stat %s", input)
	}

	if !st.IsDir() {
		if !strings.EqualFold(filepath.Ext(input), ".csv") {
			return nil, false, errors.New(errors.ErrCodeInvalidInput, "%s: not a .csv file", input)
		}
		return []string{input}, false, nil
	}

	matches, err := filepath.Glob(filepath.Join(input, "*.csv"))
	if err != nil {
		return nil, true, errors.Wrap(errors.ErrCodeInternal, err, "scan %s", input)
	}
	if len(matches) == 0 {
		return nil, true, errors.New(errors.ErrCodeInvalidInput, "%s: no .csv files found", input)
	}
	sort.Strings(matches)
	return matches, true, nil
}

// deriveOutputs computes the .lib/.dcm output paths. An explicit base wins;
// otherwise a single file writes next to its input and a directory writes
// the combined library under its own directory.
func deriveOutputs(base, input string, isDir bool) (libPath, docPath string) {
	switch {
	case base != "":
		// explicit base, extension stripped if given
		base = strings.TrimSuffix(base, filepath.Ext(base))
	case isDir:
		base = filepath.Join(input, defaultLibraryName)
	default:
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return base + ".lib", base + ".dcm"
}
