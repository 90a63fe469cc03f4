package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hairykiwi/csv2kicad/pkg/config"
	"github.com/hairykiwi/csv2kicad/pkg/pipeline"
	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// newInfoCmd creates the info command. It runs the read and layout stages on
// one CSV and prints a summary without writing any library files.
func newInfoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "info <file.csv>",
		Short: "Show the computed symbol layout for one device CSV",
		Long: `Parse one device CSV and print its classification and layout summary:
pin counts per unit, power-rail group counts, the anchor slot, and the
outline of every drawn unit. Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInfo(c, configPath, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML style file overriding drawing constants")

	return cmd
}

func runInfo(cmd *cobra.Command, configPath, input string) error {
	logger := loggerFromContext(cmd.Context())

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	runner := pipeline.NewRunner(pipeline.Options{Geometry: cfg.Geometry}, logger)
	res, err := runner.Inspect(input)
	if err != nil {
		return err
	}

	printDeviceSummary(res)
	return nil
}

// printDeviceSummary renders the layout summary for one inspected device.
func printDeviceSummary(res pipeline.Result) {
	d := res.Device
	lay := res.Layout

	fmt.Println(styleTitle.Render(d.PartName))
	printDetail("family %s, package %s (%s pins, %s)",
		d.ChipName, d.Package, d.PinCount, d.PackageDims)
	fmt.Println()

	printInfo("Pins: %s total", styleNumber.Render(fmt.Sprint(len(d.Pins))))
	for _, box := range lay.Boxes {
		pins := d.UnitPins(box.Unit)
		printDetail("unit %d: %3d pins, outline (%d,%d)..(%d,%d)",
			box.Unit, len(pins), box.XMin, box.YMin, box.XMax, box.YMax)
	}
	fmt.Println()

	g := lay.Groups
	printInfo("Power rails: %s AVDD, %s AVSS, %s IOVDD, %s VSS",
		styleNumber.Render(fmt.Sprint(g.AVDD)),
		styleNumber.Render(fmt.Sprint(g.AVSS)),
		styleNumber.Render(fmt.Sprint(g.IOVDD)),
		styleNumber.Render(fmt.Sprint(g.VSS)))
	printDetail("digital regulator: %v, USB regulator: %v", g.HasVSSDReg, g.HasUSBVReg)
	printDetail("anchor slot %d, lowest power slot %d", lay.Anchor, lay.VSSMax)

	if len(lay.Unclassified) > 0 {
		fmt.Println()
		printWarning("%d pin(s) matched no placement rule:", len(lay.Unclassified))
		for _, name := range lay.Unclassified {
			printDetail("%s (placed at slot 0, unit %d)", name, symbol.PowerUnit)
		}
	}
}
