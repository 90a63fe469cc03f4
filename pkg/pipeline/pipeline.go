// Package pipeline orchestrates the complete conversion: read the device
// CSVs, run the layout engine, and serialize the EESchema library files.
//
// The pipeline consists of three stages:
//
//  1. Read: parse and normalize a device CSV (pkg/emcsv)
//  2. Layout: classify, order, and position every pin (pkg/symbol)
//  3. Write: serialize the .lib and .dcm entries (pkg/eeschema)
//
// One Runner converts any number of input files into a single library/doc
// file pair, the way the original EnergyMicro library was assembled.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{
//	    LibPath: "energymicro-efm32.lib",
//	    DocPath: "energymicro-efm32.dcm",
//	}, logger)
//	results, err := runner.Convert(ctx, inputs)
package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hairykiwi/csv2kicad/pkg/buildinfo"
	"github.com/hairykiwi/csv2kicad/pkg/eeschema"
	"github.com/hairykiwi/csv2kicad/pkg/emcsv"
	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// Options configures a Runner.
type Options struct {
	// Geometry holds the symbol drawing constants. The zero value selects
	// the defaults.
	Geometry symbol.Geometry

	// Doc customizes the documentation library entries.
	Doc eeschema.DocOptions

	// LibPath and DocPath are the output library and documentation files.
	// Existing files are truncated.
	LibPath string
	DocPath string
}

// Result is the outcome of converting one input file.
type Result struct {
	Input  string
	Device *symbol.Device
	Layout symbol.Result
}

// Runner executes the conversion pipeline.
type Runner struct {
	opts   Options
	logger *log.Logger
}

// NewRunner creates a Runner. A nil logger falls back to the default
// logger.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	if opts.Geometry == (symbol.Geometry{}) {
		opts.Geometry = symbol.DefaultGeometry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{opts: opts, logger: logger}
}

// Inspect runs the read and layout stages on one file without writing any
// output. Used by the info command.
func (r *Runner) Inspect(path string) (Result, error) {
	start := time.Now()
	d, err := emcsv.ParseFile(path)
	if err != nil {
		return Result{}, err
	}
	res := symbol.Layout(d, r.opts.Geometry)
	r.logger.Debug("laid out device",
		"part", d.PartName, "pins", len(d.Pins),
		"anchor", res.Anchor, "took", time.Since(start).Round(time.Millisecond))
	return Result{Input: path, Device: d, Layout: res}, nil
}

// Convert runs the full pipeline over the given input files, appending
// every device into one library/doc file pair. Inputs are processed in
// order; the first failing file aborts the run and the partial output files
// are left in place for inspection.
func (r *Runner) Convert(ctx context.Context, inputs []string) ([]Result, error) {
	libFile, err := os.Create(r.opts.LibPath)
	if err != nil {
		return nil, err
	}
	defer libFile.Close()

	docFile, err := os.Create(r.opts.DocPath)
	if err != nil {
		return nil, err
	}
	defer docFile.Close()

	lw := eeschema.NewLibraryWriter(libFile)
	dw := eeschema.NewDocWriter(docFile, r.opts.Doc)

	now := time.Now()
	generator := buildinfo.Generator()
	if err := lw.WriteHeader(generator, now); err != nil {
		return nil, err
	}
	if err := dw.WriteHeader(generator, now); err != nil {
		return nil, err
	}

	var results []Result
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.Inspect(input)
		if err != nil {
			return results, err
		}
		for _, name := range res.Layout.Unclassified {
			r.logger.Warn("pin placed by fallback policy", "input", input, "pin", name)
		}

		if err := lw.WriteSymbol(res.Device, res.Layout.Boxes, r.opts.Geometry); err != nil {
			return results, err
		}
		if err := dw.WriteEntry(res.Device); err != nil {
			return results, err
		}
		r.logger.Info("converted device",
			"part", res.Device.PartName, "pins", len(res.Device.Pins),
			"units", len(res.Layout.Boxes))
		results = append(results, res)
	}

	if err := lw.WriteFooter(); err != nil {
		return results, err
	}
	if err := dw.WriteFooter(); err != nil {
		return results, err
	}
	return results, nil
}
