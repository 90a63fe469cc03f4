// Package pkg provides the core libraries for converting EnergyMicro pin
// CSV tables into KiCad symbol libraries.
//
// # Overview
//
// The pkg directory is organized along the conversion pipeline:
//
//  1. [emcsv] - Read and normalize the semicolon-separated device tables
//  2. [symbol] - Classify, order, and position every pin of a device
//  3. [eeschema] - Serialize the legacy .lib and .dcm library formats
//  4. [pipeline] - Orchestration (read → layout → write)
//
// Supporting packages: [config] loads the optional TOML style file,
// [errors] defines coded errors shared across the pipeline, and
// [buildinfo] carries the ldflags version stamped into generated files.
//
// # Architecture
//
// The typical data flow:
//
//	EFM32 pin CSV
//	         ↓
//	    [emcsv] package (parse header rows + pin rows, normalize names)
//	         ↓
//	    [symbol] package (unit classification, ordering, coordinates)
//	         ↓
//	    [eeschema] package (DEF/X/S records, $CMP doc entries)
//	         ↓
//	    .lib + .dcm output
//
// # Quick Start
//
// Convert one device file:
//
//	runner := pipeline.NewRunner(pipeline.Options{
//	    LibPath: "efm32tg108.lib",
//	    DocPath: "efm32tg108.dcm",
//	}, logger)
//	results, err := runner.Convert(ctx, []string{"efm32tg108.csv"})
//
// Or drive the stages directly:
//
//	device, _ := emcsv.ParseFile("efm32tg108.csv")
//	layout := symbol.Layout(device, symbol.DefaultGeometry())
//
// [emcsv]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/emcsv
// [symbol]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/symbol
// [eeschema]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/eeschema
// [pipeline]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/config
// [errors]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/hairykiwi/csv2kicad/pkg/buildinfo
package pkg
