package eeschema

import (
	"fmt"
	"io"
	"time"

	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// Default documentation metadata for the EnergyMicro EFM32 family.
const (
	// DefaultKeywords is the space-delimited keyword list written to each
	// $CMP block. Keywords may only contain alphanumerics and underscores.
	DefaultKeywords = "Energy Micro energymicro EFM32 32bit ARM Cortex Flash Microcontroller MCU"

	// DefaultDatasheet is the datasheet link written to each $CMP block.
	DefaultDatasheet = "http://www.energymicro.com/downloads/datasheets"
)

// DocOptions customizes the documentation entries.
type DocOptions struct {
	Keywords  string // K field; DefaultKeywords when empty
	Datasheet string // F field; DefaultDatasheet when empty
}

// DocWriter emits the EESchema-DOCLIB format.
type DocWriter struct {
	w             io.Writer
	opts          DocOptions
	headerWritten bool
}

// NewDocWriter wraps w for documentation library output.
func NewDocWriter(w io.Writer, opts DocOptions) *DocWriter {
	if opts.Keywords == "" {
		opts.Keywords = DefaultKeywords
	}
	if opts.Datasheet == "" {
		opts.Datasheet = DefaultDatasheet
	}
	return &DocWriter{w: w, opts: opts}
}

// WriteHeader emits the doc library header. Repeated calls are ignored.
func (dw *DocWriter) WriteHeader(generator string, at time.Time) error {
	if dw.headerWritten {
		return nil
	}
	dw.headerWritten = true
	_, err := fmt.Fprintf(dw.w,
		"EESchema-DOCLIB  Version 2.0  Date: %s\n#encoding utf-8\n#generated by: %s\n#\n",
		at.Format(dateFormat), generator)
	return err
}

// WriteEntry emits one device's documentation block.
func (dw *DocWriter) WriteEntry(d *symbol.Device) error {
	_, err := fmt.Fprintf(dw.w,
		"$CMP %s\nD Family: %s, Package: %s, Package size: %s\nK %s\nF %s\n$ENDCMP\n#\n",
		d.PartName, d.ChipName, d.Package, d.PackageDims, dw.opts.Keywords, dw.opts.Datasheet)
	return err
}

// WriteFooter closes the doc library file.
func (dw *DocWriter) WriteFooter() error {
	_, err := io.WriteString(dw.w, "# End Doc Library\n")
	return err
}
