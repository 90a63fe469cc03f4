// Package eeschema serializes laid-out devices into the legacy EESchema
// library text formats: the symbol library (.lib) and its companion
// documentation library (.dcm).
//
// The writers are append-oriented: one writer emits a file header once,
// then any number of device blocks, then a footer, so several devices can
// share one library file.
package eeschema

import (
	"fmt"
	"io"
	"time"

	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// dateFormat is the timestamp layout of the EESchema file headers.
const dateFormat = "2006-01-02 15:04:05"

// LibraryWriter emits the EESchema-LIBRARY format.
type LibraryWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewLibraryWriter wraps w for library output.
func NewLibraryWriter(w io.Writer) *LibraryWriter {
	return &LibraryWriter{w: w}
}

// WriteHeader emits the library file header. Repeated calls are ignored, so
// callers appending several devices can call it unconditionally.
func (lw *LibraryWriter) WriteHeader(generator string, at time.Time) error {
	if lw.headerWritten {
		return nil
	}
	lw.headerWritten = true
	_, err := fmt.Fprintf(lw.w,
		"EESchema-LIBRARY Version 2.3 Date: %s\n#encoding utf-8\n#generated by: %s\n#\n",
		at.Format(dateFormat), generator)
	return err
}

// WriteSymbol emits one device as a multi-unit component definition: the
// DEF block with reference and value fields, the footprint list, and a DRAW
// section holding the unit outlines followed by every pin record.
func (lw *LibraryWriter) WriteSymbol(d *symbol.Device, boxes []symbol.UnitBox, geo symbol.Geometry) error {
	refX := 30 + geo.PinLength
	refY := 30 + geo.BoxOffset
	nameX := 330 + geo.PinLength

	if _, err := fmt.Fprintf(lw.w, "# %s\n#\n", d.PartName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(lw.w, "DEF %s U 0 40 Y Y %d L N\n", d.PartName, d.MaxUnit()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(lw.w, "F0 \"U\" %d %d 60 H V L BNN\n", refX, refY); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(lw.w, "F1 \"%s\" %d %d 60 H V L BNN\n", d.PartName, nameX, refY); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(lw.w, "$FPLIST\n %s\n$ENDFPLIST\n", d.Package); err != nil {
		return err
	}
	if _, err := io.WriteString(lw.w, "DRAW\n"); err != nil {
		return err
	}
	for _, b := range boxes {
		if err := lw.writeBox(b); err != nil {
			return err
		}
	}
	for _, p := range symbol.RenderPins(d) {
		if err := lw.writePin(p); err != nil {
			return err
		}
	}
	_, err := io.WriteString(lw.w, "ENDDRAW\nENDDEF\n#\n")
	return err
}

// writeBox emits one unit outline rectangle.
func (lw *LibraryWriter) writeBox(b symbol.UnitBox) error {
	_, err := fmt.Fprintf(lw.w, "S %d %d %d %d %d 1 0 N\n",
		b.XMin, b.YMax, b.XMax, b.YMin, b.Unit)
	return err
}

// writePin emits one pin record. The trailing shape letter appears only for
// inverted pins.
func (lw *LibraryWriter) writePin(p *symbol.Pin) error {
	shape := ""
	if p.Inverted {
		shape = " I"
	}
	_, err := fmt.Fprintf(lw.w, "X %s %s %d %d %d %s %d %d %d 1 %s%s\n",
		p.Label(), p.ID, p.X, p.Y, p.Length, p.Side.Orientation(),
		p.TextSize, p.TextSize, p.Unit, p.Type, shape)
	return err
}

// WriteFooter closes the library file.
func (lw *LibraryWriter) WriteFooter() error {
	_, err := io.WriteString(lw.w, "# End Library\n")
	return err
}
