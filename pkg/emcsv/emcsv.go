// Package emcsv reads the EnergyMicro EFM32 pin-description CSV dialect.
//
// The expected layout matches the CSV files shipped with Energy Micro's
// AN0002 application note: a semicolon-delimited header block describing
// the device, followed by one row per pin.
//
//	//--------------------------------------------------------------
//	// Part name;EFM32GG330F1024
//	// Chip name;Gecko
//	// Package;QFN64
//	// Package type;QFN
//	// Pin count;64
//	// Package dimensions;9mm x 9mm
//	//--------------------------------------------------------------
//	// Pins
//	// Pin id;Pin name;Pin type;Functionality
//	1;PA0;Unknown;GPIO_EM4WU0 / I2C0_SDA #0 / TIM0_CC0 #0,1,4
//	...
//
// The reader extracts the device fields, normalizes the free-text
// functionality column to the character set EESchema accepts, and maps the
// pin-type words to their single-letter electrical types. A pin row missing
// its id or name is a hard error; everything past that point is the layout
// engine's concern (pkg/symbol).
package emcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hairykiwi/csv2kicad/pkg/errors"
	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// Header block row indexes (zero-based) within the CSV file.
const (
	rowPartName    = 1
	rowChipName    = 2
	rowPackage     = 3
	rowPinCount    = 5
	rowPackageDims = 6

	// Pin rows start after the header block; comment rows among them are
	// skipped by marker.
	rowFirstPin = 9
)

// commentMarker anchors the header and separator rows of the dialect.
const commentMarker = "//"

// ParseFile reads and parses one device CSV file.
func ParseFile(path string) (*symbol.Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Parse reads one device description from r.
func Parse(r io.Reader) (*symbol.Device, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedCSV, err, "read csv")
	}
	if len(records) <= rowFirstPin {
		return nil, errors.New(errors.ErrCodeMalformedCSV,
			"file too short: %d rows, expected a header block plus pin rows", len(records))
	}

	d := &symbol.Device{}
	headerFields := []struct {
		row   int
		label string
		dst   *string
	}{
		{rowPartName, "part name", &d.PartName},
		{rowChipName, "chip name", &d.ChipName},
		{rowPackage, "package", &d.Package},
		{rowPinCount, "pin count", &d.PinCount},
		{rowPackageDims, "package dimensions", &d.PackageDims},
	}
	for _, hf := range headerFields {
		v, err := headerValue(records, hf.row, hf.label)
		if err != nil {
			return nil, err
		}
		*hf.dst = v
	}

	for i := rowFirstPin; i < len(records); i++ {
		rec := records[i]
		if isComment(rec) {
			continue
		}
		pin, err := parsePinRow(rec, i+1)
		if err != nil {
			return nil, err
		}
		d.Pins = append(d.Pins, pin)
	}
	if len(d.Pins) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedCSV, "no pin rows found")
	}
	return d, nil
}

// headerValue extracts the second column of a fixed header row.
func headerValue(records [][]string, row int, label string) (string, error) {
	if len(records[row]) < 2 {
		return "", errors.New(errors.ErrCodeMissingHeader,
			"row %d: missing %s value", row+1, label)
	}
	v := strings.TrimSpace(records[row][1])
	if v == "" {
		return "", errors.New(errors.ErrCodeMissingHeader,
			"row %d: empty %s value", row+1, label)
	}
	return v, nil
}

// isComment reports whether a record is a comment, separator, or blank row.
func isComment(rec []string) bool {
	if len(rec) == 0 {
		return true
	}
	first := strings.TrimSpace(rec[0])
	return first == "" || strings.HasPrefix(first, commentMarker)
}

// parsePinRow builds one Pin from a data row. row is the one-based file row
// used in error messages.
func parsePinRow(rec []string, row int) (*symbol.Pin, error) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	id := field(0)
	name := field(1)
	if id == "" {
		return nil, errors.New(errors.ErrCodeMalformedRow, "row %d: missing pin id", row)
	}
	if name == "" {
		return nil, errors.New(errors.ErrCodeMalformedRow, "row %d: missing pin name", row)
	}

	etype, err := ParseElectricalType(field(2))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPinType, err, "row %d: pin %s", row, name)
	}

	return &symbol.Pin{
		ID:       id,
		Name:     name,
		Type:     etype,
		Function: NormalizeFunction(field(3)),
	}, nil
}
