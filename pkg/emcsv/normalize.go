package emcsv

import (
	"fmt"
	"strings"

	"github.com/hairykiwi/csv2kicad/pkg/symbol"
)

// NormalizeFunction rewrites an alternate-function description to the
// character set EESchema pin names accept. Spaces around the function
// separators are dropped, location suffixes keep their hash attached, and
// commas become dashes; whatever spaces remain turn into underscores.
//
//	"I2C0_SDA #0 / TIM0_CC0 #0,1,4" -> "I2C0_SDA_#0/TIM0_CC0_#0-1-4"
func NormalizeFunction(s string) string {
	s = strings.ReplaceAll(s, " #", "_#")
	s = strings.ReplaceAll(s, " / ", "/")
	s = strings.ReplaceAll(s, ",", "-")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// wordTypes maps the pin-type words used in the EnergyMicro CSVs to
// electrical types. Matched case-insensitively.
var wordTypes = map[string]symbol.ElectricalType{
	"unknown": symbol.Unspecified,
	"power":   symbol.PowerIn,
	"passive": symbol.Passive,
}

// letterTypes holds the EESchema single-letter codes, accepted verbatim.
// Case matters here: W is power input, w is power output.
var letterTypes = map[string]symbol.ElectricalType{
	"I": symbol.Input,
	"O": symbol.Output,
	"B": symbol.Bidirectional,
	"T": symbol.Tristate,
	"P": symbol.Passive,
	"U": symbol.Unspecified,
	"W": symbol.PowerIn,
	"w": symbol.PowerOut,
	"C": symbol.OpenCollector,
	"E": symbol.OpenEmitter,
	"N": symbol.NotConnected,
}

// ParseElectricalType maps a pin-type cell to its electrical type. Both the
// EnergyMicro words (Unknown, Power, Passive) and the EESchema letter codes
// are accepted. An empty cell maps to Unspecified.
func ParseElectricalType(s string) (symbol.ElectricalType, error) {
	if s == "" {
		return symbol.Unspecified, nil
	}
	if t, ok := wordTypes[strings.ToLower(s)]; ok {
		return t, nil
	}
	if t, ok := letterTypes[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown pin type %q", s)
}
