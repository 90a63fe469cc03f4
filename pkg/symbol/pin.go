package symbol

// ElectricalType is the electrical role of a pin, using the single-letter
// codes of the EESchema library format.
type ElectricalType string

// Electrical types recognized by EESchema pin records.
const (
	Input         ElectricalType = "I"
	Output        ElectricalType = "O"
	Bidirectional ElectricalType = "B"
	Tristate      ElectricalType = "T"
	Passive       ElectricalType = "P"
	Unspecified   ElectricalType = "U"
	PowerIn       ElectricalType = "W"
	PowerOut      ElectricalType = "w"
	OpenCollector ElectricalType = "C"
	OpenEmitter   ElectricalType = "E"
	NotConnected  ElectricalType = "N"
)

// Side is the side of the unit outline a pin is attached to.
type Side int

const (
	// Left places the pin on the left edge, pointing right into the body.
	Left Side = iota
	// Right places the pin on the right edge, pointing left into the body.
	Right
)

// Orientation returns the EESchema pin orientation letter. The letter names
// the direction the pin line points, so a left-side pin is "R" and a
// right-side pin is "L".
func (s Side) Orientation() string {
	if s == Right {
		return "L"
	}
	return "R"
}

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Pin is one pin record of a device. It is created once by the reader and
// then filled in by the layout stages: Classify sets Unit; SequenceUnit or
// PlacePower set X, Y, Side, Length, and TextSize.
type Pin struct {
	ID       string // device pin designator, e.g. "17" or "A3"
	Name     string // functional name, e.g. "PA3", "AVDD_1", "RESETn"
	Function string // alternate-function description, opaque to the layout
	Type     ElectricalType

	// Display overrides Name in the rendered symbol when non-empty
	// (RESETn is drawn as ~RESET~).
	Display string

	Unit     int
	X, Y     int
	Side     Side
	Length   int
	TextSize int

	// Inverted marks pins drawn with the inversion bubble (RESETn).
	Inverted bool

	// Unclassified marks pins that matched neither a GPIO pattern nor any
	// known power-group rule and were placed by the fallback policy.
	Unclassified bool
}

// Label returns the pin name as rendered in the symbol: the display name,
// joined to the alternate-function list with a slash when one exists.
func (p *Pin) Label() string {
	name := p.Name
	if p.Display != "" {
		name = p.Display
	}
	if p.Function == "" {
		return name
	}
	return name + "/" + p.Function
}

// UnitBox is the bounding outline of one populated unit. Coordinates are in
// symbol units, derived once by OutlineBoxes and never mutated.
type UnitBox struct {
	Unit                   int
	XMin, YMin, XMax, YMax int
}

/// Device is one parsed CSV file: the descriptive header fields plus the
// ordered pin list. A Device exclusively owns its pins for the lifetime of
// one conversion.
type Device struct {
	PartName    string // e.g. "EFM32GG330F1024"
	ChipName    string // e.g. "Gecko"
	Package     string // e.g. "QFN64"
	PinCount    string // package pin count, passed through verbatim
	PackageDims string // e.g. "9mm x 9mm"

	Pins []*Pin
}

// UnitPins returns the device's pins belonging to the given unit, in input
// order.
func (d *Device) UnitPins(unit int) []*Pin {
	var pins []*Pin
	for _, p := range d.Pins {
		if p.Unit == unit {
			pins = append(pins, p)
		}
	}
	return pins
}

// MaxUnit returns the highest populated unit number, or 0 for a device with
// no pins.
func (d *Device) MaxUnit() int {
	maxUnit := 0
	for _, p := range d.Pins {
		if p.Unit > maxUnit {
			maxUnit = p.Unit
		}
	}
	return maxUnit
}
