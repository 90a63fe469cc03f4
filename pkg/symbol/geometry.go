package symbol

// Geometry holds the symbol drawing constants. All values are in EESchema
// symbol units (mils). The defaults reproduce the layout of the original
// EnergyMicro library; they can be overridden from a TOML style file via
// pkg/config.
type Geometry struct {
	// Spacing is the vertical distance between adjacent pin slots.
	Spacing int `toml:"spacing"`

	// PinLength is the length of every pin line.
	PinLength int `toml:"pin_length"`

	// TextSize is the pin name and pin number text size.
	TextSize int `toml:"text_size"`

	// BoxOffset is the vertical margin between the outermost pins and the
	// top and bottom edges of a unit outline.
	BoxOffset int `toml:"box_offset"`

	// PowerWidth is the fixed body width of the power unit (unit 4),
	// independent of its content.
	PowerWidth int `toml:"power_width"`

	// CharWidth is the horizontal space budgeted per label character when
	// sizing the GPIO unit outlines.
	CharWidth int `toml:"char_width"`

	// WidthMargin is the extra body width added beyond the longest label in
	// the GPIO units.
	WidthMargin int `toml:"width_margin"`
}

// DefaultGeometry returns the drawing constants of the original EnergyMicro
// symbol layout.
func DefaultGeometry() Geometry {
	return Geometry{
		Spacing:     100,
		PinLength:   300,
		TextSize:    50,
		BoxOffset:   150,
		PowerWidth:  1000,
		CharWidth:   45,
		WidthMargin: 300,
	}
}

// rightX returns the x coordinate of right-side pins in the power unit: the
// pin line must end exactly on the right outline edge.
func (g Geometry) rightX() int {
	return g.PowerWidth + 2*g.PinLength
}
