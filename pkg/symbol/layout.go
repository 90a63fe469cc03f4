package symbol

// Result is the complete output of the layout engine for one device: the
// device's pins carry their final coordinates, Boxes holds one outline per
// populated unit, and Unclassified lists the names that were placed only by
// the fallback policy.
type Result struct {
	Boxes        []UnitBox
	Groups       GroupCounts
	Anchor       int
	VSSMax       int
	Unclassified []string
}

// Layout runs the full pipeline on one device: classify every pin, tally
// the power groups, assign coordinates per unit, and derive the unit
// outlines. The device's pins are mutated in place; the call is
// deterministic and running it again on a freshly parsed copy of the same
// input produces identical positions and boxes.
func Layout(d *Device, geo Geometry) Result {
	for _, p := range d.Pins {
		unit, known := Classify(p.Name)
		p.Unit = unit
		p.Unclassified = !known
	}

	counts := CountGroups(d.Pins)

	for unit := 1; unit < PowerUnit; unit++ {
		SequenceUnit(d.UnitPins(unit), unit, geo)
	}
	vssMax := PlacePower(d.UnitPins(PowerUnit), counts, geo)

	res := Result{
		Boxes:  OutlineBoxes(d, vssMax, geo),
		Groups: counts,
		Anchor: counts.Anchor(),
		VSSMax: vssMax,
	}
	for _, p := range d.Pins {
		if p.Unclassified {
			res.Unclassified = append(res.Unclassified, p.Name)
		}
	}
	return res
}
