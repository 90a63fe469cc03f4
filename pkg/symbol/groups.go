package symbol

// groupPrefixLen is the prefix length used to tally power-pin subgroups.
// Comparing the first five characters folds numeric enumerators into their
// group (AVDD_0 and AVDD_1 both count as "AVDD_") while keeping VSS_DREG
// ("VSS_D") distinct from the plain VSS pins.
const groupPrefixLen = 5

// GroupCounts aggregates the power-unit subgroup tallies that drive the
// anchor computation and the relative placement of the VSS/AVSS stacks.
type GroupCounts struct {
	AVDD  int // pins named AVDD_<n>
	AVSS  int // pins named AVSS_<n>
	IOVDD int // pins named IOVDD_<n>
	VSS   int // pins named exactly VSS

	HasVSSDReg bool // a VSS_DREG pin exists
	HasUSBVReg bool // any USB_V* pin exists (VBUS, VREGI, VREGO)
}

// CountGroups tallies the power-unit subgroups of the given pins. Pins from
// other units are ignored, so the full device pin list may be passed. Pure
// aggregation, no side effects.
func CountGroups(pins []*Pin) GroupCounts {
	tally := make(map[string]int)
	for _, p := range pins {
		if p.Unit != PowerUnit {
			continue
		}
		prefix := p.Name
		if len(prefix) > groupPrefixLen {
			prefix = prefix[:groupPrefixLen]
		}
		tally[prefix]++
	}
	return GroupCounts{
		AVDD:       tally["AVDD_"],
		AVSS:       tally["AVSS_"],
		IOVDD:      tally["IOVDD"],
		VSS:        tally["VSS"],
		HasVSSDReg: tally["VSS_D"] > 0,
		HasUSBVReg: tally["USB_V"] > 0,
	}
}

// Anchor computes the shared reference slot that vertically aligns the
// power unit's two tallest pin stacks. The AVDD chain needs room below the
// USB regulator pins when those exist; the IOVDD chain needs room below the
// fixed DECOUPLE/VDD_DREG block. The anchor is the larger of the two
// requirements, so growing either count never lowers it.
func (c GroupCounts) Anchor() int {
	avdd := 4 + c.AVDD
	if c.HasUSBVReg {
		avdd += 7
	}
	iovdd := c.IOVDD + 6
	return max(avdd, iovdd)
}
