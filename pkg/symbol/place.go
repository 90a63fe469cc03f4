package symbol

import "strings"

// placeRule is one entry of the power-unit placement policy: a name
// predicate plus the rule computing the pin's vertical slot relative to the
// anchor. Some rules also force the pin's electrical presentation (RESETn
// is always a passive inverted pin, USB_VREGO is a power output).
type placeRule struct {
	group string // rule name, also used in tests and diagnostics
	match func(name string) bool

	// slot computes the vertical slot from the group counts, the anchor,
	// and n, the zero-based index of this pin within its group in
	// input-row order.
	slot func(c GroupCounts, anchor, n int) int
	side Side

	display  string         // display name override, "" keeps the pin name
	etype    ElectricalType // electrical type override, "" keeps the input type
	inverted bool
	trackVSS bool // this rule's slots feed the power-unit height (vssMax)
}

func exactly(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

func prefixed(prefix string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

// fixedSlot ignores the counts and places every matching pin at the same
// slot.
func fixedSlot(slot int) func(GroupCounts, int, int) int {
	return func(GroupCounts, int, int) int { return slot }
}

// powerRules is the power-unit placement policy, evaluated in order with
// first match winning. Slots count downward from the unit's top edge; the
// anchor aligns the bottoms of the AVDD and IOVDD stacks.
//
// Layout, left side top to bottom: RESETn, USB_VBUS, USB_VREGI, USB_VREGO,
// then the AVDD chain ending at the anchor, then the AVSS chain below the
// VSS block. Right side: DECOUPLE, VDD_DREG, the IOVDD chain ending at the
// anchor, VSS_DREG, then the VSS/VSS_PAD block.
var powerRules = []placeRule{
	{
		group:    "RESETn",
		match:    exactly("RESETn"),
		slot:     fixedSlot(0),
		side:     Left,
		display:  "~RESET~", // doubled tildes draw the inversion bar
		etype:    Passive,
		inverted: true,
	},
	{
		group: "DECOUPLE",
		match: exactly("DECOUPLE"),
		slot:  fixedSlot(0),
		side:  Right,
	},
	{
		group: "IOVDD",
		match: prefixed("IOVDD_"),
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor - c.IOVDD + n
		},
		side: Right,
	},
	{
		group: "USB_VBUS",
		match: exactly("USB_VBUS"),
		slot:  fixedSlot(4),
		side:  Left,
	},
	{
		group: "USB_VREGI",
		match: exactly("USB_VREGI"),
		slot:  fixedSlot(6),
		side:  Left,
	},
	{
		group: "USB_VREGO",
		match: exactly("USB_VREGO"),
		slot:  fixedSlot(7),
		side:  Left,
		etype: PowerOut, // the regulator output feeds power out of the chip
	},
	{
		group: "VDD_DREG",
		match: exactly("VDD_DREG"),
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor - c.IOVDD - 2
		},
		side: Right,
	},
	{
		group: "VSS_DREG",
		match: exactly("VSS_DREG"),
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor + 3
		},
		side: Right,
	},
	{
		group: "VSS",
		match: func(name string) bool {
			return strings.HasPrefix(name, "VSS") && !strings.HasPrefix(name, "VSS_D")
		},
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor + 3 + vssDRegGap(c) + n
		},
		side:     Right,
		trackVSS: true,
	},
	{
		group: "AVDD",
		match: prefixed("AVDD_"),
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor - c.AVDD + n
		},
		side: Left,
	},
	{
		group: "AVSS",
		match: prefixed("AVSS_"),
		slot: func(c GroupCounts, anchor, n int) int {
			return anchor + 3 + vssDRegGap(c) + c.VSS + n - c.AVSS
		},
		side: Left,
	},
}

// vssDRegGap is the extra spacing pushed onto the VSS block when a VSS_DREG
// pin sits above it.
func vssDRegGap(c GroupCounts) int {
	if c.HasVSSDReg {
		return 2
	}
	return 0
}

// matchPowerRule returns the first rule matching the name, or a negative
// index when none does.
func matchPowerRule(name string) (*placeRule, int) {
	for i := range powerRules {
		if powerRules[i].match(name) {
			return &powerRules[i], i
		}
	}
	return nil, -1
}

// PlacePower assigns coordinates to the power-unit pins. Pins are visited
// in input-row order; per-group indices run in that order too. The returned
// vssMax is the deepest slot reached by the VSS/VSS_PAD block and
// determines the power unit's outline height.
//
// A pin matching no rule is placed at slot 0 on the left edge and flagged
// Unclassified rather than rejected, so an unanticipated name is visible in
// the output instead of silently lost.
func PlacePower(pins []*Pin, c GroupCounts, geo Geometry) (vssMax int) {
	anchor := c.Anchor()
	counters := make([]int, len(powerRules))

	for _, p := range pins {
		rule, i := matchPowerRule(p.Name)

		slot := 0
		side := Left
		if rule == nil {
			p.Unclassified = true
		} else {
			slot = rule.slot(c, anchor, counters[i])
			side = rule.side
			counters[i]++

			p.Display = rule.display
			if rule.etype != "" {
				p.Type = rule.etype
			}
			p.Inverted = rule.inverted
			if rule.trackVSS && slot > vssMax {
				vssMax = slot
			}
		}

		p.X = 0
		if side == Right {
			p.X = geo.rightX()
		}
		p.Y = -geo.Spacing * slot
		p.Side = side
		p.Length = geo.PinLength
		p.TextSize = geo.TextSize
	}
	return vssMax
}
