package symbol

import "strings"

// secondBank names the prefix of the second GPIO bank within each of the
// three GPIO units. One blank slot is inserted before the first pin of that
// bank to visually separate it from the first bank.
var secondBank = map[int]string{
	1: "PB",
	2: "PD",
	3: "PF",
}

// bankState is the accumulator for slot assignment within one unit. It is
// created per SequenceUnit call; nothing is shared across units.
type bankState struct {
	slot  int  // next vertical slot to assign
	split bool // the bank separator has been inserted
}

// SequenceUnit orders the pins of one GPIO unit (1-3) and assigns their
// coordinates. Pins are sorted into natural alphanumeric order, then placed
// on the left edge at one slot per pin, top to bottom. The first pin of the
// unit's second bank (PB, PD, or PF) gets one extra blank slot before it.
//
// The given slice is sorted and its pins mutated in place. A unit with no
// pins is a no-op.
func SequenceUnit(pins []*Pin, unit int, geo Geometry) {
	sortPinsNatural(pins)

	st := bankState{}
	for _, p := range pins {
		if !st.split && strings.HasPrefix(p.Name, secondBank[unit]) {
			st.split = true
			st.slot++ // blank separator row, never emitted as a pin
		}
		p.X = 0
		p.Y = -geo.Spacing * st.slot
		p.Side = Left
		p.Length = geo.PinLength
		p.TextSize = geo.TextSize
		st.slot++
	}
}
