package symbol

import "sort"

// sortPinsNatural sorts pins in place by natural alphanumeric order of their
// names, so PA2 sorts before PA10. The sort is stable: pins with identical
// names keep their input order.
func sortPinsNatural(pins []*Pin) {
	sort.SliceStable(pins, func(i, j int) bool {
		return naturalLess(pins[i].Name, pins[j].Name)
	})
}

// RenderPins returns the device's pins in presentation order: grouped by
// unit, natural name order within each unit. For the GPIO units this equals
// slot order; for the power unit it keeps related groups adjacent in the
// emitted file.
func RenderPins(d *Device) []*Pin {
	var out []*Pin
	for unit := 1; unit <= PowerUnit; unit++ {
		pins := d.UnitPins(unit)
		sortPinsNatural(pins)
		out = append(out, pins...)
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// naturalLess reports whether a orders before b, comparing embedded digit
// runs as integers and everything else bytewise.
func naturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ai, bj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			av := trimLeadingZeros(a[ai:i])
			bv := trimLeadingZeros(b[bj:j])
			if len(av) != len(bv) {
				return len(av) < len(bv)
			}
			if av != bv {
				return av < bv
			}
			if i-ai != j-bj {
				// equal values, fewer leading zeros first
				return i-ai < j-bj
			}
			continue
		}
		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func trimLeadingZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
