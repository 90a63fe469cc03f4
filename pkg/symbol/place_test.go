package symbol

import "testing"

func TestPlacePowerAnchorScenario(t *testing.T) {
	// AVDD x2, IOVDD x3, RESETn, no USB pins:
	// avdd requirement = 4+2 = 6, iovdd requirement = 3+6 = 9, anchor = 9.
	geo := DefaultGeometry()
	pins := powerPins("AVDD_0", "AVDD_1", "IOVDD_0", "IOVDD_1", "IOVDD_2", "RESETn")
	c := CountGroups(pins)

	if got := c.Anchor(); got != 9 {
		t.Fatalf("anchor = %d, want 9", got)
	}
	PlacePower(pins, c, geo)

	wantSlots := map[string]int{
		"IOVDD_0": 6, // 9 - 3 + 0
		"IOVDD_1": 7,
		"IOVDD_2": 8,
		"AVDD_0":  7, // 9 - 2 + 0
		"AVDD_1":  8,
		"RESETn":  0,
	}
	for _, p := range pins {
		if got := slotOf(p, geo); got != wantSlots[p.Name] {
			t.Errorf("%s slot = %d, want %d", p.Name, got, wantSlots[p.Name])
		}
	}
}

func TestPlacePowerSides(t *testing.T) {
	geo := DefaultGeometry()
	pins := powerPins(
		"RESETn", "DECOUPLE", "IOVDD_0", "USB_VBUS", "USB_VREGI", "USB_VREGO",
		"VDD_DREG", "VSS_DREG", "VSS", "AVDD_0", "AVSS_0",
	)
	PlacePower(pins, CountGroups(pins), geo)

	wantSide := map[string]Side{
		"RESETn":    Left,
		"DECOUPLE":  Right,
		"IOVDD_0":   Right,
		"USB_VBUS":  Left,
		"USB_VREGI": Left,
		"USB_VREGO": Left,
		"VDD_DREG":  Right,
		"VSS_DREG":  Right,
		"VSS":       Right,
		"AVDD_0":    Left,
		"AVSS_0":    Left,
	}
	for _, p := range pins {
		if p.Side != wantSide[p.Name] {
			t.Errorf("%s side = %v, want %v", p.Name, p.Side, wantSide[p.Name])
		}
		wantX := 0
		if wantSide[p.Name] == Right {
			wantX = geo.rightX()
		}
		if p.X != wantX {
			t.Errorf("%s x = %d, want %d", p.Name, p.X, wantX)
		}
	}
}

func TestPlacePowerResetOverride(t *testing.T) {
	pins := powerPins("RESETn")
	pins[0].Type = Input // input type is ignored for RESETn
	PlacePower(pins, CountGroups(pins), DefaultGeometry())

	p := pins[0]
	if p.Type != Passive {
		t.Errorf("RESETn type = %s, want Passive", p.Type)
	}
	if !p.Inverted {
		t.Error("RESETn not marked inverted")
	}
	if p.Label() != "~RESET~" {
		t.Errorf("RESETn label = %q, want %q", p.Label(), "~RESET~")
	}
}

func TestPlacePowerVREGOOverride(t *testing.T) {
	pins := powerPins("USB_VREGO")
	pins[0].Type = PowerIn
	PlacePower(pins, CountGroups(pins), DefaultGeometry())

	if pins[0].Type != PowerOut {
		t.Errorf("USB_VREGO type = %s, want PowerOut", pins[0].Type)
	}
}

func TestPlacePowerVSSStack(t *testing.T) {
	geo := DefaultGeometry()
	pins := powerPins("VSS_DREG", "VSS", "VSS", "VSS_PAD", "AVSS_0")
	c := CountGroups(pins)
	// anchor = max(4, 6) = 6; dreg gap = 2.
	vssMax := PlacePower(pins, c, geo)

	// VSS block starts at anchor+3+2 = 11; three pins end at 13.
	if vssMax != 13 {
		t.Fatalf("vssMax = %d, want 13", vssMax)
	}
	wantSlots := []int{9, 11, 12, 13, 12} // VSS_DREG at anchor+3
	// AVSS_0: anchor+3+2+VSS(2)+0-AVSS(1) = 12
	for i, p := range pins {
		if got := slotOf(p, geo); got != wantSlots[i] {
			t.Errorf("%s slot = %d, want %d", p.Name, got, wantSlots[i])
		}
	}
}

func TestPlacePowerGroupIndexInputOrder(t *testing.T) {
	geo := DefaultGeometry()
	// IOVDD pins arrive out of numeric order; indices follow input order.
	pins := powerPins("IOVDD_1", "IOVDD_0")
	c := CountGroups(pins)
	PlacePower(pins, c, geo)

	// anchor = max(4, 8) = 8; slots = anchor - 2 + n in input order.
	if got := slotOf(pins[0], geo); got != 6 {
		t.Errorf("first input pin slot = %d, want 6", got)
	}
	if got := slotOf(pins[1], geo); got != 7 {
		t.Errorf("second input pin slot = %d, want 7", got)
	}
}

func TestPlacePowerUnrecognizedFallback(t *testing.T) {
	geo := DefaultGeometry()
	pins := powerPins("FOO_BAR", "VSS")
	vssMax := PlacePower(pins, CountGroups(pins), geo)

	foo := pins[0]
	if got := slotOf(foo, geo); got != 0 {
		t.Errorf("FOO_BAR slot = %d, want 0", got)
	}
	if foo.Side != Left || foo.X != 0 {
		t.Errorf("FOO_BAR placed at x=%d side=%v, want left edge", foo.X, foo.Side)
	}
	if !foo.Unclassified {
		t.Error("FOO_BAR not flagged unclassified")
	}
	if vssMax == 0 {
		t.Error("VSS placement should still drive vssMax")
	}
}
