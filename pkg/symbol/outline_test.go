package symbol

import "testing"

func TestOutlineGPIO(t *testing.T) {
	geo := DefaultGeometry()
	pins := []*Pin{
		{Name: "PA0", Function: "US0_TX", Unit: 1},
		{Name: "PA1", Function: "", Unit: 1},
		{Name: "PB0", Function: "LONGEST_FUNCTION_HERE", Unit: 1},
	}
	d := &Device{Pins: pins}

	boxes := OutlineBoxes(d, 0, geo)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	box := boxes[0]

	// Width follows the longest name+function: PB0 + 21 chars = 24.
	wantXMax := 24*geo.CharWidth + geo.WidthMargin + geo.PinLength
	if box.XMax != wantXMax {
		t.Errorf("XMax = %d, want %d", box.XMax, wantXMax)
	}
	if box.XMin != geo.PinLength {
		t.Errorf("XMin = %d, want %d", box.XMin, geo.PinLength)
	}
	if box.YMax != geo.BoxOffset {
		t.Errorf("YMax = %d, want %d", box.YMax, geo.BoxOffset)
	}
	// Height follows the pin count.
	wantYMin := -(geo.Spacing*3 + geo.BoxOffset)
	if box.YMin != wantYMin {
		t.Errorf("YMin = %d, want %d", box.YMin, wantYMin)
	}
}

func TestOutlinePowerFixedWidth(t *testing.T) {
	geo := DefaultGeometry()
	d := &Device{Pins: []*Pin{
		{Name: "AVDD_0_WITH_A_VERY_LONG_NAME", Unit: PowerUnit},
	}}

	boxes := OutlineBoxes(d, 13, geo)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	box := boxes[0]

	// Power unit width is independent of content.
	if box.XMax != geo.PowerWidth+geo.PinLength {
		t.Errorf("XMax = %d, want %d", box.XMax, geo.PowerWidth+geo.PinLength)
	}
	if want := -(geo.Spacing*13 + geo.BoxOffset); box.YMin != want {
		t.Errorf("YMin = %d, want %d", box.YMin, want)
	}
}

func TestOutlineBoxesSkipsEmptyUnits(t *testing.T) {
	d := &Device{Pins: []*Pin{
		{Name: "PA0", Unit: 1},
		{Name: "VSS", Unit: PowerUnit},
	}}
	boxes := OutlineBoxes(d, 5, DefaultGeometry())

	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(boxes))
	}
	if boxes[0].Unit != 1 || boxes[1].Unit != PowerUnit {
		t.Errorf("box units = %d, %d; want 1, 4", boxes[0].Unit, boxes[1].Unit)
	}
}
