package symbol

// outlineGPIO derives the bounding box of one GPIO unit (1-3). The width
// follows the longest rendered label; the height follows the pin count, so
// the separator slot inserted between the two banks is covered by the
// bottom margin.
func outlineGPIO(unit int, pins []*Pin, geo Geometry) UnitBox {
	maxLen := 0
	for _, p := range pins {
		if n := len(p.Name) + len(p.Function); n > maxLen {
			maxLen = n
		}
	}
	return UnitBox{
		Unit: unit,
		XMin: geo.PinLength,
		YMax: geo.BoxOffset,
		XMax: maxLen*geo.CharWidth + geo.WidthMargin + geo.PinLength,
		YMin: -(geo.Spacing*len(pins) + geo.BoxOffset),
	}
}

// outlinePower derives the bounding box of the power unit. Its width is
// fixed regardless of content; its height follows the deepest slot of the
// VSS block, which is always the bottom of the layout.
func outlinePower(vssMax int, geo Geometry) UnitBox {
	return UnitBox{
		Unit: PowerUnit,
		XMin: geo.PinLength,
		YMax: geo.BoxOffset,
		XMax: geo.PowerWidth + geo.PinLength,
		YMin: -(geo.Spacing*vssMax + geo.BoxOffset),
	}
}

// OutlineBoxes derives one bounding box per populated unit, in unit order.
// Empty units are omitted. Placement must already be final: vssMax is the
// value returned by PlacePower.
func OutlineBoxes(d *Device, vssMax int, geo Geometry) []UnitBox {
	var boxes []UnitBox
	for unit := 1; unit <= PowerUnit; unit++ {
		pins := d.UnitPins(unit)
		if len(pins) == 0 {
			continue
		}
		if unit == PowerUnit {
			boxes = append(boxes, outlinePower(vssMax, geo))
		} else {
			boxes = append(boxes, outlineGPIO(unit, pins, geo))
		}
	}
	return boxes
}
