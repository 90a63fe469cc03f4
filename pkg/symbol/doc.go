// Package symbol implements the pin classification, ordering, and
// coordinate-layout engine for EFM32 schematic symbols.
//
// Given a flat list of pin records parsed from an EnergyMicro device CSV,
// the package assigns each pin to one of four logical units, orders pins
// within each unit, computes exact 2-D placement (position, side, pin
// length, text size), and derives the bounding outline of each unit:
//
//	Unit 1: PAx/PBx GPIO pins
//	Unit 2: PCx/PDx GPIO pins
//	Unit 3: PEx/PFx GPIO pins
//	Unit 4: power and special-function pins
//
// # Pipeline
//
// The stages compose strictly in order and are pure functions of one
// device's pins:
//
//  1. Classify: map each pin name to a unit (classify.go)
//  2. CountGroups: tally power-pin subgroups (groups.go)
//  3. SequenceUnit / PlacePower: assign vertical slots and coordinates
//     (sequence.go, place.go)
//  4. OutlineBoxes: derive each unit's bounding rectangle (outline.go)
//
// Layout runs the whole pipeline:
//
//	boxes := symbol.Layout(device, symbol.DefaultGeometry())
//
// The engine performs no I/O. Reading the CSV dialect is the job of
// pkg/emcsv; serializing to the EESchema library format is the job of
// pkg/eeschema.
package symbol
