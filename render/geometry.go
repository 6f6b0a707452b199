/*
Package render implements grafigo's rendering interface: per-step context
assembly against a ruleset.Table, template placeholder expansion into SVG
path-data fragments, and Attr merging onto the produced elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"fmt"

	"github.com/npillmayer/grafigo/compass"
)

// Cell width and height in SVG user units. Fixed, matching the pack's
// convention of hard-coding small integer geometry constants rather than
// making cell size configurable (out of scope here).
const (
	CellWidth  = 9.0
	CellHeight = 12.0
)

// offsetFraction is how far an "/o" placeholder (e.g. "{I/o}") moves its
// anchor toward the cell center, used for circle-join rendering.
const offsetFraction = 1.0 / 3.0

// Vec is a single SVG-space coordinate.
type Vec struct {
	X, Y float64
}

func (v Vec) String() string {
	return fmt.Sprintf("%g,%g", v.X, v.Y)
}

// origin returns the top-left SVG-space corner of the cell at p.
func origin(p compass.Point) Vec {
	return Vec{X: float64(p.Col-1) * CellWidth, Y: float64(p.Row-1) * CellHeight}
}

// anchors computes the nine named anchor points of the cell at p: its
// center and eight half-cell compass points.
func anchors(p compass.Point) map[string]Vec {
	o := origin(p)
	halfW, halfH := CellWidth/2, CellHeight/2
	return map[string]Vec{
		"C":  {o.X + halfW, o.Y + halfH},
		"N":  {o.X + halfW, o.Y},
		"S":  {o.X + halfW, o.Y + CellHeight},
		"E":  {o.X + CellWidth, o.Y + halfH},
		"W":  {o.X, o.Y + halfH},
		"NE": {o.X + CellWidth, o.Y},
		"SE": {o.X + CellWidth, o.Y + CellHeight},
		"SW": {o.X, o.Y + CellHeight},
		"NW": {o.X, o.Y},
	}
}

// anchorForDirection returns the named half-cell anchor a direction points
// toward, i.e. anchorForDirection(compass.N) == anchors(p)["N"].
func anchorForDirection(p compass.Point, d compass.Direction) Vec {
	return anchors(p)[d.String()]
}

// inward moves v a fixed fraction of the way from v toward center, for
// "/o"-suffixed offset placeholders.
func inward(v, center Vec) Vec {
	return Vec{
		X: v.X + (center.X-v.X)*offsetFraction,
		Y: v.Y + (center.Y-v.Y)*offsetFraction,
	}
}
