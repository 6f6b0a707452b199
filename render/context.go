package render

import (
	"github.com/npillmayer/grafigo/compass"
)

// Context is the per-step rendering context: the step's own point plus the
// directions toward its incoming and outgoing neighbors, each optional (a
// path's first/last step in an open path lacks one side).
type Context struct {
	Pt            compass.Point
	DirIn, DirOut compass.Direction
	HasIn, HasOut bool
}

// resolve looks up a bare anchor name (no "/o" suffix) against this
// context: the nine named half-cell/center points, the incoming/outgoing
// edge midpoints ({I}/{O}), and their reversed counterparts ({RI}/{RO}).
func (c Context) resolve(name string) (Vec, bool) {
	a := anchors(c.Pt)
	switch name {
	case "C", "N", "S", "E", "W", "NE", "SE", "SW", "NW":
		v, ok := a[name]
		return v, ok
	case "I":
		if !c.HasIn {
			return a["C"], true
		}
		return anchorForDirection(c.Pt, c.DirIn), true
	case "O":
		if !c.HasOut {
			return a["C"], true
		}
		return anchorForDirection(c.Pt, c.DirOut), true
	case "RI":
		if !c.HasIn {
			return a["C"], true
		}
		return anchorForDirection(c.Pt, c.DirIn.Reverse()), true
	case "RO":
		if !c.HasOut {
			return a["C"], true
		}
		return anchorForDirection(c.Pt, c.DirOut.Reverse()), true
	default:
		return Vec{}, false
	}
}
