/*
Package builtin supplies the two ready-made ruleset.Table values grafigo
ships with: a small Demo table covering the handful of glyphs needed to
demonstrate the rule language, and a larger Original table covering the
fuller glyph repertoire of classic ASCII-art diagrams, including
box-drawing Unicode, dashed lines, circle joins, diamond sides, and
directional arrowheads.

Both tables are built with the in-memory builder functions
(ruleset.Step, ruleset.Loop, ruleset.StartEntry, ruleset.EndEntry), not
the textual DSL, since several entries need ruleset.May constraints the
DSL cannot express.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtin

import (
	"fmt"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/ruleset"
)

// straight registers a 2-direction line character (e.g. '-' running
// E/W, '/' running NE/SW): one Start, one Step, one End entry, each
// accepting either direction on the unconstrained side so a single
// triple covers travel in both directions. Start and End anchor at the
// cell's outer edge ({RO}/{RI}) rather than its center, so a lone
// stroke spans its full cells instead of stopping half a cell short.
func straight(tbl *ruleset.Table, ch rune, a, b compass.Direction, attrs ...ruleset.Attr) {
	both := ruleset.Dirs(a, b)
	tbl.MustAppend(ruleset.StartEntry(ruleset.Char(ch), both, ruleset.Any(), "M {RO}", attrs...))
	tbl.MustAppend(ruleset.Step(ruleset.Any(), both, ruleset.Char(ch), both, ruleset.Any(), "L {C}", attrs...))
	tbl.MustAppend(ruleset.EndEntry(ruleset.Any(), both, ruleset.Char(ch), "L {RI}", attrs...))
}

// corner registers a fixed 90°-turn character (e.g. box-drawing '┌',
// which only ever connects south and east) as a sharp, straight-line
// join: a hub restricted to exactly the two directions the glyph
// draws, rendered with "L" segments rather than the "Q" curve a
// rounded hub ('.', '\'') uses, since a right-angle box-drawing corner
// has no curvature. Row-major scanning can hit any of a rectangle's
// corners first, so it needs the same Start/Loop/Step trio as hub.
func corner(tbl *ruleset.Table, ch rune, d1, d2 compass.Direction, attrs ...ruleset.Attr) {
	hub(tbl, ch, ruleset.Dirs(d1, d2), "M {C}", "L {C}", "L {C}", attrs...)
}

// hub registers a character that can open, close, or merely pass
// through a path in any of the directions named by ds: a junction
// ('+', box-drawing '┼'), a curve transition ('.', '\''), or a circle
// join ('o', 'O'). Three entries: Start, Loop (closing a path here),
// and Step (an interior pass-through).
func hub(tbl *ruleset.Table, ch rune, ds ruleset.DirSet, startTmpl, loopTmpl, stepTmpl string, attrs ...ruleset.Attr) {
	tbl.MustAppend(ruleset.StartEntry(ruleset.Char(ch), ds, ruleset.Any(), startTmpl, attrs...))
	tbl.MustAppend(ruleset.Loop(ruleset.Any(), ds, ruleset.Char(ch), ds, ruleset.Any(), loopTmpl, attrs...))
	tbl.MustAppend(ruleset.Step(ruleset.Any(), ds, ruleset.Char(ch), ds, ruleset.Any(), stepTmpl, attrs...))
}

// arrow registers a directional arrowhead glyph pointing along dir
// (e.g. '>' points E): a Start entry for an arrow whose shaft leaves
// away from its tip ("<---"), an End entry for one terminating a path
// pointing into it ("--->"), and a Step entry for one sitting at a
// mid-path join ("-->--"). Each template draws the two barbs with
// relative sub-commands and returns the pen to where it started.
func arrow(tbl *ruleset.Table, ch rune, dir compass.Direction, attrs ...ruleset.Attr) {
	opp := dir.Reverse()
	head := arrowhead(dir)
	tbl.MustAppend(ruleset.StartEntry(ruleset.Char(ch), ruleset.Dirs(opp), ruleset.Any(), "M {C} "+head, attrs...))
	tbl.MustAppend(ruleset.EndEntry(ruleset.Any(), ruleset.Dirs(opp), ruleset.Char(ch), "L {C} "+head, attrs...))
	tbl.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(opp), ruleset.Char(ch), ruleset.Dirs(dir), ruleset.Any(), "L {C} "+head, attrs...))
}

// arrowhead builds the relative path-data fragment for a barbed tip
// pointing along dir: extend the stroke three units past the anchor,
// jump to one barb root, draw both barbs through the tip, and move back
// onto the stroke's axis so that subsequent commands continue cleanly.
// For E this expands to "l 3,0 m -3,-3 l 3,3 l -3,3 m 0,-3".
func arrowhead(dir compass.Direction) string {
	ux, uy := dir.HorEast(), dir.VerNorth()
	px, py := -uy, ux // perpendicular, a quarter-turn clockwise
	return fmt.Sprintf("l %d,%d m %d,%d l %d,%d l %d,%d m %d,%d",
		3*ux, 3*uy,
		-3*ux-3*px, -3*uy-3*py,
		3*ux+3*px, 3*uy+3*py,
		-3*ux+3*px, -3*uy+3*py,
		-3*px, -3*py)
}

// endsAt registers a bare End entry for a glyph that may terminate an open
// path, e.g. a line running into a junction with nothing beyond it.
func endsAt(tbl *ruleset.Table, ch rune, ds ruleset.DirSet, template string, attrs ...ruleset.Attr) {
	tbl.MustAppend(ruleset.EndEntry(ruleset.Any(), ds, ruleset.Char(ch), template, attrs...))
}

// optionalContinuation registers a single Entry for a glyph that may sit at
// a dead end (a circle drawn as a bare bullet with nothing past it) or may
// continue on into a further segment — one ruleset.May-constrained Entry
// standing in for what would otherwise need separate Step and End entries,
// since May accepts both a present and a missing neighbor on its side. Not
// expressible through Step/Loop/StartEntry/EndEntry, which always build
// Must or Blank neighbors; built directly from the Entry struct.
func optionalContinuation(tbl *ruleset.Table, ch rune, ds ruleset.DirSet, template string, attrs ...ruleset.Attr) {
	tbl.MustAppend(ruleset.Entry{
		In:       ruleset.Must(ruleset.Any(), ds),
		Current:  ruleset.Char(ch),
		Out:      ruleset.May(ruleset.Any(), ds),
		Template: template,
		Attrs:    attrs,
	})
}
