package builtin

import (
	"sync"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/ruleset"
)

var (
	demoOnce  sync.Once
	demoTable *ruleset.Table

	originalOnce  sync.Once
	originalTable *ruleset.Table
)

// Demo returns the small built-in table: straight lines in all four
// orientations ('-', '|', '/', '\'), a universal junction ('+'), a pair
// of curve-transition corners ('.', '\''), and a single arrowhead
// ('>'). Enough to demonstrate the rule language without the breadth
// of Original.
func Demo() *ruleset.Table {
	demoOnce.Do(func() {
		demoTable = buildDemo()
	})
	return demoTable
}

func buildDemo() *ruleset.Table {
	tbl := ruleset.NewTable()
	straight(tbl, '-', compass.E, compass.W)
	straight(tbl, '|', compass.N, compass.S)
	straight(tbl, '/', compass.NE, compass.SW)
	straight(tbl, '\\', compass.NW, compass.SE)
	hub(tbl, '+', ruleset.AllDirs, "M {C}", "M {C}", "L {C}")
	endsAt(tbl, '+', ruleset.AllDirs, "L {C}")
	hub(tbl, '.', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")
	hub(tbl, '\'', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")
	arrow(tbl, '>', compass.E)
	return tbl.Freeze()
}

// Original returns the full built-in table: everything Demo covers,
// plus dashed lines ('=', ':'), small and large circle joins ('o',
// 'O'), diamond sides ('(', ')'), box-drawing straights, corners and
// junctions ('─', '│', '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼'),
// and the remaining three arrowhead directions ('<', '^', 'v').
func Original() *ruleset.Table {
	originalOnce.Do(func() {
		originalTable = buildOriginal()
	})
	return originalTable
}

func buildOriginal() *ruleset.Table {
	tbl := ruleset.NewTable()

	// The Demo glyph set, rebuilt here rather than shared, so the two
	// tables stay independently constructed values.
	straight(tbl, '-', compass.E, compass.W)
	straight(tbl, '|', compass.N, compass.S)
	straight(tbl, '/', compass.NE, compass.SW)
	straight(tbl, '\\', compass.NW, compass.SE)
	hub(tbl, '+', ruleset.AllDirs, "M {C}", "M {C}", "L {C}")
	endsAt(tbl, '+', ruleset.AllDirs, "L {C}")
	hub(tbl, '.', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")
	hub(tbl, '\'', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")
	arrow(tbl, '>', compass.E)

	// Dashed variants: same geometry as '-'/'|', a stroke-dasharray
	// attribute is the only difference.
	dashed := ruleset.Attr{Name: "stroke-dasharray", Value: "5,2"}
	straight(tbl, '=', compass.E, compass.W, dashed)
	straight(tbl, ':', compass.N, compass.S, dashed)

	// Circle joins: rendered as an inward-offset arc through the
	// cell, the same {X/o} placeholder form used for the joining
	// template regardless of loop/step.
	hub(tbl, 'o', ruleset.AllDirs, "M {I/o}", "A 1.5,1.5 0 1,0 {I/o}", "A 1.5,1.5 0 1,0 {O/o}")
	hub(tbl, 'O', ruleset.AllDirs, "M {I/o}", "A 3,3 0 1,0 {I/o}", "A 3,3 0 1,0 {O/o}")

	// A circle may also be a bare bullet with nothing past it: one
	// May-constrained entry covers both "continues" and "dead end"
	// without needing hub's separate Step/End split.
	optionalContinuation(tbl, 'o', ruleset.AllDirs, "A 1.5,1.5 0 1,0 {O/o}")
	optionalContinuation(tbl, 'O', ruleset.AllDirs, "A 3,3 0 1,0 {O/o}")

	// Diamond sides bulge through the cell in any direction pairing,
	// same shape as the curve-transition hubs.
	hub(tbl, '(', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")
	hub(tbl, ')', ruleset.AllDirs, "M {C}", "Q {C} {O}", "Q {C} {O}")

	// Box-drawing straights.
	straight(tbl, '─', compass.E, compass.W)
	straight(tbl, '│', compass.N, compass.S)

	// Box-drawing corners: each connects exactly two directions and gets
	// a Start/Loop/Step trio restricted to those two.
	corner(tbl, '┌', compass.S, compass.E)
	corner(tbl, '┐', compass.S, compass.W)
	corner(tbl, '└', compass.N, compass.E)
	corner(tbl, '┘', compass.N, compass.W)

	// Box-drawing junctions: three- and four-way hubs.
	hub(tbl, '├', ruleset.Dirs(compass.N, compass.S, compass.E), "M {C}", "M {C}", "L {C}")
	hub(tbl, '┤', ruleset.Dirs(compass.N, compass.S, compass.W), "M {C}", "M {C}", "L {C}")
	hub(tbl, '┬', ruleset.Dirs(compass.S, compass.E, compass.W), "M {C}", "M {C}", "L {C}")
	hub(tbl, '┴', ruleset.Dirs(compass.N, compass.E, compass.W), "M {C}", "M {C}", "L {C}")
	hub(tbl, '┼', ruleset.AllDirs, "M {C}", "M {C}", "L {C}")

	// A line may also run into a junction and stop there.
	for _, junction := range "├┤┬┴┼" {
		endsAt(tbl, junction, ruleset.AllDirs, "L {C}")
	}

	// Remaining arrowhead directions.
	arrow(tbl, '<', compass.W)
	arrow(tbl, '^', compass.N)
	arrow(tbl, 'v', compass.S)

	return tbl.Freeze()
}
