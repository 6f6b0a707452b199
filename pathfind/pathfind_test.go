package pathfind

import (
	"testing"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// lineTable builds a minimal table for straight horizontal '-' runs:
// start, step (both directions), and end.
func lineTable() *ruleset.Table {
	t := ruleset.NewTable()
	t.MustAppend(ruleset.StartEntry(ruleset.Char('-'), ruleset.Dirs(compass.E), ruleset.Char('-'), "M {W}"))
	t.MustAppend(ruleset.Step(ruleset.Char('-'), ruleset.Dirs(compass.W), ruleset.Char('-'), ruleset.Dirs(compass.E), ruleset.Char('-'), "L {E}"))
	t.MustAppend(ruleset.EndEntry(ruleset.Char('-'), ruleset.Dirs(compass.W), ruleset.Char('-'), "L {E}"))
	return t
}

func TestHorizontalLineScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse("---")
	f := NewFinder(g, lineTable())
	paths := f.Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	p := paths[0]
	if p.Closed {
		t.Errorf("expected an open path")
	}
	if len(p.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(p.Steps))
	}
	for _, s := range p.Steps {
		if s.Ch != '-' {
			t.Errorf("unexpected step char %q", s.Ch)
		}
	}
}

// rectangleTable builds a minimal table covering the simple-rectangle
// scenario's corners ('.', '\'' — each both a start/loop-start anchor and a
// plain turning point for the other three corners of the same shape) and
// sides ('-', '|').
func rectangleTable() *ruleset.Table {
	t := ruleset.NewTable()
	// '.' initiates a path heading east (the top-left corner, scanned first).
	t.MustAppend(ruleset.StartEntry(ruleset.Char('.'), ruleset.Dirs(compass.E), ruleset.Char('-'), "M {C}"))
	// '.' also closes a loop: arrives from any direction, reopens heading east.
	t.MustAppend(ruleset.Loop(ruleset.Any(), ruleset.AllDirs, ruleset.Char('.'), ruleset.Dirs(compass.E), ruleset.Char('-'), "M {C}"))
	// '.' as a plain turning point when it is NOT the path's own start (the
	// top-right corner, reached mid-path).
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('.'), ruleset.AllDirs, ruleset.Any(), "Q {C}"))
	// Horizontal sides, travelling either way.
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.W), ruleset.Char('-'), ruleset.Dirs(compass.E), ruleset.Any(), "L {E}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.E), ruleset.Char('-'), ruleset.Dirs(compass.W), ruleset.Any(), "L {W}"))
	// Vertical sides.
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.N), ruleset.Char('|'), ruleset.Dirs(compass.S), ruleset.Any(), "L {S}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.S), ruleset.Char('|'), ruleset.Dirs(compass.N), ruleset.Any(), "L {N}"))
	// '\'' (bottom-right and bottom-left corners): always a plain turning
	// point here, since the scan never starts there for this input.
	t.MustAppend(ruleset.Loop(ruleset.Any(), ruleset.AllDirs, ruleset.Char('\''), ruleset.AllDirs, ruleset.Any(), "Q {C}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('\''), ruleset.AllDirs, ruleset.Any(), "Q {C}"))
	return t
}

func TestSimpleRectangleScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse(".---.\n|   |\n'---'")
	f := NewFinder(g, rectangleTable())
	paths := f.Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 closed path, got %d", len(paths))
	}
	p := paths[0]
	if !p.Closed {
		t.Fatalf("expected the rectangle path to be closed")
	}
	corners, ok := p.IsRectangular()
	if !ok {
		t.Fatalf("expected IsRectangular to recognize the path")
	}
	if corners.UL.Row != corners.UR.Row || corners.BL.Row != corners.BR.Row {
		t.Errorf("corners not aligned on two rows: %+v", corners)
	}
	if corners.UL.Col != corners.BL.Col || corners.UR.Col != corners.BR.Col {
		t.Errorf("corners not aligned on two columns: %+v", corners)
	}
}

// diamondTable covers the diamond scenario's characters: '+' corners (both
// the start/loop anchor), '/' and '\' diagonals, '(' and ')' sides.
func diamondTable() *ruleset.Table {
	t := ruleset.NewTable()
	t.MustAppend(ruleset.StartEntry(ruleset.Char('+'), ruleset.AllDirs, ruleset.Any(), "Z"))
	t.MustAppend(ruleset.Loop(ruleset.Any(), ruleset.AllDirs, ruleset.Char('+'), ruleset.AllDirs, ruleset.Any(), "Z"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('/'), ruleset.AllDirs, ruleset.Any(), "L"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('\\'), ruleset.AllDirs, ruleset.Any(), "L"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('('), ruleset.AllDirs, ruleset.Any(), "L"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char(')'), ruleset.AllDirs, ruleset.Any(), "L"))
	return t
}

func TestDiamondScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	input := "  +  \n / \\ \n(   )\n \\ / \n  +  "
	g := grid.Parse(input)
	f := NewFinder(g, diamondTable())
	paths := f.Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 closed path, got %d", len(paths))
	}
	p := paths[0]
	if !p.Closed {
		t.Fatalf("expected a closed diamond path")
	}
	// 8 distinct steps, closing back at the starting '+'.
	if len(p.Steps) != 9 {
		t.Fatalf("expected 9 recorded steps (8 + closing repeat), got %d", len(p.Steps))
	}
	if p.Steps[0].Pt != p.Steps[len(p.Steps)-1].Pt {
		t.Errorf("expected the closed path to repeat its start point at the end")
	}
	var got []rune
	for _, s := range p.Steps[:len(p.Steps)-1] {
		got = append(got, s.Ch)
	}
	// Down the west flank first, then back up the east one.
	want := []rune{'+', '/', '(', '\\', '+', '/', ')', '\\'}
	if string(got) != string(want) {
		t.Errorf("traversal order = %q, want %q", string(got), string(want))
	}
}

// crossTable covers '-', '|' straights and a '+' junction that can start,
// pass through, or end a path, but deliberately has no loop-start entry —
// so a walk returning to its starting '+' cannot close there and must
// fall back to passing through it.
func crossTable() *ruleset.Table {
	t := ruleset.NewTable()
	t.MustAppend(ruleset.StartEntry(ruleset.Char('+'), ruleset.AllDirs, ruleset.Any(), "M {C}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.AllDirs, ruleset.Char('+'), ruleset.AllDirs, ruleset.Any(), "L {C}"))
	t.MustAppend(ruleset.EndEntry(ruleset.Any(), ruleset.AllDirs, ruleset.Char('+'), "L {C}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.E, compass.W), ruleset.Char('-'), ruleset.Dirs(compass.E, compass.W), ruleset.Any(), "L {C}"))
	t.MustAppend(ruleset.Step(ruleset.Any(), ruleset.Dirs(compass.N, compass.S), ruleset.Char('|'), ruleset.Dirs(compass.N, compass.S), ruleset.Any(), "L {C}"))
	return t
}

func TestWalkContinuesPastStartWhenClosureFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse("+-+\n| |\n+-+")
	f := NewFinder(g, crossTable())
	paths := f.Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	p := paths[0]
	if p.Closed {
		t.Fatalf("expected an open path (the table has no loop-start entries)")
	}
	// All eight border cells plus the pass-through repeat of the start.
	if len(p.Steps) != 9 {
		t.Fatalf("expected 9 steps, got %d: %+v", len(p.Steps), p.Steps)
	}
	if p.Steps[0].Pt != p.Steps[8].Pt {
		t.Errorf("expected the walk to re-enter its starting cell, got %v and %v", p.Steps[0].Pt, p.Steps[8].Pt)
	}
}

func TestLongestClosedPathWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	// Two rectangles sharing their middle edge: both a short loop around
	// the left square and a long loop around the outer ring close at the
	// top-left corner. The longer one must win.
	g := grid.Parse(".-.-.\n| | |\n'-'-'")
	f := NewFinder(g, rectangleTable())
	paths := f.Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	p := paths[0]
	if !p.Closed {
		t.Fatalf("expected a closed path")
	}
	// The outer ring's 12 cells plus the closing repeat, not the inner
	// square's 8+1.
	if len(p.Steps) != 13 {
		t.Errorf("expected the 13-step outer ring, got %d steps", len(p.Steps))
	}
}

func TestPathAdjacencyInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse("---")
	f := NewFinder(g, lineTable())
	for _, p := range f.Run() {
		for i := 1; i < len(p.Steps); i++ {
			prev, cur := p.Steps[i-1], p.Steps[i]
			if _, err := prev.Pt.Towards(cur.Pt); err != nil {
				t.Errorf("steps %d and %d are not compass-adjacent: %v", i-1, i, err)
			}
		}
	}
}

func TestRectangleDetectorCornersOnTwoRowsTwoColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse(".---.\n|   |\n'---'")
	f := NewFinder(g, rectangleTable())
	paths := f.Run()
	corners, ok := paths[0].IsRectangular()
	if !ok {
		t.Fatalf("expected a rectangular path")
	}
	rows := map[int]bool{corners.UL.Row: true, corners.UR.Row: true, corners.BL.Row: true, corners.BR.Row: true}
	cols := map[int]bool{corners.UL.Col: true, corners.UR.Col: true, corners.BL.Col: true, corners.BR.Col: true}
	if len(rows) != 2 || len(cols) != 2 {
		t.Errorf("expected corners on exactly 2 rows and 2 columns, got rows=%v cols=%v", rows, cols)
	}
}

func TestConsumptionMonotonicityAcrossExtraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.pathfind")
	defer teardown()
	g := grid.Parse("---")
	before := 0
	for row := 1; row <= g.Height(); row++ {
		for col := 1; col <= g.Width(); col++ {
			if g.Available(compass.Point{Col: col, Row: row}) {
				before++
			}
		}
	}
	f := NewFinder(g, lineTable())
	f.Run()
	after := 0
	for row := 1; row <= g.Height(); row++ {
		for col := 1; col <= g.Width(); col++ {
			if g.Available(compass.Point{Col: col, Row: row}) {
				after++
			}
		}
	}
	if after >= before {
		t.Errorf("expected available-cell count to shrink: before=%d after=%d", before, after)
	}
}
