package builtin

import (
	"strings"
	"testing"

	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/render"
)

func TestDemoTableShape(t *testing.T) {
	tbl := Demo()
	if tbl.Len() == 0 {
		t.Fatalf("expected a non-empty table")
	}
	if got := tbl.Len(); got < 20 {
		t.Errorf("expected roughly 20 demo entries, got %d", got)
	}
}

func TestOriginalTableShape(t *testing.T) {
	tbl := Original()
	if got := tbl.Len(); got <= Demo().Len() {
		t.Errorf("expected Original to cover strictly more entries than Demo, got %d vs %d", got, Demo().Len())
	}
}

func TestDemoIsCached(t *testing.T) {
	if Demo() != Demo() {
		t.Errorf("expected Demo() to return the same cached table on repeated calls")
	}
}

func TestDemoRendersHorizontalLine(t *testing.T) {
	g := grid.Parse("---")
	tbl := Demo()
	paths := pathfind.NewFinder(g, tbl).Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	sink := &diag.Sink{}
	elems := render.TableRenderer{}.Render(paths, nil, tbl, sink)
	if len(elems) != 1 || len(elems[0].PathData) != 3 {
		t.Fatalf("unexpected elements: %+v", elems)
	}
	// The stroke runs the full three cells, west edge to east edge.
	want := []string{"M 0,6", "L 13.5,6", "L 27,6"}
	for i, frag := range elems[0].PathData {
		if frag != want[i] {
			t.Errorf("fragment %d = %q, want %q", i, frag, want[i])
		}
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings rendering a plain line, got %+v", sink.Warnings)
	}
}

func TestDemoRendersArrowTerminatedLine(t *testing.T) {
	g := grid.Parse("-->")
	tbl := Demo()
	paths := pathfind.NewFinder(g, tbl).Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	sink := &diag.Sink{}
	elems := render.TableRenderer{}.Render(paths, nil, tbl, sink)
	if len(elems) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elems))
	}
	last := elems[0].PathData[len(elems[0].PathData)-1]
	if !strings.Contains(last, "l 3,0 m -3,-3 l 3,3 l -3,3 m 0,-3") {
		t.Errorf("expected the final fragment to carry the eastward arrowhead barbs, got %q", last)
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings rendering an arrow-terminated line, got %+v", sink.Warnings)
	}
}

func TestOriginalRendersDashedLine(t *testing.T) {
	g := grid.Parse("===")
	tbl := Original()
	paths := pathfind.NewFinder(g, tbl).Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	sink := &diag.Sink{}
	elems := render.TableRenderer{}.Render(paths, nil, tbl, sink)
	if len(elems) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elems))
	}
	found := false
	for _, a := range elems[0].Attrs {
		if a.Name == "stroke-dasharray" {
			found = true
			if a.Value != "5,2" {
				t.Errorf("stroke-dasharray = %q, want %q", a.Value, "5,2")
			}
		}
	}
	if !found {
		t.Errorf("expected a stroke-dasharray attribute on a dashed line, got %+v", elems[0].Attrs)
	}
}

func TestOriginalRendersCircleDeadEnd(t *testing.T) {
	g := grid.Parse("--o")
	tbl := Original()
	paths := pathfind.NewFinder(g, tbl).Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if got := paths[0].Steps[len(paths[0].Steps)-1].Ch; got != 'o' {
		t.Fatalf("expected the path to end at the circle, last step was %q", got)
	}
	sink := &diag.Sink{}
	elems := render.TableRenderer{}.Render(paths, nil, tbl, sink)
	if len(elems) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elems))
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings rendering a line ending in a bare circle bullet, got %+v", sink.Warnings)
	}
}

func TestOriginalRendersBoxDrawingCorner(t *testing.T) {
	g := grid.Parse("┌─┐\n│ │\n└─┘")
	tbl := Original()
	paths := pathfind.NewFinder(g, tbl).Run()
	if len(paths) != 1 {
		t.Fatalf("expected 1 closed path, got %d", len(paths))
	}
	sink := &diag.Sink{}
	elems := render.TableRenderer{}.Render(paths, nil, tbl, sink)
	if len(elems) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elems))
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings rendering a box-drawing rectangle, got %+v", sink.Warnings)
	}
}
