package grid

import (
	"testing"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseRectangularity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	g := Parse("ab\nc\n")
	if g.Width() != 2 {
		t.Fatalf("width = %d, want 2", g.Width())
	}
	if g.Height() != 3 {
		t.Fatalf("height = %d, want 3 (trailing empty line counts)", g.Height())
	}
	for row := 1; row <= g.Height(); row++ {
		count := 0
		for col := 1; col <= g.Width(); col++ {
			if g.Holds(compass.Point{Col: col, Row: row}) {
				count++
			}
		}
		if count != g.Width() {
			t.Errorf("row %d has %d holding cells, want %d", row, count, g.Width())
		}
	}
}

func TestParsePadsShortRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	g := Parse("abc\nd")
	c := g.At(compass.Point{Col: 2, Row: 2})
	if c.Status != StatusPad {
		t.Errorf("expected pad cell at (2,2), got status %v", c.Status)
	}
}

func TestRoundTripPristineGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	input := "---\n| |\n---"
	g := Parse(input)
	if got := g.String(); got != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
}

func TestFootnoteSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	input := "+-+\n| |\n+-+\n[k]: {\"fill\":\"red\"}\n"
	g := Parse(input)
	if g.Height() != 3 {
		t.Errorf("height = %d, want 3 (footnote lines excluded from body)", g.Height())
	}
	if got, want := g.Attrs["k"], `{"fill":"red"}`; got != want {
		t.Errorf("Attrs[k] = %q, want %q", got, want)
	}
}

func TestFootnoteDiscardsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	input := "ab\n[k]: v\nnot a footnote\n"
	g := Parse(input)
	if _, ok := g.Attrs["k"]; !ok {
		t.Fatalf("expected footnote k to be recorded")
	}
	if len(g.Attrs) != 1 {
		t.Errorf("expected exactly one footnote, got %d: %v", len(g.Attrs), g.Attrs)
	}
}

func TestConsumptionMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	g := Parse("---")
	p := compass.Point{Col: 1, Row: 1}
	if !g.Available(p) {
		t.Fatalf("expected (1,1) to be available before consumption")
	}
	g.MarkUsed(p)
	if g.Available(p) {
		t.Errorf("cell should not be available after MarkUsed")
	}
	if g.At(p).Status != StatusUsed {
		t.Errorf("expected StatusUsed, got %v", g.At(p).Status)
	}
}

func TestHoldsRejectsOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.grid")
	defer teardown()
	g := Parse("ab\ncd")
	cases := []compass.Point{
		{Col: 0, Row: 1},
		{Col: 1, Row: 0},
		{Col: 3, Row: 1},
		{Col: 1, Row: 3},
		{Col: -5, Row: -5},
	}
	for _, p := range cases {
		if g.Holds(p) {
			t.Errorf("Holds(%v) = true, want false", p)
		}
	}
}
