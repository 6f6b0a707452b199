package fingerprint

import (
	"testing"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/render/builtin"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/grafigo/textscan"
)

func samplePaths() []pathfind.Path {
	return []pathfind.Path{
		{
			Steps: []pathfind.Step{
				{Pt: compass.Point{Col: 1, Row: 1}, Ch: '-'},
				{Pt: compass.Point{Col: 2, Row: 1}, Ch: '-'},
			},
			Ident: "a",
			Attrs: []ruleset.Attr{{Name: "stroke", Value: "black"}},
		},
	}
}

func sampleTexts() []textscan.TextSpan {
	return []textscan.TextSpan{
		{Anchor: compass.Point{Col: 1, Row: 2}, Content: "hi", Ident: "b"},
	}
}

func TestOfIsDeterministic(t *testing.T) {
	a := Of(samplePaths(), sampleTexts())
	b := Of(samplePaths(), sampleTexts())
	if a != b {
		t.Errorf("expected repeated calls on equal input to agree, got %q vs %q", a, b)
	}
	if a == "" {
		t.Errorf("expected a non-empty fingerprint")
	}
}

func TestOfDiffersOnContentChange(t *testing.T) {
	a := Of(samplePaths(), sampleTexts())
	texts := sampleTexts()
	texts[0].Content = "bye"
	b := Of(samplePaths(), texts)
	if a == b {
		t.Errorf("expected changed text content to change the fingerprint")
	}
}

func TestOfDiffersOnStepOrder(t *testing.T) {
	paths := samplePaths()
	a := Of(paths, nil)
	reordered := []pathfind.Path{{
		Steps: []pathfind.Step{
			paths[0].Steps[1],
			paths[0].Steps[0],
		},
		Ident: paths[0].Ident,
		Attrs: paths[0].Attrs,
	}}
	b := Of(reordered, nil)
	if a == b {
		t.Errorf("expected reordered steps to change the fingerprint")
	}
}

// Two full extraction passes over the same input and table must agree
// byte-for-byte, which is exactly what the fingerprint condenses.
func TestOfAgreesAcrossExtractionRuns(t *testing.T) {
	input := ".---.\n| a |\n'---'\n"
	run := func() string {
		g := grid.Parse(input)
		paths := pathfind.NewFinder(g, builtin.Demo()).Run()
		texts := textscan.Scan(g, paths, &diag.Sink{})
		return Of(paths, texts)
	}
	if a, b := run(), run(); a != b {
		t.Errorf("expected independent extraction runs to agree, got %q vs %q", a, b)
	}
}

func TestOfEmptyExtraction(t *testing.T) {
	sum := Of(nil, nil)
	if sum == "" {
		t.Errorf("expected a stable non-empty fingerprint even for an empty extraction")
	}
}
