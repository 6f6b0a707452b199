package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/grafigo/render/builtin"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadTableDefaultsToDemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	tbl, err := loadTable("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != builtin.Demo().Len() {
		t.Errorf("expected the demo table's entry count, got %d", tbl.Len())
	}
}

func TestLoadTableOriginal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	tbl, err := loadTable("", "original")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != builtin.Original().Len() {
		t.Errorf("expected the original table's entry count, got %d", tbl.Len())
	}
}

func TestLoadTableRejectsUnknownName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	if _, err := loadTable("", "bogus"); err == nil {
		t.Errorf("expected an error for an unknown -table value")
	}
}

func TestRenderDiagramHorizontalLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	tbl := builtin.Demo()
	svg, sink, err := renderDiagram("---\n", tbl, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings, got %v", sink.Warnings)
	}
	for _, want := range []string{"<svg", "<path", `d="M`} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected rendered SVG to contain %q, got:\n%s", want, svg)
		}
	}
}

func TestRenderDiagramBindsIdentifierAndFootnote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	input := ".---.\n|[k]|\n'---'\n[k]: {\"fill\":\"red\"}\n"
	svg, sink, err := renderDiagram(input, builtin.Demo(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sink.Empty() {
		t.Errorf("expected no warnings, got %v", sink.Warnings)
	}
	for _, want := range []string{"<rect", `id="k"`, `fill="red"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected rendered SVG to contain %q, got:\n%s", want, svg)
		}
	}
}

func TestLoadTableRejectsMissingRuleFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grafigo.cmd")
	defer teardown()
	if _, err := loadTable("/nonexistent/path/to/rules.txt", "demo"); err == nil {
		t.Errorf("expected an InputIO error for a missing -rules file")
	}
}
