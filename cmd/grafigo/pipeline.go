package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/render"
	"github.com/npillmayer/grafigo/render/builtin"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/grafigo/ruleset/dsl"
	"github.com/npillmayer/grafigo/svgdoc"
	"github.com/npillmayer/grafigo/textscan"
)

// loadTable resolves the ruleset.Table to extract with: a rule file read
// from path if given, otherwise one of the two built-in tables named by
// tableName.
func loadTable(path, tableName string) (*ruleset.Table, error) {
	if path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, diag.Wrap(diag.InputIO, err)
		}
		tbl, err := dsl.Parse(string(src))
		if err != nil {
			return nil, err
		}
		return tbl, nil
	}
	switch tableName {
	case "original":
		return builtin.Original(), nil
	case "demo", "":
		return builtin.Demo(), nil
	default:
		return nil, diag.New(diag.InputIO, fmt.Sprintf("unknown -table value %q, want demo or original", tableName))
	}
}

// renderDiagram runs the full extraction-and-render pipeline over source
// and returns the assembled SVG document as a string, along with the
// diag.Sink collecting any non-fatal warnings along the way.
func renderDiagram(source string, tbl *ruleset.Table, debug bool) (string, *diag.Sink, error) {
	sink := &diag.Sink{}

	g := grid.Parse(source)
	finder := pathfind.NewFinder(g, tbl)
	paths := finder.Run()
	texts := textscan.Scan(g, paths, sink)

	if debug {
		printDebugTree(paths, texts)
	}

	renderer := render.TableRenderer{RectShortcut: true}
	elements := renderer.Render(paths, texts, tbl, sink)

	width := float64(g.Width()) * render.CellWidth
	height := float64(g.Height()) * render.CellHeight

	var buf bytes.Buffer
	if err := (svgdoc.XMLWriter{}).Write(&buf, elements, width, height); err != nil {
		return "", sink, diag.Wrap(diag.InputIO, err)
	}
	return buf.String(), sink, nil
}
