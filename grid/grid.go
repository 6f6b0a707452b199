/*
Package grid parses ASCII-art input into a rectangular array of cells plus
any trailing footnote attributes, and tracks cell consumption as paths and
text are discovered on top of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grafigo.grid'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.grid")
}

// reFootnote captures a trailing `[key]: value` line.
var reFootnote = regexp.MustCompile(`^\[([^\]\n]+)\]: (.*)$`)

// Status enumerates what has happened to a grid cell.
type Status uint8

const (
	// StatusContent is an unconsumed input character.
	StatusContent Status = iota
	// StatusUsed is a cell consumed by a path but still visible, e.g. a
	// joint character like '+' or '*'.
	StatusUsed
	// StatusCleared is a cell consumed and erased.
	StatusCleared
	// StatusPad is trailing filler added to square a ragged row.
	StatusPad
)

// Cell is a single grid position's status plus its rune.
type Cell struct {
	Status Status
	Ch     rune
}

// IsBlank reports whether this cell cannot participate in a path walk: pad
// cells and whitespace content are blank; Used/Cleared cells are consumed
// and thus also unavailable, but callers distinguish "blank" from
// "consumed" where it matters (see Grid.Available).
func (c Cell) IsBlank() bool {
	return c.Status == StatusPad || (c.Status == StatusContent && isWhitespaceRune(c.Ch))
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == 0
}

// Grid is a rectangular array of Cells plus footnote attributes parsed from
// trailing lines of the input.
type Grid struct {
	width, height int
	cells         []Cell // row-major, len == width*height
	Attrs         map[string]string
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Parse splits input into a body (a rectangular grid, right-padded with Pad
// cells to the width of its longest line) and trailing footnote lines of
// the form `[key]: value`. The body ends at the first footnote line; every
// subsequent line is interpreted as a footnote candidate and discarded
// silently if it fails to match.
func Parse(input string) *Grid {
	lines := strings.Split(input, "\n")

	bodyEnd := len(lines)
	for i, line := range lines {
		if reFootnote.MatchString(line) {
			bodyEnd = i
			break
		}
	}
	body := lines[:bodyEnd]
	footnotes := lines[bodyEnd:]

	width := 0
	runeLines := make([][]rune, len(body))
	for i, line := range body {
		runeLines[i] = []rune(line)
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	height := len(body)

	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for row, rl := range runeLines {
		for col := 0; col < width; col++ {
			idx := row*width + col
			if col < len(rl) {
				g.cells[idx] = Cell{Status: StatusContent, Ch: rl[col]}
			} else {
				g.cells[idx] = Cell{Status: StatusPad, Ch: ' '}
			}
		}
	}

	g.Attrs = map[string]string{}
	for _, line := range footnotes {
		if m := reFootnote.FindStringSubmatch(line); m != nil {
			g.Attrs[m[1]] = m[2]
		} else {
			tracer().Debugf("grid: discarding non-footnote trailer %q", line)
		}
	}
	return g
}

// Holds reports whether p addresses a cell within the grid's bounds
// (1-based: 1 ≤ Row ≤ Height, 1 ≤ Col ≤ Width).
func (g *Grid) Holds(p compass.Point) bool {
	return p.Row >= 1 && p.Row <= g.height && p.Col >= 1 && p.Col <= g.width
}

func (g *Grid) index(p compass.Point) int {
	return (p.Row-1)*g.width + (p.Col - 1)
}

// At returns the cell at p. It panics if p is out of bounds; callers must
// check Holds first.
func (g *Grid) At(p compass.Point) Cell {
	if !g.Holds(p) {
		panic("grid: point out of bounds: " + p.String())
	}
	return g.cells[g.index(p)]
}

// Available reports whether p holds a cell that may still start or extend a
// path: in bounds, not blank, and not already consumed.
func (g *Grid) Available(p compass.Point) bool {
	if !g.Holds(p) {
		return false
	}
	c := g.cells[g.index(p)]
	return c.Status == StatusContent && !c.IsBlank()
}

// MarkUsed transitions the cell at p to StatusUsed, keeping its rune
// visible (joints like '+' and '*' remain on screen after consumption).
func (g *Grid) MarkUsed(p compass.Point) {
	i := g.index(p)
	g.cells[i].Status = StatusUsed
}

// MarkCleared transitions the cell at p to StatusCleared.
func (g *Grid) MarkCleared(p compass.Point) {
	i := g.index(p)
	g.cells[i].Status = StatusCleared
}

// String round-trips the grid, rendering Used/Cleared cells as '_' so that
// visual inspection shows what extraction has consumed so far. A pristine
// grid (all cells Content) round-trips to its original input modulo
// right-padding of short rows.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 1; row <= g.height; row++ {
		for col := 1; col <= g.width; col++ {
			c := g.cells[g.index(compass.Point{Col: col, Row: row})]
			switch c.Status {
			case StatusUsed, StatusCleared:
				b.WriteRune('_')
			default:
				b.WriteRune(c.Ch)
			}
		}
		if row != g.height {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
