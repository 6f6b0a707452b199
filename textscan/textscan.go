/*
Package textscan finds ASCII text runs left over after path discovery,
infers `[ident]` labels attached to a nearby text span or path, and binds
footnote attribute maps (grid.Grid.Attrs) onto the text span or path they
address.

Ambiguous label bindings resolve to the upper-left candidate and are
reported through a diag.Sink rather than returned as an error, keeping
extraction's hard/soft diagnostics split intact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textscan

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"unicode"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grafigo.textscan'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.textscan")
}

// TextSpan is a maximal horizontal run of non-blank, unconsumed cells.
type TextSpan struct {
	Anchor  compass.Point // leftmost cell of the run
	Content string
	Ident   string // bound by a qualifying [name] label, if any
	Attrs   []ruleset.Attr
}

var reLabel = regexp.MustCompile(`^\[([^\]\n]+)\]$`)

// Scan walks g in row-major order and collects every maximal horizontal run
// of non-blank, unconsumed cells as a TextSpan, marking the consumed cells
// Used as it goes. Runs whose
// content is exactly a bracketed name ("[foo]") are treated as identifier
// labels: they are bound to the nearest qualifying text span above them or
// path to their left rather than surfacing as their own TextSpan.
func Scan(g *grid.Grid, paths []pathfind.Path, sink *diag.Sink) []TextSpan {
	var spans []TextSpan
	var labels []TextSpan
	for row := 1; row <= g.Height(); row++ {
		col := 1
		for col <= g.Width() {
			start := compass.Point{Col: col, Row: row}
			if !g.Available(start) {
				col++
				continue
			}
			span := scanRun(g, start)
			col = span.Anchor.Col + len([]rune(span.Content))
			if reLabel.MatchString(span.Content) {
				labels = append(labels, span)
				continue
			}
			spans = append(spans, span)
		}
	}
	bindIdentifiers(spans, paths, labels, sink)
	bindFootnotes(g, spans, paths)
	return spans
}

// scanRun extracts one horizontal text run starting at start. A streak of
// more than two consecutive whitespace cells ends the run (embedded
// single/double spaces, e.g. "foo bar", stay part of the run), a cell
// already consumed by a path ends the run, and trailing whitespace is then
// trimmed.
func scanRun(g *grid.Grid, start compass.Point) TextSpan {
	var runes []rune
	whitespaceStreak := 0
	cur := start
	for isUnclaimedContent(g, cur) {
		ch := g.At(cur).Ch
		if unicode.IsSpace(ch) {
			whitespaceStreak++
			if whitespaceStreak > 2 {
				break
			}
		} else {
			whitespaceStreak = 0
		}
		runes = append(runes, ch)
		cur = compass.Point{Col: cur.Col + 1, Row: cur.Row}
	}
	for len(runes) > 0 && unicode.IsSpace(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	for _, r := range runesUpTo(start, len(runes), g) {
		g.MarkUsed(r)
	}
	return TextSpan{Anchor: start, Content: string(runes)}
}

// isUnclaimedContent reports whether p is still a plain, unconsumed input
// character (whitespace or not) rather than Pad filler or a cell a path has
// already claimed.
func isUnclaimedContent(g *grid.Grid, p compass.Point) bool {
	return g.Holds(p) && g.At(p).Status == grid.StatusContent
}

func runesUpTo(start compass.Point, n int, g *grid.Grid) []compass.Point {
	pts := make([]compass.Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, compass.Point{Col: start.Col + i, Row: start.Row})
	}
	return pts
}

// bindIdentifiers resolves each label span against the text spans and
// paths it might qualify, preferring a letter directly above the label's
// first column, then a vertical-line path cell directly to the label's
// left. When more than one label qualifies for the same span or path, the
// upper-left label wins and a warning is surfaced.
func bindIdentifiers(spans []TextSpan, paths []pathfind.Path, labels []TextSpan, sink *diag.Sink) {
	claimed := map[int]bool{} // label index already bound
	for i := range spans {
		bindOneText(spans, i, labels, claimed, sink)
	}
	for i := range paths {
		bindOnePath(&paths[i], labels, claimed, sink)
	}
}

func bindOneText(spans []TextSpan, idx int, labels []TextSpan, claimed map[int]bool, sink *diag.Sink) {
	span := &spans[idx]
	belowRow := span.Anchor.Row + 1
	firstCol, lastCol := span.Anchor.Col, span.Anchor.Col+len([]rune(span.Content))-1
	var qualifying []int
	for li, lbl := range labels {
		if claimed[li] {
			continue
		}
		if lbl.Anchor.Row == belowRow && lbl.Anchor.Col >= firstCol && lbl.Anchor.Col <= lastCol {
			qualifying = append(qualifying, li)
		}
	}
	if len(qualifying) == 0 {
		return
	}
	win := upperLeftmost(labels, qualifying)
	if len(qualifying) > 1 {
		sink.Warn(diag.AmbiguousIdentifier, "multiple [%s] labels qualify for text %q at %s; using the upper-left one", labels[win].Content, span.Content, span.Anchor)
	}
	claimed[win] = true
	span.Ident = identName(labels[win].Content)
}

func bindOnePath(p *pathfind.Path, labels []TextSpan, claimed map[int]bool, sink *diag.Sink) {
	if len(p.Steps) == 0 {
		return
	}
	var qualifying []int
	for li, lbl := range labels {
		if claimed[li] {
			continue
		}
		for _, s := range p.Steps {
			if s.Ch != '|' {
				continue
			}
			if lbl.Anchor == (compass.Point{Col: s.Pt.Col + 1, Row: s.Pt.Row}) {
				qualifying = append(qualifying, li)
				break
			}
		}
	}
	if len(qualifying) == 0 {
		return
	}
	win := upperLeftmost(labels, qualifying)
	if len(qualifying) > 1 {
		sink.Warn(diag.AmbiguousIdentifier, "multiple [%s] labels qualify for a path starting at %s; using the upper-left one", labels[win].Content, p.Steps[0].Pt)
	}
	claimed[win] = true
	p.Ident = identName(labels[win].Content)
}

// upperLeftmost picks, among label indices, the one whose anchor is
// topmost, then leftmost.
func upperLeftmost(labels []TextSpan, indices []int) int {
	best := indices[0]
	for _, i := range indices[1:] {
		a, b := labels[i].Anchor, labels[best].Anchor
		if a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col) {
			best = i
		}
	}
	return best
}

func identName(bracketed string) string {
	m := reLabel.FindStringSubmatch(bracketed)
	if m == nil {
		return bracketed
	}
	return m[1]
}

// bindFootnotes attaches grid.Grid.Attrs entries to the text span or path
// they address, either by identifier name or by a "[row,col]" addressing
// one of the path's steps. A footnote value that
// parses as a JSON object supplies one ruleset.Attr per key; any other
// value is stored verbatim under the key "note".
// reCellAddress matches a "row,col" footnote key. Footnote keys arrive from
// grid.Grid.Attrs already stripped of the enclosing brackets (grid.Parse's
// footnote regex captures only the bracket's interior).
var reCellAddress = regexp.MustCompile(`^(\d+),(\d+)$`)

func bindFootnotes(g *grid.Grid, spans []TextSpan, paths []pathfind.Path) {
	for key, value := range g.Attrs {
		attrs := parseFootnoteAttrs(value)
		if bound := bindFootnoteByIdent(spans, paths, key, attrs); bound {
			continue
		}
		if m := reCellAddress.FindStringSubmatch(key); m != nil {
			bindFootnoteByCell(paths, m, attrs)
			continue
		}
		tracer().Debugf("textscan: footnote %q addresses neither a known identifier nor a [row,col]", key)
	}
}

func bindFootnoteByIdent(spans []TextSpan, paths []pathfind.Path, ident string, attrs []ruleset.Attr) bool {
	bound := false
	for i := range spans {
		if spans[i].Ident == ident {
			spans[i].Attrs = append(spans[i].Attrs, attrs...)
			bound = true
		}
	}
	for i := range paths {
		if paths[i].Ident == ident {
			paths[i].Attrs = append(paths[i].Attrs, attrs...)
			bound = true
		}
	}
	return bound
}

func bindFootnoteByCell(paths []pathfind.Path, m []string, attrs []ruleset.Attr) {
	var row, col int
	fmt.Sscanf(m[1], "%d", &row)
	fmt.Sscanf(m[2], "%d", &col)
	target := compass.Point{Row: row, Col: col}
	for i := range paths {
		for _, s := range paths[i].Steps {
			if s.Pt == target {
				paths[i].Attrs = append(paths[i].Attrs, attrs...)
				return
			}
		}
	}
}

func parseFootnoteAttrs(value string) []ruleset.Attr {
	var obj map[string]string
	if err := json.Unmarshal([]byte(value), &obj); err != nil {
		return []ruleset.Attr{{Name: "note", Value: value}}
	}
	// Sorted, so a multi-key footnote yields the same Attrs order on every
	// run regardless of map iteration order.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]ruleset.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, ruleset.Attr{Name: k, Value: obj[k]})
	}
	return attrs
}
