package render

import (
	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/grafigo/textscan"
)

// Element is one drawing command produced for a discovered Path or Text:
// expanded path-data fragments (or a single rect shortcut) plus the
// classified attributes to merge onto it.
type Element struct {
	// PathData holds one or more SVG path-data fragments ("M …", "L …", …),
	// one per rendered step, in order; a closed path's fragments are
	// additionally preceded by a leading "M" move and followed by "Z".
	PathData []string
	// Rect is set instead of PathData when the path was recognized as a
	// rectangle and the caller asked for the <rect> shortcut.
	Rect    *Rect
	Attrs   []Attr
	Ident   string
	IsText  bool
	TextAt  Vec
	Content string
}

// Rect is the geometry of a path recognized by pathfind.Path.IsRectangular,
// in SVG user units.
type Rect struct {
	X, Y, Width, Height float64
}

// Renderer turns a finished extraction (paths + texts) into a stream of
// Elements by consulting a ruleset.Table for each step's drawing template.
type Renderer interface {
	Render(paths []pathfind.Path, texts []textscan.TextSpan, tbl *ruleset.Table, sink *diag.Sink) []Element
}

// TableRenderer is the default Renderer: one Element per Path (its
// per-step templates concatenated in step order) plus one Element per
// TextSpan.
type TableRenderer struct {
	// RectShortcut, when true, emits a Rect Element instead of path-data
	// for any closed Path that IsRectangular recognizes.
	RectShortcut bool
}

func (r TableRenderer) Render(paths []pathfind.Path, texts []textscan.TextSpan, tbl *ruleset.Table, sink *diag.Sink) []Element {
	elems := make([]Element, 0, len(paths)+len(texts))
	for _, p := range paths {
		elems = append(elems, r.renderPath(p, tbl, sink))
	}
	for _, t := range texts {
		elems = append(elems, renderText(t))
	}
	return elems
}

// renderPath expands one Path into an Element. A closed path's first step
// uses the closing neighbor (the distinct step before it, wrapping around)
// as its incoming context rather than being treated as a path start; an
// open path's first/last steps instead consult FirstStart/FirstEnd, which
// tolerate a blank incoming/outgoing side. Closed paths additionally get a
// leading "M {I}" fragment (a move to the seam where the closing segment
// meets the first cell) and a trailing "Z", since the per-step templates
// for interior cells all assume a pen position to continue from.
func (r TableRenderer) renderPath(p pathfind.Path, tbl *ruleset.Table, sink *diag.Sink) Element {
	if r.RectShortcut && p.Closed {
		if corners, ok := p.IsRectangular(); ok {
			return rectElement(p, corners)
		}
	}
	steps := distinctSteps(p)
	n := len(steps)
	fragments := make([]string, 0, n+2)
	if p.Closed && n > 0 {
		fragments = append(fragments, expand("M {I}", stepContext(steps, 0, n, true)))
	}
	var attrGroups [][]ruleset.Attr
	for i, s := range steps {
		e, ok := matchStep(tbl, steps, i, n, p.Closed)
		if !ok {
			sink.Warn(diag.NoMatchAtStep, "no rule matched step %d (%q) at %s; skipping", i, s.Ch, s.Pt)
			continue
		}
		if e.Instrument {
			tracer().Debugf("render: rule %s matched step %d at %s", e.Provenance, i, s.Pt)
		}
		fragments = append(fragments, expand(e.Template, stepContext(steps, i, n, p.Closed)))
		if len(e.Attrs) > 0 {
			attrGroups = append(attrGroups, e.Attrs)
		}
	}
	if p.Closed && n > 0 {
		fragments = append(fragments, "Z")
	}
	attrGroups = append(attrGroups, p.Attrs)
	return Element{PathData: fragments, Attrs: mergeAttrs(attrGroups...), Ident: p.Ident}
}

// distinctSteps strips a closed Path's duplicated closing step (same point
// as the first), leaving one entry per distinct grid cell visited.
func distinctSteps(p pathfind.Path) []pathfind.Step {
	steps := p.Steps
	if p.Closed && len(steps) > 1 && steps[0].Pt == steps[len(steps)-1].Pt {
		return steps[:len(steps)-1]
	}
	return steps
}

// stepContext builds the render Context for steps[i], wrapping around for
// closed paths and leaving HasIn/HasOut false at an open path's boundaries.
func stepContext(steps []pathfind.Step, i, n int, closed bool) Context {
	ctx := Context{Pt: steps[i].Pt}
	if closed || i > 0 {
		prev := steps[(i-1+n)%n]
		if d, err := steps[i].Pt.Towards(prev.Pt); err == nil {
			ctx.DirIn, ctx.HasIn = d, true
		}
	}
	if closed || i < n-1 {
		next := steps[(i+1)%n]
		if d, err := steps[i].Pt.Towards(next.Pt); err == nil {
			ctx.DirOut, ctx.HasOut = d, true
		}
	}
	return ctx
}

// matchContext builds the ruleset.MatchContext mirroring stepContext's
// neighbor selection.
func matchContext(steps []pathfind.Step, i, n int, closed bool) ruleset.MatchContext {
	ctx := ruleset.MatchContext{Current: steps[i].Ch}
	if closed || i > 0 {
		prev := steps[(i-1+n)%n]
		if d, err := steps[i].Pt.Towards(prev.Pt); err == nil {
			ctx.In = ruleset.Obs(prev.Ch, d)
		}
	}
	if closed || i < n-1 {
		next := steps[(i+1)%n]
		if d, err := steps[i].Pt.Towards(next.Pt); err == nil {
			ctx.Out = ruleset.Obs(next.Ch, d)
		}
	}
	return ctx
}

func matchStep(tbl *ruleset.Table, steps []pathfind.Step, i, n int, closed bool) (ruleset.Entry, bool) {
	ctx := matchContext(steps, i, n, closed)
	switch {
	case !closed && i == 0:
		return tbl.FirstStart(ctx)
	case !closed && i == n-1:
		return tbl.FirstEnd(ctx)
	default:
		return tbl.FirstMatch(ctx)
	}
}

func rectElement(p pathfind.Path, c pathfind.Corners) Element {
	ul, br := origin(c.UL), origin(c.BR)
	return Element{
		Rect: &Rect{
			X:      ul.X,
			Y:      ul.Y,
			Width:  br.X + CellWidth - ul.X,
			Height: br.Y + CellHeight - ul.Y,
		},
		Attrs: mergeAttrs(p.Attrs),
		Ident: p.Ident,
	}
}

func renderText(t textscan.TextSpan) Element {
	return Element{
		IsText:  true,
		TextAt:  anchors(t.Anchor)["NW"],
		Content: t.Content,
		Attrs:   mergeAttrs(t.Attrs),
		Ident:   t.Ident,
	}
}
