/*
Package pathfind implements grafigo's path-discovery engine: it walks the
grid in row-major order, growing a path from every still-available cell by
consulting a ruleset.Table for each proposed step, applying a fixed
direction tie-break, closing loops, and backtracking on dead ends.

The search is an iterative DFS: each step collects its legal candidates
into an already tie-broken ordered list and keeps the untried remainder
on an explicit stack per search frame, so that a dead end undoes exactly
one step and resumes with the next candidate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pathfind

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/grid"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grafigo.pathfind'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.pathfind")
}

// Step is one (point, character) pair visited along a Path.
type Step struct {
	Pt compass.Point
	Ch rune
}

// Path is a discovered walk through the grid: an ordered chain of Steps
// plus a closed/open marker. Ident and Attrs are filled in later, by
// textscan's identifier and footnote binding, not by the finder itself.
type Path struct {
	Steps  []Step
	Closed bool
	Ident  string
	Attrs  []ruleset.Attr
}

// Corners holds the four corner points of a path recognized as rectangular.
type Corners struct {
	UL, UR, BR, BL compass.Point
}

// IsRectangular reports whether p is a closed path that visits all four
// corners of its bounding box and otherwise only cells on that box's border
// (a non-zero-area, axis-aligned rectangle whose corners lie on exactly two
// distinct rows and two distinct columns), and whose non-corner (edge) cells contain only
// '-', '|', or '+' — the corner cells themselves are unconstrained, since
// a rectangle's corners are commonly drawn with dedicated loop-start
// characters like '.'/'\''. Deliberately conservative; anything fancier
// stays a <path>. Pure: does not mutate the grid or p.
func (p Path) IsRectangular() (Corners, bool) {
	if !p.Closed || len(p.Steps) < 4 {
		return Corners{}, false
	}
	steps := p.Steps
	if steps[0].Pt == steps[len(steps)-1].Pt {
		steps = steps[:len(steps)-1]
	}
	rows := map[int]bool{}
	cols := map[int]bool{}
	for _, s := range steps {
		rows[s.Pt.Row] = true
		cols[s.Pt.Col] = true
	}
	minRow, maxRow := minMaxKeys(rows)
	minCol, maxCol := minMaxKeys(cols)
	if minRow == maxRow || minCol == maxCol {
		return Corners{}, false
	}
	corners := Corners{
		UL: compass.Point{Col: minCol, Row: minRow},
		UR: compass.Point{Col: maxCol, Row: minRow},
		BR: compass.Point{Col: maxCol, Row: maxRow},
		BL: compass.Point{Col: minCol, Row: maxRow},
	}
	isCorner := map[compass.Point]bool{corners.UL: true, corners.UR: true, corners.BR: true, corners.BL: true}
	seenCorners := 0
	for _, s := range steps {
		if isCorner[s.Pt] {
			seenCorners++
			continue
		}
		onBorder := s.Pt.Row == minRow || s.Pt.Row == maxRow || s.Pt.Col == minCol || s.Pt.Col == maxCol
		if !onBorder || (s.Ch != '-' && s.Ch != '|' && s.Ch != '+') {
			return Corners{}, false
		}
	}
	if seenCorners != 4 {
		return Corners{}, false
	}
	return corners, true
}

func minMaxKeys(m map[int]bool) (min, max int) {
	first := true
	for k := range m {
		if first || k < min {
			min = k
		}
		if first || k > max {
			max = k
		}
		first = false
	}
	return
}

// Finder walks a Grid driven by a Table, producing the ordered list of
// Paths discovered in a single extraction pass.
type Finder struct {
	Grid  *grid.Grid
	Table *ruleset.Table
}

// NewFinder creates a Finder over g, driven by tbl.
func NewFinder(g *grid.Grid, tbl *ruleset.Table) *Finder {
	return &Finder{Grid: g, Table: tbl}
}

// Run scans the grid in row-major order and extracts every maximal path of
// length ≥ 2, marking consumed cells as it goes. Cells already
// consumed, by an earlier path in this same pass, are skipped.
func (f *Finder) Run() []Path {
	var paths []Path
	for row := 1; row <= f.Grid.Height(); row++ {
		for col := 1; col <= f.Grid.Width(); col++ {
			s := compass.Point{Col: col, Row: row}
			if !f.Grid.Available(s) {
				continue
			}
			if p, ok := f.attempt(s); ok {
				if err := diag.Assert(len(p.Steps) >= 2, "pathfind: emitted a path of %d steps from %s", len(p.Steps), s); err != nil {
					continue
				}
				paths = append(paths, p)
				f.consume(p)
			}
		}
	}
	return paths
}

// candidate is one enumerated, not-yet-tried neighbor of the current head.
type candidate struct {
	dir    compass.Direction
	pt     compass.Point
	ch     rune
	closes bool // true iff pt is the path's start point (a loop-closure candidate)
}

// attempt tries to grow a maximal path starting at s, backtracking through
// tie-broken alternatives on dead ends. Every alternative is explored: the
// longest closed path found wins outright over any open one, the longest
// open path comes next, and on equal length the one reached first under
// the tie-break order. Returns false if every alternative from s fails
// (exhausting all candidates from s yields no path).
func (f *Finder) attempt(s compass.Point) (Path, bool) {
	sc := f.Grid.At(s)
	visited := map[compass.Point]bool{s: true}
	steps := []Step{{Pt: s, Ch: sc.Ch}}
	frames := []*arraystack.Stack{f.frameAt(steps, visited, s)}
	var bestOpen, bestClosed Path
	haveOpen, haveClosed := false, false

	for len(frames) > 0 {
		top := frames[len(frames)-1]
		raw, ok := top.Pop()
		if !ok {
			// No candidate from the current head succeeded: check for a
			// valid open termination, then backtrack one step and keep
			// searching for a closed (or longer) alternative.
			frames = frames[:len(frames)-1]
			if len(steps) >= 2 {
				if p, done := f.tryEnd(steps); done {
					if !haveOpen || len(p.Steps) > len(bestOpen.Steps) {
						bestOpen, haveOpen = p, true
					}
				}
			}
			if len(steps) == 1 {
				break
			}
			last := steps[len(steps)-1]
			// The start cell stays visited even after a pass-through of it
			// is undone; it is still the path's first step.
			if last.Pt != s {
				delete(visited, last.Pt)
			}
			steps = steps[:len(steps)-1]
			continue
		}

		cand := raw.(candidate)
		head := steps[len(steps)-1]

		if cand.closes {
			if p, ok := f.tryClose(s, sc.Ch, steps, head, cand); ok {
				if !haveClosed || len(p.Steps) > len(bestClosed.Steps) {
					bestClosed, haveClosed = p, true
				}
				continue
			}
			// No loop-start entry matched at s. Closure takes precedence,
			// but with closure ruled out the walk may still continue past
			// s, re-entering it as an ordinary waypoint: fall through to
			// the plain step match below.
		}

		dirToPrev, hasPrev := incomingObservationDirection(steps)
		var in ruleset.Observation
		if hasPrev {
			in = ruleset.Obs(steps[len(steps)-2].Ch, dirToPrev)
		}
		ctx := ruleset.MatchContext{In: in, Current: head.Ch, Out: ruleset.Obs(cand.ch, cand.dir)}
		e, ok := f.Table.FirstMatch(ctx)
		if !ok {
			continue
		}
		if e.Instrument {
			tracer().Debugf("pathfind: rule %s admits step %s -> %s", e.Provenance, head.Pt, cand.pt)
		}

		next := Step{Pt: cand.pt, Ch: cand.ch}
		steps = append(steps, next)
		visited[cand.pt] = true
		frames = append(frames, f.frameAt(steps, visited, s))
	}
	if haveClosed {
		return bestClosed, true
	}
	return bestOpen, haveOpen
}

// tryClose attempts to match a loop-start Entry at s, whose incoming side
// accepts the step just traversed (head -> s along cand.dir) and whose
// outgoing side accepts the path's very first step (s -> steps[1]).
// Closure takes precedence over continuing past s: callers fall back to
// an ordinary step through s only when this fails.
func (f *Finder) tryClose(s compass.Point, sCh rune, steps []Step, head Step, cand candidate) (Path, bool) {
	firstDir, err := s.Towards(steps[1].Pt)
	if err != nil {
		return Path{}, false
	}
	dirToHead, err := s.Towards(head.Pt)
	if err != nil {
		return Path{}, false
	}
	ctx := ruleset.MatchContext{
		In:      ruleset.Obs(head.Ch, dirToHead),
		Current: sCh,
		Out:     ruleset.Obs(steps[1].Ch, firstDir),
	}
	if _, ok := f.Table.FirstLoopStart(ctx); !ok {
		return Path{}, false
	}
	closed := make([]Step, len(steps)+1)
	copy(closed, steps)
	closed[len(steps)] = Step{Pt: s, Ch: sCh}
	return Path{Steps: closed, Closed: true}, true
}

// tryEnd checks whether the current head admits an end match: an Entry
// whose outgoing side is Blank/May and whose incoming side accepts the
// step just traversed. Open paths of length 1
// are never considered (callers only call this once len(steps) >= 2).
func (f *Finder) tryEnd(steps []Step) (Path, bool) {
	head := steps[len(steps)-1]
	prev := steps[len(steps)-2]
	dirToPrev, _ := head.Pt.Towards(prev.Pt)
	ctx := ruleset.MatchContext{In: ruleset.Obs(prev.Ch, dirToPrev), Current: head.Ch}
	if _, ok := f.Table.FirstEnd(ctx); !ok {
		return Path{}, false
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	return Path{Steps: out, Closed: false}, true
}

// travelDirection returns the direction the path moved to arrive at its
// current head (prev -> head), used to decide which next-step candidate
// continues "straight". False if there is no prior step yet.
func travelDirection(steps []Step) (compass.Direction, bool) {
	if len(steps) < 2 {
		return 0, false
	}
	d, _ := steps[len(steps)-2].Pt.Towards(steps[len(steps)-1].Pt)
	return d, true
}

// incomingObservationDirection returns the direction, as seen from the
// current head, towards the previous step's cell — the convention used by
// Neighbor/Observation matching (a neighbor is identified by the direction
// from the current cell to it). This is the reverse of travelDirection.
func incomingObservationDirection(steps []Step) (compass.Direction, bool) {
	d, ok := travelDirection(steps)
	if !ok {
		return 0, false
	}
	return d.Reverse(), true
}

// frameAt enumerates and tie-breaks the legal candidates for extending the
// path beyond its current head, and pushes them onto a fresh stack in
// tie-break order (so that Pop yields the most-preferred candidate first).
func (f *Finder) frameAt(steps []Step, visited map[compass.Point]bool, start compass.Point) *arraystack.Stack {
	head := steps[len(steps)-1]
	dirIn, hasDirIn := travelDirection(steps)
	cands := f.enumerate(head.Pt, visited, start)
	cands = tieBreak(cands, dirIn, hasDirIn)
	st := arraystack.New()
	for i := len(cands) - 1; i >= 0; i-- {
		st.Push(cands[i])
	}
	return st
}

// probeOrder fixes the order neighbors are enumerated in when no prior
// travel direction breaks the tie: eastward first (text flows east, so a
// shape's first leg usually does too), then fanning out counter-clockwise.
// Any fixed order would do for determinism; this one makes walks leave a
// top-left anchor along the top edge and traverse diamonds through their
// west flank first.
var probeOrder = [8]compass.Direction{
	compass.E, compass.NE, compass.N, compass.NW,
	compass.W, compass.SW, compass.S, compass.SE,
}

// enumerate lists every neighbor of head that is either still available and
// unvisited in this attempt, or is the path's own start point (offering a
// loop-closure candidate), in probeOrder.
func (f *Finder) enumerate(head compass.Point, visited map[compass.Point]bool, start compass.Point) []candidate {
	var cands []candidate
	for _, d := range probeOrder {
		q := compass.Vector{At: head, Dir: d}.Step()
		if !f.Grid.Holds(q) {
			continue
		}
		closes := q == start
		if !closes {
			if visited[q] || !f.Grid.Available(q) {
				continue
			}
		}
		cands = append(cands, candidate{dir: d, pt: q, ch: f.Grid.At(q).Ch, closes: closes})
	}
	return cands
}

// tieBreak orders candidates by a fixed priority: straight (continues dirIn)
// first, then veer-CW, then veer-CCW, then any remaining in enumeration
// order. With no prior direction (the very first step from start), the
// candidates are already in probeOrder and are left untouched.
func tieBreak(cands []candidate, dirIn compass.Direction, hasDirIn bool) []candidate {
	if !hasDirIn {
		return cands
	}
	var straight, cw, ccw, rest []candidate
	for _, c := range cands {
		switch {
		case c.dir == dirIn:
			straight = append(straight, c)
		case c.dir == dirIn.Veer(compass.CW):
			cw = append(cw, c)
		case c.dir == dirIn.Veer(compass.CCW):
			ccw = append(ccw, c)
		default:
			rest = append(rest, c)
		}
	}
	out := make([]candidate, 0, len(cands))
	out = append(out, straight...)
	out = append(out, cw...)
	out = append(out, ccw...)
	out = append(out, rest...)
	return out
}

// consume marks every cell of p: '+'/'*' remain Used (visible joints other
// paths may still pass through), everything else is Cleared. A closed
// path's duplicated start/end point is only marked once.
func (f *Finder) consume(p Path) {
	seen := map[compass.Point]bool{}
	for _, st := range p.Steps {
		if seen[st.Pt] {
			continue
		}
		seen[st.Pt] = true
		if st.Ch == '+' || st.Ch == '*' {
			f.Grid.MarkUsed(st.Pt)
		} else {
			f.Grid.MarkCleared(st.Pt)
		}
	}
	tracer().Debugf("pathfind: consumed %d cells (closed=%v)", len(seen), p.Closed)
}
