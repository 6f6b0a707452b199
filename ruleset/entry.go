package ruleset

import "fmt"

// Attr is a single rendering attribute, e.g. ("stroke-dasharray", "5,2").
type Attr struct {
	Name, Value string
}

// Entry is a single rule: a matching predicate over (incoming, current,
// outgoing) plus a rendering template and optional attributes.
//
// Invariant: if IsLoopStart, neither In nor Out may be Blank (enforced by
// the builder functions below; Table.Append re-checks it defensively).
type Entry struct {
	In, Out     Neighbor
	Current     CharSet
	Template    string
	Attrs       []Attr
	IsLoopStart bool
	Instrument  bool   // set for entries meant to aid debugging output only
	Provenance  string // source line or builder call site, for diagnostics
}

func (e *Entry) validate() error {
	if e.IsLoopStart && (e.In.Kind == Blank || e.Out.Kind == Blank) {
		return fmt.Errorf("ruleset: loop-start entry %q must not have a Blank neighbor", e.Provenance)
	}
	return nil
}

// Step builds a non-loop Entry: incoming=Must(inCS,inDS), outgoing=Must(outCS,outDS).
func Step(inCS CharSet, inDS DirSet, cur CharSet, outDS DirSet, outCS CharSet, template string, attrs ...Attr) Entry {
	return Entry{
		In:       Must(inCS, inDS),
		Current:  cur,
		Out:      Must(outCS, outDS),
		Template: template,
		Attrs:    attrs,
	}
}

// Loop builds a loop-start Entry with the same shape as Step.
func Loop(inCS CharSet, inDS DirSet, cur CharSet, outDS DirSet, outCS CharSet, template string, attrs ...Attr) Entry {
	e := Step(inCS, inDS, cur, outDS, outCS, template, attrs...)
	e.IsLoopStart = true
	return e
}

// StartEntry builds a path-start Entry: incoming=Blank, outgoing=Must(outCS,outDS).
func StartEntry(cur CharSet, outDS DirSet, outCS CharSet, template string, attrs ...Attr) Entry {
	return Entry{
		In:       NeighborBlank(),
		Current:  cur,
		Out:      Must(outCS, outDS),
		Template: template,
		Attrs:    attrs,
	}
}

// EndEntry builds a path-end Entry: incoming=Must(inCS,inDS), outgoing=Blank.
func EndEntry(inCS CharSet, inDS DirSet, cur CharSet, template string, attrs ...Attr) Entry {
	return Entry{
		In:       Must(inCS, inDS),
		Current:  cur,
		Out:      NeighborBlank(),
		Template: template,
		Attrs:    attrs,
	}
}

// MatchContext is the observed context around a cell being matched:
// incoming neighbor, current char, outgoing neighbor.
type MatchContext struct {
	In, Out Observation
	Current rune
}

// Matches implements the three-part match(e,in,curr,out) predicate.
func (e *Entry) Matches(ctx MatchContext) bool {
	return e.In.Matches(ctx.In) && e.Out.Matches(ctx.Out) && e.Current.Matches(ctx.Current)
}

// MatchesStart implements matches_start: the in-side must accept being
// blank (i.e. be Blank or May), the out-side is evaluated normally.
func (e *Entry) MatchesStart(ctx MatchContext) bool {
	if !e.In.CanBeBlank() {
		return false
	}
	return e.Out.Matches(ctx.Out) && e.Current.Matches(ctx.Current)
}

// MatchesEnd implements matches_end: symmetric to MatchesStart.
func (e *Entry) MatchesEnd(ctx MatchContext) bool {
	if !e.Out.CanBeBlank() {
		return false
	}
	return e.In.Matches(ctx.In) && e.Current.Matches(ctx.Current)
}
