package ruleset

import "github.com/npillmayer/grafigo/compass"

// NeighborKind tags which of the three Neighbor shapes a constraint is.
type NeighborKind uint8

const (
	// Blank requires this side to be an endpoint (no neighbor present).
	Blank NeighborKind = iota
	// MustHave requires a non-empty neighbor satisfying CharSet and DirSet.
	MustHave
	// MayHave matches either an endpoint or a matching neighbor.
	MayHave
)

// Neighbor is one of {Blank, Must(CharSet,DirSet), May(CharSet,DirSet)}.
// Modeled as a tagged variant rather than via subclassing.
type Neighbor struct {
	Kind NeighborKind
	CS   CharSet
	DS   DirSet
}

// NeighborBlank constructs a Blank constraint.
func NeighborBlank() Neighbor {
	return Neighbor{Kind: Blank}
}

// Must constructs a Must(cs,ds) constraint.
func Must(cs CharSet, ds DirSet) Neighbor {
	return Neighbor{Kind: MustHave, CS: cs, DS: ds}
}

// May constructs a May(cs,ds) constraint. Not expressible in the textual
// DSL; only usable via the in-memory builder.
func May(cs CharSet, ds DirSet) Neighbor {
	return Neighbor{Kind: MayHave, CS: cs, DS: ds}
}

// Observation is what the finder/renderer actually saw on one side of a
// cell: either nothing (an endpoint) or a (char, direction) pair. The zero
// value represents "nothing observed" (ok == false).
type Observation struct {
	Ch  rune
	Dir compass.Direction
	Ok  bool
}

// Obs builds a present Observation.
func Obs(ch rune, d compass.Direction) Observation {
	return Observation{Ch: ch, Dir: d, Ok: true}
}

// Matches reports whether this Neighbor constraint is satisfied by obs.
func (n Neighbor) Matches(obs Observation) bool {
	switch n.Kind {
	case Blank:
		return !obs.Ok
	case MustHave:
		return obs.Ok && n.DS.Contains(obs.Dir) && n.CS.Matches(obs.Ch)
	case MayHave:
		if !obs.Ok {
			return true
		}
		return n.DS.Contains(obs.Dir) && n.CS.Matches(obs.Ch)
	default:
		return false
	}
}

// CanBeBlank reports whether this constraint accepts a missing neighbor,
// which is required for a constraint to match as a path start or end.
func (n Neighbor) CanBeBlank() bool {
	return n.Kind == Blank || n.Kind == MayHave
}
