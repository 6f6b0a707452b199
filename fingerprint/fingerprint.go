/*
Package fingerprint computes a deterministic digest over a finished
extraction pass (discovered paths and text spans), so two renders of the
same diagram — possibly on different machines, possibly weeks apart — can
be compared for equality without re-rendering either one.

Built on github.com/cnf/structhash, which hashes a value by walking its
exported fields in a version-tagged, struct-tag-driven way built for
exactly this "stable digest of a Go value" use case.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingerprint

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/npillmayer/grafigo/textscan"
)

// version is the structhash schema version; bump it if digest's shape
// below changes in a way that should invalidate previously stored
// fingerprints.
const version = 1

// digest is the normalized, hash-stable projection of one extraction
// pass: only the fields that determine its rendered output, named so
// structhash's tag-driven field walk produces the same digest across
// struct-layout-preserving refactors.
type digest struct {
	Paths []pathDigest `hash:"paths"`
	Texts []textDigest `hash:"texts"`
}

type pathDigest struct {
	Steps  []stepDigest `hash:"steps"`
	Closed bool         `hash:"closed"`
	Ident  string       `hash:"ident"`
	Attrs  []attrDigest `hash:"attrs"`
}

type stepDigest struct {
	Col, Row int    `hash:"pt"`
	Ch       string `hash:"ch"`
}

type textDigest struct {
	Col, Row int          `hash:"pt"`
	Content  string       `hash:"content"`
	Ident    string       `hash:"ident"`
	Attrs    []attrDigest `hash:"attrs"`
}

type attrDigest struct {
	Name, Value string
}

// Of computes a stable SHA-1-based fingerprint of an extraction pass. Two
// calls given equal (paths, texts) — element order included, since order
// is itself part of what a deterministic extraction pass guarantees —
// always produce the same string. Panics if structhash cannot walk the
// digest struct, which would mean digest stopped being built entirely from
// plain exported value fields — an internal invariant, not a caller error.
func Of(paths []pathfind.Path, texts []textscan.TextSpan) string {
	d := digest{
		Paths: make([]pathDigest, len(paths)),
		Texts: make([]textDigest, len(texts)),
	}
	for i, p := range paths {
		d.Paths[i] = pathDigestOf(p)
	}
	for i, t := range texts {
		d.Texts[i] = textDigestOf(t)
	}
	sum, err := structhash.Hash(d, version)
	if err != nil {
		panic(fmt.Sprintf("fingerprint: hashing extraction result: %v", err))
	}
	return sum
}

func pathDigestOf(p pathfind.Path) pathDigest {
	steps := make([]stepDigest, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = stepDigest{Col: s.Pt.Col, Row: s.Pt.Row, Ch: string(s.Ch)}
	}
	return pathDigest{
		Steps:  steps,
		Closed: p.Closed,
		Ident:  p.Ident,
		Attrs:  attrDigestsOf(p.Attrs),
	}
}

func textDigestOf(t textscan.TextSpan) textDigest {
	return textDigest{
		Col:     t.Anchor.Col,
		Row:     t.Anchor.Row,
		Content: t.Content,
		Ident:   t.Ident,
		Attrs:   attrDigestsOf(t.Attrs),
	}
}

func attrDigestsOf(attrs []ruleset.Attr) []attrDigest {
	out := make([]attrDigest, len(attrs))
	for i, a := range attrs {
		out[i] = attrDigest{Name: a.Name, Value: a.Value}
	}
	return out
}
