package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/grafigo/fingerprint"
	"github.com/npillmayer/grafigo/pathfind"
	"github.com/npillmayer/grafigo/textscan"
	"github.com/pterm/pterm"
)

// printDebugTree prints to stderr a pterm tree of every discovered path and
// text span, grouped under top-level "paths" and "texts" branches with one
// branch per path/span and one leaf per path step, followed by the
// extraction's fingerprint.
func printDebugTree(paths []pathfind.Path, texts []textscan.TextSpan) {
	ll := pterm.LeveledList{}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "paths"})
	for i, p := range paths {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: pathLabel(i, p)})
		for _, s := range p.Steps {
			ll = append(ll, pterm.LeveledListItem{
				Level: 2,
				Text:  fmt.Sprintf("(%d,%d) %q", s.Pt.Col, s.Pt.Row, s.Ch),
			})
		}
	}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "texts"})
	for i, t := range texts {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("text#%d %q at (%d,%d) ident=%q", i, t.Content, t.Anchor.Col, t.Anchor.Row, t.Ident),
		})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	if tree, err := pterm.DefaultTree.WithRoot(root).Srender(); err == nil {
		fmt.Fprintln(os.Stderr, tree)
	}
	fmt.Fprint(os.Stderr, pterm.Info.Sprintln(fmt.Sprintf("fingerprint: %s", fingerprint.Of(paths, texts))))
}

func pathLabel(i int, p pathfind.Path) string {
	kind := "open"
	if p.Closed {
		kind = "closed"
	}
	if p.Ident != "" {
		return fmt.Sprintf("path#%d (%s, ident=%q, %d steps)", i, kind, p.Ident, len(p.Steps))
	}
	return fmt.Sprintf("path#%d (%s, %d steps)", i, kind, len(p.Steps))
}
