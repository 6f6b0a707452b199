package render

import "github.com/npillmayer/grafigo/ruleset"

// Kind coarsely classifies a rendering attribute: color-like, pen-like
// (stroke geometry), path-data, or other. Downstream document writers can
// group or filter attributes by kind without knowing every SVG name.
type Kind int8

const (
	OtherKind Kind = iota
	ColorKind
	PathKind
	PenKind
)

func (k Kind) String() string {
	switch k {
	case ColorKind:
		return "color"
	case PathKind:
		return "path"
	case PenKind:
		return "pen"
	default:
		return "other"
	}
}

// Attr is a merged, classified rendering attribute ready for the output
// element.
type Attr struct {
	Name, Value string
	Kind        Kind
}

var colorAttrs = map[string]bool{"stroke": true, "fill": true}
var penAttrs = map[string]bool{"stroke-width": true, "stroke-dasharray": true, "stroke-linecap": true}
var pathAttrs = map[string]bool{"d": true, "fill-rule": true}

func classify(name string) Kind {
	switch {
	case colorAttrs[name]:
		return ColorKind
	case penAttrs[name]:
		return PenKind
	case pathAttrs[name]:
		return PathKind
	default:
		return OtherKind
	}
}

// mergeAttrs classifies ruleset.Attr lists in order, later groups
// overriding earlier ones of the same Name (so a path's own footnote attrs
// can override a matched Entry's).
func mergeAttrs(groups ...[]ruleset.Attr) []Attr {
	order := make([]string, 0)
	byName := map[string]Attr{}
	for _, g := range groups {
		for _, a := range g {
			if _, seen := byName[a.Name]; !seen {
				order = append(order, a.Name)
			}
			byName[a.Name] = Attr{Name: a.Name, Value: a.Value, Kind: classify(a.Name)}
		}
	}
	merged := make([]Attr, 0, len(order))
	for _, n := range order {
		merged = append(merged, byName[n])
	}
	return merged
}
