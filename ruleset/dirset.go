package ruleset

import (
	"strings"

	"github.com/npillmayer/grafigo/compass"
)

// DirSet is a non-empty subset of the eight compass directions, represented
// as a bitmask, preferred over a list for its constant-size membership test.
type DirSet uint8

// AllDirs is the DirSet containing every compass direction.
const AllDirs DirSet = 0xFF

// Dirs builds a DirSet from an explicit list of directions.
func Dirs(ds ...compass.Direction) DirSet {
	var s DirSet
	for _, d := range ds {
		s |= 1 << uint8(d)
	}
	return s
}

// Contains reports whether d is a member of s.
func (s DirSet) Contains(d compass.Direction) bool {
	return s&(1<<uint8(d)) != 0
}

// Union returns the set union of s and other.
func (s DirSet) Union(other DirSet) DirSet {
	return s | other
}

// Intersect returns the set intersection of s and other.
func (s DirSet) Intersect(other DirSet) DirSet {
	return s & other
}

// Empty reports whether the set has no members.
func (s DirSet) Empty() bool {
	return s == 0
}

func (s DirSet) String() string {
	if s == AllDirs {
		return "ANY"
	}
	var names []string
	for _, d := range compass.All() {
		if s.Contains(d) {
			names = append(names, d.String())
		}
	}
	return "(" + strings.Join(names, ",") + ")"
}
