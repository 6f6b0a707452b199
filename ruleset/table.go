package ruleset

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Table is an ordered list of Entries; order is significant — the first
// matching Entry wins.
type Table struct {
	entries *arraylist.List
	frozen  bool
}

// NewTable creates an empty, mutable Table. Call Freeze once construction
// is complete; a frozen table rejects further Appends and may be shared
// read-only across goroutines.
func NewTable() *Table {
	return &Table{entries: arraylist.New()}
}

// Freeze marks the table immutable and returns it.
func (t *Table) Freeze() *Table {
	t.frozen = true
	return t
}

// Append adds e to the end of the table. Returns an error if the table is
// frozen or e violates the loop-start invariant.
func (t *Table) Append(e Entry) error {
	if t.frozen {
		return fmt.Errorf("ruleset: appending to a frozen table")
	}
	if err := e.validate(); err != nil {
		return err
	}
	t.entries.Add(e)
	return nil
}

// MustAppend is Append, panicking on error; used by builder-style table
// construction where entries are known-good constants.
func (t *Table) MustAppend(e Entry) *Table {
	if err := t.Append(e); err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Size()
}

// At returns the i-th entry in table order.
func (t *Table) At(i int) (Entry, bool) {
	v, ok := t.entries.Get(i)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Each calls fn for every entry in table order, stopping early if fn
// returns false.
func (t *Table) Each(fn func(i int, e Entry) bool) {
	for i := 0; i < t.entries.Size(); i++ {
		e, _ := t.At(i)
		if !fn(i, e) {
			return
		}
	}
}

// FirstMatch returns the first non-loop-start entry (in table order) for
// which ctx satisfies Matches.
func (t *Table) FirstMatch(ctx MatchContext) (Entry, bool) {
	var found Entry
	var ok bool
	t.Each(func(_ int, e Entry) bool {
		if e.IsLoopStart {
			return true
		}
		if e.Matches(ctx) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// FirstLoopStart returns the first loop-start entry whose incoming/outgoing
// constraints accept the given in/out observations, i.e. whether closing the
// loop here is legal.
func (t *Table) FirstLoopStart(ctx MatchContext) (Entry, bool) {
	var found Entry
	var ok bool
	t.Each(func(_ int, e Entry) bool {
		if !e.IsLoopStart {
			return true
		}
		if e.Matches(ctx) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// FirstStart returns the first entry matching as a path start: its incoming
// side must tolerate a blank/missing predecessor.
func (t *Table) FirstStart(ctx MatchContext) (Entry, bool) {
	var found Entry
	var ok bool
	t.Each(func(_ int, e Entry) bool {
		if e.MatchesStart(ctx) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// FirstEnd returns the first entry matching as a path end: its outgoing
// side must tolerate a blank/missing successor.
func (t *Table) FirstEnd(ctx MatchContext) (Entry, bool) {
	var found Entry
	var ok bool
	t.Each(func(_ int, e Entry) bool {
		if e.MatchesEnd(ctx) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

func (t *Table) String() string {
	return fmt.Sprintf("Table[%d entries]", t.Len())
}
