// Package enum decodes raw identifiers read from the target into closed,
// named sets while keeping values the tables do not know.
package enum

import (
	"fmt"

	"iemem/process"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Lookup is the result of decoding a raw identifier: Found when the table
// recognizes it, Unknown otherwise. Raw is the value read in both cases.
type Lookup[T constraints.Integer] struct {
	Raw   T
	Found bool
}

// Found wraps a recognized value
func Found[T constraints.Integer](v T) Lookup[T] {
	return Lookup[T]{Raw: v, Found: true}
}

// Unknown wraps a raw value no table entry matched
func Unknown[T constraints.Integer](raw T) Lookup[T] {
	return Lookup[T]{Raw: raw}
}

// Get returns the recognized value, or false when the lookup is Unknown.
func (l Lookup[T]) Get() (T, bool) {
	return l.Raw, l.Found
}

func (l Lookup[T]) String() string {
	if !l.Found {
		return fmt.Sprintf("Unknown(%d)", l.Raw)
	}
	if s, ok := any(l.Raw).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%d", l.Raw)
}

// Table is the closed set of variants of one identifier domain.
type Table[T constraints.Integer] struct {
	name  string
	names map[T]string
}

// NewTable builds a table from an explicit raw value to name mapping.
func NewTable[T constraints.Integer](name string, names map[T]string) *Table[T] {
	return &Table[T]{name: name, names: names}
}

func (t *Table[T]) Name() string {
	return t.name
}

// Lookup never fails: an unmapped raw value degrades to Unknown.
func (t *Table[T]) Lookup(raw T) Lookup[T] {
	if _, ok := t.names[raw]; ok {
		return Found(raw)
	}
	return Unknown(raw)
}

// Parse is the strict form of Lookup, for identifiers that decoding cannot
// proceed without.
func (t *Table[T]) Parse(raw T) (T, error) {
	if _, ok := t.names[raw]; ok {
		return raw, nil
	}
	return raw, &process.InvalidEnumValueError{Enum: t.name, Value: uint64(raw)}
}

func (t *Table[T]) Contains(raw T) bool {
	_, ok := t.names[raw]
	return ok
}

// NameOf names v, or formats it as Name(raw) when unmapped.
func (t *Table[T]) NameOf(v T) string {
	if name, ok := t.names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", t.name, v)
}

// Values lists every mapped value in ascending order
func (t *Table[T]) Values() []T {
	values := maps.Keys(t.names)
	slices.Sort(values)
	return values
}
