// Package section holds the mid-level representation shared by every
// path into the game's configuration data, whether it arrived as a
// BINI blob or as text: an ordered sequence of Sections, each an
// ordered sequence of Entries, each entry a tuple of typed Values.
//
// Duplicate section names and duplicate keys within a section are
// both permitted - the game format expects, for example, several
// [Object] blocks per system file - so nothing here collapses to a
// plain map.
package section

import (
	"strconv"
	"strings"
)

// Kind discriminates the concrete type held by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single typed token from an entry's value list. Exactly
// one of the accessors matching Kind is meaningful.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

// Kind reports the concrete type of this value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the value as an int64. It coerces floats by truncation
// so callers don't need to care whether a stray "3.0" was written
// where an integer was expected - the game's own loader doesn't care
// either.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return int64(v.f)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Float returns the value as a float64, coercing ints.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		return 0
	}
}

// Bool returns the value as a bool.
func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return v.i != 0
}

// Text returns the value's string content regardless of kind. Numbers
// and bools are stringified as they'd appear in the source ini so
// this can back a generic "give me a string" accessor.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Entry is one key = value[, value...] line, or its BINI equivalent.
type Entry struct {
	Key    string
	Values []Value
}

// First returns the first value in the entry's tuple, or the zero
// Value if the entry has none (which shouldn't occur for entries
// produced by this module's decoders).
func (e Entry) First() Value {
	if len(e.Values) == 0 {
		return Value{}
	}
	return e.Values[0]
}

// Section is a named, ordered list of entries. Section names are
// lowercased on ingestion by every producer in this module, and
// callers compare them exactly; Get, All and Has compare entry keys
// with strings.EqualFold.
type Section struct {
	Name    string
	Entries []Entry
}

// Get returns the first entry with the given key.
func (s Section) Get(key string) (Entry, bool) {
	for _, e := range s.Entries {
		if strings.EqualFold(e.Key, key) {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns every entry with the given key, in file order. Used for
// keys the format permits multiple times per section, like a base's
// repeated "marketgood" rows.
func (s Section) All(key string) []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if strings.EqualFold(e.Key, key) {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether the section has at least one entry with the
// given key. This backs the field-presence classification the entity
// registry uses to pick a concrete solar subtype.
func (s Section) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// String returns the first value of the first entry with the given
// key, or "" if absent.
func (s Section) String(key string) string {
	e, ok := s.Get(key)
	if !ok {
		return ""
	}
	return e.First().Text()
}

// Int returns the first value of the first entry with the given key,
// as an int64, or 0 if absent.
func (s Section) Int(key string) int64 {
	e, ok := s.Get(key)
	if !ok {
		return 0
	}
	return e.First().Int()
}

// Float returns the first value of the first entry with the given
// key, as a float64, or 0 if absent.
func (s Section) Float(key string) float64 {
	e, ok := s.Get(key)
	if !ok {
		return 0
	}
	return e.First().Float()
}

// Bool returns the first value of the first entry with the given key.
func (s Section) Bool(key string) bool {
	e, ok := s.Get(key)
	if !ok {
		return false
	}
	return e.First().Bool()
}

// Floats3 reads a 3-tuple entry such as "pos = 1, 2, 3" into three
// float64s. ok is false if the key is absent or does not have exactly
// three values.
func (s Section) Floats3(key string) (x, y, z float64, ok bool) {
	e, present := s.Get(key)
	if !present || len(e.Values) != 3 {
		return 0, 0, 0, false
	}
	return e.Values[0].Float(), e.Values[1].Float(), e.Values[2].Float(), true
}

// Stream is an ordered sequence of Sections as produced by a decoder.
// Order matches the file's textual or binary order - this is a tested
// invariant (see the format packages' tests).
type Stream []Section
