// Package entities defines the typed object graph this module
// projects game data files onto: systems, bases, factions, ships,
// commodities, equipment and the various kinds of solar found inside
// a system.
//
// Reference: flint's entities package, whose dataclass hierarchy
// (Entity -> Solar/Good/System/Base/Faction) this package translates
// into embedded structs and a Keyed interface, since Go has no
// inheritance to fall back on.
package entities

import (
	"fmt"

	"flcore/errkinds"
	"flcore/fllog"
	"flcore/markup"
)

// Entity is the common identity shared by everything the registry
// builds: a nickname unique within its concrete type, and the two
// resource IDs used to look up its display name and infocard text.
type Entity struct {
	Nickname string
	IDsName  int
	IDsInfo  int
}

// Key returns the entity's nickname, satisfying Keyed. Every concrete
// entity type embeds Entity (directly or transitively) and so gets
// this for free.
func (e Entity) Key() string { return e.Nickname }

// Resolver looks up display strings by resource ID. The registry's
// merged resource tables implement this; entities never resolve
// resource IDs themselves, which is what lets Entity values be built
// and tested with no DLLs on hand at all.
type Resolver interface {
	Name(id int) string
	Infocard(id int, mode markup.Mode) string
}

// Name returns this entity's display name via r.
func (e Entity) Name(r Resolver) string {
	return r.Name(e.IDsName)
}

// Infocard returns this entity's infocard text via r, rendered
// according to mode.
func (e Entity) Infocard(r Resolver, mode markup.Mode) string {
	return r.Infocard(e.IDsInfo, mode)
}

// Keyed is the minimal capability EntitySet requires of its elements:
// a stable string key to index and deduplicate by.
type Keyed interface {
	Key() string
}

// EntitySet is an insertion-ordered, nickname-keyed collection. Its
// zero value is an empty, usable set.
type EntitySet[T Keyed] struct {
	order []string
	byKey map[string]T
}

// NewEntitySet builds a set from items, in order. Later items with a
// nickname already seen overwrite the earlier one but keep its
// original position - this matches the game's own "last definition
// wins" tolerance for mod overrides.
func NewEntitySet[T Keyed](items ...T) EntitySet[T] {
	s := EntitySet[T]{byKey: make(map[string]T, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts or overwrites item, keyed by item.Key(). A collision -
// two items sharing a key - is not an error: the newer item wins, its
// position in the set unchanged from the earlier one's, matching the
// game's own "last definition wins" tolerance for mod overrides. It is
// still reported, since a collision within what should be a single
// author's data usually indicates a mistake.
func (s *EntitySet[T]) Add(item T) {
	if s.byKey == nil {
		s.byKey = map[string]T{}
	}
	key := item.Key()
	if existing, exists := s.byKey[key]; exists {
		err := &errkinds.CollisionOnNickname{Type: fmt.Sprintf("%T", existing), Nickname: key}
		fllog.Default().Warn(err.Error(), "type", fmt.Sprintf("%T", existing), "nickname", key)
	} else {
		s.order = append(s.order, key)
	}
	s.byKey[key] = item
}

// Get looks up an item by nickname.
func (s EntitySet[T]) Get(nickname string) (T, bool) {
	v, ok := s.byKey[nickname]
	return v, ok
}

// Len reports the number of items in the set.
func (s EntitySet[T]) Len() int { return len(s.order) }

// All returns every item, in insertion order. The returned slice is a
// fresh copy; mutating it does not affect the set.
func (s EntitySet[T]) All() []T {
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}

// Where returns the subset of items for which pred returns true,
// preserving order. This is the Go equivalent of flint's EntitySet.where.
func (s EntitySet[T]) Where(pred func(T) bool) EntitySet[T] {
	out := EntitySet[T]{byKey: map[string]T{}}
	for _, k := range s.order {
		v := s.byKey[k]
		if pred(v) {
			out.order = append(out.order, k)
			out.byKey[k] = v
		}
	}
	return out
}

// Union returns a new set containing every item of s and other. Where
// a nickname is present in both, other's copy wins - other is treated
// as the override layer, the way a mod's data overrides the base game's.
func (s EntitySet[T]) Union(other EntitySet[T]) EntitySet[T] {
	out := NewEntitySet[T](s.All()...)
	for _, item := range other.All() {
		out.Add(item)
	}
	return out
}

// Arb returns an arbitrary element - in practice the first inserted -
// and false if the set is empty. Mirrors flint's EntitySet.arb, used
// where a caller expects exactly one match from a Where query (e.g. a
// base's single solar).
func (s EntitySet[T]) Arb() (T, bool) {
	var zero T
	if len(s.order) == 0 {
		return zero, false
	}
	return s.byKey[s.order[0]], true
}

// Narrow filters a heterogeneous set down to the elements whose
// dynamic type also satisfies U, returning a set typed by U. This is
// how EntitySet[SolarEntity] becomes EntitySet[*Star],
// EntitySet[*Jump], and so on - the Go analogue of flint's isinstance
// filtering over a plain Python collection.
func Narrow[U Keyed](s EntitySet[SolarEntity]) EntitySet[U] {
	out := EntitySet[U]{byKey: map[string]U{}}
	for _, k := range s.order {
		if u, ok := any(s.byKey[k]).(U); ok {
			out.order = append(out.order, k)
			out.byKey[k] = u
		}
	}
	return out
}
