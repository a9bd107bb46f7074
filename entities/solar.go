package entities

import "strings"

// Vec3 is a plain 3-component vector, used for position, rotation and
// spin. It carries no behaviour of its own; the coordinate system and
// units are the game's (metres, Euler degrees).
type Vec3 struct {
	X, Y, Z float64
}

// SolarEntity is implemented by every concrete kind of thing that can
// occupy a system: everything from a star down to a trade lane ring.
// Narrow uses this as the wide type it filters down from.
type SolarEntity interface {
	Keyed
	Position() Vec3
	System() *System
}

// solarBase carries the fields and methods every solar shares. It is
// embedded, never used directly - Solar in flint's hierarchy is
// likewise never instantiated on its own.
type solarBase struct {
	Entity
	Pos    Vec3
	Rotate Vec3
	Sys    *System
}

func (s solarBase) Position() Vec3  { return s.Pos }
func (s solarBase) System() *System { return s.Sys }

// Object is a solid, celestial or artificial thing in space, as
// opposed to a Zone. Its concrete subtype is chosen by the registry
// from which fields its defining section carries; a section that
// looks like none of the recognised subtypes still becomes a bare
// *Object rather than being dropped.
type Object struct {
	solarBase
	Archetype string
}

// NewObject builds the fields every solar shares. Registry building
// code outside this package uses this rather than a struct literal,
// since solarBase's fields aren't exported - the split lets solarBase
// stay an implementation detail while still being cheap for the
// registry to populate.
func NewObject(e Entity, pos, rotate Vec3, sys *System, archetype string) Object {
	return Object{solarBase: solarBase{Entity: e, Pos: pos, Rotate: rotate, Sys: sys}, Archetype: archetype}
}

// Jump is a wormhole, artificial or natural, between star systems.
type Jump struct {
	Object
	// Goto holds the game's own "goto" tuple as stored: the
	// destination system's nickname first, then the nickname of the
	// object the jump arrives at.
	Goto        []string
	Destination *System // resolved by the registry once every system is known
}

// Type classifies this jump conduit from its archetype nickname.
func (j *Jump) Type() string {
	archetype := strings.ToLower(j.Archetype)
	switch {
	case strings.Contains(archetype, "gate"):
		return "Jump Gate"
	case strings.Contains(archetype, "jumphole"):
		return "Jump Hole"
	case archetype == "entrypoint":
		return "Atmospheric Entry"
	default:
		return "Unknown"
	}
}

// OriginSystem is the system this wormhole starts in.
func (j *Jump) OriginSystem() *System { return j.Sys }

// NewJump builds a Jump from an already-built Object and its goto
// hop chain. Destination is left nil for the registry to resolve once
// every system is known.
func NewJump(obj Object, hops []string) *Jump {
	return &Jump{Object: obj, Goto: hops}
}

// TradeLaneRing is one ring of a trade lane, the game's superluminal
// in-system travel structure. Rings form doubly-linked chains via
// PrevRing/NextRing nicknames; System.Lanes reconstructs the chains.
type TradeLaneRing struct {
	Object
	PrevRing string // empty if this ring starts a lane
	NextRing string // empty if this ring ends a lane
}

// NewTradeLaneRing builds a TradeLaneRing from an already-built Object.
func NewTradeLaneRing(obj Object, prevRing, nextRing string) *TradeLaneRing {
	return &TradeLaneRing{Object: obj, PrevRing: prevRing, NextRing: nextRing}
}

// Wreck is a lootable, wrecked ship (called "secrets" in the game's
// own files).
type Wreck struct {
	Object
	Loadout string
}

// NewWreck builds a Wreck from an already-built Object.
func NewWreck(obj Object, loadout string) *Wreck {
	return &Wreck{Object: obj, Loadout: loadout}
}

// Spheroid is a star or planet - a round Object with an atmosphere.
type Spheroid struct {
	Object
	AtmosphereRange int
}

// NewSpheroid builds the fields a Star or Planet shares.
func NewSpheroid(obj Object, atmosphereRange int) Spheroid {
	return Spheroid{Object: obj, AtmosphereRange: atmosphereRange}
}

// Star is a star in a system.
type Star struct {
	Spheroid
	StarArchetype string // the "star" field: a distinct archetype nickname from Object.Archetype
}

// NewStar builds a Star from an already-built Spheroid.
func NewStar(sph Spheroid, starArchetype string) *Star {
	return &Star{Spheroid: sph, StarArchetype: starArchetype}
}

// Planet is a planet in a system.
type Planet struct {
	Spheroid
	Spin Vec3
}

// NewPlanet builds a Planet from an already-built Spheroid.
func NewPlanet(sph Spheroid, spin Vec3) *Planet {
	return &Planet{Spheroid: sph, Spin: spin}
}

// BaseSolar is the physical representation of a Base: the solar
// object players see and dock with. Freelancer defines the
// station/planet's economic and political data (Base) separately from
// its physical presence in a system (BaseSolar); this is that split.
type BaseSolar struct {
	Object
	Reputation   string // nickname of the faction that owns this base
	BaseNickname string // nickname of the Base entity this solar represents
	Base         *Base  // resolved by the registry
	Owner        *Faction
}

// UniverseBase returns the Base entity this solar represents.
func (b *BaseSolar) UniverseBase() *Base { return b.Base }

// NewBaseSolar builds a BaseSolar from an already-built Object.
func NewBaseSolar(obj Object, reputation, baseNickname string, base *Base) *BaseSolar {
	return &BaseSolar{Object: obj, Reputation: reputation, BaseNickname: baseNickname, Base: base}
}

// PlanetaryBase is a base on the surface of a planet, reached via a
// docking ring rather than free-floating in space. It carries both a
// Planet's fields (spin, atmosphere) and a BaseSolar's (reputation,
// owning base) - flint expresses this with multiple inheritance,
// which Go has no equivalent for, so the fields are flattened here.
type PlanetaryBase struct {
	Planet
	Reputation   string
	BaseNickname string
	Base         *Base
	Owner        *Faction
}

func (p *PlanetaryBase) UniverseBase() *Base { return p.Base }

// NewPlanetaryBase builds a PlanetaryBase from an already-built Planet.
func NewPlanetaryBase(planet Planet, reputation, baseNickname string, base *Base) *PlanetaryBase {
	return &PlanetaryBase{Planet: planet, Reputation: reputation, BaseNickname: baseNickname, Base: base}
}

// Zone is a region of space, possibly with gameplay effects attached
// (asteroid fields, nebulae, no-fire zones). Unlike Object, a Zone has
// no physical presence and is never destructible.
type Zone struct {
	solarBase
	// Size holds 1, 2 or 3 components depending on Shape: a sphere
	// has one radius, a box has three dimensions, a ring has two radii.
	Size  []float64
	Shape string // "sphere", "ring", "box", or "ellipsoid"
}

// NewZone builds a Zone the way NewObject builds an Object.
func NewZone(e Entity, pos, rotate Vec3, sys *System, size []float64, shape string) *Zone {
	return &Zone{solarBase: solarBase{Entity: e, Pos: pos, Rotate: rotate, Sys: sys}, Size: size, Shape: shape}
}
