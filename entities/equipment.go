package entities

// Mount is implemented by every concrete equipment-hierarchy leaf -
// the equipment package's analogue of SolarEntity, letting the
// registry hold guns, thrusters and consumables together in one set
// and then narrow it down by concrete type the same way it narrows a
// system's contents.
type Mount interface {
	Keyed
}

// NarrowMount filters a heterogeneous Mount set down to the elements
// whose dynamic type also satisfies U. See Narrow for the solar
// equivalent of this.
func NarrowMount[U Keyed](s EntitySet[Mount]) EntitySet[U] {
	out := EntitySet[U]{byKey: map[string]U{}}
	for _, k := range s.order {
		if u, ok := any(s.byKey[k]).(U); ok {
			out.order = append(out.order, k)
			out.byKey[k] = u
		}
	}
	return out
}

// Equipment is the common shape of anything that mounts onto a ship,
// station or the game world - a much richer hierarchy than a plain
// Good, but every leaf is still, at bottom, a Good with a mount point.
// The registry builds a bare Equipment only for a section whose
// archetype-table kind names no concrete type, mirroring how an
// unrecognised solar falls back to a bare Object; a section whose
// name is absent from the table is skipped, not built.
type Equipment struct {
	Good
	Lootable bool
}

// Mountable is equipment with a physical footprint in a ship's cargo
// bay - as opposed to something like a Munition, which only exists in
// flight.
type Mountable struct {
	Equipment
	Volume float64
}

// External is Mountable equipment attached outside the hull and
// therefore destructible in combat.
type External struct {
	Mountable
	HitPoints int64
}

// Weapon is External equipment that fires something.
type Weapon struct {
	External
	RefireDelay         float64 // seconds between shots
	ProjectileArchetype string  // nickname of the Munition this weapon fires
}

// Gun is a direct-fire Weapon: a mounted cannon, blaster or similar.
type Gun struct {
	Weapon
	PowerUsage     float64
	MuzzleVelocity float64
	Munition       *Munition // resolved by the registry from ProjectileArchetype
}

// DPS returns this gun's damage per second, using its resolved
// munition's hull damage. Returns 0 if the munition has not resolved.
func (g *Gun) DPS() float64 {
	if g.Munition == nil || g.RefireDelay <= 0 {
		return 0
	}
	return g.Munition.HullDamage / g.RefireDelay
}

// Efficiency returns damage per unit of power drawn, per shot.
func (g *Gun) Efficiency() float64 {
	if g.Munition == nil || g.PowerUsage <= 0 {
		return 0
	}
	return g.Munition.HullDamage / g.PowerUsage
}

// Range returns this gun's effective range: muzzle velocity times the
// munition's flight lifetime.
func (g *Gun) Range() float64 {
	if g.Munition == nil {
		return 0
	}
	return g.MuzzleVelocity * g.Munition.Lifetime
}

// MineDropper is a Weapon that lays stationary mines rather than
// firing projectiles along a line of sight.
type MineDropper struct {
	Weapon
}

// CounterMeasureDropper is a Weapon that deploys CounterMeasure
// charges to defeat incoming guided munitions.
type CounterMeasureDropper struct {
	Weapon
}

// Thruster is External equipment providing a temporary speed boost.
type Thruster struct {
	External
}

// ShieldGenerator is External equipment that regenerates a ship's
// shield capacity.
type ShieldGenerator struct {
	External
}

// CloakingDevice is External equipment that hides a ship from sensors.
type CloakingDevice struct {
	External
}

// Power is Mountable equipment supplying a ship's reactor capacity.
type Power struct {
	Mountable
}

// Tractor is Mountable equipment used to pull in loot and cargo crates.
type Tractor struct {
	Mountable
}

// Scanner is Mountable equipment that extends detection range and
// cargo-scan ability.
type Scanner struct {
	Mountable
}

// Armor is Mountable equipment that adds to a ship's hit points.
type Armor struct {
	Mountable
}

// CargoPod is Mountable equipment adding external cargo capacity.
type CargoPod struct {
	Mountable
}

// Munition is what a Gun fires: the projectile or missile itself,
// resolved from a Weapon's ProjectileArchetype nickname. Munitions are
// not mounted and so are not Equipment.
type Munition struct {
	Good
	HullDamage       float64
	EnergyDamage     float64
	Lifetime         float64 // seconds before the projectile expires
	WeaponTechnology string  // "" if this munition has no counter-technology requirement
}

// CounterMeasure is the flare/chaff a CounterMeasureDropper launches.
type CounterMeasure struct {
	Good
	EffectivenessVsMissile float64
}

// RepairKit is a consumable that restores hull hit points.
type RepairKit struct {
	Good
	HullPointsRestored int64
}

// ShieldBattery is a consumable that restores shield capacity.
type ShieldBattery struct {
	Good
	ShieldPointsRestored int64
}
