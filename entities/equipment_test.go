package entities

import "testing"

func TestGunDerivedStats(t *testing.T) {
	munition := &Munition{HullDamage: 100, Lifetime: 2}
	gun := &Gun{
		Weapon: Weapon{
			External: External{Mountable: Mountable{Equipment: Equipment{}}},
			RefireDelay: 0.5,
		},
		PowerUsage:     20,
		MuzzleVelocity: 500,
		Munition:       munition,
	}

	if got := gun.DPS(); got != 200 {
		t.Errorf("DPS() = %v, want 200", got)
	}
	if got := gun.Efficiency(); got != 5 {
		t.Errorf("Efficiency() = %v, want 5", got)
	}
	if got := gun.Range(); got != 1000 {
		t.Errorf("Range() = %v, want 1000", got)
	}
}

func TestGunWithUnresolvedMunitionIsZero(t *testing.T) {
	gun := &Gun{Weapon: Weapon{RefireDelay: 1}}
	if got := gun.DPS(); got != 0 {
		t.Errorf("DPS() with nil munition = %v, want 0", got)
	}
	if got := gun.Range(); got != 0 {
		t.Errorf("Range() with nil munition = %v, want 0", got)
	}
}
