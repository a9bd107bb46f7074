package registry

import (
	"flcore/entities"
	"flcore/section"
)

// buildEquipment reads every equipment ini in the equipment category
// and classifies each section by name via the archetype table, then
// resolves each Gun's fired Munition by its projectile archetype
// nickname now that every munition section has been seen. There is
// no single Python routine this mirrors - flint leaves equipment
// unmodelled. Unlike get_system_contents, the concrete type comes
// from the section name, not from which keys the section carries;
// the keys only fill in the chosen type's fields.
func (r *Registry) buildEquipment(inv inventory) entities.EntitySet[entities.Mount] {
	var out entities.EntitySet[entities.Mount]
	table := r.archetypeTable()
	goods := r.loadGoodsIndex(inv)
	_, byGood := r.loadMarkets(inv, goods)

	munitions := map[string]*entities.Munition{}
	guns := map[string]*entities.Gun{}

	for _, path := range inv.categories["equipment"] {
		for _, sec := range r.loadSectionsAbs(path) {
			kind, ok := table.Equipment[sec.Name]
			if !ok {
				continue
			}
			nickname := sec.String("nickname")
			if nickname == "" {
				continue
			}
			good := goods[nickname]
			base := entities.Good{
				Entity: entities.Entity{
					Nickname: nickname,
					IDsName:  int(sec.Int("ids_name")),
					IDsInfo:  int(sec.Int("ids_info")),
				},
				ItemIcon: good.ItemIcon,
				Price:    good.Price,
			}
			side := byGood[nickname]
			if side.Sold == nil {
				side = newMarketSide()
			}
			base.SetMarket(side.Sold, side.Bought)

			mount := buildMount(kind, sec, base)
			if gun, ok := mount.(*entities.Gun); ok {
				guns[nickname] = gun
			}
			if munition, ok := mount.(*entities.Munition); ok {
				munitions[nickname] = munition
			}
			out.Add(mount)
		}
	}

	for _, gun := range guns {
		if m, ok := munitions[gun.ProjectileArchetype]; ok {
			gun.Munition = m
		} else if gun.ProjectileArchetype != "" {
			r.warnDangling(gun.Nickname, gun.ProjectileArchetype)
		}
	}

	return out
}

// buildMount constructs the concrete Mount type named by kind, filling
// it in from sec's keys. Sections whose kind names an unrecognised
// concrete type fall back to a bare Equipment, mirroring how an
// unrecognised solar archetype falls back to a bare Object.
func buildMount(kind string, sec section.Section, base entities.Good) entities.Mount {
	equipment := entities.Equipment{Good: base, Lootable: sec.Bool("lootable")}
	mountable := entities.Mountable{Equipment: equipment, Volume: sec.Float("volume")}
	external := entities.External{Mountable: mountable, HitPoints: sec.Int("hit_pts")}
	weapon := entities.Weapon{
		External:            external,
		RefireDelay:         sec.Float("refire_delay"),
		ProjectileArchetype: sec.String("projectile_archetype"),
	}

	switch kind {
	case "gun":
		return &entities.Gun{
			Weapon:         weapon,
			PowerUsage:     sec.Float("power_usage"),
			MuzzleVelocity: sec.Float("muzzle_velocity"),
		}
	case "mine_dropper":
		return &entities.MineDropper{Weapon: weapon}
	case "countermeasure_dropper":
		return &entities.CounterMeasureDropper{Weapon: weapon}
	case "thruster":
		return &entities.Thruster{External: external}
	case "shield_generator":
		return &entities.ShieldGenerator{External: external}
	case "cloaking_device":
		return &entities.CloakingDevice{External: external}
	case "power":
		return &entities.Power{Mountable: mountable}
	case "tractor":
		return &entities.Tractor{Mountable: mountable}
	case "scanner":
		return &entities.Scanner{Mountable: mountable}
	case "armor":
		return &entities.Armor{Mountable: mountable}
	case "cargo_pod":
		return &entities.CargoPod{Mountable: mountable}
	case "munition":
		return &entities.Munition{
			Good:             base,
			HullDamage:       sec.Float("hull_damage"),
			EnergyDamage:     sec.Float("energy_damage"),
			Lifetime:         sec.Float("lifetime"),
			WeaponTechnology: sec.String("weapon_technology"),
		}
	case "countermeasure":
		return &entities.CounterMeasure{Good: base, EffectivenessVsMissile: sec.Float("effectiveness_vs_missile")}
	case "repair_kit":
		return &entities.RepairKit{Good: base, HullPointsRestored: sec.Int("hp_repaired")}
	case "shield_battery":
		return &entities.ShieldBattery{Good: base, ShieldPointsRestored: sec.Int("shield_repaired")}
	default:
		return &equipment
	}
}
