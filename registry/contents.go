package registry

import (
	"flcore/entities"
	"flcore/section"
)

// buildSystemContents parses a system's own definition file and
// classifies every [Object]/[Zone] section into a concrete solar
// type. Grounded on routines.py's get_system_contents; the
// field-presence rules below are transcribed in the same order the
// Python checks them, since later rules assume earlier ones already
// claimed their sections. Zone parsing itself is left as a "todo" in
// that source; this module completes it.
func (r *Registry) buildSystemContents(sys *entities.System) entities.EntitySet[entities.SolarEntity] {
	var out entities.EntitySet[entities.SolarEntity]
	if sys.File == "" {
		return out
	}

	stream := r.loadSectionsAbs(r.path(sys.File))
	for _, sec := range stream {
		switch sec.Name {
		case "object":
			if solar := r.classifyObject(sys, sec); solar != nil {
				out.Add(solar)
			}
		case "zone":
			out.Add(r.buildZone(sys, sec))
		}
	}

	// Jump destinations need every system to already exist, which is
	// only guaranteed once the registry-wide system list is loaded -
	// SystemContents ensures that before calling here.
	for _, solar := range out.All() {
		if jump, ok := solar.(*entities.Jump); ok && len(jump.Goto) > 0 {
			if dest, ok := r.systems.Get(jump.Goto[0]); ok {
				jump.Destination = dest
			} else {
				r.warnDangling(jump.Nickname, jump.Goto[0])
			}
		}
	}
	return out
}

func newObjectFrom(sys *entities.System, sec section.Section) entities.Object {
	x, y, z, _ := sec.Floats3("pos")
	rx, ry, rz, _ := sec.Floats3("rotate")
	return entities.NewObject(
		entities.Entity{
			Nickname: sec.String("nickname"),
			IDsName:  int(sec.Int("ids_name")),
			IDsInfo:  int(sec.Int("ids_info")),
		},
		entities.Vec3{X: x, Y: y, Z: z},
		entities.Vec3{X: rx, Y: ry, Z: rz},
		sys,
		sec.String("archetype"),
	)
}

// classifyObject picks a concrete solar type from which optional keys
// a section carries, in the same precedence order flint checks them.
func (r *Registry) classifyObject(sys *entities.System, sec section.Section) entities.SolarEntity {
	if !sec.Has("ids_name") {
		return nil
	}

	obj := newObjectFrom(sys, sec)
	has := sec.Has

	switch {
	case has("base") && has("reputation") && has("space_costume"):
		baseSolar := entities.NewBaseSolar(obj, sec.String("reputation"), sec.String("base"), nil)
		if b, ok := r.bases.Get(baseSolar.BaseNickname); ok {
			baseSolar.Base = b
		} else {
			r.warnDangling(baseSolar.Nickname, baseSolar.BaseNickname)
		}
		return baseSolar

	case has("goto"):
		return entities.NewJump(obj, textsOf(sec, "goto"))

	case has("prev_ring") || has("next_ring"):
		return entities.NewTradeLaneRing(obj, sec.String("prev_ring"), sec.String("next_ring"))

	case has("loadout") && !has("reputation"):
		return entities.NewWreck(obj, sec.String("loadout"))

	case has("star"):
		spheroid := entities.NewSpheroid(obj, int(sec.Int("atmosphere_range")))
		return entities.NewStar(spheroid, sec.String("star"))

	case has("spin"):
		sx, sy, sz, _ := sec.Floats3("spin")
		spheroid := entities.NewSpheroid(obj, int(sec.Int("atmosphere_range")))
		if has("base") {
			planetaryBase := entities.NewPlanetaryBase(
				*entities.NewPlanet(spheroid, entities.Vec3{X: sx, Y: sy, Z: sz}),
				sec.String("reputation"), sec.String("base"), nil,
			)
			if b, ok := r.bases.Get(planetaryBase.BaseNickname); ok {
				planetaryBase.Base = b
			} else {
				r.warnDangling(planetaryBase.Nickname, planetaryBase.BaseNickname)
			}
			return planetaryBase
		}
		return entities.NewPlanet(spheroid, entities.Vec3{X: sx, Y: sy, Z: sz})

	default:
		o := obj
		return &o
	}
}

func (r *Registry) buildZone(sys *entities.System, sec section.Section) *entities.Zone {
	x, y, z, _ := sec.Floats3("pos")
	rx, ry, rz, _ := sec.Floats3("rotate")
	shape := sec.String("shape")

	return entities.NewZone(
		entities.Entity{Nickname: sec.String("nickname"), IDsName: int(sec.Int("ids_name"))},
		entities.Vec3{X: x, Y: y, Z: z},
		entities.Vec3{X: rx, Y: ry, Z: rz},
		sys,
		floatsOf(sec, "size"),
		shape,
	)
}

func textsOf(sec section.Section, key string) []string {
	e, ok := sec.Get(key)
	if !ok {
		return nil
	}
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = v.Text()
	}
	return out
}

func floatsOf(sec section.Section, key string) []float64 {
	e, ok := sec.Get(key)
	if !ok {
		return nil
	}
	out := make([]float64, len(e.Values))
	for i, v := range e.Values {
		out[i] = v.Float()
	}
	return out
}
