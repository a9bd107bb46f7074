package registry

import "flcore/entities"

// buildFactions reads every [Group] section from the initial_world
// category into a Faction, then walks every system's contents to
// gather the bases each faction operates. Grounded on routines.py's
// get_groups (renamed Group -> Faction here to match the rest of this
// module's terminology) for the reputation sheet, and on BaseSolar's
// Reputation field (routines.py's get_system_contents) for ownership.
func (r *Registry) buildFactions(inv inventory) entities.EntitySet[*entities.Faction] {
	var out entities.EntitySet[*entities.Faction]
	path := inv.firstPath("initial_world")
	if path == "" {
		return out
	}

	for _, sec := range r.loadSectionsAbs(path) {
		if sec.Name != "group" {
			continue
		}
		nickname := sec.String("nickname")
		if nickname == "" {
			continue
		}
		rep := map[string]float64{}
		for _, e := range sec.All("rep") {
			if len(e.Values) < 2 {
				continue
			}
			rep[e.Values[1].Text()] = e.Values[0].Float()
		}
		faction := &entities.Faction{
			Entity: entities.Entity{
				Nickname: nickname,
				IDsName:  int(sec.Int("ids_name")),
				IDsInfo:  int(sec.Int("ids_info")),
			},
		}
		faction.SetReputations(rep)
		out.Add(faction)
	}

	if systems, err := r.ensureSystems(); err == nil {
		basesByFaction := map[string][]*entities.BaseSolar{}
		for _, sys := range systems.All() {
			for _, solar := range r.ensureContents(sys).All() {
				if b, ok := solar.(*entities.BaseSolar); ok && b.Reputation != "" {
					basesByFaction[b.Reputation] = append(basesByFaction[b.Reputation], b)
				}
			}
		}
		for _, faction := range out.All() {
			var bases entities.EntitySet[*entities.BaseSolar]
			for _, b := range basesByFaction[faction.Nickname] {
				b.Owner = faction
				bases.Add(b)
			}
			faction.SetBases(bases)
		}
	}

	return out
}
