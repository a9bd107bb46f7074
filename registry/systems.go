package registry

import "flcore/entities"

// buildSystems reads every [System] section from the universe
// category. Grounded on routines.py's get_systems.
func (r *Registry) buildSystems(inv inventory) entities.EntitySet[*entities.System] {
	var out entities.EntitySet[*entities.System]
	path := inv.firstPath("universe")
	if path == "" {
		return out
	}
	for _, sec := range r.loadSectionsAbs(path) {
		if sec.Name != "system" {
			continue
		}
		nickname := sec.String("nickname")
		if nickname == "" {
			continue
		}
		out.Add(&entities.System{
			Entity: entities.Entity{
				Nickname: nickname,
				IDsName:  int(sec.Int("strid_name")),
				IDsInfo:  int(sec.Int("ids_info")),
			},
			File:        sec.String("file"),
			NavMapScale: sec.Float("navmapscale"),
		})
	}
	return out
}
