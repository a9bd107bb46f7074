package registry

import "flcore/entities"

// buildBases reads every [Base] section from the universe category
// and attaches its resolved system and market rows. Grounded on
// routines.py's get_bases; a base carries no infocard of its own, so
// IDsInfo is left zero the way the Python leaves ids_info None.
func (r *Registry) buildBases(inv inventory) entities.EntitySet[*entities.Base] {
	var out entities.EntitySet[*entities.Base]
	path := inv.firstPath("universe")
	if path == "" {
		return out
	}

	goods := r.loadGoodsIndex(inv)
	byBase, _ := r.loadMarkets(inv, goods)

	for _, sec := range r.loadSectionsAbs(path) {
		if sec.Name != "base" {
			continue
		}
		nickname := sec.String("nickname")
		if nickname == "" {
			continue
		}
		base := &entities.Base{
			Entity: entities.Entity{
				Nickname: nickname,
				IDsName:  int(sec.Int("strid_name")),
			},
			SystemNickname: sec.String("system"),
		}
		if sys, ok := r.systems.Get(base.SystemNickname); ok {
			base.System = sys
		} else {
			r.warnDangling(base.Nickname, base.SystemNickname)
		}
		side := byBase[nickname]
		if side.Sold == nil {
			side = newMarketSide()
		}
		base.SetMarket(side.Sold, side.Bought)
		out.Add(base)
	}
	return out
}
