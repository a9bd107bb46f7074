package registry

import "flcore/entities"

// buildCommodities reads every [Commodity] section from
// DATA/EQUIPMENT/select_equip.ini and links each to its price and
// icon via the goods/market indexes. Grounded on routines.py's
// get_commodities.
func (r *Registry) buildCommodities(inv inventory) entities.EntitySet[*entities.Commodity] {
	var out entities.EntitySet[*entities.Commodity]
	path := r.path("EQUIPMENT/select_equip.ini")

	goods := r.loadGoodsIndex(inv)
	_, byGood := r.loadMarkets(inv, goods)

	for _, sec := range r.loadSectionsAbs(path) {
		if sec.Name != "commodity" {
			continue
		}
		nickname := sec.String("nickname")
		if nickname == "" {
			continue
		}
		good := goods[nickname]

		commodity := &entities.Commodity{
			Good: entities.Good{
				Entity: entities.Entity{
					Nickname: nickname,
					IDsName:  int(sec.Int("ids_name")),
					IDsInfo:  int(sec.Int("ids_info")),
				},
				ItemIcon: good.ItemIcon,
				Price:    good.Price,
			},
			Volume: sec.Float("volume"),
		}
		side := byGood[nickname]
		if side.Sold == nil {
			side = newMarketSide()
		}
		commodity.SetMarket(side.Sold, side.Bought)
		out.Add(commodity)
	}
	return out
}
