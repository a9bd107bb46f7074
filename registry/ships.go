package registry

import "flcore/entities"

// buildShips reads every [Ship] section from the ships category and
// links each to its price and icon via the goods/market indexes.
// Grounded on routines.py's get_ships: a ship with no hull row in the
// goods table is skipped, since its price and icon come from that row.
// A ship that has a hull row but is on no market is kept.
func (r *Registry) buildShips(inv inventory) entities.EntitySet[*entities.Ship] {
	var out entities.EntitySet[*entities.Ship]
	path := inv.firstPath("ships")
	if path == "" {
		return out
	}

	goods := r.loadGoodsIndex(inv)
	_, byGood := r.loadMarkets(inv, goods)

	for _, sec := range r.loadSectionsAbs(path) {
		if sec.Name != "ship" {
			continue
		}
		nickname := sec.String("nickname")
		if nickname == "" {
			continue
		}
		if !sec.Has("ids_info3") {
			continue // get_ships fetches on ids_info3; a section without it is excluded outright
		}
		hull, ok := goods[nickname]
		if !ok {
			continue // no hull good in the goods table
		}
		pkg, ok := goods[hull.Nickname]
		if !ok {
			pkg = hull
		}

		x, y, z, _ := sec.Floats3("steering_torque")
		dx, dy, dz, _ := sec.Floats3("angular_drag")

		ship := &entities.Ship{
			Good: entities.Good{
				Entity: entities.Entity{
					Nickname: nickname,
					IDsName:  int(sec.Int("ids_name")),
					IDsInfo:  int(sec.Int("ids_info")),
				},
				ItemIcon: hull.ItemIcon,
				Price:    hull.Price,
			},
			IDsInfo1:           int(sec.Int("ids_info1")),
			IDsInfo2:           int(sec.Int("ids_info2")),
			IDsInfo3:           int(sec.Int("ids_info3")),
			ShipClass:          int(sec.Int("ship_class")),
			HitPoints:          sec.Int("hit_pts"),
			HoldSize:           sec.Int("hold_size"),
			NanobotLimit:       sec.Int("nanobot_limit"),
			ShieldBatteryLimit: sec.Int("shield_battery_limit"),
			SteeringTorque:     entities.Vec3{X: x, Y: y, Z: z},
			AngularDrag:        entities.Vec3{X: dx, Y: dy, Z: dz},
		}
		side := byGood[pkg.Nickname]
		if side.Sold == nil {
			side = newMarketSide()
		}
		ship.SetMarket(side.Sold, side.Bought)
		out.Add(ship)
	}
	return out
}
