package registry

import (
	"flcore/config"
	"flcore/section"
)

// goodRow is one row of the goods table (DATA/EQUIPMENT/goods.ini's
// [Good] sections): the link between a nickname and its price, icon
// and market presence. Grounded on routines.py's _get_goods, which
// folds a ship's hull and package rows together the same way.
type goodRow struct {
	Nickname string
	Price    int64
	ItemIcon string
	Category string
	Ship     string
	Hull     string
}

// loadGoodsIndex reads every [Good] section from the goods category
// and folds shiphull/ship categories together the way _get_goods
// does: a shiphull good is filed under its ship's nickname, and a
// ship good is filed under its hull's nickname, so a caller looking
// up a ship by nickname finds its hull's price and icon directly.
func (r *Registry) loadGoodsIndex(inv inventory) map[string]goodRow {
	out := map[string]goodRow{}
	for _, path := range inv.categories["goods"] {
		stream := r.loadSectionsAbs(path)
		for _, sec := range stream {
			if sec.Name != "good" {
				continue
			}
			row := goodRow{
				Nickname: sec.String("nickname"),
				Price:    sec.Int("price"),
				ItemIcon: sec.String("item_icon"),
				Category: sec.String("category"),
				Ship:     sec.String("ship"),
				Hull:     sec.String("hull"),
			}
			key := row.Nickname
			switch row.Category {
			case "shiphull":
				key = row.Ship
			case "ship":
				key = row.Hull
			}
			if key != "" {
				out[key] = row
			}
		}
	}
	return out
}

// loadSectionsAbs is loadSections for a path that's already absolute,
// used for files reached through an inventory category rather than a
// path relative to the install root.
func (r *Registry) loadSectionsAbs(absPath string) section.Stream {
	stream, err := config.LoadSections(absPath)
	if err != nil {
		r.log.Warn("skipping unreadable file", "path", absPath, "error", err)
		return nil
	}
	return stream
}
