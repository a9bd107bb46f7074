package registry

// marketSide holds one entity's two market rows: what it sells to
// counterparties, and what it buys from them, each nickname -> price.
type marketSide struct {
	Sold   map[string]int64
	Bought map[string]int64
}

func newMarketSide() marketSide {
	return marketSide{Sold: map[string]int64{}, Bought: map[string]int64{}}
}

// loadMarkets reads every [BaseGood] section from the markets
// category and builds the bidirectional base<->good price index.
// Grounded on routines.py's _get_markets: a good is "sold" at a base
// (i.e. the base sells it to players) when neither its minimum nor
// its maximum stock is zero; otherwise the base buys it instead. The
// same boolean indexes the reverse table so a Good's SoldAt/BoughtAt
// stay consistent with its bases' Sells/Buys.
func (r *Registry) loadMarkets(inv inventory, goods map[string]goodRow) (byBase, byGood map[string]marketSide) {
	byBase = map[string]marketSide{}
	byGood = map[string]marketSide{}

	// goods is keyed for ship lookups (a hull under its ship, a package
	// under its hull); marketgood rows name a good by its own nickname.
	byNickname := make(map[string]goodRow, len(goods))
	for _, row := range goods {
		byNickname[row.Nickname] = row
	}

	for _, path := range inv.categories["markets"] {
		stream := r.loadSectionsAbs(path)
		for _, sec := range stream {
			if sec.Name != "basegood" {
				continue
			}
			base := sec.String("base")
			if base == "" {
				continue
			}
			for _, e := range sec.All("marketgood") {
				// good, min_rank, min_rep, min_stock, max_stock, depreciate, multiplier, ...
				if len(e.Values) < 5 {
					continue
				}
				good := e.Values[0].Text()
				minStock := e.Values[3].Int()
				maxStock := e.Values[4].Int()
				multiplier := 1.0
				if len(e.Values) > 6 {
					multiplier = e.Values[6].Float()
				}

				row, ok := byNickname[good]
				if !ok {
					continue
				}
				sold := !(minStock == 0 || maxStock == 0)
				price := int64(float64(row.Price) * multiplier)

				baseSide, ok := byBase[base]
				if !ok {
					baseSide = newMarketSide()
				}
				goodSide, ok := byGood[good]
				if !ok {
					goodSide = newMarketSide()
				}
				if sold {
					baseSide.Sold[good] = price
					goodSide.Sold[base] = price
				} else {
					baseSide.Bought[good] = price
					goodSide.Bought[base] = price
				}
				byBase[base] = baseSide
				byGood[good] = goodSide
			}
		}
	}
	return byBase, byGood
}
