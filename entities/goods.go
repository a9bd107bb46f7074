package entities

import (
	"math"

	"flcore/markup"
)

// Good is the common shape of anything with a price that can appear
// in a base's market: commodities, ships, and (via the Equipment
// hierarchy) equipment. It is embedded, not used bare.
type Good struct {
	Entity
	ItemIcon string // path to the icon's .3db file, relative to DATA; "" for the game's default blank icon
	Price    int64  // base price, before a base's market multiplier

	market map[bool]map[string]int64 // "sold at" (true) / "bought at" (false) -> base nickname -> price
}

// SetMarket installs this good's decoded market rows. Called once by
// the registry during a build.
func (g *Good) SetMarket(soldAt, boughtAt map[string]int64) {
	g.market = map[bool]map[string]int64{true: soldAt, false: boughtAt}
}

// SoldAt returns the bases that sell this good, of the form base
// nickname -> price.
func (g *Good) SoldAt() map[string]int64 { return copyMarketRow(g.market[true]) }

// BoughtAt returns the bases that buy this good, of the form base
// nickname -> price.
func (g *Good) BoughtAt() map[string]int64 { return copyMarketRow(g.market[false]) }

// IconPath returns the path, relative to DATA, of this good's icon,
// substituting the game's default blank icon when none is set.
func (g *Good) IconPath() string {
	if g.ItemIcon != "" {
		return g.ItemIcon
	}
	return "EQUIPMENT/MODELS/COMMODITIES/NN_ICONS/blank.3db"
}

// Commodity is a good in tradeable, transportable form: ore, food,
// contraband and the like.
type Commodity struct {
	Good
	Volume float64 // cargo bay volume of one unit
}

// Ship is a star ship: a good with a cargo bay, hardpoints, and a
// three-part infocard.
type Ship struct {
	Good
	IDsInfo1, IDsInfo2, IDsInfo3 int
	ShipClass                    int
	HitPoints                    int64
	HoldSize                     int64
	NanobotLimit                 int64
	ShieldBatteryLimit           int64
	SteeringTorque               Vec3
	AngularDrag                  Vec3
	Hardpoints                   []string
}

// shipClassNames maps a ship's numeric class to its display name. The
// entries above 5 are Discovery-mod additions to the base game's
// classification, carried here because they appear in the wild often
// enough that a strict base-game-only table would misclassify most
// modded installs.
var shipClassNames = map[int]string{
	0:  "Light Fighter",
	1:  "Heavy Fighter",
	2:  "Freighter",
	3:  "Very Heavy Fighter",
	4:  "Super Heavy Fighter",
	5:  "Bomber",
	6:  "Transport",
	7:  "Transport",
	8:  "Transport",
	9:  "Transport",
	10: "Transport",
	11: "Gunboat",
	12: "Gunboat",
	13: "Cruiser",
	14: "Cruiser",
	15: "Cruiser",
	16: "Battleship",
	17: "Battleship",
	18: "Battleship",
	19: "Freighter",
}

// Type returns the display name of this ship's class, or "" if the
// class ID is unrecognised.
func (s *Ship) Type() string { return shipClassNames[s.ShipClass] }

// Infocard overrides Good's single-ID infocard with the ship's four
// concatenated sections (specs, then ids_info, then two supplementary
// blocks) - a quirk of how the game itself lays out ship infocards.
func (s *Ship) Infocard(r Resolver, mode markup.Mode) string {
	ids := []int{s.IDsInfo1, s.IDsInfo, s.IDsInfo2, s.IDsInfo3}
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += "<p>"
		}
		out += r.Infocard(id, mode)
	}
	return out
}

// TurnRate returns this ship's turn rate in degrees per second,
// averaged across its three axes.
func (s *Ship) TurnRate() float64 {
	avg := func(v Vec3) float64 { return (v.X + v.Y + v.Z) / 3 }
	drag := avg(s.AngularDrag)
	if drag == 0 {
		return 0
	}
	return avg(s.SteeringTorque) / drag * (180 / math.Pi)
}
