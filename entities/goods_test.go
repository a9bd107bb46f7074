package entities

import "testing"

func TestGoodIconPathDefaultsToBlank(t *testing.T) {
	g := &Good{}
	if got := g.IconPath(); got != "EQUIPMENT/MODELS/COMMODITIES/NN_ICONS/blank.3db" {
		t.Errorf("got %q", got)
	}
	g.ItemIcon = "EQUIPMENT/MODELS/COMMODITIES/ORE/ore.3db"
	if got := g.IconPath(); got != g.ItemIcon {
		t.Errorf("got %q, want %q", got, g.ItemIcon)
	}
}

func TestGoodMarketDirection(t *testing.T) {
	g := &Good{}
	g.SetMarket(map[string]int64{"li01_01_base": 42}, map[string]int64{"li02_01_base": 3})

	if v := g.SoldAt(); v["li01_01_base"] != 42 {
		t.Errorf("SoldAt = %v", v)
	}
	if v := g.BoughtAt(); v["li02_01_base"] != 3 {
		t.Errorf("BoughtAt = %v", v)
	}
}

func TestShipTypeAndTurnRate(t *testing.T) {
	s := &Ship{ShipClass: 16, SteeringTorque: Vec3{X: 3, Y: 3, Z: 3}, AngularDrag: Vec3{X: 1, Y: 1, Z: 1}}
	if got := s.Type(); got != "Battleship" {
		t.Errorf("Type() = %q", got)
	}
	if got := s.TurnRate(); got <= 0 {
		t.Errorf("TurnRate() = %v, want positive", got)
	}
}

func TestShipTurnRateZeroDragIsSafe(t *testing.T) {
	s := &Ship{AngularDrag: Vec3{}}
	if got := s.TurnRate(); got != 0 {
		t.Errorf("TurnRate() with zero drag = %v, want 0", got)
	}
}
