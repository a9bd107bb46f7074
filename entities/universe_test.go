package entities

import "testing"

func TestBaseSolarBackReference(t *testing.T) {
	sys := &System{Entity: Entity{Nickname: "li01"}}
	base := &Base{Entity: Entity{Nickname: "li01_01_base"}, SystemNickname: "li01", System: sys}

	solar := &BaseSolar{
		Object:       Object{solarBase: solarBase{Entity: Entity{Nickname: "li01_01_base_solar"}, Sys: sys}},
		BaseNickname: base.Nickname,
		Base:         base,
	}

	var contents EntitySet[SolarEntity]
	contents.Add(solar)
	sys.SetContents(contents)

	got, ok := base.Solar()
	if !ok {
		t.Fatalf("expected base.Solar() to resolve")
	}
	if got.Nickname != solar.Nickname {
		t.Errorf("got %q, want %q", got.Nickname, solar.Nickname)
	}
	if got.UniverseBase() != base {
		t.Errorf("solar's UniverseBase() did not round-trip to the same Base")
	}
}

func TestBaseMarketDirection(t *testing.T) {
	base := &Base{Entity: Entity{Nickname: "b"}}
	base.SetMarket(map[string]int64{"ore": 100}, map[string]int64{"water": 5})

	sells := base.Sells()
	if sells["ore"] != 100 {
		t.Errorf("Sells()[ore] = %d, want 100", sells["ore"])
	}
	buys := base.Buys()
	if buys["water"] != 5 {
		t.Errorf("Buys()[water] = %d, want 5", buys["water"])
	}
}

func TestFactionReputationSheet(t *testing.T) {
	f := &Faction{Entity: Entity{Nickname: "li_n_grp"}}
	f.SetReputations(map[string]float64{"li_p_grp": 0.5, "rh_m_grp": -0.8})

	if v, ok := f.ReputationOf("li_p_grp"); !ok || v != 0.5 {
		t.Errorf("ReputationOf(li_p_grp) = %v, %v", v, ok)
	}
	if _, ok := f.ReputationOf("unknown_faction"); ok {
		t.Error("expected no opinion of an unlisted faction")
	}
	sheet := f.RepSheet()
	if len(sheet) != 2 {
		t.Errorf("got %d entries, want 2", len(sheet))
	}
}

func TestSystemConnectionsSkipsDanglingJumps(t *testing.T) {
	li01 := &System{Entity: Entity{Nickname: "li01"}}
	li02 := &System{Entity: Entity{Nickname: "li02"}}

	resolved := &Jump{Object: Object{solarBase: solarBase{Entity: Entity{Nickname: "j1"}, Sys: li01}}, Destination: li02}
	dangling := &Jump{Object: Object{solarBase: solarBase{Entity: Entity{Nickname: "j2"}, Sys: li01}}}

	var contents EntitySet[SolarEntity]
	contents.Add(resolved)
	contents.Add(dangling)
	li01.SetContents(contents)

	conns := li01.Connections()
	if len(conns) != 1 {
		t.Fatalf("got %d connections, want 1", len(conns))
	}
	if conns[resolved] != li02 {
		t.Errorf("resolved jump did not map to li02")
	}
}
