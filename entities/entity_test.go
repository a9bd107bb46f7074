package entities

import "testing"

func TestEntitySetGetPreservesOrder(t *testing.T) {
	a := Entity{Nickname: "alpha"}
	b := Entity{Nickname: "beta"}
	set := NewEntitySet(a, b)

	if set.Len() != 2 {
		t.Fatalf("got len %d, want 2", set.Len())
	}
	got, ok := set.Get("alpha")
	if !ok || got.Nickname != "alpha" {
		t.Fatalf("Get(alpha) = %+v, %v", got, ok)
	}

	all := set.All()
	if all[0].Nickname != "alpha" || all[1].Nickname != "beta" {
		t.Errorf("order not preserved: %+v", all)
	}
}

func TestEntitySetOverwritePreservesPosition(t *testing.T) {
	set := NewEntitySet(Entity{Nickname: "a", IDsName: 1}, Entity{Nickname: "b", IDsName: 2})
	set.Add(Entity{Nickname: "a", IDsName: 99})

	all := set.All()
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2 (overwrite should not append)", len(all))
	}
	if all[0].Nickname != "a" || all[0].IDsName != 99 {
		t.Errorf("overwrite did not take effect in place: %+v", all[0])
	}
}

func TestEntitySetWhere(t *testing.T) {
	set := NewEntitySet(
		Entity{Nickname: "a", IDsName: 1},
		Entity{Nickname: "b", IDsName: 2},
		Entity{Nickname: "c", IDsName: 1},
	)
	filtered := set.Where(func(e Entity) bool { return e.IDsName == 1 })
	if filtered.Len() != 2 {
		t.Fatalf("got %d, want 2", filtered.Len())
	}
}

func TestEntitySetUnion(t *testing.T) {
	a := NewEntitySet(Entity{Nickname: "a"}, Entity{Nickname: "b"})
	b := NewEntitySet(Entity{Nickname: "b"}, Entity{Nickname: "c"})
	u := a.Union(b)
	if u.Len() != 3 {
		t.Fatalf("got %d, want 3", u.Len())
	}
}

func TestEntitySetArb(t *testing.T) {
	empty := EntitySet[Entity]{}
	if _, ok := empty.Arb(); ok {
		t.Error("expected Arb on empty set to report absence")
	}
	set := NewEntitySet(Entity{Nickname: "only"})
	got, ok := set.Arb()
	if !ok || got.Nickname != "only" {
		t.Errorf("Arb() = %+v, %v", got, ok)
	}
}

func TestNarrowFiltersByDynamicType(t *testing.T) {
	star := &Star{Spheroid: Spheroid{Object: Object{solarBase: solarBase{Entity: Entity{Nickname: "sun"}}}}}
	planet := &Planet{Spheroid: Spheroid{Object: Object{solarBase: solarBase{Entity: Entity{Nickname: "earth"}}}}}

	var wide EntitySet[SolarEntity]
	wide.Add(star)
	wide.Add(planet)

	stars := Narrow[*Star](wide)
	if stars.Len() != 1 {
		t.Fatalf("got %d stars, want 1", stars.Len())
	}
	if _, ok := stars.Get("sun"); !ok {
		t.Error("expected the star to survive narrowing")
	}

	planets := Narrow[*Planet](wide)
	if planets.Len() != 1 {
		t.Fatalf("got %d planets, want 1", planets.Len())
	}
}
