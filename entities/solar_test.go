package entities

import "testing"

func ring(nickname, prev, next string) *TradeLaneRing {
	return &TradeLaneRing{
		Object:   Object{solarBase: solarBase{Entity: Entity{Nickname: nickname}}},
		PrevRing: prev,
		NextRing: next,
	}
}

func TestSystemLanesReconstructsChain(t *testing.T) {
	r1 := ring("ring01", "", "ring02")
	r2 := ring("ring02", "ring01", "ring03")
	r3 := ring("ring03", "ring02", "")

	var contents EntitySet[SolarEntity]
	contents.Add(r3) // insertion order deliberately scrambled
	contents.Add(r1)
	contents.Add(r2)

	sys := &System{}
	sys.SetContents(contents)

	lanes := sys.Lanes()
	if len(lanes) != 1 {
		t.Fatalf("got %d lanes, want 1", len(lanes))
	}
	chain := lanes[0]
	if len(chain) != 3 {
		t.Fatalf("got chain of %d rings, want 3", len(chain))
	}
	want := []string{"ring01", "ring02", "ring03"}
	for i, r := range chain {
		if r.Nickname != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, r.Nickname, want[i])
		}
	}
}

func TestSystemLanesHandlesMultipleLanes(t *testing.T) {
	a1 := ring("a1", "", "a2")
	a2 := ring("a2", "a1", "")
	b1 := ring("b1", "", "")

	var contents EntitySet[SolarEntity]
	contents.Add(a1)
	contents.Add(a2)
	contents.Add(b1)

	sys := &System{}
	sys.SetContents(contents)

	lanes := sys.Lanes()
	if len(lanes) != 2 {
		t.Fatalf("got %d lanes, want 2", len(lanes))
	}
}

func TestSystemLanesToleratesDanglingNextRing(t *testing.T) {
	a1 := ring("a1", "", "missing")

	var contents EntitySet[SolarEntity]
	contents.Add(a1)

	sys := &System{}
	sys.SetContents(contents)

	lanes := sys.Lanes()
	if len(lanes) != 1 || len(lanes[0]) != 1 {
		t.Fatalf("expected a single-ring lane when the next ring is dangling, got %+v", lanes)
	}
}

func TestJumpType(t *testing.T) {
	cases := []struct {
		archetype string
		want      string
	}{
		{"jumpgate", "Jump Gate"},
		{"jumphole_li01", "Jump Hole"},
		{"entrypoint", "Atmospheric Entry"},
		{"something_else", "Unknown"},
	}
	for _, c := range cases {
		j := &Jump{Object: Object{Archetype: c.archetype}}
		if got := j.Type(); got != c.want {
			t.Errorf("Type(%q) = %q, want %q", c.archetype, got, c.want)
		}
	}
}

func TestSystemObjectsExcludesZones(t *testing.T) {
	star := &Star{Spheroid: Spheroid{Object: Object{solarBase: solarBase{Entity: Entity{Nickname: "sun"}}}}}
	zone := &Zone{solarBase: solarBase{Entity: Entity{Nickname: "zone01"}}}

	var contents EntitySet[SolarEntity]
	contents.Add(star)
	contents.Add(zone)

	sys := &System{}
	sys.SetContents(contents)

	objects := sys.Objects()
	if objects.Len() != 1 {
		t.Fatalf("got %d objects, want 1", objects.Len())
	}
	if _, ok := objects.Get("sun"); !ok {
		t.Error("expected the star to remain in Objects()")
	}
}
