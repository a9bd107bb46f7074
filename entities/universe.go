package entities

import "flcore/fllog"

// System is a star system: the top-level container for solars and
// zones. Its contents are attached by the registry after every
// system's own file has been decoded, since a system's jumps need
// every other system to already exist to resolve their destinations.
type System struct {
	Entity
	File        string // path, relative to the install's DATA directory, to this system's own .ini
	NavMapScale float64

	contents EntitySet[SolarEntity]
}

// SetContents installs this system's decoded solars and zones. Called
// once by the registry during a build; not for use outside it.
func (s *System) SetContents(contents EntitySet[SolarEntity]) {
	s.contents = contents
}

// Contents returns every solar and zone in this system.
func (s *System) Contents() EntitySet[SolarEntity] { return s.contents }

// Zones returns every zone in this system.
func (s *System) Zones() EntitySet[*Zone] { return Narrow[*Zone](s.contents) }

// Objects returns every solid object in this system (everything that
// is not a Zone).
func (s *System) Objects() EntitySet[SolarEntity] {
	return s.contents.Where(func(e SolarEntity) bool {
		_, isZone := e.(*Zone)
		return !isZone
	})
}

// Bases returns every base solar in this system.
func (s *System) Bases() EntitySet[*BaseSolar] { return Narrow[*BaseSolar](s.contents) }

// PlanetaryBases returns every planet-surface base in this system.
func (s *System) PlanetaryBases() EntitySet[*PlanetaryBase] {
	return Narrow[*PlanetaryBase](s.contents)
}

// Planets returns every planet in this system.
func (s *System) Planets() EntitySet[*Planet] { return Narrow[*Planet](s.contents) }

// Stars returns every star in this system.
func (s *System) Stars() EntitySet[*Star] { return Narrow[*Star](s.contents) }

// Jumps returns every jump conduit in this system.
func (s *System) Jumps() EntitySet[*Jump] { return Narrow[*Jump](s.contents) }

// Connections maps each jump conduit in this system to the system it
// leads to. A jump whose destination did not resolve (a dangling
// reference) is omitted rather than mapped to nil.
func (s *System) Connections() map[*Jump]*System {
	out := map[*Jump]*System{}
	for _, j := range s.Jumps().All() {
		if j.Destination != nil {
			out[j] = j.Destination
		}
	}
	return out
}

// Lanes reconstructs each trade lane in this system as an ordered
// chain of rings, starting from every ring with no PrevRing and
// following NextRing links until the chain ends. Cycles are broken by
// visiting each ring at most once; a ring revisited within the same
// chain is a diagnostic, not a crash.
func (s *System) Lanes() [][]*TradeLaneRing {
	rings := Narrow[*TradeLaneRing](s.contents)

	var lanes [][]*TradeLaneRing
	for _, first := range rings.All() {
		if first.PrevRing != "" {
			continue // not a lane head
		}
		visited := map[string]bool{first.Nickname: true}
		chain := []*TradeLaneRing{first}
		current := first
		for current.NextRing != "" {
			next, ok := rings.Get(current.NextRing)
			if !ok {
				break // dangling reference: terminate the chain here
			}
			if visited[next.Nickname] {
				fllog.Default().Warn("trade lane cycle detected, truncating chain",
					"system", s.Nickname, "head", first.Nickname, "ring", next.Nickname)
				break
			}
			visited[next.Nickname] = true
			chain = append(chain, next)
			current = next
		}
		lanes = append(lanes, chain)
	}
	return lanes
}

// Base is a space station or colonised planet's economic and
// political identity, distinct from its physical BaseSolar
// representation (see BaseSolar's doc comment for why the game splits
// these).
type Base struct {
	Entity
	SystemNickname string
	System         *System // resolved by the registry

	// market holds the base's per-good trade rows keyed by "sold" -
	// true for goods sold at (bought from) this base, false for goods
	// bought at (sold to) this base. See loadMarkets in the registry
	// package for how the boolean is derived from min/max stock.
	market map[bool]map[string]int64
}

// SetMarket installs this base's decoded market rows. Called once by
// the registry during a build.
func (b *Base) SetMarket(sold, bought map[string]int64) {
	b.market = map[bool]map[string]int64{true: sold, false: bought}
}

// Solar returns the BaseSolar this base is physically represented by.
// Only *BaseSolar values are searched: a base represented by a
// PlanetaryBase reports false.
func (b *Base) Solar() (*BaseSolar, bool) {
	if b.System == nil {
		return nil, false
	}
	return b.System.Bases().Where(func(bs *BaseSolar) bool {
		return bs.BaseNickname == b.Nickname
	}).Arb()
}

// Sells returns the goods this base sells (i.e. that players buy from
// it), of the form good nickname -> price.
func (b *Base) Sells() map[string]int64 { return copyMarketRow(b.market[true]) }

// Buys returns the goods this base buys (i.e. that players sell to
// it), of the form good nickname -> price.
func (b *Base) Buys() map[string]int64 { return copyMarketRow(b.market[false]) }

func copyMarketRow(row map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Faction is an organisation in the Freelancer universe - a group
// with a reputation standing towards every other faction and, usually,
// bases it operates.
type Faction struct {
	Entity
	// rep holds this faction's view of every other faction it has an
	// opinion of, from -1 (reviled) to 1 (adored), keyed by the other
	// faction's nickname.
	rep map[string]float64

	allBases EntitySet[*BaseSolar] // populated by the registry across every system
}

// SetReputations installs this faction's reputation sheet. Called once
// by the registry during a build.
func (f *Faction) SetReputations(rep map[string]float64) { f.rep = rep }

// SetBases installs the bases this faction owns, gathered from every
// system. Called once by the registry during a build.
func (f *Faction) SetBases(bases EntitySet[*BaseSolar]) { f.allBases = bases }

// ReputationOf returns how this faction views another, by nickname,
// and whether it has an opinion of them at all.
func (f *Faction) ReputationOf(other string) (float64, bool) {
	v, ok := f.rep[other]
	return v, ok
}

// RepSheet returns this faction's full reputation sheet: other faction
// nickname -> standing.
func (f *Faction) RepSheet() map[string]float64 {
	out := make(map[string]float64, len(f.rep))
	for k, v := range f.rep {
		out[k] = v
	}
	return out
}

// Bases returns every base solar this faction operates, across every
// system. Planet-surface bases (PlanetaryBase) are not included.
func (f *Faction) Bases() EntitySet[*BaseSolar] { return f.allBases }
