// Package registry builds the typed entity graph out of an install
// root, lazily and once per collection, the way flint's routines
// module (backed by paths.py's freelancer.ini index) does.
package registry

import (
	"path/filepath"
	"strings"
	"sync"

	"flcore/config"
	"flcore/entities"
	"flcore/errkinds"
	"flcore/fllog"
	"flcore/section"
)

// Registry holds one install root and the lazily-built entity sets
// sourced from it. Its zero value is not usable; construct one with
// New. A Registry is safe for concurrent reads once each collection
// has been built; the sync.Once guards on first access make the first
// caller into each collection pay the build cost and every later
// caller (concurrent or not) block until it's done, then share the
// result. mu arbitrates between that read path and the rare
// reconfiguration path (SetInstallPath/Invalidate): readers hold it
// for the duration of a single collection's build, reconfiguration
// takes it exclusively to swap every cache out from under them.
type Registry struct {
	mu   sync.RWMutex
	root string
	opts Options
	log  fllog.Logger

	inventoryOnce sync.Once
	inventory     inventory
	inventoryErr  error

	resolverOnce sync.Once
	resolver     *resourceResolver

	systemsOnce sync.Once
	systems     entities.EntitySet[*entities.System]

	basesOnce sync.Once
	bases     entities.EntitySet[*entities.Base]

	factionsOnce sync.Once
	factions     entities.EntitySet[*entities.Faction]

	shipsOnce sync.Once
	ships     entities.EntitySet[*entities.Ship]

	commoditiesOnce sync.Once
	commodities     entities.EntitySet[*entities.Commodity]

	equipmentOnce sync.Once
	equipment     entities.EntitySet[entities.Mount]

	contentsOnce sync.Map // system nickname -> *contentsResult
}

// New constructs a Registry rooted at path. No filesystem access
// happens until the first collection is requested.
func New(path string, opts ...Option) *Registry {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger
	if logger == nil {
		logger = fllog.Default()
	}
	return &Registry{root: filepath.Clean(path), opts: options, log: logger}
}

// Root returns the install path this registry was built from.
func (r *Registry) Root() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// SetInstallPath repoints the registry at a new install root and
// discards every cached collection, forcing the next access to
// rebuild from scratch. Per spec, a caller holding entity references
// issued before the switch keeps a stale snapshot of the old root -
// each root is its own consistency domain, and this is intentional,
// not undefined behaviour.
func (r *Registry) SetInstallPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = filepath.Clean(path)
	r.resetLocked()
}

// Invalidate discards every cached collection without changing the
// install root, forcing the next access to rebuild from disk. This is
// the same reset SetInstallPath performs; Watch calls it whenever it
// detects a change underneath the root.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

// resetLocked clears every cache. Callers must hold mu for writing.
func (r *Registry) resetLocked() {
	r.inventoryOnce = sync.Once{}
	r.inventory = inventory{}
	r.inventoryErr = nil
	r.resolverOnce = sync.Once{}
	r.resolver = nil
	r.systemsOnce = sync.Once{}
	r.systems = entities.EntitySet[*entities.System]{}
	r.basesOnce = sync.Once{}
	r.bases = entities.EntitySet[*entities.Base]{}
	r.factionsOnce = sync.Once{}
	r.factions = entities.EntitySet[*entities.Faction]{}
	r.shipsOnce = sync.Once{}
	r.ships = entities.EntitySet[*entities.Ship]{}
	r.commoditiesOnce = sync.Once{}
	r.commodities = entities.EntitySet[*entities.Commodity]{}
	r.equipmentOnce = sync.Once{}
	r.equipment = entities.EntitySet[entities.Mount]{}
	r.contentsOnce = sync.Map{}
}

// ensureInventory validates the install root and indexes
// EXE/freelancer.ini once. Every other collection depends on it.
// Callers must already hold mu (for reading is sufficient - the
// inner sync.Once still serialises the actual build).
func (r *Registry) ensureInventory() (inventory, error) {
	r.inventoryOnce.Do(func() {
		r.inventory, r.inventoryErr = loadInventory(r.root)
	})
	return r.inventory, r.inventoryErr
}

// path joins the install root's DATA directory with a path relative
// to it, as freelancer.ini's own [Data] entries and a system's "file"
// field both are.
func (r *Registry) path(rel string) string {
	rel = strings.ReplaceAll(rel, "\\", "/")
	return fixPathCase(filepath.Join(r.root, "DATA", filepath.FromSlash(rel)))
}

// warnDangling logs a nickname reference that failed to resolve. The
// caller keeps going with the reference left unset - accessors report
// its absence rather than the registry treating it as fatal.
func (r *Registry) warnDangling(from, to string) {
	err := &errkinds.DanglingReference{From: from, To: to}
	r.log.Warn(err.Error(), "from", from, "to", to)
}

// loadSections is LoadSections with the registry's own tolerant
// error policy: a missing or malformed file is logged and treated as
// empty, since mods routinely omit optional files.
func (r *Registry) loadSections(rel string) section.Stream {
	stream, err := config.LoadSections(r.path(rel))
	if err != nil {
		r.log.Warn("skipping unreadable file", "path", rel, "error", err)
		return nil
	}
	return stream
}

// ensureSystems builds the system set if it hasn't been already.
// Internal callers (other ensure* methods) use this instead of the
// public Systems() to avoid re-acquiring mu.
func (r *Registry) ensureSystems() (entities.EntitySet[*entities.System], error) {
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[*entities.System]{}, err
	}
	r.systemsOnce.Do(func() {
		r.systems = r.buildSystems(inv)
	})
	return r.systems, nil
}

// Systems returns every system defined in the game files, building
// the set on first call.
func (r *Registry) Systems() (entities.EntitySet[*entities.System], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ensureSystems()
}

func (r *Registry) ensureBases() (entities.EntitySet[*entities.Base], error) {
	if _, err := r.ensureSystems(); err != nil {
		return entities.EntitySet[*entities.Base]{}, err
	}
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[*entities.Base]{}, err
	}
	r.basesOnce.Do(func() {
		r.bases = r.buildBases(inv)
	})
	return r.bases, nil
}

// Bases returns every base defined in the game files, with market
// tables attached, building the set on first call.
func (r *Registry) Bases() (entities.EntitySet[*entities.Base], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ensureBases()
}

func (r *Registry) ensureFactions() (entities.EntitySet[*entities.Faction], error) {
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[*entities.Faction]{}, err
	}
	r.factionsOnce.Do(func() {
		r.factions = r.buildFactions(inv)
	})
	return r.factions, nil
}

// Factions returns every faction defined in the game files, with
// reputation sheets and owned-base sets attached.
func (r *Registry) Factions() (entities.EntitySet[*entities.Faction], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ensureFactions()
}

// Ships returns every purchasable ship in the game files.
func (r *Registry) Ships() (entities.EntitySet[*entities.Ship], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[*entities.Ship]{}, err
	}
	r.shipsOnce.Do(func() {
		r.ships = r.buildShips(inv)
	})
	return r.ships, nil
}

// Commodities returns every purchasable commodity in the game files.
func (r *Registry) Commodities() (entities.EntitySet[*entities.Commodity], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[*entities.Commodity]{}, err
	}
	r.commoditiesOnce.Do(func() {
		r.commodities = r.buildCommodities(inv)
	})
	return r.commodities, nil
}

// Equipment returns every mountable and consumable item defined in
// the game's equipment files - guns, thrusters, shield batteries and
// everything else in the Mount hierarchy - classified per the
// registry's archetype table.
func (r *Registry) Equipment() (entities.EntitySet[entities.Mount], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, err := r.ensureInventory()
	if err != nil {
		return entities.EntitySet[entities.Mount]{}, err
	}
	r.equipmentOnce.Do(func() {
		r.equipment = r.buildEquipment(inv)
	})
	return r.equipment, nil
}

func (r *Registry) ensureContents(sys *entities.System) entities.EntitySet[entities.SolarEntity] {
	r.ensureBases() // ensures Systems() too; needed so BaseSolar/PlanetaryBase can resolve their Base backref
	result, _ := r.contentsOnce.LoadOrStore(sys.Nickname, &contentsResult{})
	cr := result.(*contentsResult)
	cr.once.Do(func() {
		cr.set = r.buildSystemContents(sys)
		sys.SetContents(cr.set)
	})
	return cr.set
}

// SystemContents returns every solar and zone in a given system,
// building it lazily and caching per-system - a system whose contents
// no caller has asked for is never parsed.
func (r *Registry) SystemContents(sys *entities.System) entities.EntitySet[entities.SolarEntity] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ensureContents(sys)
}

type contentsResult struct {
	once sync.Once
	set  entities.EntitySet[entities.SolarEntity]
}

// Resolver returns the merged name/infocard resolver built from every
// resource DLL the inventory lists, in declared order, building it on
// first call.
func (r *Registry) Resolver() (entities.Resolver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, err := r.ensureInventory()
	if err != nil {
		return nil, err
	}
	var buildErr error
	r.resolverOnce.Do(func() {
		r.resolver, buildErr = buildResourceResolver(r, inv)
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return r.resolver, nil
}
