package registry

import (
	"fmt"
	"os"
	"sync"

	"flcore/entities"
	"flcore/fllog"
	"flcore/format/rescon"
	"flcore/markup"
)

// resourceResolver implements entities.Resolver by lazily decoding
// the resource DLLs an inventory lists, one per position in
// freelancer.ini's [Resources]. Grounded on dll.py's lookup family:
// a resource ID's high bits pick the DLL (StringID's inverse), and a
// DLL is decoded once, on first ID lookup that needs it, and cached
// from then on.
type resourceResolver struct {
	mu       sync.Mutex
	dllPaths []string
	loaded   map[int]*rescon.Module
	log      fllog.Logger
}

func buildResourceResolver(r *Registry, inv inventory) (*resourceResolver, error) {
	return &resourceResolver{
		dllPaths: inv.dlls,
		loaded:   map[int]*rescon.Module{},
		log:      r.log,
	}, nil
}

// moduleFor returns the decoded module backing dllIndex, decoding and
// caching it on first use. A DLL that can't be read or parsed is
// cached as nil so a bad DLL is only attempted once per resolver.
func (rr *resourceResolver) moduleFor(dllIndex int) *rescon.Module {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	if mod, tried := rr.loaded[dllIndex]; tried {
		return mod
	}
	if dllIndex < 0 || dllIndex >= len(rr.dllPaths) {
		rr.loaded[dllIndex] = nil
		return nil
	}

	data, err := os.ReadFile(rr.dllPaths[dllIndex])
	if err != nil {
		rr.log.Warn("resource dll unreadable", "path", rr.dllPaths[dllIndex], "error", err)
		rr.loaded[dllIndex] = nil
		return nil
	}
	mod, err := rescon.Decode(data)
	if err != nil {
		rr.log.Warn("resource dll malformed", "path", rr.dllPaths[dllIndex], "error", err)
		rr.loaded[dllIndex] = nil
		return nil
	}
	rr.loaded[dllIndex] = mod
	return mod
}

// Name resolves a display-string resource ID. A missing ID or an
// unresolvable DLL both fall back to a deterministic sentinel rather
// than an empty string, so a caller can tell "no name" from "name is
// the empty string".
func (rr *resourceResolver) Name(id int) string {
	dllIndex, local := id/65536, id%65536
	if mod := rr.moduleFor(dllIndex); mod != nil {
		if s, ok := mod.Strings[local]; ok {
			return s
		}
	}
	return fmt.Sprintf("<ids_name: %d>", id)
}

// Infocard resolves an infocard resource ID and renders it per mode.
// Some entries are filed as HTML/RDL resources, others as plain
// strings; both tables are checked the way dll.py's lookup does.
func (rr *resourceResolver) Infocard(id int, mode markup.Mode) string {
	dllIndex, local := id/65536, id%65536
	if mod := rr.moduleFor(dllIndex); mod != nil {
		if s, ok := mod.Infocards[local]; ok {
			return markup.Render(s, mode)
		}
		if s, ok := mod.Strings[local]; ok {
			return markup.Render(s, mode)
		}
	}
	return fmt.Sprintf("<ids_info: %d>", id)
}

var _ entities.Resolver = (*resourceResolver)(nil)
