package registry

import (
	"os"
	"path/filepath"
	"strings"

	"flcore/config"
	"flcore/errkinds"
)

// inventory is the parsed EXE/freelancer.ini index: which DLLs hold
// resource strings, and which ini files back each data category.
// Grounded on paths.py's generate_index, which does the same thing
// against a global rather than a value.
type inventory struct {
	root string

	// dlls maps a resource DLL's position in [Resources] to its
	// absolute, case-corrected path. Index 0 is always resources.dll,
	// hardcoded ahead of the ini's own list per the game's own loader.
	dlls []string

	// categories maps an ini category name (universe, markets, ships,
	// goods, initial_world, ...) to the absolute paths of every file
	// listed under it, in declared order.
	categories map[string][]string
}

// firstPath returns the first file listed under category, or "" if
// the category is undeclared.
func (inv inventory) firstPath(category string) string {
	paths := inv.categories[strings.ToLower(category)]
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// loadInventory validates root as a Freelancer install and indexes
// its freelancer.ini. This is the only collection whose failure is
// fatal to a Registry: everything else degrades to an empty set.
func loadInventory(root string) (inventory, error) {
	if !looksLikeInstall(root) {
		return inventory{}, &errkinds.InstallPathMissing{Path: root}
	}

	freelancerIni := fixPathCase(filepath.Join(root, "EXE", "freelancer.ini"))
	stream, err := config.LoadSections(freelancerIni)
	if err != nil {
		return inventory{}, &errkinds.InstallPathMissing{Path: root}
	}

	inv := inventory{root: root, categories: map[string][]string{}}

	dllNames := []string{"resources.dll"} // dll 0 is hardcoded ahead of the ini's own list
	for _, sec := range stream {
		if sec.Name != "resources" {
			continue
		}
		for _, e := range sec.All("dll") {
			dllNames = append(dllNames, e.First().Text())
		}
	}
	for _, name := range dllNames {
		inv.dlls = append(inv.dlls, fixPathCase(filepath.Join(root, "EXE", name)))
	}

	for _, sec := range stream {
		if sec.Name != "data" && sec.Name != "freelancer" {
			continue
		}
		for _, e := range sec.Entries {
			for _, v := range e.Values {
				rel := strings.ReplaceAll(v.Text(), `\`, "/")
				inv.categories[e.Key] = append(inv.categories[e.Key],
					fixPathCase(filepath.Join(root, "DATA", filepath.FromSlash(rel))))
			}
		}
	}

	return inv, nil
}

// looksLikeInstall mirrors is_probably_freelancer: the root must be a
// directory containing DATA, DLLS and EXE (case-insensitively).
func looksLikeInstall(root string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	want := map[string]bool{"data": false, "dlls": false, "exe": false}
	for _, e := range entries {
		lower := strings.ToLower(e.Name())
		if _, ok := want[lower]; ok {
			want[lower] = true
		}
	}
	for _, found := range want {
		if !found {
			return false
		}
	}
	return true
}

// fixPathCase corrects an absolute path's casing against the real
// filesystem, one path component at a time, so ini files that
// reference "Equipment/Select_Equip.ini" still resolve on a
// case-sensitive filesystem. It returns the original path unchanged
// past the first component that genuinely doesn't exist under any
// casing - callers see a File Not Found further down the line rather
// than a silently wrong path.
func fixPathCase(path string) string {
	vol := filepath.VolumeName(path)
	rest := strings.TrimPrefix(path[len(vol):], string(filepath.Separator))
	parts := strings.Split(rest, string(filepath.Separator))

	current := vol + string(filepath.Separator)
	for _, part := range parts {
		if part == "" {
			continue
		}
		entries, err := os.ReadDir(current)
		if err != nil {
			return path // divergent; give up and let the caller's own open fail
		}
		matched := part
		for _, e := range entries {
			if strings.EqualFold(e.Name(), part) {
				matched = e.Name()
				break
			}
		}
		current = filepath.Join(current, matched)
	}
	return current
}
