// Package utf decodes Universal Tree Format (UTF), the hierarchical
// binary container Freelancer uses for icons, models and other binary
// assets, mapping slash-delimited paths to byte blobs.
//
// Reference: <https://wiki.librelancer.net/utf:universal_tree_format>,
// cross-checked against flint's formats/utf.py.
package utf

import (
	"fmt"
	"strings"

	"flcore/internal/bytesio"
)

const (
	magic      = "UTF "
	headerSize = 56
	nodeSize   = 44 // the fixed portion of a node this decoder understands

	typeChild = 0x80
)

// node mirrors one row of the UTF node table.
type node struct {
	nextSibling  uint32
	nameOffset   uint32
	entryType    uint32
	sharing      uint32
	childOrData  uint32
	allocSize    uint32
	usedSize     uint32
	uncompressed uint32
}

func (n node) isInterior() bool { return n.entryType&typeChild != 0 }

type header struct {
	treeOffset      uint32
	treeSize        uint32
	entrySize       uint32
	namesOffset     uint32
	namesUsedSize   uint32
	dataStartOffset uint32
}

// Tree is a read-only, decoded UTF container. Its zero value is not
// usable; construct one with Decode.
type Tree struct {
	data   []byte
	byPath map[string]blobRange
}

type blobRange struct {
	offset int
	size   int
}

// IsUtf reports whether data begins with the UTF magic number.
func IsUtf(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == magic
}

// Decode parses a complete UTF byte stream, walking its node table
// once to build every path up front. Cycles in the sibling/child
// chains are broken by visiting each node index at most once; a cycle
// is reported as an error rather than looping forever.
func Decode(data []byte) (*Tree, error) {
	r := bytesio.New(data)

	magicBytes, err := r.Bytes(4)
	if err != nil {
		return nil, fmt.Errorf("utf: truncated header: %w", err)
	}
	if string(magicBytes) != magic {
		return nil, fmt.Errorf("utf: invalid magic %q", magicBytes)
	}
	if r.Len() < headerSize {
		return nil, fmt.Errorf("utf: truncated header")
	}

	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	names, err := parseNamePool(data, h)
	if err != nil {
		return nil, fmt.Errorf("utf: malformed name pool: %w", err)
	}

	nodes, err := parseNodes(data, h)
	if err != nil {
		return nil, err
	}

	t := &Tree{data: data, byPath: map[string]blobRange{}}
	visited := make([]bool, len(nodes))
	if len(nodes) > 0 {
		if err := t.walk(nodes, names, h, 0, "", visited, true); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseHeader(data []byte) (header, error) {
	r := bytesio.New(data)
	if err := skipTo(r, 8); err != nil { // past magic + version
		return header{}, err
	}
	treeOffset, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	treeSize, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	if err := r.Skip(4); err != nil { // reserved
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	entrySize, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	namesOffset, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	if err := r.Skip(4); err != nil { // names allocated size
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	namesUsedSize, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}
	dataStartOffset, err := r.Uint32LE()
	if err != nil {
		return header{}, fmt.Errorf("utf: truncated header: %w", err)
	}

	if entrySize == 0 {
		return header{}, fmt.Errorf("utf: zero entry size")
	}
	if int(treeOffset) > len(data) || int(namesOffset) > len(data) || int(dataStartOffset) > len(data) {
		return header{}, fmt.Errorf("utf: header offset exceeds file length")
	}

	return header{
		treeOffset:      treeOffset,
		treeSize:        treeSize,
		entrySize:       entrySize,
		namesOffset:     namesOffset,
		namesUsedSize:   namesUsedSize,
		dataStartOffset: dataStartOffset,
	}, nil
}

func skipTo(r *bytesio.Reader, offset int) error {
	return r.Seek(offset)
}

func parseNamePool(data []byte, h header) (map[uint32]string, error) {
	names := map[uint32]string{}
	if int(h.namesOffset)+int(h.namesUsedSize) > len(data) {
		return nil, fmt.Errorf("name pool extends past end of file")
	}
	raw := data[h.namesOffset : h.namesOffset+h.namesUsedSize]

	position := uint32(0)
	for _, part := range strings.Split(string(raw), "\x00") {
		names[position] = part
		position += uint32(len(part)) + 1
	}
	return names, nil
}

func parseNodes(data []byte, h header) ([]node, error) {
	if h.entrySize == 0 {
		return nil, fmt.Errorf("utf: zero entry size")
	}
	count := int(h.treeSize / h.entrySize)
	nodes := make([]node, 0, count)

	for i := 0; i < count; i++ {
		start := int(h.treeOffset) + i*int(h.entrySize)
		if start+nodeSize > len(data) {
			return nil, fmt.Errorf("utf: node table entry %d extends past end of file", i)
		}
		r := bytesio.New(data[start : start+nodeSize])
		n := node{}
		fields := []*uint32{
			&n.nextSibling, &n.nameOffset, &n.entryType, &n.sharing,
			&n.childOrData, &n.allocSize, &n.usedSize, &n.uncompressed,
		}
		for _, f := range fields {
			v, err := r.Uint32LE()
			if err != nil {
				return nil, fmt.Errorf("utf: truncated node %d: %w", i, err)
			}
			*f = v
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// walk visits a sibling chain starting at index, recursing into any
// interior node's children, and registers every leaf's full path.
// index is a node-table index, not a byte offset. Node 0 is always
// the (unnamed) root and is never revisited as anyone's sibling or
// child, which is what lets a zero offset double as "no sibling"/"no
// children" without ambiguity.
func (t *Tree) walk(nodes []node, names map[uint32]string, h header, index int, parentPath string, visited []bool, isRoot bool) error {
	for {
		if index >= len(nodes) {
			return fmt.Errorf("utf: node index %d out of range (table has %d entries)", index, len(nodes))
		}
		if visited[index] {
			return fmt.Errorf("utf: cycle detected in node table at index %d", index)
		}
		visited[index] = true

		n := nodes[index]
		var path string
		switch {
		case isRoot:
			path = ""
		case parentPath == "":
			path = names[n.nameOffset]
		default:
			path = parentPath + "/" + names[n.nameOffset]
		}

		if n.isInterior() {
			if n.childOrData != 0 {
				childIndex := int(n.childOrData / h.entrySize)
				if err := t.walk(nodes, names, h, childIndex, path, visited, false); err != nil {
					return err
				}
			}
		} else {
			t.byPath[normalizePath(path)] = blobRange{
				offset: int(h.dataStartOffset) + int(n.childOrData),
				size:   int(n.usedSize),
			}
		}

		if n.nextSibling == 0 {
			return nil
		}
		index = int(n.nextSibling / h.entrySize)
		isRoot = false
	}
}

// normalizePath applies the case-insensitive, slash-delimited,
// leading-slash-optional normalization spec'd for Find.
func normalizePath(path string) string {
	return strings.ToLower(strings.TrimPrefix(path, "/"))
}

// Find looks up a path in the tree, returning its data blob. Absence
// is reported with ok=false, not an error - a missing resource inside
// a well-formed UTF file is a normal outcome for callers probing for
// optional content (e.g. an icon that may or may not exist).
func (t *Tree) Find(path string) (data []byte, ok bool) {
	rng, found := t.byPath[normalizePath(path)]
	if !found {
		return nil, false
	}
	if rng.offset < 0 || rng.offset+rng.size > len(t.data) {
		return nil, false
	}
	return t.data[rng.offset : rng.offset+rng.size], true
}

// Paths returns every path registered in the tree, for diagnostics
// and tests. Order is unspecified.
func (t *Tree) Paths() []string {
	out := make([]string, 0, len(t.byPath))
	for p := range t.byPath {
		out = append(out, p)
	}
	return out
}
