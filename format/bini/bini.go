// Package bini decodes Freelancer's "BINI" (binary INI) container: a
// compressed tabular representation of the same section/entry
// structure the textual dialect expresses in plain text.
//
// Reference: Bas Westerbaan's BINI documentation
// <http://blog.w-nz.com/uploads/bini.pdf>, cross-checked against
// flint's formats/bini.py.
package bini

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"flcore/internal/bytesio"
	"flcore/section"
)

const (
	magic         = "BINI"
	headerSize    = 12 // magic(4) + version(4) + string table offset(4)
	supportedVers = uint32(1)
)

const (
	typeInt    = 1
	typeFloat  = 2
	typeStrRef = 3
)

// IsBini reports whether data begins with the BINI magic number. The
// section-stream unifier (config.LoadSections) uses this to decide
// whether to hand a file to this package or to the textual parser.
func IsBini(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == magic
}

// Decode parses a complete BINI byte stream into an ordered section
// stream. It never panics: every offset into the string pool and
// every cursor read is bounds-checked, and malformed input yields an
// error rather than an out-of-bounds read.
func Decode(data []byte) (section.Stream, error) {
	r := bytesio.New(data)

	magicBytes, err := r.Bytes(4)
	if err != nil {
		return nil, fmt.Errorf("bini: truncated header: %w", err)
	}
	if string(magicBytes) != magic {
		return nil, fmt.Errorf("bini: invalid magic %q", magicBytes)
	}

	version, err := r.Uint32LE()
	if err != nil {
		return nil, fmt.Errorf("bini: truncated header: %w", err)
	}
	if version != supportedVers {
		return nil, fmt.Errorf("bini: unsupported version %d", version)
	}

	strTableOffset, err := r.Uint32LE()
	if err != nil {
		return nil, fmt.Errorf("bini: truncated header: %w", err)
	}
	if int(strTableOffset) > r.Len() {
		return nil, fmt.Errorf("bini: string table offset %d exceeds file length %d", strTableOffset, r.Len())
	}

	pool, err := newStringPool(data[strTableOffset:])
	if err != nil {
		return nil, fmt.Errorf("bini: malformed string pool: %w", err)
	}

	var out section.Stream
	for r.Pos() < int(strTableOffset) {
		sec, err := decodeSection(r, pool)
		if err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, nil
}

func decodeSection(r *bytesio.Reader, pool *stringPool) (section.Section, error) {
	nameOff, err := r.Int16LE()
	if err != nil {
		return section.Section{}, fmt.Errorf("bini: truncated section header at %#x: %w", r.Pos(), err)
	}
	entryCount, err := r.Int16LE()
	if err != nil {
		return section.Section{}, fmt.Errorf("bini: truncated section header at %#x: %w", r.Pos(), err)
	}
	name, err := pool.at(int(nameOff))
	if err != nil {
		return section.Section{}, fmt.Errorf("bini: section name: %w", err)
	}

	sec := section.Section{Name: name}
	for i := 0; i < int(entryCount); i++ {
		entry, err := decodeEntry(r, pool)
		if err != nil {
			return section.Section{}, err
		}
		sec.Entries = append(sec.Entries, entry)
	}
	return sec, nil
}

func decodeEntry(r *bytesio.Reader, pool *stringPool) (section.Entry, error) {
	nameOff, err := r.Int16LE()
	if err != nil {
		return section.Entry{}, fmt.Errorf("bini: truncated entry header at %#x: %w", r.Pos(), err)
	}
	valueCount, err := r.Uint8()
	if err != nil {
		return section.Entry{}, fmt.Errorf("bini: truncated entry header at %#x: %w", r.Pos(), err)
	}
	name, err := pool.at(int(nameOff))
	if err != nil {
		return section.Entry{}, fmt.Errorf("bini: entry name: %w", err)
	}

	entry := section.Entry{Key: name}
	for i := 0; i < int(valueCount); i++ {
		v, err := decodeValue(r, pool)
		if err != nil {
			return section.Entry{}, err
		}
		entry.Values = append(entry.Values, v)
	}
	return entry, nil
}

func decodeValue(r *bytesio.Reader, pool *stringPool) (section.Value, error) {
	valueType, err := r.Uint8()
	if err != nil {
		return section.Value{}, fmt.Errorf("bini: truncated value at %#x: %w", r.Pos(), err)
	}
	payload, err := r.Uint32LE()
	if err != nil {
		return section.Value{}, fmt.Errorf("bini: truncated value at %#x: %w", r.Pos(), err)
	}

	switch valueType {
	case typeInt:
		return section.Int(int64(int32(payload))), nil
	case typeFloat:
		return section.Float(float64(math.Float32frombits(payload))), nil
	case typeStrRef:
		s, err := pool.at(int(payload))
		if err != nil {
			return section.Value{}, fmt.Errorf("bini: string ref: %w", err)
		}
		return section.String(s), nil
	default:
		return section.Value{}, fmt.Errorf("bini: unknown value type %d at %#x", valueType, r.Pos()-5)
	}
}

// stringPool holds the BINI string table: a run of NUL-terminated,
// Windows-1252-encoded strings, addressed by the byte offset of their
// first character. Every string reference must fall exactly on a
// string start (the byte after a NUL, or byte 0) - that is enforced
// by only ever populating offsets seen while walking the pool.
type stringPool struct {
	raw   []byte
	byOff map[int]string
}

func newStringPool(raw []byte) (*stringPool, error) {
	pool := &stringPool{raw: raw, byOff: map[int]string{}}
	dec := charmap.Windows1252.NewDecoder()

	offset := 0
	for offset < len(raw) {
		end := offset
		for end < len(raw) && raw[end] != 0 {
			end++
		}
		if end == len(raw) {
			// trailing bytes with no terminating NUL: tolerate, since
			// the file size calculation upstream can be off by one.
			break
		}
		decoded, err := dec.Bytes(raw[offset:end])
		if err != nil {
			return nil, fmt.Errorf("windows-1252 decode at pool offset %d: %w", offset, err)
		}
		// The whole pool is lowercased on ingestion, names and string
		// values alike, matching the original decoder's universal
		// .lower() over its string table - section/entry names and
		// string-ref values are compared exact-case everywhere downstream.
		pool.byOff[offset] = strings.ToLower(string(decoded))
		offset = end + 1
	}
	return pool, nil
}

func (p *stringPool) at(offset int) (string, error) {
	s, ok := p.byOff[offset]
	if !ok {
		return "", fmt.Errorf("offset %d does not start a string in the pool", offset)
	}
	return s, nil
}
