package bini

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildBini assembles a minimal BINI file from a list of sections,
// each a list of (key, values) entries, for use as test fixtures.
// It mirrors the encoding documented in bini.go, not the decoder
// itself, so a bug shared between builder and decoder wouldn't be
// masked by symmetry - the concrete-value assertions in the tests
// below are what actually pins the behaviour down.
func buildBini(t *testing.T, sections [][2]any) []byte {
	t.Helper()

	pool := map[string]int{}
	var poolBytes bytes.Buffer
	intern := func(s string) int {
		if off, ok := pool[s]; ok {
			return off
		}
		off := poolBytes.Len()
		poolBytes.WriteString(s)
		poolBytes.WriteByte(0)
		pool[s] = off
		return off
	}

	var body bytes.Buffer
	for _, sec := range sections {
		name := sec[0].(string)
		entries := sec[1].([][2]any) // (key, []any values)

		binary.Write(&body, binary.LittleEndian, int16(intern(name)))
		binary.Write(&body, binary.LittleEndian, int16(len(entries)))

		for _, e := range entries {
			key := e[0].(string)
			values := e[1].([]any)
			binary.Write(&body, binary.LittleEndian, int16(intern(key)))
			body.WriteByte(byte(len(values)))
			for _, v := range values {
				switch tv := v.(type) {
				case int:
					body.WriteByte(1)
					binary.Write(&body, binary.LittleEndian, int32(tv))
				case float32:
					body.WriteByte(2)
					binary.Write(&body, binary.LittleEndian, tv)
				case string:
					body.WriteByte(3)
					binary.Write(&body, binary.LittleEndian, int32(intern(tv)))
				}
			}
		}
	}

	var out bytes.Buffer
	out.WriteString("BINI")
	binary.Write(&out, binary.LittleEndian, uint32(1))
	strTableOffset := uint32(12 + body.Len())
	binary.Write(&out, binary.LittleEndian, strTableOffset)
	out.Write(body.Bytes())
	out.Write(poolBytes.Bytes())
	return out.Bytes()
}

func TestDecodeOneSectionOneIntEntry(t *testing.T) {
	data := buildBini(t, [][2]any{
		{"good", [][2]any{{"price", []any{42}}}},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].Name != "good" {
		t.Errorf("section name: got %q, want %q", got[0].Name, "good")
	}
	entry, ok := got[0].Get("price")
	if !ok {
		t.Fatalf("entry %q not found", "price")
	}
	if len(entry.Values) != 1 || entry.Values[0].Int() != 42 {
		t.Errorf("got %v, want [42]", entry.Values)
	}
}

func TestDecodePreservesOrderAndDuplicateSections(t *testing.T) {
	data := buildBini(t, [][2]any{
		{"object", [][2]any{{"nickname", []any{"alpha"}}}},
		{"object", [][2]any{{"nickname", []any{"beta"}}}},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	first, _ := got[0].Get("nickname")
	second, _ := got[1].Get("nickname")
	if first.First().Text() != "alpha" || second.First().Text() != "beta" {
		t.Errorf("order not preserved: %v then %v", first, second)
	}
}

func TestDecodeStringRefAndFloat(t *testing.T) {
	data := buildBini(t, [][2]any{
		{"system", [][2]any{
			{"nickname", []any{"li01"}},
			{"pos", []any{float32(1.5), float32(-2), float32(0)}},
		}},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, y, z, ok := got[0].Floats3("pos")
	if !ok {
		t.Fatalf("pos not read as a 3-tuple")
	}
	if x != 1.5 || y != -2 || z != 0 {
		t.Errorf("got (%v,%v,%v), want (1.5,-2,0)", x, y, z)
	}
}

func TestDecodeLowercasesNamesAndStringValues(t *testing.T) {
	data := buildBini(t, [][2]any{
		{"Object", [][2]any{
			{"NickName", []any{"AlphaBase"}},
			{"Archetype", []any{"Ice_Asteroid"}},
		}},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "object" {
		t.Errorf("section name: got %q, want %q", got[0].Name, "object")
	}
	entry, ok := got[0].Get("nickname")
	if !ok {
		t.Fatalf("entry key not lowercased: %+v", got[0].Entries)
	}
	if entry.Values[0].Text() != "alphabase" {
		t.Errorf("string value not lowercased: got %q, want %q", entry.Values[0].Text(), "alphabase")
	}
	archetype, _ := got[0].Get("archetype")
	if archetype.Values[0].Text() != "ice_asteroid" {
		t.Errorf("string value not lowercased: got %q, want %q", archetype.Values[0].Text(), "ice_asteroid")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	if _, err := Decode([]byte("NOPE...................")); err == nil {
		t.Error("expected an error for bad magic, got nil")
	}
}

func TestDecodeRejectsOutOfBoundsStringTableOffset(t *testing.T) {
	data := make([]byte, 12)
	copy(data, "BINI")
	binary.LittleEndian.PutUint32(data[4:], 1)
	binary.LittleEndian.PutUint32(data[8:], 1_000_000) // way past EOF

	if _, err := Decode(data); err == nil {
		t.Error("expected an error for out-of-bounds string table offset, got nil")
	}
}

func TestIsBini(t *testing.T) {
	if !IsBini([]byte("BINI\x01\x00\x00\x00")) {
		t.Error("expected IsBini to recognise the magic")
	}
	if IsBini([]byte("[System]\r\n")) {
		t.Error("expected IsBini to reject textual ini content")
	}
}
