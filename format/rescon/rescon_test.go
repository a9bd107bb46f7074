package rescon

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// peBuilder assembles a minimal, single-section PE image carrying one
// .rsrc section with a hand-built resource directory tree, just deep
// enough to exercise Decode's Type -> Name -> Language walk.
type peBuilder struct {
	rsrc bytes.Buffer
}

func dirTable(numID int) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[12:], 0)             // named entries
	binary.LittleEndian.PutUint16(b[14:], uint16(numID)) // id entries
	return b
}

func dirEntry(id, offset uint32, isTable bool) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:], id)
	if isTable {
		offset |= 0x80000000
	}
	binary.LittleEndian.PutUint32(b[4:], offset)
	return b
}

func dataEntry(rva, size uint32) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:], rva)
	binary.LittleEndian.PutUint32(b[4:], size)
	return b
}

// utf16le encodes a Go string as raw UTF-16LE bytes with no BOM.
func utf16le(s string) []byte {
	var out []byte
	for _, r := range s {
		if r > 0xFFFF {
			r = '?'
		}
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

// buildStringBundleImage builds a full PE image whose .rsrc section
// contains exactly one RT_STRING bundle (bundle ID 2, i.e. external
// IDs 16..31) with a single populated slot at index 3 (ID 19).
func buildStringBundleImage(t *testing.T) []byte {
	t.Helper()

	// --- resource data: one 16-slot string bundle ---
	var bundle bytes.Buffer
	for i := 0; i < 16; i++ {
		if i == 3 {
			text := utf16le("Li01")
			binary.Write(&bundle, binary.LittleEndian, uint16(len(text)/2))
			bundle.Write(text)
		} else {
			binary.Write(&bundle, binary.LittleEndian, uint16(0))
		}
	}

	// layout within .rsrc, in file-offset terms (rescon treats RVA ==
	// file offset for this decoder's scope, matching the source data.py).
	const rsrcBase = 0x1000
	typeEntryOff := 16
	nameTableOff := typeEntryOff + 8 // one type entry
	nameEntryOff := nameTableOff + 16
	langTableOff := nameEntryOff + 8 // one name entry
	langEntryOff := langTableOff + 16
	dataEntryOff := langEntryOff + 8 // one lang entry
	bundleOff := dataEntryOff + 16

	var rsrc bytes.Buffer
	rsrc.Write(dirTable(1))                                                    // type table: 1 id entry
	rsrc.Write(dirEntry(resourceTypeString, uint32(nameTableOff), true))       // -> name table
	rsrc.Write(dirTable(1))                                                    // name table: 1 id entry (bundle id 2)
	rsrc.Write(dirEntry(2, uint32(langTableOff), true))                        // -> lang table
	rsrc.Write(dirTable(1))                                                    // lang table: 1 id entry
	rsrc.Write(dirEntry(0x0409, uint32(dataEntryOff), false))                  // -> data entry (leaf)
	rsrc.Write(dataEntry(uint32(rsrcBase+bundleOff), uint32(bundle.Len())))
	rsrc.Write(bundle.Bytes())

	if rsrc.Len() != bundleOff+bundle.Len() {
		t.Fatalf("layout arithmetic mismatch: buffer is %d bytes, expected %d", rsrc.Len(), bundleOff+bundle.Len())
	}

	return buildPEImage(rsrcBase, rsrc.Bytes())
}

// buildPEImage wraps a raw .rsrc payload in the minimal DOS+COFF+optional
// header + one section header that Decode needs to locate it. rsrcBase
// is both the fabricated RVA and file offset of the section, since this
// decoder never distinguishes the two (Freelancer's resource DLLs are
// never relocated in the field).
func buildPEImage(rsrcBase int, rsrcData []byte) []byte {
	var img bytes.Buffer

	// DOS header: just enough for the "MZ" check and the e_lfanew slot.
	dos := make([]byte, 0x40)
	copy(dos, "MZ")
	peHeaderOffset := uint32(0x80)
	binary.LittleEndian.PutUint32(dos[0x3C:], peHeaderOffset)
	img.Write(dos)
	img.Write(make([]byte, int(peHeaderOffset)-img.Len())) // pad to e_lfanew

	img.WriteString("PE\x00\x00")
	binary.Write(&img, binary.LittleEndian, uint16(0x14C)) // Machine: i386
	binary.Write(&img, binary.LittleEndian, uint16(1))     // NumberOfSections
	binary.Write(&img, binary.LittleEndian, uint32(0))     // TimeDateStamp
	binary.Write(&img, binary.LittleEndian, uint32(0))     // PointerToSymbolTable
	binary.Write(&img, binary.LittleEndian, uint32(0))     // NumberOfSymbols
	optHeaderSize := uint16(224)
	binary.Write(&img, binary.LittleEndian, optHeaderSize)
	binary.Write(&img, binary.LittleEndian, uint16(0x2102)) // Characteristics

	img.Write(make([]byte, optHeaderSize)) // optional header, contents unused

	// one IMAGE_SECTION_HEADER for .rsrc
	sectionHeader := make([]byte, sectionHeaderSize)
	copy(sectionHeader[0:8], ".rsrc")
	binary.LittleEndian.PutUint32(sectionHeader[20:], uint32(rsrcBase)) // PointerToRawData
	img.Write(sectionHeader)

	pad := rsrcBase - img.Len()
	if pad > 0 {
		img.Write(make([]byte, pad))
	}
	img.Write(rsrcData)

	return img.Bytes()
}

func TestDecodeStringBundle(t *testing.T) {
	data := buildStringBundleImage(t)

	mod, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := mod.lookupString(19) // (bundle 2 - 1) * 16 + 3
	if !ok {
		t.Fatalf("expected string ID 19 to be present")
	}
	if got != "Li01" {
		t.Errorf("got %q, want %q", got, "Li01")
	}

	if _, ok := mod.lookupString(16); ok {
		t.Errorf("expected empty slot 16 to be absent, not an empty string entry")
	}
}

func TestDecodeRejectsNonPE(t *testing.T) {
	if _, err := Decode([]byte("not a pe file at all")); err == nil {
		t.Error("expected an error for non-PE input, got nil")
	}
}

func TestDecodeRejectsMissingRsrcSection(t *testing.T) {
	img := buildPEImage(0x1000, nil)
	// strip the .rsrc bytes but keep the section header pointing past EOF
	if _, err := Decode(img[:0x1000]); err == nil {
		t.Error("expected an error when .rsrc data is truncated")
	}
}

func TestStringID(t *testing.T) {
	if got := StringID(0, 42); got != 42 {
		t.Errorf("StringID(0, 42) = %d, want 42", got)
	}
	if got := StringID(2, 5); got != 131077 {
		t.Errorf("StringID(2, 5) = %d, want 131077", got)
	}
}
