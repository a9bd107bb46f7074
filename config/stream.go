package config

import (
	"fmt"
	"os"

	"flcore/errkinds"
	"flcore/format/bini"
	"flcore/section"
)

// LoadSections reads path and decodes it into a section.Stream,
// sniffing the first four bytes to decide between the BINI and
// textual decoders. Callers never need to know which format a given
// file is in; mods routinely ship a plain-text override of a file the
// base game ships as BINI, and vice versa.
func LoadSections(path string) (section.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errkinds.FileNotFound{Path: path, Err: err}
	}
	return DecodeSections(path, data)
}

// DecodeSections is LoadSections without the filesystem read, for
// callers that already have the bytes (embedded data, archives, tests).
// name is used only in diagnostics.
func DecodeSections(name string, data []byte) (section.Stream, error) {
	if bini.IsBini(data) {
		stream, err := bini.Decode(data)
		if err != nil {
			return nil, &errkinds.MalformedBinary{Format: "bini", Reason: fmt.Sprintf("%s: %v", name, err)}
		}
		return stream, nil
	}
	return ParseText(name, data), nil
}
