package config

import "testing"

func TestDecodeSectionsDispatchesToText(t *testing.T) {
	stream, err := DecodeSections("test.ini", []byte("[Good]\nprice=1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stream) != 1 || stream[0].Name != "good" {
		t.Fatalf("unexpected stream: %+v", stream)
	}
}

func TestDecodeSectionsDispatchesToBini(t *testing.T) {
	// A truncated but recognisably-BINI-magic'd input should be routed
	// to the binary decoder and surface as a MalformedBinary error,
	// not silently reinterpreted as text.
	_, err := DecodeSections("test.bini", []byte("BINI\x01\x00\x00"))
	if err == nil {
		t.Fatalf("expected an error for truncated BINI content")
	}
}
