package config

import "testing"

func TestParseTextBasicSection(t *testing.T) {
	src := "; a comment\n[Good]\nPrice = 42\nName = Widget ; trailing comment\n"
	stream := ParseText("test.ini", []byte(src))

	if len(stream) != 1 {
		t.Fatalf("got %d sections, want 1", len(stream))
	}
	if stream[0].Name != "good" {
		t.Errorf("section name not lowercased: got %q", stream[0].Name)
	}
	if got := stream[0].Int("price"); got != 42 {
		t.Errorf("price: got %d, want 42", got)
	}
	if got := stream[0].String("name"); got != "widget" {
		t.Errorf("name: got %q, want %q (string values are lowercased)", got, "widget")
	}
}

func TestParseTextValueTypeCoercion(t *testing.T) {
	src := "[Object]\nvals = 1, 2.5, true, False, hello\n"
	stream := ParseText("test.ini", []byte(src))

	entry, ok := stream[0].Get("vals")
	if !ok {
		t.Fatalf("entry not found")
	}
	if len(entry.Values) != 5 {
		t.Fatalf("got %d values, want 5", len(entry.Values))
	}
	if entry.Values[0].Int() != 1 {
		t.Errorf("value 0 not int 1")
	}
	if entry.Values[1].Float() != 2.5 {
		t.Errorf("value 1 not float 2.5")
	}
	if !entry.Values[2].Bool() {
		t.Errorf("value 2 not bool true")
	}
	if entry.Values[3].Bool() {
		t.Errorf("value 3 not bool false")
	}
	if entry.Values[4].Text() != "hello" {
		t.Errorf("value 4 not string hello")
	}
}

func TestParseTextTolerance(t *testing.T) {
	src := "\uFEFF[System]\r\nnickname = li01\r\nthis line has no delimiter\r\nprice=\r\n"
	stream := ParseText("test.ini", []byte(src))
	if len(stream) != 1 {
		t.Fatalf("got %d sections, want 1 (BOM should not break parsing)", len(stream))
	}
	if stream[0].String("nickname") != "li01" {
		t.Errorf("nickname: got %q", stream[0].String("nickname"))
	}
	// "price=" is a legal entry with a single empty-string value.
	if !stream[0].Has("price") {
		t.Errorf("expected price entry with empty value to still be recorded")
	}
}

func TestParseTextEntryOutsideSectionIsSkipped(t *testing.T) {
	src := "orphan = 1\n[Real]\nkey = 2\n"
	stream := ParseText("test.ini", []byte(src))
	if len(stream) != 1 {
		t.Fatalf("got %d sections, want 1", len(stream))
	}
	if stream[0].Has("orphan") {
		t.Errorf("orphan entry should have been discarded")
	}
}

func TestParseTextDuplicateSectionsPreserved(t *testing.T) {
	src := "[Object]\nnickname = a\n[Object]\nnickname = b\n"
	stream := ParseText("test.ini", []byte(src))
	if len(stream) != 2 {
		t.Fatalf("got %d sections, want 2", len(stream))
	}
}
