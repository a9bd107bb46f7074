// Package config turns a game data file - textual or BINI - into an
// ordered section.Stream, presenting both encodings behind one
// interface so callers never branch on format.
//
// Reference: flint's formats/ini.py, whose parse_value type-coercion
// order (int, then float, then bool, then string) and lenient,
// warn-and-skip error handling this package reproduces.
package config

import (
	"strconv"
	"strings"

	"flcore/errkinds"
	"flcore/fllog"
	"flcore/section"
)

const (
	commentChar     = ';'
	sectionOpen     = '['
	sectionClose    = ']'
	keyValueDelim   = '='
	valueDelim      = ','
)

// ParseText decodes the game's lenient textual INI dialect into a
// section.Stream. name is used only for diagnostic messages. Malformed
// lines are logged and skipped; ParseText itself never fails on
// account of bad content. An input with no section header yields an
// empty (nil) stream.
func ParseText(name string, data []byte) section.Stream {
	text := stripBOM(string(data))
	lines := splitLines(text)

	var out section.Stream
	var current *section.Section

	for lineNo, raw := range lines {
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line[0] == sectionOpen {
			secName, err := parseSectionHeader(line)
			if err != nil {
				fllog.Default().Warn("skipping malformed section header", "file", name, "line", lineNo+1, "error", err)
				continue
			}
			out = append(out, section.Section{Name: strings.ToLower(secName)})
			current = &out[len(out)-1]
			continue
		}

		if current == nil {
			fllog.Default().Warn("skipping entry outside any section", "file", name, "line", lineNo+1)
			continue
		}

		entry, err := parseEntryLine(line)
		if err != nil {
			fllog.Default().Warn("skipping malformed entry", "file", name, "line", lineNo+1, "error", err)
			continue
		}
		current.Entries = append(current.Entries, entry)
	}
	return out
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// splitLines tolerates both CRLF and bare LF line endings.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, commentChar); i >= 0 {
		return line[:i]
	}
	return line
}

func parseSectionHeader(line string) (string, error) {
	end := strings.IndexByte(line, sectionClose)
	if end < 0 {
		return "", &errkinds.MalformedText{Reason: "section header missing closing ']'"}
	}
	name := strings.TrimSpace(line[1:end])
	if name == "" {
		return "", &errkinds.MalformedText{Reason: "empty section name"}
	}
	return name, nil
}

func parseEntryLine(line string) (section.Entry, error) {
	i := strings.IndexByte(line, keyValueDelim)
	if i < 0 {
		return section.Entry{}, &errkinds.MalformedText{Reason: "entry missing '=' delimiter"}
	}
	key := strings.ToLower(strings.TrimSpace(line[:i]))
	if key == "" {
		return section.Entry{}, &errkinds.MalformedText{Reason: "empty key"}
	}

	rawValues := strings.Split(line[i+1:], string(valueDelim))
	values := make([]section.Value, 0, len(rawValues))
	for _, rv := range rawValues {
		values = append(values, parseToken(strings.TrimSpace(rv)))
	}
	return section.Entry{Key: key, Values: values}, nil
}

// parseToken applies the game's coercion precedence: Int, then Float,
// then Bool (case-insensitive true/false), then raw String. Every
// token parses to something - there is no error case - since any text
// that fails the first three tests is a legal string value.
func parseToken(tok string) section.Value {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return section.Int(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return section.Float(f)
	}
	lower := strings.ToLower(tok)
	switch lower {
	case "true":
		return section.Bool(true)
	case "false":
		return section.Bool(false)
	}
	// String tokens are lowercased too, matching the original parser's
	// universal lower() over the whole file before parsing - a
	// nickname referenced in mixed case (a goto/base/archetype value)
	// still has to match the lowercased name it was defined under.
	return section.String(lower)
}
