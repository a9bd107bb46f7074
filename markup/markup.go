// Package markup translates infocard text out of Freelancer's RDL
// (Render Display List) dialect, a crude pseudo-XML the game embeds
// in its string resources.
//
// Reference: flint's interface.py RDL_TO_HTML table, credited there to
// forum reverse-engineering by adoxa and cshake.
package markup

import (
	"regexp"
	"strings"
)

// Mode selects an infocard's output representation.
type Mode int

const (
	// ModeRDL returns the infocard exactly as stored, untranslated.
	ModeRDL Mode = iota
	// ModeHTML rewrites RDL formatting tags to their HTML(4) equivalents.
	ModeHTML
	// ModePlain strips all markup, leaving paragraph breaks as newlines.
	ModePlain
)

// rdlToHTML maps a literal RDL tag (or the stray non-breaking-space
// character Freelancer's infocards use after titles) to its HTML
// equivalent. Order does not matter for replacement correctness: none
// of these substrings overlap with any other key.
var rdlToHTML = map[string]string{
	`<TRA data="1" mask="1" def="-2"/>`:           "<b>",
	`<TRA bold="true"/>`:                          "<b>",
	`<TRA data="0" mask="1" def="-1"/>`:           "</b>",
	`<TRA data="0x00000001" mask="-1" def="-2"/>`: "<b>",
	`<TRA data="0x00000000" mask="-1" def="-1"/>`: "</b>",
	`<TRA data="2" mask="3" def="-3"/>`:           "<i>",
	`<TRA data="0" mask="3" def="-1"/>`:           "</i>",
	`<TRA data="98" mask="-29" def="-3"/>`:        "<i>",
	`<TRA data="96" mask="-29" def="-1"/>`:        "</i>",
	`<TRA data="2" mask="2" def="-3"/>`:           "<i>",
	`<TRA data="0" mask="2" def="-1"/>`:           "</i>",
	`<TRA data="5" mask="5" def="-6"/>`:           "<b><u>",
	`<TRA data="0" mask="5" def="-1"/>`:           "</b></u>",
	`<TRA data="5" mask="7" def="-6"/>`:           "<b><u>",
	`<TRA data="0" mask="7" def="-1"/>`:           "</b></u>",
	`<TRA data="65280" mask="-32" def="31"/>`:     `<font color="red">`,
	`<TRA data="96" mask="-32" def="-1"/>`:        "</font>",
	`<TRA data="65281" mask="-31" def="30"/>`:     `<b><font color="red">`,
	`<TRA data="96" mask="-31" def="-1"/>`:        "</b></font>",
	`<TRA data="-16777216" mask="-32" def="31"/>`: `<font color="blue">`,
	`<PARA/>`:              "<p>",
	`</PARA>`:              "</p>",
	`<JUST loc="left"/>`:   `<p align="left">`,
	`<JUST loc="center"/>`: `<p align="center">`,
	" ":                    "&nbsp;",
	`<RDL>`:                "",
	`</RDL>`:               "",
	`<TEXT>`:               "",
	`</TEXT>`:              "",
	`<PUSH/>`:              "",
	`<POP/>`:               "",
	`<?xml version="1.0" encoding="UTF-16"?>`: "",
}

// ToHTML rewrites every recognised RDL tag in rdl to its HTML(4)
// equivalent, leaving anything unrecognised untouched.
func ToHTML(rdl string) string {
	result := rdl
	for tag, html := range rdlToHTML {
		result = strings.ReplaceAll(result, tag, html)
	}
	return result
}

// htmlParaOpen and htmlParaClose match the <p ...> forms ToHTML
// produces for <PARA/> and <JUST .../>, so ToPlainText(ToHTML(x))
// collapses them to the same newline ToPlainText(x) would have,
// keeping Render(x, ModePlain) == Render(Render(x, ModeHTML), ModePlain).
var htmlParaOpen = regexp.MustCompile(`<p(\s[^>]*)?>`)
var htmlParaClose = regexp.MustCompile(`</p>`)
var rdlJust = regexp.MustCompile(`<JUST\s[^>]*/>`)

// ToPlainText strips all RDL markup, collapsing a paragraph break -
// whether still in its raw <PARA/>/<JUST .../> RDL form or already
// rewritten to <p ...> by ToHTML - into a newline, and discarding
// every other tag, leaving only the infocard's prose.
func ToPlainText(rdl string) string {
	rdl = strings.ReplaceAll(rdl, "<PARA/>", "\n")
	rdl = strings.ReplaceAll(rdl, "</PARA>", "")
	rdl = rdlJust.ReplaceAllString(rdl, "\n")
	rdl = htmlParaOpen.ReplaceAllString(rdl, "\n")
	rdl = strings.ReplaceAll(rdl, "&nbsp;", " ")
	rdl = htmlParaClose.ReplaceAllString(rdl, "")
	rdl = strings.ReplaceAll(rdl, " ", " ")
	var b strings.Builder
	inTag := false
	for _, r := range rdl {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Render converts an infocard's raw RDL text according to mode.
func Render(rdl string, mode Mode) string {
	switch mode {
	case ModeHTML:
		return ToHTML(rdl)
	case ModePlain:
		return ToPlainText(rdl)
	default:
		return rdl
	}
}
