package lang

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// mojibake produced by a UTF-8 right single quote decoded as Windows-1252.
// The symptom vocabulary the model was trained on contains a handful of these.
const brokenApostrophe = "â€™"

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText repairs known encoding artifacts, applies Unicode NFC and
// collapses all whitespace runs to a single space. Empty input stays empty.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, brokenApostrophe, "'")
	s = norm.NFC.String(s)
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
	return s
}

// NormalizeAll normalizes every element of texts, preserving order.
func NormalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = NormalizeText(t)
	}
	return out
}

// TitleCase title-cases each word using English casing rules.
// A fresh caser per call: cases.Caser carries state and is not safe to share.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
