package faq

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, folds diacritics, drops everything that is not a
// letter, number or whitespace and trims the result. Interior whitespace is kept
// as is because it takes part in the similarity ratio.
func Normalize(text string) string {
	folded, _, err := transform.String(foldChain(), strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	var builder strings.Builder
	builder.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}
	return strings.TrimSpace(builder.String())
}

// foldChain is rebuilt per call: transform.Chain keeps internal buffers and is
// not safe for concurrent use.
func foldChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func words(normalized string) []string {
	return strings.Fields(normalized)
}
