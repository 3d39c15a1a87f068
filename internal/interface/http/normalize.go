package http

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeSign folds a caller supplied spelling ("Koç", "İKİZLER", "balık")
// to the canonical ASCII key. It does not check membership; the domain does.
func normalizeSign(raw string) string {
	// Casers and transform chains carry state, so they are built per call.
	lowered := cases.Lower(language.Turkish).String(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "ı", "i")

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(folded))
	for _, r := range folded {
		if r >= 'a' && r <= 'z' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
