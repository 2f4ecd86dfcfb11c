package player

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultNameSubstitutions covers letters that have no canonical
// decomposition into an ASCII base letter plus a combining mark.
var DefaultNameSubstitutions = map[rune]string{
	'ß': "ss",
	'ı': "i",
	'ł': "l",
	'ø': "o",
	'Ø': "o",
	'æ': "ae",
	'đ': "d",
	'ẞ': "ss",
}

// NameNormalizer canonicalizes display names so names printed by different
// providers compare equal. The zero value applies no substitutions.
type NameNormalizer struct {
	substitutions map[rune]string
}

// NewNameNormalizer builds a normalizer from a substitution table. Each key is
// registered in both letter cases so that lowercasing can never surface a
// letter the table would have rewritten.
func NewNameNormalizer(substitutions map[rune]string) NameNormalizer {
	table := make(map[rune]string, len(substitutions)*2)
	for from, to := range substitutions {
		table[from] = to
	}
	for from, to := range substitutions {
		for _, variant := range []rune{unicode.ToLower(from), unicode.ToUpper(from)} {
			if variant <= unicode.MaxASCII {
				continue
			}
			if _, exists := table[variant]; !exists {
				table[variant] = to
			}
		}
	}
	return NameNormalizer{substitutions: table}
}

// DefaultNameNormalizer uses DefaultNameSubstitutions.
func DefaultNameNormalizer() NameNormalizer {
	return NewNameNormalizer(DefaultNameSubstitutions)
}

// Normalize never fails: decomposition errors fall back to the input text.
func (n NameNormalizer) Normalize(text string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningDiacritic)))
	decomposed, _, err := transform.String(stripMarks, text)
	if err != nil {
		decomposed = text
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if replacement, ok := n.substitutions[r]; ok {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}

	out := strings.ReplaceAll(b.String(), ".", "")
	return strings.TrimSpace(strings.ToLower(out))
}

// Tokens splits a normalized name on whitespace and hyphens, dropping empty parts.
func Tokens(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
}

func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}
