// Package textstyle rewrites plain text with the Unicode mathematical
// alphanumeric symbols (bold, italic, bold script).
package textstyle

import (
	"fmt"
	"strings"

	"github.com/genricoloni/mprisence/internal/domain"
)

// Mapping returns the styled variant of r, if it has one
type Mapping func(r rune) (rune, bool)

// Variant names one of the supported styles
type Variant int

const (
	VariantBold Variant = iota
	VariantItalic
	VariantBoldScript
)

func (v Variant) String() string {
	switch v {
	case VariantBold:
		return "bold"
	case VariantItalic:
		return "italic"
	case VariantBoldScript:
		return "bold-script"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Mapping returns the rune mapping of the variant
func (v Variant) Mapping() Mapping {
	switch v {
	case VariantItalic:
		return Italic
	case VariantBoldScript:
		return BoldScript
	default:
		return Bold
	}
}

// runeClass is how Style treats a rune that has no styled variant
type runeClass int

const (
	classFail runeClass = iota
	classStop
	classKeep
)

// classify checks the stop set before the keep set: '(' and '[' are in both
// and must end the scan.
func classify(r rune) runeClass {
	switch r {
	case '(', '[':
		return classStop
	case ')', ' ', ']', '"', ',', '\n', '\u00a0', '\'', '-':
		return classKeep
	default:
		return classFail
	}
}

// Style rewrites s rune by rune with m.
//
// Runes without a variant are kept as-is when they are punctuation or
// whitespace. An opening bracket ends the scan and everything from it on is
// copied unchanged, so "Song (Remix)" only styles "Song ". Any other rune
// without a variant makes Style fail with domain.ErrStyleTransform.
func Style(s string, m Mapping) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 4)

	rest := ""
	for i, r := range s {
		if v, ok := m(r); ok {
			b.WriteRune(v)
			continue
		}

		switch classify(r) {
		case classStop:
			rest = s[i:]
		case classKeep:
			b.WriteRune(r)
			continue
		default:
			return "", fmt.Errorf("%w: %q (U+%04X)", domain.ErrStyleTransform, r, r)
		}
		break
	}

	b.WriteString(rest)
	return b.String(), nil
}
