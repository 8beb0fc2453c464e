package morse

import (
	"iter"
	"unicode"

	"github.com/jamesmunns/blinq/internal"
	"github.com/jamesmunns/blinq/pattern"
)

// WordGap separates words: four quiet steps on top of the element gap
// already trailing the previous symbol.
var WordGap = pattern.FromBits(0b0000, 4)

var symbols = map[rune]pattern.Pattern{
	'a': A, 'b': B, 'c': C, 'd': D, 'e': E, 'f': F, 'g': G,
	'h': H, 'i': I, 'j': J, 'k': K, 'l': L, 'm': M, 'n': N,
	'o': O, 'p': P, 'q': Q, 'r': R, 's': S, 't': T, 'u': U,
	'v': V, 'w': W, 'x': X, 'y': Y, 'z': Z,

	'0': Zero, '1': One, '2': Two, '3': Three, '4': Four,
	'5': Five, '6': Six, '7': Seven, '8': Eight, '9': Nine,

	'.':  FullStop,
	',':  Comma,
	':':  Colon,
	'?':  QuestionMark,
	'\'': Apostrophe,
	'-':  Hyphen,
	'/':  FractionBar,
	'(':  Brackets,
	')':  Brackets,
	'"':  QuotationMark,
	'@':  AtSign,
	'=':  EqualsSign,

	' ': WordGap,
}

// Encode converts text into one pattern per rune. Letters are
// case-insensitive and a space becomes WordGap. A rune with no morse form
// yields an ErrUnknownRune.
func Encode(text string) ([]pattern.Pattern, error) {
	pats := make([]pattern.Pattern, 0, len(text))
	for _, r := range text {
		p, ok := symbols[unicode.ToLower(r)]
		if !ok {
			return nil, ErrUnknownRune(r)
		}
		pats = append(pats, p)
	}

	return pats, nil
}

// Steps flattens a sequence of patterns into a single step stream, in
// order.
func Steps(pats []pattern.Pattern) iter.Seq[bool] {
	seqs := make([]iter.Seq[bool], len(pats))
	for i, p := range pats {
		seqs[i] = p.Steps()
	}

	return internal.Concat(seqs...)
}
