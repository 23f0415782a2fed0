package index

import (
	"unicode"
	"unicode/utf8"
)

type StandardTokenizer struct {
	input       []byte
	inputIndex  int
	tokenBuffer []rune
}

func NewStandardTokenizer() *StandardTokenizer {
	return &StandardTokenizer{
		tokenBuffer: make([]rune, 0, 100),
	}
}

func (t *StandardTokenizer) Reset(input []byte) {
	t.input = input
	t.inputIndex = 0
}

// NextToken returns the next lowercased term. Terms are maximal runs of
// non-space, non-punctuation runes.
func (t *StandardTokenizer) NextToken() (string, bool) {
	t.tokenBuffer = t.tokenBuffer[:0]

	for t.inputIndex < len(t.input) {
		r, size := utf8.DecodeRune(t.input[t.inputIndex:])
		t.inputIndex += size

		// TODO: apply proper normalization
		normalizedRune := unicode.ToLower(r)

		if unicode.IsSpace(normalizedRune) || unicode.IsPunct(normalizedRune) {
			if len(t.tokenBuffer) > 0 {
				return string(t.tokenBuffer), true
			}

			continue
		}

		t.tokenBuffer = append(t.tokenBuffer, normalizedRune)
	}

	if len(t.tokenBuffer) > 0 {
		return string(t.tokenBuffer), true
	}

	return "", false
}
