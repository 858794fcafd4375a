package tokenizer

import (
	"strings"
	"unicode"
)

// sentencePieceSpace marks a word boundary inside a piece (U+2581).
const sentencePieceSpace = '▁'

// normalize rewrites text into SentencePiece input form: white space runs
// collapse to a single boundary marker, a marker is prefixed to the first
// word and trailing space is dropped.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	pending := true

	for _, r := range text {
		if unicode.IsSpace(r) {
			pending = pending || b.Len() > 0
			continue
		}
		if pending {
			b.WriteRune(sentencePieceSpace)
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
