package tokenizer

import (
	"regexp"
	"strings"
)

const (
	openPunct  = "\"'`([{"
	closePunct = "\"'`)]}.,;:!?"
)

// Abbreviations keep their final period.
var abbreviations = regexp.MustCompile(`(?i)^(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|St|Mt|vs|etc|Inc|Corp|Ltd|Co|No|i\.e|e\.g|U\.S|U\.K|U\.N|a\.m|p\.m)\.$`)

// clitics are split off the end of a word, longest first.
var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'d", "'m"}

// Word is a rule-based English word tokenizer in the spirit of the Penn
// Treebank conventions: surrounding punctuation becomes separate tokens and
// clitics such as "n't" and "'s" are split off. Abbreviations and numbers
// with inner punctuation stay whole.
type Word struct{}

// Tokenize splits text into word and punctuation tokens.
func (Word) Tokenize(text string) []string {
	var tokens []string
	for _, w := range strings.Fields(text) {
		tokens = append(tokens, splitWord(w)...)
	}
	return tokens
}

func splitWord(w string) []string {
	var head, tail []string

	for len(w) > 1 && strings.IndexByte(openPunct, w[0]) >= 0 {
		head = append(head, w[:1])
		w = w[1:]
	}
	for len(w) > 1 && !abbreviations.MatchString(w) && strings.IndexByte(closePunct, w[len(w)-1]) >= 0 {
		tail = append(tail, w[len(w)-1:])
		w = w[:len(w)-1]
	}

	out := head
	lower := strings.ToLower(w)
	split := false
	for _, c := range clitics {
		if len(w) > len(c) && strings.HasSuffix(lower, c) {
			out = append(out, w[:len(w)-len(c)], w[len(w)-len(c):])
			split = true
			break
		}
	}
	if !split {
		out = append(out, w)
	}
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
