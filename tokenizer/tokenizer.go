// Package tokenizer provides the sentence tokenizers used for the sentence
// side of the parallel corpus.
//
// Three implementations are available: Whitespace splits on runs of white
// space, Word splits punctuation and English clitics off words, and
// SentencePiece segments text into subword pieces from a SentencePiece
// unigram .model file.
package tokenizer

import (
	"fmt"
	"strings"
)

// Tokenizer splits a sentence into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Func adapts an ordinary function to the Tokenizer interface.
type Func func(text string) []string

// Tokenize calls f(text).
func (f Func) Tokenize(text string) []string { return f(text) }

// Whitespace splits text around runs of white space.
var Whitespace = Func(strings.Fields)

// Join tokenizes text with t and joins the tokens with single spaces.
// A nil Tokenizer returns text unchanged.
func Join(t Tokenizer, text string) string {
	if t == nil {
		return text
	}
	return strings.Join(t.Tokenize(text), " ")
}

// ByName returns the tokenizer registered under name. "sentencepiece"
// requires modelPath.
func ByName(name, modelPath string) (Tokenizer, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "whitespace":
		return Whitespace, nil
	case "word":
		return Word{}, nil
	case "sentencepiece":
		if modelPath == "" {
			return nil, fmt.Errorf("tokenizer %q needs a model path", name)
		}
		sp, err := NewSentencePiece(modelPath)
		if err != nil {
			return nil, err
		}
		return sp, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}
