package tokenizer

import (
	"fmt"
	"strings"
)

const negInf = -1e9

// SentencePiece segments text into unigram subword pieces with Viterbi
// decoding. Pieces keep the "▁" word-boundary marker so the sentence file
// matches what the model expects at training time.
type SentencePiece struct {
	scores      map[string]float32
	unkScore    float32
	maxPieceLen int
}

// NewSentencePiece loads a tokenizer from a SentencePiece .model file.
func NewSentencePiece(modelPath string) (*SentencePiece, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	return NewSentencePieceFromModel(model), nil
}

// NewSentencePieceFromModel builds a tokenizer from an in-memory model.
func NewSentencePieceFromModel(model *Model) *SentencePiece {
	sp := &SentencePiece{
		scores:   make(map[string]float32, len(model.Pieces)),
		unkScore: negInf / 10,
	}
	for _, p := range model.Pieces {
		switch p.Type {
		case PieceUnknown:
			sp.unkScore = p.Score
			continue
		case PieceControl, PieceUnused:
			continue
		}
		sp.scores[p.Piece] = p.Score
		if n := len([]rune(p.Piece)); n > sp.maxPieceLen {
			sp.maxPieceLen = n
		}
	}
	return sp
}

// Tokenize returns the highest scoring segmentation of text. Characters not
// covered by the vocabulary become single-rune pieces.
func (sp *SentencePiece) Tokenize(text string) []string {
	normalized := normalize(text)
	if normalized == "" {
		return nil
	}

	runes := []rune(normalized)
	n := len(runes)

	// best[i] is the best score for runes[0:i]; parent[i] the start of the
	// piece ending at i.
	best := make([]float64, n+1)
	parent := make([]int, n+1)
	for i := 1; i <= n; i++ {
		best[i] = negInf
		parent[i] = -1
	}

	for i := 1; i <= n; i++ {
		maxLen := min(sp.maxPieceLen, i)
		for length := 1; length <= maxLen; length++ {
			j := i - length
			score, ok := sp.scores[string(runes[j:i])]
			if !ok {
				continue
			}
			if candidate := best[j] + float64(score); candidate > best[i] {
				best[i] = candidate
				parent[i] = j
			}
		}
		if parent[i] < 0 {
			best[i] = best[i-1] + float64(sp.unkScore)
			parent[i] = i - 1
		}
	}

	var pieces []string
	for pos := n; pos > 0; pos = parent[pos] {
		pieces = append(pieces, string(runes[parent[pos]:pos]))
	}
	for i, j := 0, len(pieces)-1; i < j; i, j = i+1, j-1 {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	}
	return pieces
}

// Detokenize reverses Tokenize for display.
func Detokenize(pieces []string) string {
	s := strings.Join(pieces, "")
	s = strings.ReplaceAll(s, string(sentencePieceSpace), " ")
	return strings.TrimSpace(s)
}
