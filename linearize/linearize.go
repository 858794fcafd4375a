// Package linearize joins multi-line AMR graphs into one line per graph and
// collects the sentence paired with each graph.
package linearize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCountMismatch is returned when the number of sentences differs from the
// number of graphs.
var ErrCountMismatch = errors.New("amr: sentence and graph counts differ")

var sentencePrefixes = []string{"# ::snt", "# ::tok"}

// Result holds the aligned output of Linearize.
type Result struct {
	Graphs    []string
	Sentences []string
}

// Linearize collapses each blank-line separated block of lines into a single
// line. Lines starting with "# ::snt" or "# ::tok" provide the sentences;
// other comment lines are ignored.
//
// The returned slices always have equal length; otherwise the error wraps
// ErrCountMismatch and the partial result is nil.
func Linearize(lines []string) (*Result, error) {
	var (
		res = &Result{}
		acc []string
	)

	flush := func() {
		if len(acc) == 0 {
			return
		}
		res.Graphs = append(res.Graphs, strings.TrimSpace(strings.Join(acc, " ")))
		acc = acc[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case isSentence(line):
			res.Sentences = append(res.Sentences, sentenceText(line))
		case strings.HasPrefix(line, "#"):
			// other metadata
		default:
			acc = append(acc, trimmed)
		}
	}
	flush()

	if len(res.Graphs) != len(res.Sentences) {
		return nil, fmt.Errorf("%w: %d sentences, %d graphs",
			ErrCountMismatch, len(res.Sentences), len(res.Graphs))
	}
	return res, nil
}

// isSentence reports whether line carries sentence text. A "# ::snt-type"
// declaration on its own line is metadata, not a sentence.
func isSentence(line string) bool {
	if strings.HasPrefix(line, "# ::snt-") {
		return false
	}
	for _, p := range sentencePrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func sentenceText(line string) string {
	for _, p := range sentencePrefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			return strings.TrimSpace(rest)
		}
	}
	return strings.TrimSpace(line)
}
