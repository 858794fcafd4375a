// Package docsplit groups the blocks of an AMR file by document id.
//
// Multi-document releases (the proxy report section of LDC2017T10 for
// example) number their graphs "<doc>.<n>" in the "# ::id" line. Splitting
// by the part before the first dot recovers one buffer per document.
package docsplit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingDocID is returned when a block is complete before any
// "# ::id" line was seen.
var ErrMissingDocID = errors.New("amr: block has no document id")

const (
	headerPrefix = "# AMR"
	idPrefix     = "# ::id"
)

// Document is the text of every block that belongs to one document id.
// Each block ends with a blank line.
type Document struct {
	ID   string
	Text string
}

// Lines returns the document text as lines, without line terminators.
func (d Document) Lines() []string {
	return strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
}

// DocID extracts the document id from a "# ::id <doc>.<n> ..." line.
func DocID(line string) (string, bool) {
	if !strings.HasPrefix(line, idPrefix) {
		return "", false
	}
	parts := strings.Split(line, " ")
	if len(parts) < 3 {
		return "", false
	}
	id, _, _ := strings.Cut(strings.TrimSpace(parts[2]), ".")
	return id, id != ""
}

// Split reads r and returns one Document per distinct id, in order of first
// appearance. Provenance headers are dropped and blank-line runs collapse to
// a single terminator. A final block that lacks a trailing blank line is
// still emitted.
func Split(r io.Reader) ([]Document, error) {
	var (
		order []string
		texts = make(map[string]*strings.Builder)
		block strings.Builder
		docID string
	)

	flush := func() error {
		if block.Len() == 0 {
			return nil
		}
		if docID == "" {
			return fmt.Errorf("%w: %q", ErrMissingDocID, firstLine(block.String()))
		}
		b, ok := texts[docID]
		if !ok {
			b = &strings.Builder{}
			texts[docID] = b
			order = append(order, docID)
		}
		b.WriteString(block.String())
		b.WriteByte('\n')
		block.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, headerPrefix) {
			continue
		}
		if id, ok := DocID(line); ok {
			docID = id
		}
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(order))
	for _, id := range order {
		docs = append(docs, Document{ID: id, Text: texts[id].String()})
	}
	return docs, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
