package amr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-amr/annotation"
	"github.com/jamesainslie/go-amr/linearize"
	"github.com/jamesainslie/go-amr/resolve"
	"github.com/jamesainslie/go-amr/tokenizer"
)

// maxLineSize bounds a single input line. Graph lines are short; the limit
// only guards against binary input.
const maxLineSize = 16 * 1024 * 1024

// Stats summarizes one conversion.
type Stats struct {
	Lines        int
	Headers      int
	SkippedLines int
	Graphs       int
	Bindings     int
	Resolved     int
	Unresolved   int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Headers += o.Headers
	s.SkippedLines += o.SkippedLines
	s.Graphs += o.Graphs
	s.Bindings += o.Bindings
	s.Resolved += o.Resolved
	s.Unresolved += o.Unresolved
}

// Result is the aligned output of one conversion. Graphs[i] is the
// linearized graph for Sentences[i].
type Result struct {
	Graphs    []string
	Sentences []string
	Stats     Stats
}

// Converter turns AMR corpus text into linearized graphs and sentences.
// It is safe for concurrent use.
type Converter struct {
	cfg config
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{cfg: cfg}
}

// Filter returns the filter tag the Converter was created with.
func (c *Converter) Filter() string { return c.cfg.filter }

// Convert runs the pipeline over the lines of one input. Lines must not
// carry line terminators.
//
// If the number of sentences differs from the number of graphs the error
// wraps ErrCountMismatch and no result is returned.
func (c *Converter) Convert(lines []string) (*Result, error) {
	stats := Stats{Lines: len(lines)}

	filtered, fstats := annotation.Filter(lines, c.cfg.filter)
	stats.Headers = fstats.Headers
	stats.SkippedLines = fstats.SkippedLines

	resolved := filtered
	if !c.cfg.keepVariables {
		r := resolve.New(c.cfg.scope, c.cfg.logger)
		resolved, _ = r.Resolve(filtered)
		rstats := r.Stats()
		stats.Bindings = rstats.Bindings
		stats.Resolved = rstats.Resolved
		stats.Unresolved = rstats.Unresolved
	}

	lin, err := linearize.Linearize(resolved)
	if err != nil {
		return nil, err
	}

	graphs := c.cfg.format.ApplyAll(lin.Graphs)
	sentences := lin.Sentences
	for i, s := range sentences {
		if c.cfg.nfc {
			s = norm.NFC.String(s)
		}
		sentences[i] = tokenizer.Join(c.cfg.tokenizer, s)
	}
	stats.Graphs = len(graphs)

	return &Result{
		Graphs:    graphs,
		Sentences: sentences,
		Stats:     stats,
	}, nil
}

// ConvertReader reads all lines from r and converts them.
func (c *Converter) ConvertReader(r io.Reader) (*Result, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return c.Convert(lines)
}

// ConvertFile converts the file at path.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }() // read-only

	res, err := c.ConvertReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.cfg.logger.Info("converted",
		"file", path,
		"filter", c.cfg.filter,
		"graphs", res.Stats.Graphs,
		"unresolved", res.Stats.Unresolved)
	return res, nil
}

// ReadLines splits r into lines without terminators. A trailing "\r" is
// removed so CRLF files behave like LF files.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
