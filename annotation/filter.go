// Package annotation removes metadata that carries no training signal from
// raw AMR corpus lines.
//
// Three things are dropped: provenance headers ("# AMR ..."), blocks whose
// "::snt-type" tag differs from the requested filter tag, and wiki links.
// Leading indentation survives untouched; the variable resolver relies on it
// to rebuild reference lines.
package annotation

import (
	"regexp"
	"strings"
)

const (
	// headerPrefix marks the release banner at the top of LDC files.
	headerPrefix = "# AMR"

	// tagMarker introduces a block type declaration, usually inside the
	// "# ::id" metadata line.
	tagMarker = "::snt-type "
)

var (
	wikiValue = regexp.MustCompile(`:wiki "(.*?)"`)
	wikiNone  = regexp.MustCompile(`:wiki -`)
)

// Gate tracks whether the current block is being dropped.
//
// tagMatch records whether the most recent declaration matched the filter;
// skipping is what actually gates lines. Both reset to the included state when
// a blank line is seen.
type Gate struct {
	filter   string
	tagMatch bool
	skipping bool
}

// NewGate returns a gate for the given filter tag. An empty tag keeps every
// block.
func NewGate(filter string) *Gate {
	return &Gate{filter: filter, tagMatch: true}
}

// Observe updates the gate for line and reports whether line is kept.
func (g *Gate) Observe(line string) bool {
	if tag, ok := DeclaredTag(line); ok && g.filter != "" {
		g.tagMatch = tag == g.filter
		g.skipping = !g.tagMatch
	}
	keep := !g.skipping
	if strings.TrimSpace(line) == "" {
		g.tagMatch = true
		g.skipping = false
	}
	return keep
}

// Skipping reports whether the gate is currently dropping lines.
func (g *Gate) Skipping() bool { return g.skipping }

// DeclaredTag returns the tag of a "::snt-type <tag>" declaration in line.
func DeclaredTag(line string) (string, bool) {
	_, rest, ok := strings.Cut(line, tagMarker)
	if !ok {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}

// IsHeader reports whether line is a provenance header.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, headerPrefix)
}

// StripWiki removes the first `:wiki "<value>"` link and every `:wiki -`
// marker from line, then collapses inner whitespace. The number of leading
// whitespace characters is kept, rewritten as spaces.
func StripWiki(line string) string {
	if loc := wikiValue.FindStringIndex(line); loc != nil {
		line = line[:loc[0]] + line[loc[1]:]
	}
	line = wikiNone.ReplaceAllString(line, "")

	indent := len(line) - len(strings.TrimLeft(line, " \t\r\n\v\f"))
	body := strings.Join(strings.Fields(line), " ")
	if body == "" {
		return ""
	}
	return strings.Repeat(" ", indent) + body
}

// Stats counts what Filter removed.
type Stats struct {
	Headers      int
	SkippedLines int
}

// Filter applies header removal, tag gating and wiki stripping to lines.
// filter may be empty to keep every block.
func Filter(lines []string, filter string) ([]string, Stats) {
	var stats Stats
	gate := NewGate(filter)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if IsHeader(line) {
			stats.Headers++
			continue
		}
		if !gate.Observe(line) {
			stats.SkippedLines++
			continue
		}
		out = append(out, StripWiki(line))
	}

	return out, stats
}
