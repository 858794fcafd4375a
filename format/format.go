// Package format applies cosmetic rewrites to linearized AMR lines.
package format

import (
	"regexp"
	"strings"
)

// senseTag matches a PropBank sense suffix such as "-01 ". Only tags whose
// first digit is 0 are matched; "-91" frames are left alone.
var senseTag = regexp.MustCompile(`-0\d `)

var (
	parenRemover = strings.NewReplacer("(", "", ")", "")
	parenSpacer  = strings.NewReplacer("(", " (", ")", ") ")
)

// Options selects the rewrites to apply. StripParens and NormalizeSpacing
// are alternatives; when both are set StripParens wins.
type Options struct {
	StripParens      bool `yaml:"strip_parens"`
	NormalizeSpacing bool `yaml:"normalize_spacing"`
	StripSenseTags   bool `yaml:"strip_sense_tags"`
}

// Enabled reports whether any rewrite is selected.
func (o Options) Enabled() bool {
	return o.StripParens || o.NormalizeSpacing || o.StripSenseTags
}

// Apply rewrites a single line.
func (o Options) Apply(line string) string {
	switch {
	case o.StripParens:
		line = StripParens(line)
	case o.NormalizeSpacing:
		line = NormalizeSpacing(line)
	}
	if o.StripSenseTags {
		line = StripSenseTags(line)
	}
	return line
}

// ApplyAll rewrites lines in place and returns them.
func (o Options) ApplyAll(lines []string) []string {
	if !o.Enabled() {
		return lines
	}
	for i, l := range lines {
		lines[i] = o.Apply(l)
	}
	return lines
}

// StripParens deletes every parenthesis.
func StripParens(line string) string {
	return parenRemover.Replace(line)
}

// NormalizeSpacing separates parentheses from their neighbours, drops the
// outermost pair and collapses whitespace.
func NormalizeSpacing(line string) string {
	line = parenSpacer.Replace(line)
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "(")
	line = strings.TrimSuffix(line, ")")
	return strings.Join(strings.Fields(line), " ")
}

// StripSenseTags replaces every "-0N " sense suffix with a single space.
func StripSenseTags(line string) string {
	return senseTag.ReplaceAllString(line, " ")
}
