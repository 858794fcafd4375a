// Package resolve removes AMR variables by substituting each reference with
// the concept text its variable was bound to.
//
// Resolution is heuristic and line-based. A line containing "/" introduces
// bindings; a line without one is assumed to hold a reference in its second
// whitespace-separated field. Anything that does not fit passes through
// unchanged, so no input line is ever rejected.
package resolve

import (
	"log/slog"
	"strings"
)

// RefTokenIndex is the position of the referenced variable in a reference
// line such as "    :ARG1 p)".
const RefTokenIndex = 1

// Scope controls when the binding table is cleared.
type Scope int

const (
	// ScopeBlock clears bindings at every blank line, so each graph only
	// sees its own variables.
	ScopeBlock Scope = iota

	// ScopeFile keeps one table for the whole input. Bindings from earlier
	// graphs stay visible to later ones.
	ScopeFile
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeBlock:
		return "block"
	case ScopeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Stats counts reference handling for one Resolve call.
type Stats struct {
	Bindings   int
	Resolved   int
	Unresolved int
}

// Resolver rewrites filtered AMR lines without variables.
// A Resolver holds per-input state and must not be shared between
// goroutines; create one per file.
type Resolver struct {
	scope  Scope
	table  Table
	stats  Stats
	logger *slog.Logger
}

// New creates a Resolver with an empty table.
func New(scope Scope, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		scope:  scope,
		table:  make(Table),
		logger: logger,
	}
}

// Table returns the current binding table.
func (r *Resolver) Table() Table { return r.table }

// Stats returns the counters accumulated so far.
func (r *Resolver) Stats() Stats { return r.stats }

// Resolve rewrites every line and returns the result together with the final
// binding table.
func (r *Resolver) Resolve(lines []string) ([]string, Table) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, r.Line(line))
	}
	return out, r.table
}

// Line rewrites a single line.
func (r *Resolver) Line(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		if r.scope == ScopeBlock {
			r.table.Reset()
		}
		return line
	case line[0] == '#':
		return line
	case strings.Contains(line, "/"):
		before := len(r.table)
		scanBindings(line, r.table)
		r.stats.Bindings += max(len(r.table)-before, 0)
		return dropBindingSyntax(line)
	default:
		return r.reference(line)
	}
}

func (r *Resolver) reference(line string) string {
	fields := strings.Fields(line)
	if len(fields) <= RefTokenIndex {
		return line
	}

	token := fields[RefTokenIndex]
	name := strings.ReplaceAll(token, ")", "")
	value, ok := r.table.Lookup(name)
	if name == "" || !ok {
		r.stats.Unresolved++
		r.logger.Debug("unresolved reference", "token", token, "line", strings.TrimSpace(line))
		return line
	}

	r.stats.Resolved++
	fields[RefTokenIndex] = strings.ReplaceAll(token, name, "("+strings.TrimSpace(value)+")")
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	return strings.Repeat(" ", indent) + strings.Join(fields, " ")
}

// Resolve is a convenience wrapper that runs a fresh Resolver over lines.
func Resolve(lines []string, scope Scope) ([]string, Table) {
	return New(scope, nil).Resolve(lines)
}
