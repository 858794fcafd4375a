package resolve

import (
	"regexp"
	"strings"
)

type scanState int

const (
	stateIdle scanState = iota
	stateName
	stateValue
)

// bindingSyntax matches "(<name> /" up to the nearest slash.
var bindingSyntax = regexp.MustCompile(`\(.*?/`)

// scanBindings walks line one character at a time and records every
// "(name / value" pair in table. Nested bindings are committed left to right.
//
//	state   '('                      '/'               other
//	idle    -> name                  -> value          -
//	name    commit pending, -> name  -> value          name += ch
//	value   commit pending, -> name  -> value (reset)  value += ch
func scanBindings(line string, table Table) {
	var (
		state       = stateIdle
		name, value strings.Builder
	)

	for _, ch := range line {
		switch ch {
		case '/':
			state = stateValue
			value.Reset()
		case '(':
			if value.Len() > 0 && name.Len() > 0 {
				table.bind(name.String(), nestedValue(value.String()))
			}
			state = stateName
			name.Reset()
		default:
			switch state {
			case stateName:
				name.WriteRune(ch)
			case stateValue:
				value.WriteRune(ch)
			}
		}
	}

	table.bind(name.String(), finalValue(value.String()))
}

// dropBindingSyntax removes "<name> /" after every opening parenthesis.
func dropBindingSyntax(line string) string {
	line = bindingSyntax.ReplaceAllString(line, "(")
	return strings.ReplaceAll(line, "( ", "(")
}
