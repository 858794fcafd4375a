package resolve

import "strings"

// roleLabels are removed from a value committed at a nested opening
// parenthesis; they are the role that introduced the nested node.
var roleLabels = []string{" :name", " :dayperiod", " :mod"}

// Table maps variable names to the concept text they were bound to.
type Table map[string]string

// Lookup returns the value bound to name.
func (t Table) Lookup(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// Reset removes every binding.
func (t Table) Reset() {
	clear(t)
}

// bind stores value under name. Empty names are ignored; a whitespace split
// never yields an empty token, so they could never be referenced.
func (t Table) bind(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	t[name] = value
}

// nestedValue cleans a value that was cut short by a nested node.
func nestedValue(raw string) string {
	v := strings.ReplaceAll(strings.TrimSpace(raw), ")", "")
	for _, label := range roleLabels {
		v = strings.ReplaceAll(v, label, "")
	}
	return v
}

// finalValue cleans the value still pending at the end of a line.
func finalValue(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ")", "")
}
