// Package workspace resolves ${workspaceFolder} placeholders against the set of
// folders open in the editor.
package workspace

import (
	"regexp"
)

// placeholderPattern only matches at offset 0; a placeholder later in the
// string is never substituted.
var placeholderPattern = regexp.MustCompile(`^\$\{workspaceFolder(?::([^}]*))?\}`)

// Placeholder is a parsed ${workspaceFolder} or ${workspaceFolder:Name} token.
type Placeholder struct {
	// Text is the literal token as written, e.g. "${workspaceFolder:Server}".
	Text string
	// Name is the folder name of a named placeholder, exactly as written.
	Name string
	// Named reports whether the token carried a ":Name" part.
	Named bool
}

// ParsePlaceholder splits value into its leading placeholder and the rest of
// the string. ok is false when value does not start with a placeholder.
func ParsePlaceholder(value string) (p Placeholder, rest string, ok bool) {
	m := placeholderPattern.FindStringSubmatchIndex(value)
	if m == nil {
		return Placeholder{}, value, false
	}
	p.Text = value[m[0]:m[1]]
	if m[2] >= 0 {
		p.Named = true
		p.Name = value[m[2]:m[3]]
	}
	return p, value[m[1]:], true
}

// HasPlaceholder reports whether value starts with a workspace placeholder.
func HasPlaceholder(value string) bool {
	return placeholderPattern.MatchString(value)
}
