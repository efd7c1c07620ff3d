package core

import "strings"

// Settings is an already-parsed spell checker configuration object. Values are
// JSON-like: map[string]any, []any, string, float64/int, bool and nil.
type Settings map[string]any

// DictionaryDefinition is a named, path-bearing description of a word list.
// Only "name" and "path" are interpreted; every other field is carried verbatim.
type DictionaryDefinition map[string]any

// Name returns the trimmed dictionary name, the merge key.
func (d DictionaryDefinition) Name() string {
	name, _ := d["name"].(string)
	return strings.TrimSpace(name)
}

// Path returns the dictionary path and whether one is set.
func (d DictionaryDefinition) Path() (string, bool) {
	p, ok := d["path"].(string)
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// ResolveRequest describes a single resolution pass.
type ResolveRequest struct {
	Settings     Settings          `json:"settings"`
	Folders      []WorkspaceFolder `json:"folders"`
	Target       string            `json:"target,omitempty"`
	OverrideRoot string            `json:"overrideRoot,omitempty"`
}

// ResolveResult is the outcome of a resolution pass.
type ResolveResult struct {
	Target   string   `json:"target,omitempty"`
	Settings Settings `json:"settings"`
	// Failures lists the distinct placeholders that could not be resolved,
	// in the order they were first met.
	Failures []string `json:"failures,omitempty"`
}
