package settings

import (
	"github.com/sevigo/spell-warden/internal/core"
)

// Resolve normalizes raw settings: placeholders in every known path-bearing key
// are substituted first, then the dictionary channels are merged. The input is
// not modified. Resolving an already resolved object yields an equivalent one.
func Resolve(raw core.Settings, r core.PathResolver) core.Settings {
	if raw == nil {
		return nil
	}
	out := Substitute(raw, r)
	dicts := ResolveDictionaries(out, r)

	for key, entries := range dicts.Custom {
		out[key] = entries
	}
	if _, ok := out[KeyDictionaries]; ok || len(dicts.Names) > 0 {
		names := make([]any, len(dicts.Names))
		for i, n := range dicts.Names {
			names[i] = n
		}
		out[KeyDictionaries] = names
	}
	if _, ok := out[KeyDictionaryDefinitions]; ok || len(dicts.Definitions) > 0 {
		defs := make([]any, len(dicts.Definitions))
		for i, d := range dicts.Definitions {
			defs[i] = map[string]any(d)
		}
		out[KeyDictionaryDefinitions] = defs
	}
	return out
}
