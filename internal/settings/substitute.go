package settings

import (
	"maps"
	"slices"

	"github.com/sevigo/spell-warden/internal/core"
)

// Substitute returns a copy of s in which every path-bearing value of the known
// schema has its leading workspace placeholder replaced. Unknown keys pass
// through untouched and s is not modified.
func Substitute(s core.Settings, r core.PathResolver) core.Settings {
	if s == nil {
		return nil
	}
	return core.Settings(rootSchema.apply(s, r))
}

func (sc schema) apply(obj map[string]any, r core.PathResolver) map[string]any {
	out := ShallowClean(obj)
	// Sorted so that failures are reported in a stable order.
	for _, key := range slices.Sorted(maps.Keys(sc)) {
		if v, ok := out[key]; ok {
			out[key] = sc[key].apply(v, r)
		}
	}
	return out
}

func (f field) apply(v any, r core.PathResolver) any {
	switch val := v.(type) {
	case string:
		if f.nested != nil {
			return val
		}
		return r.ResolvePath(val)
	case []string:
		if f.nested != nil {
			return val
		}
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = r.ResolvePath(s)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = f.apply(item, r)
		}
		return out
	case map[string]any:
		if f.nested == nil {
			return val
		}
		return f.nested.apply(val, r)
	case core.Settings:
		return f.apply(map[string]any(val), r)
	case core.DictionaryDefinition:
		return f.apply(map[string]any(val), r)
	case []core.DictionaryDefinition:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = f.apply(item, r)
		}
		return out
	default:
		return val
	}
}
