// Package settings normalizes spell checker settings: placeholders in
// path-bearing keys are substituted and custom dictionaries from the user,
// workspace and folder scopes are merged into one dictionary list.
package settings

// ShallowClean returns a shallow copy of m without the keys whose value is nil.
// Nested values are shared with m, not copied.
func ShallowClean(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
