package workspace

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestFolder returns the open folder name closest to name, for "did you
// mean" hints on failed placeholders. ok is false when nothing is close.
func (r *Resolver) SuggestFolder(name string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, f := range r.folders {
		d := levenshtein.ComputeDistance(want, strings.ToLower(f.name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = f.name, d
		}
	}

	limit := max(2, len(want)/3)
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
