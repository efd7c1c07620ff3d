package target

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevigo/spell-warden/internal/core"
)

// ErrNoMatch is returned by PickBestMatch when no target satisfies the pattern.
var ErrNoMatch = errors.New("No matching configuration found.") //nolint:staticcheck // message is shown to users verbatim

// Matches reports whether both the kind and the scope of t are accepted by p.
func Matches(t ConfigTarget, p Pattern) bool {
	return p.Kind.Has(t.Kind) && p.Scope.Has(t.Scope)
}

// Filter returns the targets for which keep is true, in their original order.
func Filter(targets []ConfigTarget, keep func(ConfigTarget) bool) []ConfigTarget {
	out := make([]ConfigTarget, 0, len(targets))
	for _, t := range targets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// MatchesPattern returns a predicate for Filter.
func MatchesPattern(p Pattern) func(ConfigTarget) bool {
	return func(t ConfigTarget) bool { return Matches(t, p) }
}

// FindBestMatching returns the targets matching p that share the most
// specific kind present: dictionaries first, then cspell files, then editor
// settings. Discovery order is kept.
func FindBestMatching(p Pattern, targets []ConfigTarget) []ConfigTarget {
	matched := Filter(targets, MatchesPattern(p))
	if len(matched) == 0 {
		return matched
	}
	best := matched[0].Kind
	for _, t := range matched[1:] {
		if t.Kind < best {
			best = t.Kind
		}
	}
	return Filter(matched, func(t ConfigTarget) bool { return t.Kind == best })
}

// PickBestMatch asks the picker to choose among the targets matching p. The
// best matches are listed first followed by the remaining matches. A nil
// target with a nil error means the user dismissed the prompt.
func PickBestMatch(ctx context.Context, p Pattern, targets []ConfigTarget, picker core.Picker) (*ConfigTarget, error) {
	best := FindBestMatching(p, targets)
	if len(best) == 0 {
		return nil, ErrNoMatch
	}

	candidates := append([]ConfigTarget{}, best...)
	for _, t := range Filter(targets, MatchesPattern(p)) {
		if t.Kind != best[0].Kind {
			candidates = append(candidates, t)
		}
	}

	choices := make([]core.Choice, len(candidates))
	for i, t := range candidates {
		choices[i] = core.Choice{Label: t.Name, Description: t.Describe()}
	}

	idx, ok, err := picker.Pick(ctx, "Choose where to save", choices)
	if err != nil {
		return nil, fmt.Errorf("pick configuration target: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if idx < 0 || idx >= len(candidates) {
		return nil, fmt.Errorf("pick configuration target: selection %d out of range", idx)
	}
	chosen := candidates[idx]
	return &chosen, nil
}
