package app

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/settings"
	"github.com/sevigo/spell-warden/internal/workspace"
)

// FailureHint is an unresolved placeholder with the closest open folder name.
type FailureHint struct {
	Placeholder string `json:"placeholder"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// GlobIssue is an ignorePaths entry that is not a valid glob.
type GlobIssue struct {
	Pattern string `json:"pattern"`
}

// FileMatch tells whether a file is excluded by ignorePaths.
type FileMatch struct {
	File      string `json:"file"`
	IgnoredBy string `json:"ignoredBy,omitempty"`
}

// CheckReport summarises one resolution pass for humans.
type CheckReport struct {
	Target        string        `json:"target,omitempty"`
	CurrentFolder string        `json:"currentFolder,omitempty"`
	Dictionaries  []string      `json:"dictionaries"`
	Failures      []FailureHint `json:"failures,omitempty"`
	InvalidGlobs  []GlobIssue   `json:"invalidGlobs,omitempty"`
	Files         []FileMatch   `json:"files,omitempty"`
}

// OK reports whether the pass had no unresolved placeholders and no bad globs.
func (r *CheckReport) OK() bool {
	return len(r.Failures) == 0 && len(r.InvalidGlobs) == 0
}

// Check resolves req and reports failed placeholders, invalid ignore globs
// and, for every file given, whether ignorePaths excludes it.
func (s *ResolveService) Check(ctx context.Context, req *core.ResolveRequest, files []string) (*CheckReport, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := s.NewWorkspaceResolver(req)
	out := settings.Resolve(req.Settings, r)

	report := &CheckReport{
		Target:        req.Target,
		CurrentFolder: r.CurrentFolder(),
		Dictionaries:  stringList(out[settings.KeyDictionaries]),
	}

	for _, failed := range r.Failures() {
		hint := FailureHint{Placeholder: failed}
		if p, _, ok := workspace.ParsePlaceholder(failed); ok && p.Named {
			hint.Suggestion, _ = r.SuggestFolder(p.Name)
		}
		report.Failures = append(report.Failures, hint)
	}

	var globs []string
	for _, p := range stringList(out[settings.KeyIgnorePaths]) {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			report.InvalidGlobs = append(report.InvalidGlobs, GlobIssue{Pattern: p})
			continue
		}
		globs = append(globs, p)
	}

	root := r.CurrentFolder()
	if globRoot, ok := out[settings.KeyGlobRoot].(string); ok && globRoot != "" && !workspace.HasPlaceholder(globRoot) {
		root = globRoot
	}
	for _, f := range files {
		m := FileMatch{File: f}
		m.IgnoredBy, _ = matchIgnore(root, globs, f)
		report.Files = append(report.Files, m)
	}

	return report, nil
}

// matchIgnore returns the first pattern that excludes file or one of its
// parent directories. Relative patterns are rooted at root; a relative
// pattern without a slash matches at any depth.
func matchIgnore(root string, patterns []string, file string) (string, bool) {
	if !filepath.IsAbs(file) && root != "" {
		file = filepath.Join(root, file)
	}
	target := filepath.ToSlash(file)
	slashRoot := strings.TrimSuffix(filepath.ToSlash(root), "/")

	for _, p := range patterns {
		glob := filepath.ToSlash(p)
		switch {
		case filepath.IsAbs(p) || slashRoot == "":
		case !strings.Contains(strings.Trim(glob, "/"), "/"):
			glob = slashRoot + "/**/" + strings.Trim(glob, "/")
		default:
			glob = slashRoot + "/" + strings.TrimPrefix(glob, "/")
		}
		glob = strings.TrimSuffix(glob, "/")

		for c := target; ; c = path.Dir(c) {
			if ok, _ := doublestar.Match(glob, c); ok {
				return p, true
			}
			if next := path.Dir(c); next == c || len(next) < len(slashRoot) {
				break
			}
		}
	}
	return "", false
}

func stringList(v any) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{vs}
	default:
		return nil
	}
}

// Markdown renders the report as a Markdown document.
func (r *CheckReport) Markdown() string {
	var b strings.Builder
	b.WriteString("# Spell settings check\n\n")
	if r.Target != "" {
		fmt.Fprintf(&b, "- **Target:** `%s`\n", r.Target)
	}
	if r.CurrentFolder != "" {
		fmt.Fprintf(&b, "- **Current folder:** `%s`\n", r.CurrentFolder)
	}
	fmt.Fprintf(&b, "- **Dictionaries:** %d enabled\n", len(r.Dictionaries))

	if len(r.Failures) > 0 {
		b.WriteString("\n## Unresolved placeholders\n\n")
		for _, f := range r.Failures {
			if f.Suggestion != "" {
				fmt.Fprintf(&b, "- `%s`: did you mean `%s`?\n", f.Placeholder, f.Suggestion)
			} else {
				fmt.Fprintf(&b, "- `%s`\n", f.Placeholder)
			}
		}
	}

	if len(r.InvalidGlobs) > 0 {
		b.WriteString("\n## Invalid ignore globs\n\n")
		for _, g := range r.InvalidGlobs {
			fmt.Fprintf(&b, "- `%s`\n", g.Pattern)
		}
	}

	if len(r.Files) > 0 {
		b.WriteString("\n## Files\n\n| File | Status |\n|---|---|\n")
		for _, f := range r.Files {
			status := "checked"
			if f.IgnoredBy != "" {
				status = fmt.Sprintf("ignored by `%s`", f.IgnoredBy)
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", f.File, status)
		}
	}

	if r.OK() {
		b.WriteString("\nNo problems found.\n")
	}
	return b.String()
}
