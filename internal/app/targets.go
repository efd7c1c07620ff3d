package app

import (
	"context"
	"path/filepath"

	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/settings"
	"github.com/sevigo/spell-warden/internal/target"
	"github.com/sevigo/spell-warden/internal/workspace"
)

// Targets resolves req and lists every place a new word could be written to,
// nearest first within each kind.
func (s *ResolveService) Targets(ctx context.Context, req *core.ResolveRequest) ([]target.ConfigTarget, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := s.NewWorkspaceResolver(req)
	return DiscoverTargets(r, req.Folders, settings.Resolve(req.Settings, r)), nil
}

// DiscoverTargets lists writable dictionaries, cspell files found on disk
// and editor settings scopes.
func DiscoverTargets(r core.PathResolver, folders []core.WorkspaceFolder, resolved core.Settings) []target.ConfigTarget {
	var out []target.ConfigTarget

	scopes := scopeClassifier{
		current: r.CurrentFolder(),
		root:    r.WorkspaceRoot(),
		home:    r.HomeDir(),
	}
	for _, f := range folders {
		scopes.folders = append(scopes.folders, workspace.FolderPath(f.URI))
	}

	defs, _ := resolved[settings.KeyDictionaryDefinitions].([]any)
	for _, d := range defs {
		m, ok := d.(map[string]any)
		if !ok {
			continue
		}
		def := core.DictionaryDefinition(m)
		p, hasPath := def.Path()
		if !hasPath || def.Name() == "" || m["addWords"] != true || workspace.HasPlaceholder(p) {
			continue
		}
		out = append(out, target.NewDictionaryTarget(def.Name(), workspace.ToURI(p), scopes.of(p)))
	}

	seen := map[string]bool{}
	probe := func(dir string, scope target.Scope) {
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		if file, err := config.DiscoverSettingsFile(dir); err == nil {
			out = append(out, target.NewCSpellTarget(filepath.Base(file), workspace.ToURI(file), scope))
		}
	}
	if scopes.current != scopes.root {
		probe(scopes.current, target.ScopeFolder)
	}
	probe(scopes.root, target.ScopeWorkspace)
	probe(scopes.home, target.ScopeUser)

	if len(folders) > 1 && scopes.current != "" && scopes.current != scopes.root {
		out = append(out, target.NewVSCodeTarget("Folder Settings", target.ScopeFolder))
	}
	if len(folders) > 0 {
		out = append(out, target.NewVSCodeTarget("Workspace Settings", target.ScopeWorkspace))
	}
	out = append(out, target.NewVSCodeTarget("User Settings", target.ScopeUser))

	return out
}

type scopeClassifier struct {
	current string
	root    string
	home    string
	folders []string
}

func (c scopeClassifier) of(p string) target.Scope {
	switch {
	case c.current != "" && c.current != c.root && workspace.Within(c.current, p):
		return target.ScopeFolder
	case c.inFolder(p):
		return target.ScopeWorkspace
	case c.home != "" && workspace.Within(c.home, p):
		return target.ScopeUser
	default:
		return target.ScopeUnknown
	}
}

func (c scopeClassifier) inFolder(p string) bool {
	for _, f := range c.folders {
		if f != "" && workspace.Within(f, p) {
			return true
		}
	}
	return false
}
