package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.lsp.dev/uri"

	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/workspace"
)

// Workspace is the editor session a resolution runs in.
type Workspace struct {
	Folders []core.WorkspaceFolder
	// Current is the folder or document owning the configuration. Empty
	// when there is no workspace context.
	Current      uri.URI
	OverrideRoot string
}

type workspaceFile struct {
	Folders []struct {
		Name string `json:"name" yaml:"name"`
		URI  string `json:"uri" yaml:"uri"`
		Path string `json:"path" yaml:"path"`
	} `json:"folders" yaml:"folders"`
	Current      string `json:"current" yaml:"current"`
	OverrideRoot string `json:"overrideRoot" yaml:"overrideRoot"`
}

// LoadWorkspaceFile reads a workspace description. Relative paths are taken
// relative to the file. current may name an open folder or give a path.
func LoadWorkspaceFile(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw workspaceFile
	if err := decode(path, data, &raw); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	ws := &Workspace{OverrideRoot: absFrom(base, raw.OverrideRoot)}
	for i, f := range raw.Folders {
		loc := f.URI
		if loc == "" {
			loc = absFrom(base, f.Path)
		}
		if loc == "" {
			return nil, fmt.Errorf("%w: folder %d in %s has neither uri nor path", ErrConfigParsing, i, filepath.Base(path))
		}
		u := workspace.ToURI(loc)
		name := strings.TrimSpace(f.Name)
		if name == "" {
			name = filepath.Base(workspace.FolderPath(u))
		}
		ws.Folders = append(ws.Folders, core.WorkspaceFolder{Name: name, URI: u})
	}

	ws.Current = ws.lookup(raw.Current, base)
	return ws, nil
}

// Folder returns the open folder with the given name, matched case-insensitively.
func (w *Workspace) Folder(name string) (core.WorkspaceFolder, bool) {
	for _, f := range w.Folders {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return core.WorkspaceFolder{}, false
}

func (w *Workspace) lookup(current, base string) uri.URI {
	current = strings.TrimSpace(current)
	if current == "" {
		return ""
	}
	if f, ok := w.Folder(current); ok {
		return f.URI
	}
	if strings.Contains(current, "://") {
		return uri.URI(current)
	}
	return workspace.ToURI(absFrom(base, current))
}

func absFrom(base, p string) string {
	if p == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}
