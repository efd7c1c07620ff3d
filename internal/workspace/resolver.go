package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.lsp.dev/uri"

	"github.com/sevigo/spell-warden/internal/core"
)

// ResolutionFailure is returned when a placeholder names no open folder, or
// when a bare placeholder is used without any folder context.
type ResolutionFailure struct {
	Placeholder string
}

func (e *ResolutionFailure) Error() string {
	return "Failed to resolve " + e.Placeholder
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOverrideRoot sets the root used when the target lies in no open folder.
func WithOverrideRoot(root string) Option {
	return func(r *Resolver) {
		if root != "" {
			r.overrideRoot = filepath.Clean(root)
		}
	}
}

// WithHomeDir sets the directory "~" expands to. Defaults to os.UserHomeDir.
func WithHomeDir(dir string) Option {
	return func(r *Resolver) {
		r.homeDir = dir
	}
}

// WithErrorLogger sets the sink for unresolved placeholders.
func WithErrorLogger(l core.ErrorLogger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

type folderEntry struct {
	name string
	path string
}

// Resolver is the WorkspaceNameResolver for one resolution pass. It is built
// from the current target, the open folders and an optional override root.
// Each distinct failing placeholder is reported to the error logger once.
type Resolver struct {
	folders      []folderEntry
	current      string
	overrideRoot string
	homeDir      string
	logger       core.ErrorLogger

	mu       sync.Mutex
	failures []string
	reported map[string]struct{}
}

var _ core.PathResolver = (*Resolver)(nil)

// NewResolver creates a Resolver. target is the folder or document owning the
// configuration; it may be empty when there is no workspace context.
func NewResolver(target uri.URI, folders []core.WorkspaceFolder, opts ...Option) *Resolver {
	r := &Resolver{
		folders:  make([]folderEntry, 0, len(folders)),
		reported: make(map[string]struct{}),
	}
	for _, f := range folders {
		r.folders = append(r.folders, folderEntry{name: f.Name, path: FolderPath(f.URI)})
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.homeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			r.homeDir = home
		}
	}

	r.current = r.enclosingFolder(FolderPath(target))
	if r.current == "" {
		r.current = r.overrideRoot
	}
	return r
}

// enclosingFolder returns the path of the open folder with the longest path
// containing target.
func (r *Resolver) enclosingFolder(target string) string {
	if target == "" {
		return ""
	}
	best := ""
	for _, f := range r.folders {
		if f.path == "" || !Within(f.path, target) {
			continue
		}
		if len(f.path) > len(best) {
			best = f.path
		}
	}
	return best
}

// Resolve returns the folder path a placeholder token stands for.
// The error is a *ResolutionFailure carrying the literal token.
func (r *Resolver) Resolve(token string) (string, error) {
	p, rest, ok := ParsePlaceholder(token)
	if !ok || rest != "" {
		return "", &ResolutionFailure{Placeholder: token}
	}
	return r.lookup(p)
}

func (r *Resolver) lookup(p Placeholder) (string, error) {
	if !p.Named {
		if r.current == "" {
			return "", &ResolutionFailure{Placeholder: p.Text}
		}
		return r.current, nil
	}
	for _, f := range r.folders {
		if strings.EqualFold(f.name, p.Name) {
			return f.path, nil
		}
	}
	return "", &ResolutionFailure{Placeholder: p.Text}
}

// ResolvePath implements core.PathResolver.
func (r *Resolver) ResolvePath(value string) string {
	resolved, _ := r.substitute(value)
	return resolved
}

func (r *Resolver) substitute(value string) (string, bool) {
	p, rest, ok := ParsePlaceholder(value)
	if !ok {
		return value, true
	}
	root, err := r.lookup(p)
	if err != nil {
		r.report(p.Text)
		return value, false
	}
	return joinRoot(root, rest), true
}

// ResolveFile implements core.PathResolver.
func (r *Resolver) ResolveFile(path, relativeTo string) (string, bool) {
	resolved, ok := r.substitute(path)
	if !ok {
		return path, false
	}
	if expanded, ok := expandHome(resolved, r.homeDir); ok {
		return expanded, true
	}
	if relativeTo != "" && !filepath.IsAbs(resolved) {
		return filepath.Join(relativeTo, filepath.FromSlash(resolved)), true
	}
	return resolved, true
}

func (r *Resolver) report(placeholder string) {
	r.mu.Lock()
	_, seen := r.reported[placeholder]
	if !seen {
		r.reported[placeholder] = struct{}{}
		r.failures = append(r.failures, placeholder)
	}
	r.mu.Unlock()

	if !seen && r.logger != nil {
		r.logger.LogError((&ResolutionFailure{Placeholder: placeholder}).Error())
	}
}

// Failures returns the distinct placeholders that failed so far, in the order
// they were first met.
func (r *Resolver) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}

// CurrentFolder implements core.PathResolver.
func (r *Resolver) CurrentFolder() string {
	return r.current
}

// WorkspaceRoot returns the first open folder, the root of a multi-root
// workspace. Without open folders the current folder is used.
func (r *Resolver) WorkspaceRoot() string {
	for _, f := range r.folders {
		if f.path != "" {
			return f.path
		}
	}
	return r.current
}

// HomeDir implements core.PathResolver.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}
