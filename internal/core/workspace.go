//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_core.go -package=mocks github.com/sevigo/spell-warden/internal/core Picker,ErrorLogger,SettingsResolver

// Package core defines the essential interfaces and data structures shared by the
// resolution engine, the target matcher and the outer surfaces (CLI, HTTP service).
// The types here carry no behaviour of their own beyond small accessors.
package core

import (
	"go.lsp.dev/uri"
)

// WorkspaceFolder is one root directory of a multi-root editing session.
// Folders are reported by the host editor and are immutable for the duration
// of a resolution pass.
type WorkspaceFolder struct {
	// Name is the user-assigned display name, referenced as ${workspaceFolder:Name}.
	Name string `json:"name" yaml:"name"`
	// URI locates the folder, normally a file:// URI.
	URI uri.URI `json:"uri" yaml:"uri"`
}

// PathResolver turns configuration strings into concrete filesystem paths on
// behalf of the substitution and dictionary merge engines.
type PathResolver interface {
	// ResolvePath replaces a leading workspace placeholder in value. Values
	// without a leading placeholder, and values whose placeholder cannot be
	// resolved, are returned unchanged.
	ResolvePath(value string) string

	// ResolveFile resolves a dictionary file path: the placeholder is replaced,
	// a leading "~" expands to the home directory and a relative result is
	// joined onto relativeTo. ok is false when the placeholder failed.
	ResolveFile(path, relativeTo string) (resolved string, ok bool)

	// CurrentFolder is the path of the folder owning the configuration being
	// resolved, or the override root when no open folder applies.
	CurrentFolder() string

	// WorkspaceRoot is the path of the workspace root folder.
	WorkspaceRoot() string

	// HomeDir is the user's home directory.
	HomeDir() string
}

// ErrorLogger is the sink for non-fatal resolution failures.
// Implementations must not panic and must not block.
type ErrorLogger interface {
	LogError(message string)
}
