// Package target classifies the places a new word or setting can be written to
// and picks the best one for a requested kind and scope.
package target

import (
	"fmt"
	"strings"

	"go.lsp.dev/uri"
)

// Kind is the kind of storage a ConfigTarget points at. Lower values are more
// specific and rank higher when choosing between kinds.
type Kind int

const (
	KindDictionary Kind = iota
	KindCSpell
	KindVSCode
)

func (k Kind) String() string {
	switch k {
	case KindDictionary:
		return "dictionary"
	case KindCSpell:
		return "cspell"
	case KindVSCode:
		return "vscode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Scope is the configuration scope a ConfigTarget belongs to.
type Scope int

const (
	ScopeUser Scope = iota
	ScopeWorkspace
	ScopeFolder
	ScopeUnknown
)

func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeWorkspace:
		return "workspace"
	case ScopeFolder:
		return "folder"
	case ScopeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// SettingTarget is the editor settings store a VSCode target writes to.
type SettingTarget int

const (
	SettingGlobal SettingTarget = iota + 1
	SettingWorkspace
	SettingWorkspaceFolder
)

func (t SettingTarget) String() string {
	switch t {
	case SettingGlobal:
		return "global"
	case SettingWorkspace:
		return "workspace"
	case SettingWorkspaceFolder:
		return "workspaceFolder"
	default:
		return ""
	}
}

// ConfigTarget is an addressable place a configuration change can be persisted:
// a dictionary file, a cspell config file or an editor settings scope.
type ConfigTarget struct {
	Kind  Kind
	Scope Scope
	Name  string
	// URI locates the dictionary or cspell config file. Empty for VSCode targets.
	URI uri.URI
	// Setting is the editor settings store. Only set for VSCode targets.
	Setting SettingTarget
}

// NewDictionaryTarget returns a target for a dictionary file.
func NewDictionaryTarget(name string, u uri.URI, scope Scope) ConfigTarget {
	return ConfigTarget{Kind: KindDictionary, Scope: scope, Name: name, URI: u}
}

// NewCSpellTarget returns a target for a cspell configuration file.
func NewCSpellTarget(name string, u uri.URI, scope Scope) ConfigTarget {
	return ConfigTarget{Kind: KindCSpell, Scope: scope, Name: name, URI: u}
}

// NewVSCodeTarget returns a target for an editor settings scope.
func NewVSCodeTarget(name string, scope Scope) ConfigTarget {
	var setting SettingTarget
	switch scope {
	case ScopeUser:
		setting = SettingGlobal
	case ScopeWorkspace:
		setting = SettingWorkspace
	case ScopeFolder:
		setting = SettingWorkspaceFolder
	}
	return ConfigTarget{Kind: KindVSCode, Scope: scope, Name: name, Setting: setting}
}

// Describe is a one-line description used as the picker label detail.
func (t ConfigTarget) Describe() string {
	switch t.Kind {
	case KindVSCode:
		return fmt.Sprintf("%s settings (%s)", t.Scope, t.Setting)
	default:
		return fmt.Sprintf("%s %s: %s", t.Scope, t.Kind, t.URI)
	}
}

// ParseKind parses a kind name as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dictionary":
		return KindDictionary, nil
	case "cspell":
		return KindCSpell, nil
	case "vscode":
		return KindVSCode, nil
	default:
		return 0, fmt.Errorf("unknown target kind %q", s)
	}
}

// ParseScope parses a scope name as printed by Scope.String.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ScopeUser, nil
	case "workspace":
		return ScopeWorkspace, nil
	case "folder":
		return ScopeFolder, nil
	case "unknown":
		return ScopeUnknown, nil
	default:
		return 0, fmt.Errorf("unknown target scope %q", s)
	}
}
