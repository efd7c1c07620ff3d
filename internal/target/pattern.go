package target

import (
	"fmt"
	"strings"
)

// MatchKind is the set of target kinds a pattern accepts.
type MatchKind struct {
	Dictionary bool
	CSpell     bool
	VSCode     bool
}

// MatchScope is the set of scopes a pattern accepts.
type MatchScope struct {
	User      bool
	Workspace bool
	Folder    bool
	Unknown   bool
}

// Pattern selects targets by kind and scope. Both axes must accept a target
// for the pattern to match it.
type Pattern struct {
	Kind  MatchKind
	Scope MatchScope
}

var (
	MatchKindAll        = MatchKind{Dictionary: true, CSpell: true, VSCode: true}
	MatchKindNone       = MatchKind{}
	MatchKindCSpell     = MatchKind{CSpell: true}
	MatchKindVSCode     = MatchKind{VSCode: true}
	MatchKindDictionary = MatchKind{Dictionary: true}

	MatchScopeAll        = MatchScope{User: true, Workspace: true, Folder: true, Unknown: true}
	MatchScopeNone       = MatchScope{}
	MatchScopeUser       = MatchScope{User: true}
	MatchScopeWorkspace  = MatchScope{Workspace: true}
	MatchScopeFolder     = MatchScope{Folder: true}
	MatchScopeAllButUser = MatchScope{Workspace: true, Folder: true, Unknown: true}

	MatchAll  = Pattern{Kind: MatchKindAll, Scope: MatchScopeAll}
	MatchNone = Pattern{Kind: MatchKindNone, Scope: MatchScopeNone}
)

// Has reports whether k is in the set.
func (m MatchKind) Has(k Kind) bool {
	switch k {
	case KindDictionary:
		return m.Dictionary
	case KindCSpell:
		return m.CSpell
	case KindVSCode:
		return m.VSCode
	default:
		return false
	}
}

// Negate returns the complement of the set.
func (m MatchKind) Negate() MatchKind {
	return MatchKind{Dictionary: !m.Dictionary, CSpell: !m.CSpell, VSCode: !m.VSCode}
}

// Or returns the union of both sets.
func (m MatchKind) Or(o MatchKind) MatchKind {
	return MatchKind{Dictionary: m.Dictionary || o.Dictionary, CSpell: m.CSpell || o.CSpell, VSCode: m.VSCode || o.VSCode}
}

// And returns the intersection of both sets.
func (m MatchKind) And(o MatchKind) MatchKind {
	return MatchKind{Dictionary: m.Dictionary && o.Dictionary, CSpell: m.CSpell && o.CSpell, VSCode: m.VSCode && o.VSCode}
}

// Has reports whether s is in the set.
func (m MatchScope) Has(s Scope) bool {
	switch s {
	case ScopeUser:
		return m.User
	case ScopeWorkspace:
		return m.Workspace
	case ScopeFolder:
		return m.Folder
	case ScopeUnknown:
		return m.Unknown
	default:
		return false
	}
}

// Negate returns the complement of the set.
func (m MatchScope) Negate() MatchScope {
	return MatchScope{User: !m.User, Workspace: !m.Workspace, Folder: !m.Folder, Unknown: !m.Unknown}
}

// Or returns the union of both sets.
func (m MatchScope) Or(o MatchScope) MatchScope {
	return MatchScope{
		User:      m.User || o.User,
		Workspace: m.Workspace || o.Workspace,
		Folder:    m.Folder || o.Folder,
		Unknown:   m.Unknown || o.Unknown,
	}
}

// And returns the intersection of both sets.
func (m MatchScope) And(o MatchScope) MatchScope {
	return MatchScope{
		User:      m.User && o.User,
		Workspace: m.Workspace && o.Workspace,
		Folder:    m.Folder && o.Folder,
		Unknown:   m.Unknown && o.Unknown,
	}
}

// Negate complements each axis independently.
func Negate(p Pattern) Pattern {
	return Pattern{Kind: p.Kind.Negate(), Scope: p.Scope.Negate()}
}

// Or is the per-axis union of two patterns.
func (p Pattern) Or(o Pattern) Pattern {
	return Pattern{Kind: p.Kind.Or(o.Kind), Scope: p.Scope.Or(o.Scope)}
}

// And is the per-axis intersection of two patterns.
func (p Pattern) And(o Pattern) Pattern {
	return Pattern{Kind: p.Kind.And(o.Kind), Scope: p.Scope.And(o.Scope)}
}

// ParseMatchKind parses a comma separated list of kind names; "all" and
// "none" select the presets.
func ParseMatchKind(s string) (MatchKind, error) {
	out := MatchKindNone
	for _, part := range strings.Split(s, ",") {
		switch name := strings.ToLower(strings.TrimSpace(part)); name {
		case "", "none":
		case "all":
			out = out.Or(MatchKindAll)
		default:
			k, err := ParseKind(name)
			if err != nil {
				return MatchKindNone, fmt.Errorf("parse kind list: %w", err)
			}
			out = out.Or(kindPreset(k))
		}
	}
	return out, nil
}

// ParseMatchScope parses a comma separated list of scope names; "all",
// "none" and "all-but-user" select the presets.
func ParseMatchScope(s string) (MatchScope, error) {
	out := MatchScopeNone
	for _, part := range strings.Split(s, ",") {
		switch name := strings.ToLower(strings.TrimSpace(part)); name {
		case "", "none":
		case "all":
			out = out.Or(MatchScopeAll)
		case "all-but-user":
			out = out.Or(MatchScopeAllButUser)
		default:
			sc, err := ParseScope(name)
			if err != nil {
				return MatchScopeNone, fmt.Errorf("parse scope list: %w", err)
			}
			out = out.Or(scopePreset(sc))
		}
	}
	return out, nil
}

func kindPreset(k Kind) MatchKind {
	return MatchKind{Dictionary: k == KindDictionary, CSpell: k == KindCSpell, VSCode: k == KindVSCode}
}

func scopePreset(s Scope) MatchScope {
	return MatchScope{User: s == ScopeUser, Workspace: s == ScopeWorkspace, Folder: s == ScopeFolder, Unknown: s == ScopeUnknown}
}
