package settings

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sevigo/spell-warden/internal/core"
)

// Dictionaries is the result of merging every dictionary channel.
type Dictionaries struct {
	// Names is the ordered, de-duplicated list of dictionaries to enable.
	Names []string
	// Definitions is the ordered, de-duplicated list of dictionary definitions.
	Definitions []core.DictionaryDefinition
	// Custom holds each custom dictionary channel present in the input with
	// its entry paths resolved, keyed by settings key.
	Custom map[string][]any
}

// nameList keeps first-seen order of dictionary names.
type nameList struct {
	order []string
	seen  map[string]struct{}
}

func newNameList() *nameList {
	return &nameList{seen: make(map[string]struct{})}
}

func (n *nameList) add(name string) {
	if _, ok := n.seen[name]; ok {
		return
	}
	n.seen[name] = struct{}{}
	n.order = append(n.order, name)
}

// definitionList is an insertion-ordered map of definitions keyed by name.
// The first registration of a field wins; later registrations only fill in
// fields that are still absent.
type definitionList struct {
	order  []string
	byName map[string]core.DictionaryDefinition
}

func newDefinitionList() *definitionList {
	return &definitionList{byName: make(map[string]core.DictionaryDefinition)}
}

func (d *definitionList) has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

func (d *definitionList) register(def core.DictionaryDefinition) {
	name := def.Name()
	if name == "" {
		return
	}
	existing, ok := d.byName[name]
	if !ok {
		d.byName[name] = core.DictionaryDefinition(ShallowClean(def))
		d.order = append(d.order, name)
		return
	}
	for k, v := range def {
		if _, present := existing[k]; !present {
			existing[k] = v
		}
	}
}

func (d *definitionList) list() []core.DictionaryDefinition {
	out := make([]core.DictionaryDefinition, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.byName[name])
	}
	return out
}

// customEntry is one element of a custom dictionary channel: either a bare
// name or an inline definition.
type customEntry struct {
	name   string
	inline core.DictionaryDefinition
	raw    any
}

func parseCustomEntries(v any) []customEntry {
	var items []any
	switch val := v.(type) {
	case []any:
		items = val
	case []string:
		for _, s := range val {
			items = append(items, s)
		}
	case []core.DictionaryDefinition:
		for _, def := range val {
			items = append(items, def)
		}
	default:
		return nil
	}

	entries := make([]customEntry, 0, len(items))
	for _, item := range items {
		switch e := item.(type) {
		case string:
			if name := strings.TrimSpace(e); name != "" {
				entries = append(entries, customEntry{name: name, raw: e})
			}
		case map[string]any:
			def := core.DictionaryDefinition(ShallowClean(e))
			if name := def.Name(); name != "" {
				entries = append(entries, customEntry{name: name, inline: def, raw: e})
			}
		case core.DictionaryDefinition:
			def := core.DictionaryDefinition(ShallowClean(e))
			if name := def.Name(); name != "" {
				entries = append(entries, customEntry{name: name, inline: def, raw: e})
			}
		}
	}
	return entries
}

// channel describes one custom dictionary scope.
type channel struct {
	key string
	// root yields the directory relative and default paths are based on.
	root func(core.PathResolver) string
	// requireDefinition drops bare names that match no known definition,
	// from both the enabled names and the resolved channel.
	requireDefinition bool
}

var (
	userChannel = channel{
		key:  KeyCustomUserDictionaries,
		root: core.PathResolver.HomeDir,
	}
	workspaceChannel = channel{
		key:               KeyCustomWorkspaceDictionaries,
		root:              core.PathResolver.WorkspaceRoot,
		requireDefinition: true,
	}
	folderChannel = channel{
		key:  KeyCustomFolderDictionaries,
		root: core.PathResolver.CurrentFolder,
	}
)

type merger struct {
	r      core.PathResolver
	names  *nameList
	defs   *definitionList
	custom map[string][]any
}

// ResolveDictionaries merges the dictionary channels of s in the order user
// dictionaries, dictionary definitions, workspace dictionaries, folder
// dictionaries and finally the plain dictionaries list.
//
// s is expected to have been through Substitute already; custom dictionary
// paths are resolved here because their defaults depend on the owning scope.
func ResolveDictionaries(s core.Settings, r core.PathResolver) Dictionaries {
	m := &merger{
		r:      r,
		names:  newNameList(),
		defs:   newDefinitionList(),
		custom: make(map[string][]any),
	}

	m.mergeChannel(s, userChannel)
	for _, def := range definitionsOf(s[KeyDictionaryDefinitions]) {
		m.defs.register(def)
	}
	m.mergeChannel(s, workspaceChannel)
	m.mergeChannel(s, folderChannel)
	for _, name := range stringsOf(s[KeyDictionaries]) {
		m.names.add(name)
	}

	return Dictionaries{
		Names:       m.names.order,
		Definitions: m.defs.list(),
		Custom:      m.custom,
	}
}

func (m *merger) mergeChannel(s core.Settings, ch channel) {
	v, ok := s[ch.key]
	if !ok || v == nil {
		return
	}

	root := ch.root(m.r)
	entries := parseCustomEntries(v)
	resolved := make([]any, 0, len(entries))
	for _, e := range entries {
		if e.inline == nil {
			// A dropped name must not reach the output: a later channel may
			// define it, and a second pass would then enable it here.
			if ch.requireDefinition && !m.defs.has(e.name) {
				continue
			}
			resolved = append(resolved, e.raw)
			m.names.add(e.name)
			continue
		}

		def := e.inline
		if p, ok := def.Path(); ok {
			abs, ok := m.r.ResolveFile(p, root)
			if !ok {
				resolved = append(resolved, map[string]any(def))
				m.names.add(e.name)
				continue
			}
			def = withField(def, KeyPath, abs)
		} else if !m.defs.has(e.name) && root != "" {
			def = withField(def, KeyPath, defaultDictionaryPath(root, e.name))
		}
		resolved = append(resolved, map[string]any(entryView(e.inline, def)))

		m.defs.register(def)
		m.names.add(e.name)
	}
	m.custom[ch.key] = resolved
}

// entryView is the custom entry as it appears in resolved output: its own
// path resolved, no default path injected.
func entryView(orig, def core.DictionaryDefinition) core.DictionaryDefinition {
	if _, ok := orig.Path(); !ok {
		return orig
	}
	p, _ := def.Path()
	return withField(orig, KeyPath, p)
}

func withField(def core.DictionaryDefinition, key string, value any) core.DictionaryDefinition {
	out := make(core.DictionaryDefinition, len(def)+1)
	for k, v := range def {
		out[k] = v
	}
	out[key] = value
	return out
}

// defaultDictionaryPath is where an inline dictionary without a path lives:
// <root>/<slug>.txt, the slug being the lower-cased name with runs of
// non-alphanumerics collapsed to "-".
func defaultDictionaryPath(root, name string) string {
	var b strings.Builder
	dash := false
	for _, c := range strings.ToLower(name) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(c)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "words"
	}
	return filepath.Join(root, slug+".txt")
}

func definitionsOf(v any) []core.DictionaryDefinition {
	var out []core.DictionaryDefinition
	switch val := v.(type) {
	case []core.DictionaryDefinition:
		return val
	case []any:
		for _, item := range val {
			switch d := item.(type) {
			case map[string]any:
				out = append(out, core.DictionaryDefinition(d))
			case core.DictionaryDefinition:
				out = append(out, d)
			}
		}
	}
	return out
}

func stringsOf(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val != "" {
			return []string{val}
		}
	}
	return nil
}
