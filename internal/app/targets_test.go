package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"

	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/target"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
}

func TestResolveService_Targets(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "workspace")
	client := filepath.Join(root, "client")
	home := filepath.Join(base, "home")

	touch(t, filepath.Join(root, "cspell.json"))
	touch(t, filepath.Join(client, ".cspell.json"))
	touch(t, filepath.Join(home, "cspell.yaml"))

	svc := newService(t, nil)
	svc.cfg = &config.Config{HomeDir: home}

	got, err := svc.Targets(context.Background(), &core.ResolveRequest{
		Settings: core.Settings{
			"customUserDictionaries":      []any{map[string]any{"name": "Global", "addWords": true}},
			"customWorkspaceDictionaries": []any{map[string]any{"name": "Team", "addWords": true}},
			"customFolderDictionaries":    []any{map[string]any{"name": "Client Words", "addWords": true}},
			"dictionaryDefinitions": []any{
				map[string]any{"name": "Read Only", "path": "${workspaceFolder:Root}/ro.txt"},
				map[string]any{"name": "Elsewhere", "path": "/opt/words.txt", "addWords": true},
			},
		},
		Folders: []core.WorkspaceFolder{
			{Name: "Root", URI: uri.File(root)},
			{Name: "Client", URI: uri.File(client)},
		},
		Target: string(uri.File(filepath.Join(client, "src", "main.ts"))),
	})
	require.NoError(t, err)

	type row struct {
		Kind  target.Kind
		Scope target.Scope
		Name  string
	}
	rows := make([]row, len(got))
	for i, tg := range got {
		rows[i] = row{tg.Kind, tg.Scope, tg.Name}
	}

	assert.Equal(t, []row{
		{target.KindDictionary, target.ScopeUser, "Global"},
		{target.KindDictionary, target.ScopeUnknown, "Elsewhere"},
		{target.KindDictionary, target.ScopeWorkspace, "Team"},
		{target.KindDictionary, target.ScopeFolder, "Client Words"},
		{target.KindCSpell, target.ScopeFolder, ".cspell.json"},
		{target.KindCSpell, target.ScopeWorkspace, "cspell.json"},
		{target.KindCSpell, target.ScopeUser, "cspell.yaml"},
		{target.KindVSCode, target.ScopeFolder, "Folder Settings"},
		{target.KindVSCode, target.ScopeWorkspace, "Workspace Settings"},
		{target.KindVSCode, target.ScopeUser, "User Settings"},
	}, rows)

	assert.Equal(t, uri.File(filepath.Join(root, "team.txt")), got[2].URI)

	best := target.FindBestMatching(target.Pattern{Kind: target.MatchKindAll, Scope: target.MatchScopeFolder}, got)
	require.Len(t, best, 1)
	assert.Equal(t, "Client Words", best[0].Name)
}

func TestDiscoverTargets_NoWorkspace(t *testing.T) {
	svc := newService(t, nil)
	svc.cfg = &config.Config{HomeDir: t.TempDir()}

	got, err := svc.Targets(context.Background(), &core.ResolveRequest{Settings: core.Settings{}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "User Settings", got[0].Name)
}
