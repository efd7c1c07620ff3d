package workspace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
)

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantOK    bool
		wantText  string
		wantName  string
		wantNamed bool
		wantRest  string
	}{
		{name: "bare", value: "${workspaceFolder}/cspell.json", wantOK: true, wantText: "${workspaceFolder}", wantRest: "/cspell.json"},
		{name: "named", value: "${workspaceFolder:Server}/words.txt", wantOK: true, wantText: "${workspaceFolder:Server}", wantName: "Server", wantNamed: true, wantRest: "/words.txt"},
		{name: "named with spaces", value: "${workspaceFolder: Server }", wantOK: true, wantText: "${workspaceFolder: Server }", wantName: " Server ", wantNamed: true},
		{name: "not leading", value: "a/${workspaceFolder}/b", wantRest: "a/${workspaceFolder}/b"},
		{name: "plain", value: "/etc/words.txt", wantRest: "/etc/words.txt"},
		{name: "unterminated", value: "${workspaceFolder", wantRest: "${workspaceFolder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rest, ok := ParsePlaceholder(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRest, rest)
			if tt.wantOK {
				assert.Equal(t, tt.wantText, p.Text)
				assert.Equal(t, tt.wantName, p.Name)
				assert.Equal(t, tt.wantNamed, p.Named)
			}
		})
	}
}

func TestResolver_ResolvePath(t *testing.T) {
	log := &recordingLogger{}
	r := NewResolver(uri.File(clientPath), testFolders, WithErrorLogger(log), WithHomeDir(homePath))

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bare placeholder", "${workspaceFolder}/cspell.json", filepath.Join(clientPath, "cspell.json")},
		{"named placeholder", "${workspaceFolder:Server}/cspell.json", filepath.Join(serverPath, "cspell.json")},
		{"case-insensitive name", "${workspaceFolder:server}/cspell.json", filepath.Join(serverPath, "cspell.json")},
		{"dashed name", "${workspaceFolder:client-test}/words.txt", filepath.Join(clientTestPath, "words.txt")},
		{"placeholder only", "${workspaceFolder:Root}", rootPath},
		{"missing separator", "${workspaceFolder}cspell.json", filepath.Join(clientPath, "cspell.json")},
		{"glob kept verbatim", "${workspaceFolder}/**/node_modules/**", clientPath + string(filepath.Separator) + filepath.FromSlash("**/node_modules/**")},
		{"parent segment cleaned", "${workspaceFolder}/../shared/cspell.json", filepath.Join(filepath.Dir(clientPath), "shared", "cspell.json")},
		{"dot segment cleaned", "${workspaceFolder}/./words/../words.txt", filepath.Join(clientPath, "words.txt")},
		{"trailing separator kept", "${workspaceFolder}/dist/", filepath.Join(clientPath, "dist") + string(filepath.Separator)},
		{"failed placeholder", "${workspaceFolder:Failed}/cspell.json", "${workspaceFolder:Failed}/cspell.json"},
		{"embedded placeholder", "node_modules/${workspaceFolder}", "node_modules/${workspaceFolder}"},
		{"no placeholder", "**/*.md", "**/*.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolvePath(tt.value))
		})
	}

	assert.Equal(t, []string{"Failed to resolve ${workspaceFolder:Failed}"}, log.messages)
	assert.Equal(t, []string{"${workspaceFolder:Failed}"}, r.Failures())
}

func TestResolver_LogsEachFailureOnce(t *testing.T) {
	log := &recordingLogger{}
	r := NewResolver(uri.File(clientPath), testFolders, WithErrorLogger(log))

	r.ResolvePath("${workspaceFolder:Failed}/a.txt")
	r.ResolvePath("${workspaceFolder:Failed}/b.txt")
	r.ResolvePath("${workspaceFolder:Other}/c.txt")

	assert.Equal(t, []string{
		"Failed to resolve ${workspaceFolder:Failed}",
		"Failed to resolve ${workspaceFolder:Other}",
	}, log.messages)
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(uri.File(clientPath), testFolders)

	got, err := r.Resolve("${workspaceFolder:Server}")
	require.NoError(t, err)
	assert.Equal(t, serverPath, got)

	_, err = r.Resolve("${workspaceFolder:Missing}")
	var failure *ResolutionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "${workspaceFolder:Missing}", failure.Placeholder)
	assert.EqualError(t, err, "Failed to resolve ${workspaceFolder:Missing}")

	_, err = r.Resolve("${workspaceFolder:  server }")
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "${workspaceFolder:  server }", failure.Placeholder)
}

func TestResolver_CurrentFolder(t *testing.T) {
	tests := []struct {
		name     string
		target   uri.URI
		override string
		want     string
	}{
		{"folder target", uri.File(serverPath), "", serverPath},
		{"document in folder", uri.File(filepath.Join(serverPath, "src", "index.ts")), "", serverPath},
		{"nested folder wins", uri.File(filepath.Join(clientTestPath, "a.spec.ts")), "", clientTestPath},
		{"outside any folder uses override", uri.File(filepath.FromSlash("/tmp/other/file.txt")), filepath.FromSlash("/tmp/override"), filepath.FromSlash("/tmp/override")},
		{"no target uses override", "", filepath.FromSlash("/tmp/override"), filepath.FromSlash("/tmp/override")},
		{"no context at all", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.target, testFolders, WithOverrideRoot(tt.override))
			assert.Equal(t, tt.want, r.CurrentFolder())
			assert.Equal(t, rootPath, r.WorkspaceRoot())
		})
	}
}

func TestResolver_BareWithoutContextFails(t *testing.T) {
	log := &recordingLogger{}
	r := NewResolver("", nil, WithErrorLogger(log))

	assert.Equal(t, "${workspaceFolder}/cspell.json", r.ResolvePath("${workspaceFolder}/cspell.json"))
	assert.Equal(t, []string{"Failed to resolve ${workspaceFolder}"}, log.messages)
	assert.Empty(t, r.WorkspaceRoot())
}

func TestResolver_ResolveFile(t *testing.T) {
	r := NewResolver(uri.File(clientPath), testFolders, WithHomeDir(homePath))

	tests := []struct {
		name       string
		path       string
		relativeTo string
		want       string
		wantOK     bool
	}{
		{"home expansion", "~/words.txt", rootPath, filepath.Join(homePath, "words.txt"), true},
		{"relative to folder", "./packages/words.txt", clientPath, filepath.Join(clientPath, "packages", "words.txt"), true},
		{"placeholder", "${workspaceFolder:Server}/words.txt", rootPath, filepath.Join(serverPath, "words.txt"), true},
		{"absolute kept", filepath.FromSlash("/opt/words.txt"), clientPath, filepath.FromSlash("/opt/words.txt"), true},
		{"tilde inside name kept", "~words.txt", clientPath, filepath.Join(clientPath, "~words.txt"), true},
		{"failure", "${workspaceFolder:Nope}/words.txt", clientPath, "${workspaceFolder:Nope}/words.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveFile(tt.path, tt.relativeTo)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFolderPath(t *testing.T) {
	tests := []struct {
		name string
		in   uri.URI
		want string
	}{
		{"file uri", uri.File(serverPath), serverPath},
		{"escaped file uri", "file:///path/to/my%20folder", filepath.FromSlash("/path/to/my folder")},
		{"plain path", uri.URI("/path/to/workspace/"), rootPath},
		{"other scheme", "vscode-vfs://github/owner/repo", filepath.FromSlash("/owner/repo")},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FolderPath(tt.in))
		})
	}
}

func TestSuggestFolder(t *testing.T) {
	r := NewResolver(uri.File(clientPath), testFolders)

	got, ok := r.SuggestFolder("Sever")
	require.True(t, ok)
	assert.Equal(t, "Server", got)

	got, ok = r.SuggestFolder("client-tst")
	require.True(t, ok)
	assert.Equal(t, "client-test", got)

	_, ok = r.SuggestFolder("Documentation")
	assert.False(t, ok)
}
