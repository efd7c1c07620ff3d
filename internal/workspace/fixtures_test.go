package workspace

import (
	"path/filepath"

	"go.lsp.dev/uri"

	"github.com/sevigo/spell-warden/internal/core"
)

var (
	rootPath       = filepath.FromSlash("/path/to/workspace")
	clientPath     = filepath.Join(rootPath, "client")
	serverPath     = filepath.Join(rootPath, "server")
	clientTestPath = filepath.Join(clientPath, "test")
	homePath       = filepath.FromSlash("/home/user")
)

var testFolders = []core.WorkspaceFolder{
	{Name: "Root", URI: uri.File(rootPath)},
	{Name: "Client", URI: uri.File(clientPath)},
	{Name: "Server", URI: uri.File(serverPath)},
	{Name: "client-test", URI: uri.File(clientTestPath)},
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) LogError(message string) {
	l.messages = append(l.messages, message)
}
