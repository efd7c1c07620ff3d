package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sevigo/spell-warden/internal/app"
	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/picker"
	"github.com/sevigo/spell-warden/internal/workspace"
	"github.com/sevigo/spell-warden/internal/wire"
)

// session is everything a command needs for one resolution pass.
type session struct {
	cfg          *config.Config
	ws           *config.Workspace
	svc          *app.ResolveService
	settingsPath string
	request      *core.ResolveRequest
}

func loadSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Theme != "" && !picker.ValidTheme(cfg.Theme) {
		return nil, fmt.Errorf("invalid theme %q", cfg.Theme)
	}

	ws, err := loadWorkspace()
	if err != nil {
		return nil, err
	}
	if targetFlag != "" {
		if f, ok := ws.Folder(targetFlag); ok {
			ws.Current = f.URI
		} else {
			ws.Current = workspace.ToURI(targetFlag)
		}
	}
	if ws.OverrideRoot != "" && cfg.OverrideRoot == "" {
		cfg.OverrideRoot = ws.OverrideRoot
	}

	path := settingsFile
	if path == "" {
		dir := workspace.FolderPath(ws.Current)
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			dir = filepath.Dir(dir)
		}
		if path, err = config.DiscoverSettingsFile(dir); err != nil {
			return nil, err
		}
	}
	raw, err := config.LoadSettingsFile(path)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:          cfg,
		ws:           ws,
		svc:          wire.InitializeResolver(cfg),
		settingsPath: path,
		request: &core.ResolveRequest{
			Settings:     raw,
			Folders:      ws.Folders,
			Target:       string(ws.Current),
			OverrideRoot: cfg.OverrideRoot,
		},
	}, nil
}

// loadWorkspace reads --workspace, or treats the working directory as a
// single-folder workspace.
func loadWorkspace() (*config.Workspace, error) {
	if workspaceFile != "" {
		return config.LoadWorkspaceFile(workspaceFile)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	u := workspace.ToURI(cwd)
	return &config.Workspace{
		Folders: []core.WorkspaceFolder{{Name: filepath.Base(cwd), URI: u}},
		Current: u,
	}, nil
}
