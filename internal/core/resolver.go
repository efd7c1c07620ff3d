package core

import (
	"context"
)

// SettingsResolver resolves raw settings against a set of open workspace folders.
// It decouples the transports (HTTP handler, CLI) from the resolution engine.
type SettingsResolver interface {
	// Resolve runs one resolution pass for the request's target.
	Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResult, error)

	// ResolveAll resolves the settings once per open folder, using each folder
	// as the current target. Results are returned in folder order.
	ResolveAll(ctx context.Context, settings Settings, folders []WorkspaceFolder) ([]*ResolveResult, error)
}

// Choice is one labelled entry offered to the user by a Picker.
type Choice struct {
	Label       string
	Description string
}

// Picker is the "show choices, return selection" UI collaborator.
type Picker interface {
	// Pick shows the choices and blocks until the user selects one or
	// dismisses the prompt. ok is false when the prompt was dismissed.
	Pick(ctx context.Context, title string, choices []Choice) (index int, ok bool, err error)
}
