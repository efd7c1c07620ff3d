package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/logger"
	"github.com/sevigo/spell-warden/internal/settings"
	"github.com/sevigo/spell-warden/internal/workspace"
)

var ErrNilRequest = errors.New("resolve request is nil")

// ResolveService runs resolution passes. Every pass gets its own workspace
// resolver, so failures are de-duplicated per pass.
type ResolveService struct {
	cfg    *config.Config
	logger *slog.Logger
	errors core.ErrorLogger
}

var _ core.SettingsResolver = (*ResolveService)(nil)

func NewResolveService(cfg *config.Config, errs core.ErrorLogger, log *slog.Logger) *ResolveService {
	if errs == nil {
		errs = logger.NewErrorSink(log)
	}
	return &ResolveService{cfg: cfg, logger: log, errors: errs}
}

// NewWorkspaceResolver builds the resolver for one pass over req.
func (s *ResolveService) NewWorkspaceResolver(req *core.ResolveRequest) *workspace.Resolver {
	override := req.OverrideRoot
	if override == "" {
		override = s.cfg.OverrideRoot
	}
	return workspace.NewResolver(
		workspace.ToURI(req.Target),
		req.Folders,
		workspace.WithOverrideRoot(override),
		workspace.WithHomeDir(s.cfg.HomeDir),
		workspace.WithErrorLogger(s.errors),
	)
}

func (s *ResolveService) Resolve(ctx context.Context, req *core.ResolveRequest) (*core.ResolveResult, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := s.NewWorkspaceResolver(req)
	out := settings.Resolve(req.Settings, r)

	failures := r.Failures()
	s.logger.Debug("settings resolved",
		"target", req.Target,
		"current_folder", r.CurrentFolder(),
		"folders", len(req.Folders),
		"failures", len(failures))

	return &core.ResolveResult{Target: req.Target, Settings: out, Failures: failures}, nil
}

// ResolveAll resolves the settings once per folder concurrently. Results are
// in folder order.
func (s *ResolveService) ResolveAll(ctx context.Context, raw core.Settings, folders []core.WorkspaceFolder) ([]*core.ResolveResult, error) {
	results := make([]*core.ResolveResult, len(folders))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range folders {
		g.Go(func() error {
			res, err := s.Resolve(ctx, &core.ResolveRequest{
				Settings: raw,
				Folders:  folders,
				Target:   string(f.URI),
			})
			if err != nil {
				return fmt.Errorf("resolve folder %q: %w", f.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
