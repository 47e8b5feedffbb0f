// Package app implements the application layer for pbxpatch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/core/ports"
	"go.trai.ch/pbxpatch/internal/engine/patcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.CatalogLoader
	store     ports.ManifestStore
	hasher    ports.Hasher
	differ    ports.Differ
	telemetry ports.Telemetry
	logger    ports.Logger
	stdout    io.Writer
	stderr    io.Writer
	getwd     func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.CatalogLoader,
	store ports.ManifestStore,
	hasher ports.Hasher,
	differ ports.Differ,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		store:     store,
		hasher:    hasher,
		differ:    differ,
		telemetry: telemetry,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		getwd:     os.Getwd,
	}
}

// WithStdout redirects dry-run diffs to w.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithStderr sends progress output to w.
func (a *App) WithStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// WithWorkDir makes catalog discovery start from dir instead of the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// PatchOptions configuration for the Patch method.
type PatchOptions struct {
	CatalogPath string
	Strict      bool
	DryRun      bool
	JSON        bool
	Jobs        int
	// Progress streams per-manifest vertex logs to stderr.
	Progress bool
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Patch applies the catalog to every manifest in paths. With no paths the default
// manifest is patched. Each path is handled by exactly one worker.
func (a *App) Patch(ctx context.Context, paths []string, opts PatchOptions) error {
	if opts.JSON {
		if js, ok := a.logger.(jsonSwitcher); ok {
			js.SetJSON(true)
		}
	}

	if opts.Progress {
		a.telemetry.Attach(a.stderr)
	}

	catalog, err := a.loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}
	if opts.Strict {
		catalog.Strict = true
	}

	p := patcher.New(catalog)
	return a.fanOut(ctx, paths, opts.Jobs, func(ctx context.Context, path string) error {
		return a.patchOne(ctx, p, path, opts.DryRun)
	})
}

// Check reports whether every manifest in paths carries the catalog's sentinel.
// It returns domain.ErrNotPatched if any of them does not.
func (a *App) Check(ctx context.Context, paths []string, catalogPath string) error {
	catalog, err := a.loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	sentinel := catalog.SentinelID()

	var (
		mu        sync.Mutex
		unpatched int
	)
	err = a.fanOut(ctx, paths, 0, func(_ context.Context, path string) error {
		content, err := a.store.Read(path)
		if err != nil {
			return err
		}
		if patcher.AlreadyPatched(string(content), sentinel) {
			a.logger.Info(fmt.Sprintf("%s: project already patched", path))
			return nil
		}
		a.logger.Warn(fmt.Sprintf("%s: project not patched", path))
		mu.Lock()
		unpatched++
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}
	if unpatched > 0 {
		return domain.ErrNotPatched
	}
	return nil
}

func (a *App) loadCatalog(path string) (domain.Catalog, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to get working directory")
	}

	catalog, source, err := a.loader.Load(cwd, path)
	if err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to load catalog")
	}
	if source != "" {
		a.logger.Info(fmt.Sprintf("using catalog %s", source))
	}
	return catalog, nil
}

// fanOut runs fn for every distinct path with at most jobs workers and joins the
// failures in path order.
func (a *App) fanOut(ctx context.Context, paths []string, jobs int, fn func(context.Context, string) error) error {
	paths = uniquePaths(paths)
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	errs := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = fn(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (a *App) patchOne(ctx context.Context, p *patcher.Patcher, path string, dryRun bool) (err error) {
	_, vertex := a.telemetry.Record(ctx, "patch "+path)
	defer func() {
		vertex.Complete(err)
	}()

	content, err := a.store.Read(path)
	if err != nil {
		return errors.Join(domain.ErrPatchFailed, err)
	}

	res, err := p.Patch(content)
	if err != nil {
		return errors.Join(domain.ErrPatchFailed, zerr.With(err, "path", path))
	}
	res.Path = path
	res.Before = a.hasher.Fingerprint(content)
	res.After = a.hasher.Fingerprint(res.Content)

	switch res.Outcome {
	case domain.OutcomeAlreadyPatched:
		vertex.Cached()
		a.logger.Info(fmt.Sprintf("%s: project already patched", path))
		return nil
	case domain.OutcomePartiallyPatched:
		vertex.Cached()
		a.logger.Warn(fmt.Sprintf("%s: project partially patched by an earlier run, skipped", path))
		return nil
	}

	for _, inj := range res.Injections {
		if !inj.Applied {
			a.logger.Warn(fmt.Sprintf("%s: marker for %s not found, skipped", path, inj.Point))
			vertex.Log(fmt.Sprintf("%s: skipped", inj.Point))
			continue
		}
		vertex.Log(fmt.Sprintf("%s: %d lines after line %d", inj.Point, inj.Added, inj.Line))
	}

	if dryRun {
		out, err := a.differ.Unified(path, content, res.Content)
		if err != nil {
			return errors.Join(domain.ErrPatchFailed, err)
		}
		_, _ = fmt.Fprint(a.stdout, out)
		a.logger.Info(fmt.Sprintf("%s: dry run, %s -> %s", path, res.Before, res.After))
		return nil
	}

	if res.Changed() {
		if err := a.store.Write(path, res.Content); err != nil {
			return errors.Join(domain.ErrPatchFailed, err)
		}
	}
	a.logger.Info(fmt.Sprintf("%s: project patched successfully", path))
	return nil
}

// uniquePaths drops repeated paths, keeping first-seen order.
// An empty list resolves to the default manifest path.
func uniquePaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{domain.DefaultManifestPath}
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
