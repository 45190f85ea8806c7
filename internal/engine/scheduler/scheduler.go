// Package scheduler drives the per-module incremental build.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ModuleStatus represents the status of a module within a run.
type ModuleStatus string

const (
	// StatusPending indicates the module has not been looked at yet.
	StatusPending ModuleStatus = "Pending"
	// StatusRunning indicates the module is being compiled.
	StatusRunning ModuleStatus = "Running"
	// StatusCompleted indicates the module's artifacts were written.
	StatusCompleted ModuleStatus = "Completed"
	// StatusFailed indicates the module's build aborted.
	StatusFailed ModuleStatus = "Failed"
	// StatusUpToDate indicates the module was skipped because its outputs are fresh.
	StatusUpToDate ModuleStatus = "UpToDate"
)

// Options controls a run.
type Options struct {
	// Jobs is the number of modules built at once. Values below 2 build sequentially.
	Jobs int
	// Force rebuilds every module regardless of freshness.
	Force bool
}

// Result counts the outcome of a run.
type Result struct {
	Compiled int
	UpToDate int
	Failed   int
}

// Scheduler builds the modules of a plan.
type Scheduler struct {
	oracle   ports.FreshnessOracle
	imports  ports.ImportScanner
	externs  ports.ExternsStore
	frontend ports.Frontend
	writer   ports.CodegenWriter
	reporter ports.ProgressReporter

	mu           sync.RWMutex
	moduleStatus map[domain.ModuleName]ModuleStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	oracle ports.FreshnessOracle,
	imports ports.ImportScanner,
	externs ports.ExternsStore,
	frontend ports.Frontend,
	writer ports.CodegenWriter,
	reporter ports.ProgressReporter,
) *Scheduler {
	return &Scheduler{
		oracle:       oracle,
		imports:      imports,
		externs:      externs,
		frontend:     frontend,
		writer:       writer,
		reporter:     reporter,
		moduleStatus: make(map[domain.ModuleName]ModuleStatus),
	}
}

func (s *Scheduler) updateStatus(name domain.ModuleName, status ModuleStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moduleStatus[name] = status
}

func (s *Scheduler) initStatuses(plan *domain.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.moduleStatus)
	for _, name := range plan.Names() {
		s.moduleStatus[name] = StatusPending
	}
}

// Run builds every module of plan in plan order. The first failure stops the
// run; modules already in flight are cancelled through ctx.
func (s *Scheduler) Run(ctx context.Context, plan *domain.Plan, opts Options) (Result, error) {
	if plan.Len() == 0 {
		return Result{}, domain.ErrNoModulesSelected
	}
	s.initStatuses(plan)

	var err error
	if opts.Jobs > 1 {
		err = s.runConcurrent(ctx, plan, opts)
	} else {
		err = s.runSequential(ctx, plan, opts)
	}

	res := s.result()
	if err != nil {
		return res, fmt.Errorf("%w: %w", domain.ErrBuildExecutionFailed, err)
	}
	return res, nil
}

func (s *Scheduler) runSequential(ctx context.Context, plan *domain.Plan, opts Options) error {
	for m := range plan.Walk() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.buildModule(ctx, m, opts, nil); err != nil {
			return err
		}
	}
	return nil
}

// runConcurrent starts modules in plan order. A module waits for the planned
// modules it imports that come before it, so their metadata is on disk.
func (s *Scheduler) runConcurrent(ctx context.Context, plan *domain.Plan, opts Options) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	names := plan.Names()
	done := make(map[domain.ModuleName]chan struct{}, len(names))
	position := make(map[domain.ModuleName]int, len(names))
	for i, name := range names {
		done[name] = make(chan struct{})
		position[name] = i
	}

	for m := range plan.Walk() {
		if gctx.Err() != nil {
			break
		}
		self := position[m.Name]
		waitFor := func(name domain.ModuleName) error {
			at, ok := position[name]
			if !ok || at >= self {
				return nil
			}
			ch := done[name]
			select {
			case <-ch:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		g.Go(func() error {
			defer close(done[m.Name])
			return s.buildModule(gctx, m, opts, waitFor)
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return err
}

// buildModule decides and, when stale, compiles and persists one module.
// wait blocks until an imported module of the same run is finished.
func (s *Scheduler) buildModule(
	ctx context.Context,
	m domain.Module,
	opts Options,
	wait func(domain.ModuleName) error,
) error {
	fail := func(err error) error {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			s.updateStatus(m.Name, StatusPending)
			return err
		}
		err = zerr.With(err, "module", m.Name.String())
		s.updateStatus(m.Name, StatusFailed)
		s.report(ctx, domain.ProgressEvent{Kind: domain.EventFailed, Module: m.Name, Err: err})
		return err
	}

	if !opts.Force {
		stale, err := s.oracle.NeedsRebuild(m)
		if err != nil {
			return fail(err)
		}
		if !stale {
			s.updateStatus(m.Name, StatusUpToDate)
			s.report(ctx, domain.ProgressEvent{Kind: domain.EventUpToDate, Module: m.Name})
			return nil
		}
	}

	s.updateStatus(m.Name, StatusRunning)
	s.report(ctx, domain.ProgressEvent{Kind: domain.EventCompiling, Module: m.Name})

	req, err := s.request(m, wait)
	if err != nil {
		return fail(err)
	}

	compiled, err := s.frontend.Compile(ctx, req)
	if err != nil {
		return fail(err)
	}

	if err := s.writer.Write(ctx, m, compiled); err != nil {
		return fail(err)
	}

	s.updateStatus(m.Name, StatusCompleted)
	s.report(ctx, domain.ProgressEvent{Kind: domain.EventCompiled, Module: m.Name})
	return nil
}

// request gathers the source text and the metadata of every imported module.
func (s *Scheduler) request(m domain.Module, wait func(domain.ModuleName) error) (*domain.CompileRequest, error) {
	req := &domain.CompileRequest{Module: m, Externs: make(map[domain.ModuleName][]byte)}

	path, ok := m.SourcePath()
	if !ok {
		return req, nil
	}

	//nolint:gosec // Source paths come from discovery under the configured source directory
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.CannotReadFile(path, err)
	}
	req.Source = source

	imports, err := s.imports.Imports(path)
	if err != nil {
		return nil, err
	}

	for _, name := range imports {
		if wait != nil {
			if err := wait(name); err != nil {
				return nil, err
			}
		}
		data, err := s.externs.Read(name)
		if err != nil {
			return nil, zerr.With(err, "import", name.String())
		}
		req.Externs[name] = data
	}
	return req, nil
}

func (s *Scheduler) report(ctx context.Context, ev domain.ProgressEvent) {
	if s.reporter != nil {
		s.reporter.Report(ctx, ev)
	}
}

func (s *Scheduler) result() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res Result
	for _, status := range s.moduleStatus {
		switch status {
		case StatusCompleted:
			res.Compiled++
		case StatusUpToDate:
			res.UpToDate++
		case StatusFailed:
			res.Failed++
		}
	}
	return res
}
