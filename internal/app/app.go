// Package app implements the application layer for pscpp.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/swapnilraj/purescript-native/internal/adapters/codegen"            //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/externs"            //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/ffi"                //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/frontend"           //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/runtime"            //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"github.com/swapnilraj/purescript-native/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	executor     ports.Executor
	hasher       ports.Hasher
	discoverer   ports.ModuleDiscoverer
	resolver     ports.ModuleResolver
	imports      ports.ImportScanner
	progress     *linear.Reporter
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	executor ports.Executor,
	hasher ports.Hasher,
	discoverer ports.ModuleDiscoverer,
	resolver ports.ModuleResolver,
	imports ports.ImportScanner,
	progress *linear.Reporter,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		executor:     executor,
		hasher:       hasher,
		discoverer:   discoverer,
		resolver:     resolver,
		imports:      imports,
		progress:     progress,
	}
}

// LoadOptions locates the project configuration.
type LoadOptions struct {
	// Dir is the working directory. Empty means the process working directory.
	Dir string
	// ConfigPath names an explicit configuration file. It must exist.
	ConfigPath string
}

// BuildOptions configures a build.
type BuildOptions struct {
	LoadOptions
	Force    bool
	Jobs     int
	NoBanner bool
	// OutputDir overrides the configured output directory.
	OutputDir string
	// Quiet hides modules that are already up to date.
	Quiet bool
	// Trace receives one line per finished module with its timing. Nil disables tracing.
	Trace io.Writer
}

// Build compiles the modules selected by patterns, or every known module when
// patterns is empty.
func (a *App) Build(ctx context.Context, patterns []string, opts BuildOptions) (scheduler.Result, error) {
	cfg, err := a.loadConfig(opts.LoadOptions)
	if err != nil {
		return scheduler.Result{}, err
	}
	if err := applyBuildOptions(cfg, opts); err != nil {
		return scheduler.Result{}, err
	}
	layout := resolveLayout(cfg)

	plan, err := a.plan(cfg, layout, patterns)
	if err != nil {
		return scheduler.Result{}, err
	}

	a.progress.SetQuiet(opts.Quiet)
	var reporter ports.ProgressReporter = a.progress
	if opts.Trace != nil {
		tracer := progrock.NewReporter(progrock.NewTraceWriter(opts.Trace))
		defer func() {
			if err := tracer.Close(); err != nil {
				a.logger.Warn(fmt.Sprintf("closing trace: %v", err))
			}
		}()
		reporter = ports.MultiReporter{a.progress, tracer}
	}

	sched, err := a.pipeline(cfg, layout, reporter)
	if err != nil {
		return scheduler.Result{}, err
	}

	res, err := sched.Run(ctx, plan, scheduler.Options{Jobs: cfg.Jobs, Force: opts.Force})
	if err != nil {
		return res, err
	}
	a.logger.Info(summary(res))
	return res, nil
}

// Clean removes the output directory.
func (a *App) Clean(opts LoadOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	dir := resolveLayout(cfg).OutputDir

	exists, err := fs.Exists(dir)
	if err != nil {
		return err
	}
	if !exists {
		a.logger.Info("Nothing to clean")
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove output directory"), "path", dir)
	}
	a.logger.Info("Removed " + dir)
	return nil
}

// VerifyRuntime compares the runtime directory with the embedded runtime files.
func (a *App) VerifyRuntime(opts LoadOptions) ([]domain.RuntimeFileStatus, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return runtime.NewBootstrapper(resolveLayout(cfg), a.hasher).Verify()
}

func (a *App) loadConfig(opts LoadOptions) (*domain.Config, error) {
	if opts.ConfigPath != "" {
		cfg, err := a.configLoader.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func applyBuildOptions(cfg *domain.Config, opts BuildOptions) error {
	if opts.NoBanner {
		cfg.Banner = false
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}
	if opts.OutputDir != "" {
		dir, err := filepath.Abs(opts.OutputDir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid output directory"), "path", opts.OutputDir)
		}
		cfg.Layout.OutputDir = dir
	}
	return nil
}

// resolveLayout anchors relative layout directories at the project root.
func resolveLayout(cfg *domain.Config) domain.Layout {
	l := cfg.Layout
	if !filepath.IsAbs(l.SourceDir) {
		l.SourceDir = filepath.Join(cfg.Root, l.SourceDir)
	}
	if !filepath.IsAbs(l.OutputDir) {
		l.OutputDir = filepath.Join(cfg.Root, l.OutputDir)
	}
	return l
}

// plan lists the selected modules. Without patterns every discovered and
// configured module is built in name order.
func (a *App) plan(cfg *domain.Config, layout domain.Layout, patterns []string) (*domain.Plan, error) {
	discovered, err := a.discoverer.Discover(cfg.Root, layout)
	if err != nil {
		return nil, err
	}
	candidates := slices.Concat(discovered, cfg.Virtual)

	var selected []domain.Module
	if len(patterns) == 0 {
		selected = slices.Clone(candidates)
		slices.SortStableFunc(selected, func(x, y domain.Module) int {
			return strings.Compare(x.Name.String(), y.Name.String())
		})
	} else {
		selected, err = a.resolver.ResolveModules(patterns, candidates)
		if err != nil {
			return nil, err
		}
	}

	plan := domain.NewPlan()
	for _, m := range selected {
		if err := plan.Add(m); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// pipeline builds the layout-bound components of one run.
func (a *App) pipeline(cfg *domain.Config, layout domain.Layout, reporter ports.ProgressReporter) (*scheduler.Scheduler, error) {
	store, err := externs.NewStore(layout, externs.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	writer := codegen.NewWriter(
		layout,
		codegen.Options{Banner: cfg.Banner},
		store,
		runtime.NewBootstrapper(layout, a.hasher),
		ffi.NewResolver(layout, a.logger),
	)
	return scheduler.NewScheduler(
		fs.NewOracle(layout),
		a.imports,
		store,
		frontend.NewCommand(a.executor, cfg.Frontend, cfg.Root),
		writer,
		reporter,
	), nil
}

func summary(res scheduler.Result) string {
	return fmt.Sprintf("Build finished: %d compiled, %d up to date", res.Compiled, res.UpToDate)
}
