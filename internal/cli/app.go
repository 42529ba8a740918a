// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nasgware/ansible-toolbox/internal/config"
	"github.com/nasgware/ansible-toolbox/internal/container"
	"github.com/nasgware/ansible-toolbox/internal/toolbox"
)

// App wires the toolbox components together for one invocation. Every
// dependency is explicit so tests can substitute a fake engine or executor.
type App struct {
	Config *config.Config
	Engine container.Engine
	Execer toolbox.Execer
	Logger *log.Logger
}

// newApp builds the production App: user configuration, docker engine, and
// the process-replacing executor. Locating the runtime binary happens here,
// before any argument validation or container work.
func newApp(stderr io.Writer) (*App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if cfgFile != "" {
			return nil, err
		}
		// A malformed file in the default location is a warning, not a
		// failure: the defaults still describe a working toolbox.
		fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.Default()
	}

	logger := newLogger()
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	engine, err := container.NewEngine()
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Engine: engine,
		Execer: toolbox.SyscallExecer{},
		Logger: logger,
	}, nil
}

// Run executes one invocation end to end: validate the request, ensure the
// image exists, assemble the run arguments, and hand the process off to the
// container runtime. On success the final step does not return.
func (a *App) Run(ctx context.Context, req toolbox.Request) error {
	err := a.run(ctx, req)
	if err != nil {
		// Debug-level chain detail for --at-verbose runs.
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			a.Logger.Debug("caused by", "err", cause)
		}
	}
	return err
}

func (a *App) run(ctx context.Context, req toolbox.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	packages := make([]string, 0, len(req.PythonPackages)+len(a.Config.PythonPackages))
	packages = append(packages, req.PythonPackages...)
	packages = append(packages, a.Config.PythonPackages...)

	provisioner := toolbox.NewProvisioner(a.Engine,
		toolbox.WithImageTag(container.ImageTag(a.Config.Image)),
		toolbox.WithBaseImage(a.Config.BaseImage),
		toolbox.WithLogger(a.Logger),
	)

	if err := provisioner.EnsureImage(ctx, packages); err != nil {
		return err
	}

	host, err := toolbox.CurrentHost()
	if err != nil {
		return err
	}

	runArgs, err := toolbox.BuildRunArgs(req, host, provisioner.Image())
	if err != nil {
		return err
	}

	// argv[0] is the program name, then the assembled run arguments.
	argv := append([]string{a.Engine.Name()}, runArgs...)

	a.Logger.Debug("executing container runtime",
		"binary", a.Engine.BinaryPath(),
		"args", strings.Join(runArgs, " "),
	)

	// Terminal on success: the process image is replaced.
	return a.Execer.Exec(a.Engine.BinaryPath(), argv)
}
