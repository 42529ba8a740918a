// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Compile-time interface check
var _ Engine = (*DockerEngine)(nil)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// LookPathFunc is the function signature for locating the runtime binary.
	// This allows injection of mock implementations for testing.
	LookPathFunc func(file string) (string, error)

	// DockerEngineOption configures a DockerEngine.
	DockerEngineOption func(*DockerEngine)

	// DockerEngine implements the Engine interface using the Docker CLI.
	DockerEngine struct {
		binaryPath  string
		execCommand ExecCommandFunc
		lookPath    LookPathFunc
	}
)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) DockerEngineOption {
	return func(e *DockerEngine) {
		e.execCommand = fn
	}
}

// WithLookPath sets a custom binary lookup function for testing.
func WithLookPath(fn LookPathFunc) DockerEngineOption {
	return func(e *DockerEngine) {
		e.lookPath = fn
	}
}

// NewDockerEngine creates a Docker engine. It resolves the docker binary on
// the search path and fails with EngineNotAvailableError when it is missing.
func NewDockerEngine(opts ...DockerEngineOption) (*DockerEngine, error) {
	e := &DockerEngine{
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(e)
	}

	path, err := e.lookPath("docker")
	if err != nil {
		return nil, &EngineNotAvailableError{
			Engine: "docker",
			Reason: "docker is not installed or not in PATH",
		}
	}
	e.binaryPath = path

	return e, nil
}

// Name returns the engine name.
func (e *DockerEngine) Name() string { return "docker" }

// BinaryPath returns the path to the docker binary.
func (e *DockerEngine) BinaryPath() string { return e.binaryPath }

// ImageExists checks whether an image is present locally.
//
// Generated command: docker image inspect <tag>
// A zero exit status means present; any non-zero status is treated as
// "not present" rather than an error, matching docker's own behavior for
// unknown images.
func (e *DockerEngine) ImageExists(ctx context.Context, tag ImageTag) (bool, error) {
	if err := tag.Validate(); err != nil {
		return false, err
	}
	cmd := e.execCommand(ctx, e.binaryPath, "image", "inspect", string(tag))
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil, nil
}

// Build builds an image from a Dockerfile.
//
// Generated command: docker build -t <tag> -f <dockerfile> <context>
func (e *DockerEngine) Build(ctx context.Context, opts BuildOptions) error {
	if err := opts.Tag.Validate(); err != nil {
		return err
	}

	args := e.BuildArgs(opts)

	cmd := e.execCommand(ctx, e.binaryPath, args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}

	return nil
}

// BuildArgs constructs the argument slice for a build command without
// executing it. Returns arguments in the order expected by docker build.
func (e *DockerEngine) BuildArgs(opts BuildOptions) []string {
	args := []string{"build", "-t", string(opts.Tag)}

	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}

	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = "."
	}
	args = append(args, contextDir)

	return args
}
