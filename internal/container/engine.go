// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEngineNotAvailable is the sentinel error wrapped by EngineNotAvailableError.
var ErrEngineNotAvailable = errors.New("container engine not available")

type (
	// Engine defines the container runtime operations the toolbox depends on.
	// Implementations are thin wrappers over an external CLI; none of the
	// methods retries or recovers — a failed call is fatal to the invocation.
	Engine interface {
		// Name returns the engine name (e.g. "docker").
		Name() string
		// BinaryPath returns the absolute path of the runtime binary.
		BinaryPath() string
		// ImageExists reports whether an image is present locally.
		// It has no side effects.
		ImageExists(ctx context.Context, tag ImageTag) (bool, error)
		// Build builds an image from a Dockerfile, blocking until the
		// external build finishes.
		Build(ctx context.Context, opts BuildOptions) error
	}

	// ImageTag identifies a container image (e.g. "ansible-toolbox:latest").
	ImageTag string

	// BuildOptions contains options for building an image.
	BuildOptions struct {
		// Dockerfile is the path to the Dockerfile on the host.
		Dockerfile string
		// Tag is the tag applied to the built image.
		Tag ImageTag
		// ContextDir is the build context directory.
		ContextDir string
		// Stdout receives build progress output.
		Stdout io.Writer
		// Stderr receives build error output.
		Stderr io.Writer
	}

	// EngineNotAvailableError is returned when the runtime binary cannot be
	// located on the search path.
	EngineNotAvailableError struct {
		Engine string
		Reason string
	}
)

// String returns the string representation of the ImageTag.
func (t ImageTag) String() string { return string(t) }

// Validate returns an error if the ImageTag is empty or whitespace-only.
func (t ImageTag) Validate() error {
	if strings.TrimSpace(string(t)) == "" {
		return fmt.Errorf("image tag must be non-empty")
	}
	return nil
}

// Error implements the error interface.
func (e *EngineNotAvailableError) Error() string {
	return fmt.Sprintf("container engine %q is not available: %s", e.Engine, e.Reason)
}

// Unwrap returns ErrEngineNotAvailable so callers can use errors.Is.
func (e *EngineNotAvailableError) Unwrap() error { return ErrEngineNotAvailable }

// NewEngine locates an available container engine. Locating the runtime
// binary is a constructor-time concern: callers receive a ready engine or an
// EngineNotAvailableError, never an engine that fails later at call sites.
func NewEngine(opts ...DockerEngineOption) (Engine, error) {
	return NewDockerEngine(opts...)
}
