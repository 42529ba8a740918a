// SPDX-License-Identifier: MIT

package toolbox

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCommand is the sentinel error wrapped by MissingCommandError.
	ErrMissingCommand = errors.New("missing command")

	// ErrPathOutsideWorkspace is the sentinel error wrapped by PathOutsideWorkspaceError.
	ErrPathOutsideWorkspace = errors.New("path outside workspace")

	// ErrDockerfileGeneration is the sentinel error wrapped by DockerfileError.
	ErrDockerfileGeneration = errors.New("dockerfile generation failed")

	// ErrImageBuild is the sentinel error wrapped by ImageBuildError.
	ErrImageBuild = errors.New("image build failed")
)

type (
	// MissingCommandError is returned when an invocation has no command to
	// run and no interactive session was requested.
	MissingCommandError struct{}

	// PathOutsideWorkspaceError is returned when a command token resolves to
	// an existing path that is not a descendant of the workspace directory.
	PathOutsideWorkspaceError struct {
		// Path is the offending token as the user supplied it.
		Path string
		// Resolved is the canonical absolute path after symlink resolution.
		Resolved string
	}

	// DockerfileError is returned when rendering the Dockerfile template
	// fails. This is a programming-error class: the template is fixed.
	DockerfileError struct {
		Cause error
	}

	// ImageBuildError is returned when the external image build exits
	// non-zero. There is no retry and no partial-state cleanup beyond
	// removal of the temporary Dockerfile.
	ImageBuildError struct {
		Tag   string
		Cause error
	}
)

// Error implements the error interface.
func (e *MissingCommandError) Error() string {
	return "the following arguments are required: command"
}

// Unwrap returns ErrMissingCommand so callers can use errors.Is.
func (e *MissingCommandError) Unwrap() error { return ErrMissingCommand }

// Error implements the error interface.
func (e *PathOutsideWorkspaceError) Error() string {
	return fmt.Sprintf("path %s is outside the current workspace and cannot be accessed in the container", e.Path)
}

// Unwrap returns ErrPathOutsideWorkspace so callers can use errors.Is.
func (e *PathOutsideWorkspaceError) Unwrap() error { return ErrPathOutsideWorkspace }

// Error implements the error interface.
func (e *DockerfileError) Error() string {
	return fmt.Sprintf("failed to generate Dockerfile: %v", e.Cause)
}

// Unwrap returns ErrDockerfileGeneration so callers can use errors.Is.
func (e *DockerfileError) Unwrap() error { return ErrDockerfileGeneration }

// Error implements the error interface.
func (e *ImageBuildError) Error() string {
	return fmt.Sprintf("failed to build image %s: %v", e.Tag, e.Cause)
}

// Unwrap returns ErrImageBuild so callers can use errors.Is.
func (e *ImageBuildError) Unwrap() error { return ErrImageBuild }
