// SPDX-License-Identifier: MIT

package toolbox

import "os"

type (
	// Request is the structured form of a single CLI invocation. It is built
	// once from the parsed flags and never mutated afterwards.
	Request struct {
		// Command is the in-container command, one token per element.
		Command []string
		// Interactive requests an interactive shell instead of a one-shot command.
		Interactive bool
		// PythonPackages are extra pip packages layered into the built image.
		PythonPackages []string
		// Volumes are extra bind mounts passed through verbatim.
		Volumes []string
		// Env are extra KEY=VAL environment variables passed through verbatim.
		Env []string
	}

	// HostInfo captures the environmental inputs to run-argument assembly.
	// Isolating them here keeps BuildRunArgs a pure function.
	HostInfo struct {
		UID     int
		GID     int
		WorkDir string
	}
)

// Validate checks the request invariant: a command is required unless an
// interactive session was requested. It must pass before any container
// operation is attempted.
func (r Request) Validate() error {
	if len(r.Command) == 0 && !r.Interactive {
		return &MissingCommandError{}
	}
	return nil
}

// CurrentHost captures the invoking user and working directory.
func CurrentHost() (HostInfo, error) {
	wd, err := os.Getwd()
	if err != nil {
		return HostInfo{}, err
	}
	return HostInfo{
		UID:     os.Getuid(),
		GID:     os.Getgid(),
		WorkDir: wd,
	}, nil
}
