// SPDX-License-Identifier: MIT

package toolbox

import (
	"os"

	"golang.org/x/sys/unix"
)

type (
	// Execer is the terminal hand-off to the container runtime. Exec replaces
	// the current process image with the given binary; on success it never
	// returns and nothing after it runs. It is an interface so test doubles
	// can assert on the invocation without replacing the test process.
	Execer interface {
		// Exec replaces the current process with binary invoked as argv.
		// argv[0] is the program name, per execvp convention. The host
		// environment is inherited. It returns only on failure.
		Exec(binary string, argv []string) error
	}

	// SyscallExecer is the production Execer backed by execve(2).
	SyscallExecer struct{}
)

// Compile-time interface check
var _ Execer = SyscallExecer{}

// Exec replaces the current process image. On success this call does not
// return.
func (SyscallExecer) Exec(binary string, argv []string) error {
	return unix.Exec(binary, argv, os.Environ())
}
