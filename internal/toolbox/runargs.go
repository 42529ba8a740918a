// SPDX-License-Identifier: MIT

package toolbox

import (
	"fmt"
	"strings"

	"github.com/nasgware/ansible-toolbox/internal/container"
)

// containerName is the fixed name of the ephemeral toolbox container.
const containerName = "ansible-toolbox"

// BuildRunArgs maps an invocation request to the container run argument
// vector, excluding the runtime binary itself. It is a pure function of its
// inputs: the same request, host info, and image always produce the same
// argument sequence.
//
// The security posture is fixed and not caller-configurable: the container
// runs as the invoking host user with NET_BIND_SERVICE, SETUID, and SETGID
// dropped, no-new-privileges set, the workspace mounted read-only, and host
// networking. Caller-supplied volumes and environment variables are appended
// after the fixed set, verbatim and in the supplied order; they are never
// deduplicated or validated.
//
// In non-interactive mode every command token is run through the path
// translator and the result is passed to /bin/sh as a single script prefixed
// with "cd /workspace && ". Interactive mode injects no command at all.
func BuildRunArgs(req Request, host HostInfo, image container.ImageTag) ([]string, error) {
	args := []string{"run"}

	if req.Interactive {
		args = append(args, "-it")
	}

	args = append(args,
		"--rm",
		"--name", containerName,
		"--network", "host",
		"--user", fmt.Sprintf("%d:%d", host.UID, host.GID),
		"--cap-drop", "NET_BIND_SERVICE",
		"--cap-drop", "SETUID",
		"--cap-drop", "SETGID",
		"--security-opt", "no-new-privileges",
		"-v", "/etc/passwd:/etc/passwd:ro,z",
		"-v", "/etc/group:/etc/group:ro,z",
		"-v", "/tmp:/tmp:z",
		"-v", "/var/tmp:/var/tmp:z",
		"-v", host.WorkDir+":"+WorkspaceRoot+":ro,z",
		"-e", "HOME=/tmp",
		"-e", "TERM=xterm-256color",
		"-e", "ANSIBLE_LOCAL_TEMP=/tmp",
		"-e", "ANSIBLE_REMOTE_TEMP=/tmp/$(whoami)",
		"-e", "ANSIBLE_STDOUT_CALLBACK=debug",
		"-e", "ANSIBLE_CONFIG=/workspace/ansible.cfg",
		"-e", "ANSIBLE_FORCE_COLOR=1",
	)

	for _, volume := range req.Volumes {
		args = append(args, "-v", volume)
	}

	for _, env := range req.Env {
		args = append(args, "-e", env)
	}

	args = append(args, string(image), "/bin/sh")

	if !req.Interactive {
		translated, err := TranslateCommand(host.WorkDir, req.Command)
		if err != nil {
			return nil, err
		}
		args = append(args, "-c", "cd "+WorkspaceRoot+" && "+strings.Join(translated, " "))
	}

	return args, nil
}
