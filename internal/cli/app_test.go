// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasgware/ansible-toolbox/internal/config"
	"github.com/nasgware/ansible-toolbox/internal/container"
	"github.com/nasgware/ansible-toolbox/internal/toolbox"
)

// stubEngine pretends the toolbox image is already present so App tests
// never reach a build.
type stubEngine struct {
	present bool
	builds  int
}

var _ container.Engine = (*stubEngine)(nil)

func (e *stubEngine) Name() string       { return "docker" }
func (e *stubEngine) BinaryPath() string { return "/usr/bin/docker" }

func (e *stubEngine) ImageExists(context.Context, container.ImageTag) (bool, error) {
	return e.present, nil
}

func (e *stubEngine) Build(context.Context, container.BuildOptions) error {
	e.builds++
	return nil
}

// recordingExecer asserts the terminal hand-off without replacing the test
// process.
type recordingExecer struct {
	called bool
	binary string
	argv   []string
}

func (r *recordingExecer) Exec(binary string, argv []string) error {
	r.called = true
	r.binary = binary
	r.argv = argv
	return nil
}

func newTestApp(engine container.Engine, execer toolbox.Execer) *App {
	return &App{
		Config: config.Default(),
		Engine: engine,
		Execer: execer,
		Logger: log.New(io.Discard),
	}
}

func TestAppRun_ExecsRuntime(t *testing.T) {
	engine := &stubEngine{present: true}
	execer := &recordingExecer{}
	app := newTestApp(engine, execer)

	req := toolbox.Request{Command: []string{"ansible", "--version"}}
	require.NoError(t, app.Run(context.Background(), req))

	require.True(t, execer.called, "executor must be invoked")
	assert.Equal(t, "/usr/bin/docker", execer.binary)
	assert.Equal(t, "docker", execer.argv[0])
	assert.Equal(t, "run", execer.argv[1])
	assert.Equal(t, 0, engine.builds, "no build when the image is present")

	script := execer.argv[len(execer.argv)-1]
	assert.Equal(t, "-c", execer.argv[len(execer.argv)-2])
	assert.True(t, strings.HasPrefix(script, "cd /workspace && "), "script = %q", script)
}

func TestAppRun_InteractiveShell(t *testing.T) {
	execer := &recordingExecer{}
	app := newTestApp(&stubEngine{present: true}, execer)

	require.NoError(t, app.Run(context.Background(), toolbox.Request{Interactive: true}))

	assert.Contains(t, execer.argv, "-it")
	assert.NotContains(t, execer.argv, "-c")
	assert.Equal(t, "/bin/sh", execer.argv[len(execer.argv)-1])
}

func TestAppRun_MissingCommand(t *testing.T) {
	execer := &recordingExecer{}
	app := newTestApp(&stubEngine{present: true}, execer)

	err := app.Run(context.Background(), toolbox.Request{})
	assert.ErrorIs(t, err, toolbox.ErrMissingCommand)
	assert.False(t, execer.called, "executor must not run on a rejected request")
}

func TestAppRun_ConfigImageFlowsToRunArgs(t *testing.T) {
	execer := &recordingExecer{}
	app := newTestApp(&stubEngine{present: true}, execer)
	app.Config.Image = "ansible-toolbox:pinned"

	require.NoError(t, app.Run(context.Background(), toolbox.Request{Interactive: true}))
	assert.Contains(t, execer.argv, "ansible-toolbox:pinned")
}

func TestAppRun_BuildsWhenImageMissing(t *testing.T) {
	engine := &stubEngine{present: false}
	execer := &recordingExecer{}
	app := newTestApp(engine, execer)

	require.NoError(t, app.Run(context.Background(), toolbox.Request{Interactive: true}))
	assert.Equal(t, 1, engine.builds)
	assert.True(t, execer.called)
}

func TestAppRun_ExecFailureSurfaces(t *testing.T) {
	app := newTestApp(&stubEngine{present: true}, failingExecer{})

	err := app.Run(context.Background(), toolbox.Request{Interactive: true})
	assert.Error(t, err)
}

type failingExecer struct{}

func (failingExecer) Exec(string, []string) error { return errors.New("exec failed") }

func TestAppRun_SecurityPostureAlwaysPresent(t *testing.T) {
	execer := &recordingExecer{}
	app := newTestApp(&stubEngine{present: true}, execer)

	require.NoError(t, app.Run(context.Background(), toolbox.Request{Interactive: true}))

	joined := strings.Join(execer.argv, " ")
	for _, want := range []string{
		"--security-opt no-new-privileges",
		"--cap-drop NET_BIND_SERVICE",
		"--cap-drop SETUID",
		"--cap-drop SETGID",
		"--network host",
		"-v /etc/passwd:/etc/passwd:ro,z",
	} {
		assert.Contains(t, joined, want)
	}
}
