// SPDX-License-Identifier: MIT

package toolbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/nasgware/ansible-toolbox/internal/container"
)

// fakeEngine records engine calls. The Dockerfile temp file is gone by the
// time EnsureImage returns, so Build captures its content immediately.
type fakeEngine struct {
	present    bool
	existsErr  error
	buildErr   error
	buildCalls []container.BuildOptions
	dockerfile string
}

var _ container.Engine = (*fakeEngine)(nil)

func (f *fakeEngine) Name() string       { return "docker" }
func (f *fakeEngine) BinaryPath() string { return "/usr/bin/docker" }

func (f *fakeEngine) ImageExists(_ context.Context, _ container.ImageTag) (bool, error) {
	return f.present, f.existsErr
}

func (f *fakeEngine) Build(_ context.Context, opts container.BuildOptions) error {
	f.buildCalls = append(f.buildCalls, opts)
	content, err := os.ReadFile(opts.Dockerfile)
	if err != nil {
		return fmt.Errorf("dockerfile unreadable during build: %w", err)
	}
	f.dockerfile = string(content)
	return f.buildErr
}

func TestProvisioner_ImagePresent(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{present: true}

	err := NewProvisioner(engine).EnsureImage(context.Background(), nil)
	if err != nil {
		t.Fatalf("EnsureImage returned error: %v", err)
	}
	if len(engine.buildCalls) != 0 {
		t.Errorf("EnsureImage built despite the image being present: %v", engine.buildCalls)
	}
}

func TestProvisioner_BuildsMissingImage(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{}

	p := NewProvisioner(engine, WithImageTag("ansible-toolbox:test"))
	if err := p.EnsureImage(context.Background(), []string{"netaddr"}); err != nil {
		t.Fatalf("EnsureImage returned error: %v", err)
	}

	if len(engine.buildCalls) != 1 {
		t.Fatalf("expected exactly one build, got %d", len(engine.buildCalls))
	}
	opts := engine.buildCalls[0]
	if opts.Tag != "ansible-toolbox:test" {
		t.Errorf("built tag = %q, want ansible-toolbox:test", opts.Tag)
	}
	if opts.ContextDir != "." {
		t.Errorf("build context = %q, want .", opts.ContextDir)
	}
	if !strings.HasSuffix(opts.Dockerfile, ".dockerfile") {
		t.Errorf("dockerfile path = %q, want a *.dockerfile temp file", opts.Dockerfile)
	}
	if !strings.Contains(engine.dockerfile, "ansible netaddr requests==2.32.3") {
		t.Errorf("rendered Dockerfile missing caller package:\n%s", engine.dockerfile)
	}

	// The temporary Dockerfile must be gone after the build step.
	if _, err := os.Stat(opts.Dockerfile); !os.IsNotExist(err) {
		t.Errorf("temporary Dockerfile %s still exists after EnsureImage", opts.Dockerfile)
	}
}

func TestProvisioner_BuildFailure(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{buildErr: errors.New("exit status 1")}

	err := NewProvisioner(engine).EnsureImage(context.Background(), nil)
	if !errors.Is(err, ErrImageBuild) {
		t.Fatalf("EnsureImage error = %v, want ErrImageBuild", err)
	}

	// Temp Dockerfile removed on the failure path as well.
	if len(engine.buildCalls) != 1 {
		t.Fatalf("expected exactly one build attempt, got %d", len(engine.buildCalls))
	}
	if _, statErr := os.Stat(engine.buildCalls[0].Dockerfile); !os.IsNotExist(statErr) {
		t.Errorf("temporary Dockerfile still exists after failed build")
	}
}

func TestProvisioner_ExistsError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("engine exploded")
	engine := &fakeEngine{existsErr: wantErr}

	err := NewProvisioner(engine).EnsureImage(context.Background(), nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("EnsureImage error = %v, want %v", err, wantErr)
	}
	if len(engine.buildCalls) != 0 {
		t.Errorf("EnsureImage attempted a build after inspect failure")
	}
}
