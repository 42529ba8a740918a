// SPDX-License-Identifier: MIT

package toolbox

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nasgware/ansible-toolbox/internal/container"
)

// DefaultImageTag is the image built and run by the toolbox unless the
// configuration overrides it.
const DefaultImageTag container.ImageTag = "ansible-toolbox:latest"

type (
	// ProvisionerOption configures a Provisioner.
	ProvisionerOption func(*Provisioner)

	// Provisioner ensures the toolbox image exists, rendering a Dockerfile
	// and asking the container engine to build it when it does not. There is
	// no cross-process coordination: two simultaneous invocations may both
	// build the same tag, and the last build wins.
	Provisioner struct {
		engine    container.Engine
		image     container.ImageTag
		baseImage string
		buildOut  io.Writer
		logger    *log.Logger
	}
)

// WithImageTag overrides the image tag to provision.
func WithImageTag(tag container.ImageTag) ProvisionerOption {
	return func(p *Provisioner) {
		if tag != "" {
			p.image = tag
		}
	}
}

// WithBaseImage overrides the Dockerfile base image.
func WithBaseImage(base string) ProvisionerOption {
	return func(p *Provisioner) {
		if base != "" {
			p.baseImage = base
		}
	}
}

// WithBuildOutput redirects build progress output (defaults to stderr).
func WithBuildOutput(w io.Writer) ProvisionerOption {
	return func(p *Provisioner) {
		p.buildOut = w
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *log.Logger) ProvisionerOption {
	return func(p *Provisioner) {
		p.logger = logger
	}
}

// NewProvisioner creates a Provisioner for the given engine.
func NewProvisioner(engine container.Engine, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		engine:    engine,
		image:     DefaultImageTag,
		baseImage: DefaultBaseImage,
		buildOut:  os.Stderr,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Image returns the tag the provisioner builds and runs.
func (p *Provisioner) Image() container.ImageTag {
	return p.image
}

// EnsureImage builds the toolbox image if it is not already present. The
// rendered Dockerfile lives in a temporary file that is removed on every
// exit path. A non-zero build exit fails with ImageBuildError; there is no
// retry.
func (p *Provisioner) EnsureImage(ctx context.Context, pythonPackages []string) error {
	exists, err := p.engine.ImageExists(ctx, p.image)
	if err != nil {
		return err
	}
	if exists {
		p.logger.Debug("toolbox image present", "image", p.image)
		return nil
	}

	p.logger.Info("toolbox image not found, building", "image", p.image)

	content, err := RenderDockerfile(p.baseImage, pythonPackages)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "ansible-toolbox-*.dockerfile")
	if err != nil {
		return fmt.Errorf("failed to create temporary Dockerfile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary Dockerfile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write temporary Dockerfile: %w", err)
	}

	buildOpts := container.BuildOptions{
		Dockerfile: tmp.Name(),
		Tag:        p.image,
		ContextDir: ".",
		Stdout:     p.buildOut,
		Stderr:     p.buildOut,
	}
	if err := p.engine.Build(ctx, buildOpts); err != nil {
		return &ImageBuildError{Tag: string(p.image), Cause: err}
	}

	p.logger.Info("toolbox image built", "image", p.image)
	return nil
}
