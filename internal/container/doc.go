// SPDX-License-Identifier: MIT

// Package container abstracts the external container runtime behind a small
// capability interface. The only conforming implementation wraps the Docker
// CLI: everything it does is shelling out to the docker binary, so the
// interface is deliberately limited to the operations the toolbox needs
// (image inspection and image build).
package container
