// SPDX-License-Identifier: MIT

// Package toolbox contains the core logic of ansible-toolbox: validating the
// invocation request, translating host paths into their in-container
// equivalents, provisioning the toolbox image, assembling the hardened
// container run arguments, and handing the process off to the runtime.
package toolbox
