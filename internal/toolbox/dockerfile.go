// SPDX-License-Identifier: MIT

package toolbox

import (
	"strings"
	"text/template"
)

// DefaultBaseImage is the base image of the toolbox Dockerfile.
const DefaultBaseImage = "docker.io/alpine:latest"

// defaultPythonPackages are always installed into the toolbox image, after
// any caller-supplied packages.
var defaultPythonPackages = []string{
	"requests==2.32.3",
	"docker==7.1.0",
}

// dockerfileTemplate has a single substitution point: the pip package list.
// $-variables are container-side and must survive rendering untouched, which
// is why the template is rendered with text/template instead of os.Expand.
const dockerfileTemplate = `FROM {{.BaseImage}}

ENV PYTHONUNBUFFERED=1 \
    PYTHONIOENCODING=UTF-8 \
    PIP_NO_CACHE_DIR=yes \
    VIRTUAL_ENV=/install/.venv \
    PATH="/install/.venv/bin:$PATH"

RUN apk add --no-cache \
    ca-certificates \
    openssh \
    git \
    python3 \
    py3-pip \
    && python3 -m venv $VIRTUAL_ENV \
    && pip install --no-cache-dir ansible {{.AdditionalPackages}} \
    && rm -rf /tmp/* /var/cache/apk/* /root/.cache
`

// RenderDockerfile generates the toolbox Dockerfile content. Caller-supplied
// packages come first, then the fixed defaults. Rendering is deterministic;
// a failure is a programming error and surfaces as DockerfileError.
func RenderDockerfile(baseImage string, pythonPackages []string) (string, error) {
	if baseImage == "" {
		baseImage = DefaultBaseImage
	}

	packages := make([]string, 0, len(pythonPackages)+len(defaultPythonPackages))
	packages = append(packages, pythonPackages...)
	packages = append(packages, defaultPythonPackages...)

	tmpl, err := template.New("dockerfile").Parse(dockerfileTemplate)
	if err != nil {
		return "", &DockerfileError{Cause: err}
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, struct {
		BaseImage          string
		AdditionalPackages string
	}{
		BaseImage:          baseImage,
		AdditionalPackages: strings.Join(packages, " "),
	})
	if err != nil {
		return "", &DockerfileError{Cause: err}
	}

	return sb.String(), nil
}
