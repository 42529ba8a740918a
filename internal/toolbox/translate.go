// SPDX-License-Identifier: MIT

package toolbox

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WorkspaceRoot is the fixed mount point of the working directory inside the
// container.
const WorkspaceRoot = "/workspace"

// Translate maps a command token to its in-container equivalent. Tokens that
// do not name an existing filesystem path pass through unchanged: they are
// ordinary command arguments, not file references. Existing paths are
// canonicalised (absolute, symlinks resolved) before the containment check so
// that ".."-escapes and symlink escapes cannot slip past it, then rewritten
// relative to WorkspaceRoot. The workspace directory itself translates to
// exactly WorkspaceRoot.
//
// A token that resolves outside workDir fails with PathOutsideWorkspaceError;
// the caller must abort the invocation before any container is started.
func Translate(workDir, token string) (string, error) {
	abs := token
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(workDir, abs)
	}

	if _, err := os.Stat(abs); err != nil {
		return token, nil
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Stat succeeded, so the path exists; treat resolution failure the
		// same as a containment failure rather than guessing.
		return "", &PathOutsideWorkspaceError{Path: token, Resolved: abs}
	}

	root, err := filepath.EvalSymlinks(workDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathOutsideWorkspaceError{Path: token, Resolved: resolved}
	}

	return path.Join(WorkspaceRoot, filepath.ToSlash(rel)), nil
}

// TranslateCommand applies Translate to every token of a command. The first
// failing token aborts the whole translation.
func TranslateCommand(workDir string, command []string) ([]string, error) {
	translated := make([]string, 0, len(command))
	for _, token := range command {
		t, err := Translate(workDir, token)
		if err != nil {
			return nil, err
		}
		translated = append(translated, t)
	}
	return translated, nil
}
