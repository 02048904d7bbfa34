// Package paths normalizes source file paths for eligibility checks and
// manifest resolution. All comparisons happen on symlink-resolved paths so a
// header reached through a link still matches its include directory.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize converts a path to its position relative to root:
// symlinks resolved, forward slashes regardless of platform. A path that does
// not exist yet is used as-is.
func Canonicalize(path string, root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = path
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = root
		} else {
			return "", err
		}
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// IsWithinDir reports whether path sits under dir. Unresolvable pairs (for
// example a relative path against an absolute dir) are treated as outside.
func IsWithinDir(path string, dir string) bool {
	canonical, err := Canonicalize(path, dir)
	if err != nil {
		return false
	}
	return canonical != ".." && !strings.HasPrefix(canonical, "../")
}

// Normalize converts a path to forward slashes.
func Normalize(path string) string {
	return filepath.ToSlash(path)
}

// JoinRoot joins a root directory with a slash-separated relative path, as
// written in a manifest, producing an OS-native path.
func JoinRoot(root string, slashPath string) string {
	normalized := strings.ReplaceAll(slashPath, "\\", "/")
	parts := strings.Split(normalized, "/")
	return filepath.Join(append([]string{root}, parts...)...)
}
