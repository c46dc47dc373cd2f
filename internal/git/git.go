// Package git wraps the git CLI for keeping a local checkout of the contract
// template repository.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Run executes a git command in the given directory and returns trimmed
// combined output.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// IsRepo returns true if dir is the top level of a git work tree. A
// subdirectory of some enclosing repository does not count.
func IsRepo(dir string) bool {
	top, err := Run(dir, "rev-parse", "--show-toplevel")
	if err != nil || top == "" {
		return false
	}
	return samePath(top, dir)
}

func samePath(a, b string) bool {
	ra, err := resolve(a)
	if err != nil {
		return false
	}
	rb, err := resolve(b)
	if err != nil {
		return false
	}
	return ra == rb
}

func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// RevParse returns the resolved SHA for a ref.
func RevParse(dir, ref string) (string, error) {
	return Run(dir, "rev-parse", ref)
}

// ShortRevision returns the abbreviated SHA of HEAD.
func ShortRevision(dir string) (string, error) {
	return Run(dir, "rev-parse", "--short", "HEAD")
}

// Clone makes a shallow clone of src into dst.
func Clone(src, dst string) error {
	out, err := exec.Command("git", "clone", "--depth", "1", "--quiet", src, dst).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	return nil
}

// Pull runs git pull --ff-only.
func Pull(dir string) error {
	out, err := Run(dir, "pull", "--ff-only", "--quiet")
	if err != nil {
		return fmt.Errorf("%s", out)
	}
	return nil
}

// RemoteURL returns the URL of the origin remote.
func RemoteURL(dir string) (string, error) {
	return Run(dir, "remote", "get-url", "origin")
}
