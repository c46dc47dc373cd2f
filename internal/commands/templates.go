package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/git"
)

// ErrTemplatesMissing is returned when no local template checkout exists.
var ErrTemplatesMissing = errors.New("templates not fetched (run 'stacks-deployer fetch')")

// FetchResult describes the local template checkout after a fetch.
type FetchResult struct {
	Dir      string
	Cloned   bool // false when an existing checkout was updated
	Revision string
}

// FetchTemplates clones repoURL into dir, or fast-forwards dir when it is
// already a checkout of repoURL. A checkout of any other remote, or a
// non-empty directory that is not the root of a checkout, is left alone.
func FetchTemplates(repoURL, dir string) (*FetchResult, error) {
	result := &FetchResult{Dir: dir}

	if git.IsRepo(dir) {
		remote, err := git.RemoteURL(dir)
		if err != nil {
			return nil, fmt.Errorf("reading templates remote: %w", err)
		}
		if strings.TrimRight(remote, "/") != strings.TrimRight(repoURL, "/") {
			return nil, fmt.Errorf("%s tracks %s, not %s", dir, remote, repoURL)
		}
		if err := git.Pull(dir); err != nil {
			return nil, fmt.Errorf("updating templates: %w", err)
		}
	} else {
		if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
			return nil, fmt.Errorf("%s exists and is not a git checkout", dir)
		}
		if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
			return nil, fmt.Errorf("creating templates directory: %w", err)
		}
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("clearing templates directory: %w", err)
		}
		if err := git.Clone(repoURL, dir); err != nil {
			return nil, fmt.Errorf("cloning %s: %w", repoURL, err)
		}
		result.Cloned = true
	}

	rev, err := git.ShortRevision(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template revision: %w", err)
	}
	result.Revision = rev
	return result, nil
}

// TemplatePath returns the local path of rec's Clarity source inside the
// checkout at dir.
func TemplatePath(dir string, rec catalog.Record) (string, error) {
	if !git.IsRepo(dir) {
		return "", ErrTemplatesMissing
	}
	p := filepath.Join(dir, "contracts", rec.FileName)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: not in template checkout", rec.FileName)
		}
		return "", err
	}
	return p, nil
}

// TemplateSource reads the Clarity source for contract id from the checkout
// at dir.
func TemplateSource(dir, id string) ([]byte, error) {
	rec, ok := catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("contract %q: %w", id, catalog.ErrNotFound)
	}
	p, err := TemplatePath(dir, rec)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}
