// Package monorepo resolves the local dependency graph of a monorepo and
// detects which packages are impacted by the changes on the current branch.
package monorepo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// reservedDirs are never packages and may exist in a freshly initialized monorepo.
var reservedDirs = map[string]bool{ //nolint:gochecknoglobals // lookup table
	".git":       true,
	".idea":      true,
	".vscode":    true,
	".tox":       true,
	"wheelhouse": true,
	"venv":       true,
}

// IsReservedDir reports whether name may sit in a monorepo root without being a package.
func IsReservedDir(name string) bool {
	return reservedDirs[name]
}

// Workspace constructs packages of the monorepo rooted at an explicit directory.
type Workspace struct {
	root     string
	metadata repositories.MetadataRepository
}

// NewWorkspace creates a Workspace for root.
func NewWorkspace(root string, metadata repositories.MetadataRepository) *Workspace {
	return &Workspace{root: root, metadata: metadata}
}

// Root returns the monorepo root.
func (w *Workspace) Root() string { return w.root }

// PackageByName loads a package from its fully-qualified name, inferring its directory.
// A directory whose setup.cfg declares a different name is not that package.
func (w *Workspace) PackageByName(name string) (*entities.Package, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", entities.ErrPackageNotFound, name)
	}

	pkg, err := w.PackageByDir(entities.PackageDirName(name))
	if err != nil {
		return nil, err
	}

	if NormalizeName(pkg.Name) != NormalizeName(name) {
		logger.Debugf("`%s` declares %q, not %q", pkg.Dir, pkg.Name, name)
		return nil, fmt.Errorf("%w: %q", entities.ErrPackageNotFound, name)
	}

	return pkg, nil
}

// PackageByDir loads the package in dir, relative to the root unless absolute.
func (w *Workspace) PackageByDir(dir string) (*entities.Package, error) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(w.root, dir)
	}

	meta, err := w.metadata.Load(dir)
	if err != nil {
		return nil, err
	}

	return entities.NewPackage(dir, filepath.Base(dir), meta), nil
}

// Packages returns every package directly under the root, sorted by name.
func (w *Workspace) Packages() ([]*entities.Package, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", w.root, err)
	}

	packages := make([]*entities.Package, 0)
	for _, entry := range entries {
		if !entry.IsDir() || reservedDirs[entry.Name()] || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		pkg, loadErr := w.PackageByDir(entry.Name())
		if loadErr != nil {
			logger.Debugf("`%s` is not a package: %v", entry.Name(), loadErr)
			continue
		}
		packages = append(packages, pkg)
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	return packages, nil
}

// NormalizeName applies Python's distribution name normalization.
func NormalizeName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(strings.ToLower(name))
}
