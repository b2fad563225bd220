package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPackageNotFound is returned when a directory has no readable setup.cfg.
	ErrPackageNotFound = errors.New("package does not exist")

	// ErrNotInitialized is returned when the root has no settings file.
	ErrNotInitialized = errors.New("monorepo is not initialized, run `monopy init` in an empty directory first")

	// ErrNoRepositoryHistory is returned when there is nothing to diff against.
	ErrNoRepositoryHistory = errors.New("no version control history found")

	// ErrDirectoryNotEmpty is returned by `monopy init` outside an empty directory.
	ErrDirectoryNotEmpty = errors.New("you must start a monorepo in an empty directory")

	// ErrPackageExists is returned by `monopy new` when the package directory is taken.
	ErrPackageExists = errors.New("package directory already exists")

	// ErrNoMatchingDistribution is returned by pip when a package is not in the wheelhouse or the index.
	ErrNoMatchingDistribution = errors.New("no matching distribution found")
)

// PackageNamingError reports an invalid `<namespace>.<name>` argument.
type PackageNamingError struct {
	Name   string
	Reason string
}

func (e *PackageNamingError) Error() string {
	return fmt.Sprintf("invalid package name %q: %s", e.Name, e.Reason)
}

// SelfDependencyError is returned when a package lists itself in install_requires.
type SelfDependencyError struct {
	Package string
}

func (e *SelfDependencyError) Error() string {
	return fmt.Sprintf("package %s is dependent on itself", e.Package)
}

// CycleError is returned when the local dependency graph is not acyclic.
// Members holds the cycle in path order, first and last entries being equal.
type CycleError struct {
	Members []string
}

func (e *CycleError) Error() string {
	return "circular dependency detected: " + strings.Join(e.Members, " -> ")
}

// ProcessError is returned when an external command exits with a non-zero status.
type ProcessError struct {
	Command []string
	Output  string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("command `%s` failed: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
