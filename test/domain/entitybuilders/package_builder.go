//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/monopy/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageBuilder helps create test packages with a fluent interface.
type PackageBuilder struct {
	*testkit.BaseBuilder
	name            string
	dir             string
	requirements    []string
	runtimeVersions []string
}

// NewPackageBuilder creates a new package builder with sensible defaults.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "company_packagea",
		dir:             "/monorepo/packagea",
		runtimeVersions: []string{"3.7"},
	}
}

// WithName sets the fully-qualified name and derives the directory from it.
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	b.dir = "/monorepo/" + entities.PackageDirName(name)
	return b
}

// WithDir sets the package directory.
func (b *PackageBuilder) WithDir(dir string) *PackageBuilder {
	b.dir = dir
	return b
}

// WithRequirements sets the raw install_requires entries.
func (b *PackageBuilder) WithRequirements(requirements ...string) *PackageBuilder {
	b.requirements = requirements
	return b
}

// WithRuntimeVersions sets the python_requires versions.
func (b *PackageBuilder) WithRuntimeVersions(versions ...string) *PackageBuilder {
	b.runtimeVersions = versions
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *PackageBuilder) Build() interface{} {
	return b.BuildPackage()
}

// BuildPackage creates the package with a concrete return type.
func (b *PackageBuilder) BuildPackage() *entities.Package {
	requirements := make([]entities.Requirement, 0, len(b.requirements))
	for _, raw := range b.requirements {
		requirements = append(requirements, entities.ParseRequirement(raw))
	}
	return &entities.Package{
		Name:            b.name,
		Dir:             b.dir,
		Requirements:    requirements,
		RuntimeVersions: append([]string(nil), b.runtimeVersions...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "company_packagea"
	b.dir = "/monorepo/packagea"
	b.requirements = nil
	b.runtimeVersions = []string{"3.7"}
	return b
}

// Clone creates a deep copy of the PackageBuilder.
func (b *PackageBuilder) Clone() testkit.Builder {
	return &PackageBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		dir:             b.dir,
		requirements:    append([]string(nil), b.requirements...),
		runtimeVersions: append([]string(nil), b.runtimeVersions...),
	}
}
