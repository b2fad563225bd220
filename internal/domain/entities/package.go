package entities

import (
	"path/filepath"
	"strings"
)

// Package is a namespaced Python package living in its own top-level directory.
type Package struct {
	Name            string // fully-qualified, e.g. "company_packagea"
	Dir             string // absolute path of the package directory
	Requirements    []Requirement
	RuntimeVersions []string
}

// NewPackage builds a Package from its directory and parsed setup.cfg.
// When the metadata carries no name, fallbackName is used.
func NewPackage(dir, fallbackName string, meta *Metadata) *Package {
	name := meta.Name
	if name == "" {
		name = fallbackName
	}

	requirements := make([]Requirement, 0, len(meta.Requirements))
	for _, raw := range meta.Requirements {
		if req := ParseRequirement(raw); req.Name != "" {
			requirements = append(requirements, req)
		}
	}

	return &Package{
		Name:            name,
		Dir:             dir,
		Requirements:    requirements,
		RuntimeVersions: ParseRuntimeVersions(meta.PythonRequires),
	}
}

// DirName returns the directory name relative to the monorepo root.
func (p *Package) DirName() string {
	return filepath.Base(p.Dir)
}

// RuntimeTags returns one tox tag per supported runtime version.
func (p *Package) RuntimeTags() []string {
	tags := make([]string, 0, len(p.RuntimeVersions))
	for _, v := range p.RuntimeVersions {
		tags = append(tags, RuntimeTag(v))
	}
	return tags
}

// ToolchainEnvs returns the tox environment ids of the package, e.g. "py37-company_packagea".
func (p *Package) ToolchainEnvs() []string {
	tags := p.RuntimeTags()
	envs := make([]string, 0, len(tags))
	for _, tag := range tags {
		envs = append(envs, tag+"-"+p.Name)
	}
	return envs
}

// PackageDirName infers a package directory from its fully-qualified name:
// the text after the last underscore ("company_packagea" -> "packagea").
func PackageDirName(name string) string {
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
