package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// PinConflict is an external requirement pinned to different versions across packages.
type PinConflict struct {
	Requirement string
	Versions    map[string][]string // pinned version -> package names
}

// SortedVersions returns the conflicting versions, lowest first.
// Versions that are not semver-like sort after the others, lexically.
func (c PinConflict) SortedVersions() []string {
	versions := make([]string, 0, len(c.Versions))
	for v := range c.Versions {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		vi, vj := "v"+versions[i], "v"+versions[j]
		validI, validJ := semver.IsValid(vi), semver.IsValid(vj)
		switch {
		case validI && validJ:
			if cmp := semver.Compare(vi, vj); cmp != 0 {
				return cmp < 0
			}
			return versions[i] < versions[j]
		case validI != validJ:
			return validI
		default:
			return versions[i] < versions[j]
		}
	})
	return versions
}

// String renders the conflict for a log line.
func (c PinConflict) String() string {
	parts := make([]string, 0, len(c.Versions))
	for _, v := range c.SortedVersions() {
		parts = append(parts, v+" ("+strings.Join(c.Versions[v], ", ")+")")
	}
	return c.Requirement + ": " + strings.Join(parts, " vs ")
}

// FindPinConflicts reports every external requirement that two packages pin differently.
// Requirement names are compared case-insensitively; local packages must be excluded by the caller.
func FindPinConflicts(packages []*Package) []PinConflict {
	pins := make(map[string]map[string][]string)
	for _, pkg := range packages {
		for _, req := range pkg.Requirements {
			version := req.Pinned()
			if version == "" {
				continue
			}
			key := strings.ToLower(req.Name)
			if pins[key] == nil {
				pins[key] = make(map[string][]string)
			}
			pins[key][version] = append(pins[key][version], pkg.Name)
		}
	}

	conflicts := make([]PinConflict, 0)
	for name, versions := range pins {
		if len(versions) > 1 {
			conflicts = append(conflicts, PinConflict{Requirement: name, Versions: versions})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Requirement < conflicts[j].Requirement
	})
	return conflicts
}
