package entities

import (
	"strings"
	"unicode"
)

// Metadata holds the raw values read from a package's setup.cfg.
type Metadata struct {
	Name           string
	Requirements   []string // install_requires, as written
	PythonRequires string   // python_requires, as written
}

// Requirement is a single install_requires specifier.
type Requirement struct {
	Raw        string // e.g. "wheel==1.1"
	Name       string // e.g. "wheel"
	Constraint string // e.g. "==1.1", empty when unpinned
}

// versionOperatorChars are the characters a PEP 440 specifier may start with.
const versionOperatorChars = "=<>!~;[ "

// ParseRequirement splits a specifier into its name and version constraint.
func ParseRequirement(raw string) Requirement {
	trimmed := strings.TrimSpace(raw)
	idx := strings.IndexAny(trimmed, versionOperatorChars)
	if idx < 0 {
		return Requirement{Raw: trimmed, Name: trimmed}
	}
	return Requirement{
		Raw:        trimmed,
		Name:       strings.TrimSpace(trimmed[:idx]),
		Constraint: strings.TrimSpace(trimmed[idx:]),
	}
}

// Pinned returns the exact version when the constraint is "==X", or "".
func (r Requirement) Pinned() string {
	if !strings.HasPrefix(r.Constraint, "==") || strings.Contains(r.Constraint, ",") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(r.Constraint, "=="))
}

// ParseRuntimeVersions splits a python_requires value ("2.7, 3.7") into versions.
func ParseRuntimeVersions(raw string) []string {
	versions := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

// RuntimeTag maps a runtime version to a tox environment tag: "3.7" -> "py37".
// Operators such as ">=" are dropped along with every other non-digit.
func RuntimeTag(version string) string {
	var sb strings.Builder
	sb.WriteString("py")
	for _, r := range version {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
