package entities

import (
	"regexp"
	"strings"
)

var segmentPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// PackageName is a validated `<namespace>[.<namespace>...].<name>` argument.
type PackageName struct {
	Namespaces []string
	Leaf       string
}

// ParsePackageName validates the name given to `monopy new`.
// Underscores are rejected because the fully-qualified name uses them as separator.
func ParsePackageName(raw string) (*PackageName, error) {
	segments := strings.Split(raw, ".")
	if len(segments) < 2 { //nolint:mnd // namespace + name
		return nil, &PackageNamingError{Name: raw, Reason: "a <namespace>.<name> is required"}
	}

	for _, segment := range segments {
		if !segmentPattern.MatchString(segment) {
			return nil, &PackageNamingError{
				Name:   raw,
				Reason: "segment \"" + segment + "\" must be lowercase letters and digits, starting with a letter",
			}
		}
	}

	return &PackageName{
		Namespaces: segments[:len(segments)-1],
		Leaf:       segments[len(segments)-1],
	}, nil
}

// Dotted returns the import path, e.g. "company.packagea".
func (n *PackageName) Dotted() string {
	return strings.Join(append(append([]string{}, n.Namespaces...), n.Leaf), ".")
}

// FullName returns the distribution name, e.g. "company_packagea".
func (n *PackageName) FullName() string {
	return strings.ReplaceAll(n.Dotted(), ".", "_")
}
