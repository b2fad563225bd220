package monorepo

import (
	"sort"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// ImpactPropagator extends a set of changed packages with their dependents.
type ImpactPropagator struct {
	resolver *Resolver
}

// NewImpactPropagator creates an ImpactPropagator using resolver.
func NewImpactPropagator(resolver *Resolver) *ImpactPropagator {
	return &ImpactPropagator{resolver: resolver}
}

// Impacted returns changed plus every package of all that depends on a changed
// package, directly or transitively. A single pass is enough because Resolve
// already returns the transitive closure of each package.
func (p *ImpactPropagator) Impacted(
	changed map[string]*entities.Package,
	all []*entities.Package,
) (map[string]*entities.Package, error) {
	impacted := make(map[string]*entities.Package, len(changed))
	for name, pkg := range changed {
		impacted[name] = pkg
	}

	for _, pkg := range all {
		res, err := p.resolver.Resolve(pkg)
		if err != nil {
			return nil, err
		}

		for _, dep := range res.Local {
			if _, ok := changed[dep.Name]; ok {
				impacted[pkg.Name] = pkg
				break
			}
		}
	}

	return impacted, nil
}

// SortedPackages returns the packages of set ordered by name.
func SortedPackages(set map[string]*entities.Package) []*entities.Package {
	packages := make([]*entities.Package, 0, len(set))
	for _, pkg := range set {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	return packages
}

// SortedNames returns the keys of set in order.
func SortedNames(set map[string]*entities.Package) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
