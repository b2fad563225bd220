package monorepo

import (
	"errors"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Resolution is the transitive closure of a package's requirements.
type Resolution struct {
	Local    []*entities.Package // in-repo packages, first-seen order
	External []string            // raw specifiers, first-seen order
}

// LocalNames returns the names of the local dependencies.
func (r *Resolution) LocalNames() []string {
	names := make([]string, 0, len(r.Local))
	for _, pkg := range r.Local {
		names = append(names, pkg.Name)
	}
	return names
}

// Resolver walks the local dependency graph of a monorepo.
type Resolver struct {
	workspace *Workspace
}

// NewResolver creates a Resolver over workspace.
func NewResolver(workspace *Workspace) *Resolver {
	return &Resolver{workspace: workspace}
}

// Resolve returns every local and external dependency of pkg, transitively.
// Both lists are deduplicated by name, keeping the first occurrence.
func (r *Resolver) Resolve(pkg *entities.Package) (*Resolution, error) {
	return newWalk(r.workspace).resolve(pkg)
}

// walk holds the state of one traversal.
type walk struct {
	workspace *Workspace
	state     map[string]visitState
	path      []string
	memo      map[string]*Resolution
	order     []*entities.Package // post-order: dependencies before dependents
}

func newWalk(workspace *Workspace) *walk {
	return &walk{
		workspace: workspace,
		state:     make(map[string]visitState),
		memo:      make(map[string]*Resolution),
	}
}

func (w *walk) resolve(pkg *entities.Package) (*Resolution, error) {
	if res, ok := w.memo[pkg.Name]; ok {
		return res, nil
	}

	w.enter(pkg)

	res := &Resolution{Local: make([]*entities.Package, 0), External: make([]string, 0)}
	seenLocal := make(map[string]bool)
	seenExternal := make(map[string]bool)

	addLocal := func(dep *entities.Package) {
		if !seenLocal[dep.Name] {
			seenLocal[dep.Name] = true
			res.Local = append(res.Local, dep)
		}
	}
	addExternal := func(spec string) {
		if !seenExternal[spec] {
			seenExternal[spec] = true
			res.External = append(res.External, spec)
		}
	}

	for _, req := range pkg.Requirements {
		dep, err := w.lookup(pkg, req)
		if errors.Is(err, entities.ErrPackageNotFound) {
			addExternal(req.Raw)
			continue
		}
		if err != nil {
			return nil, err
		}

		sub, subErr := w.resolve(dep)
		if subErr != nil {
			return nil, subErr
		}

		addLocal(dep)
		for _, transitive := range sub.Local {
			addLocal(transitive)
		}
		for _, spec := range sub.External {
			addExternal(spec)
		}
	}

	w.leave(pkg)
	w.memo[pkg.Name] = res
	return res, nil
}

// lookup constructs the package required by req, failing on a self-dependency
// and on an edge back into the current path.
func (w *walk) lookup(pkg *entities.Package, req entities.Requirement) (*entities.Package, error) {
	if NormalizeName(req.Name) == NormalizeName(pkg.Name) {
		return nil, &entities.SelfDependencyError{Package: pkg.Name}
	}

	dep, err := w.workspace.PackageByName(req.Name)
	if err != nil {
		return nil, err
	}

	if w.state[dep.Name] == visiting {
		return nil, &entities.CycleError{Members: w.cycleTo(dep.Name)}
	}
	return dep, nil
}

func (w *walk) enter(pkg *entities.Package) {
	w.state[pkg.Name] = visiting
	w.path = append(w.path, pkg.Name)
}

func (w *walk) leave(pkg *entities.Package) {
	w.state[pkg.Name] = visited
	w.path = w.path[:len(w.path)-1]
	w.order = append(w.order, pkg)
}

// cycleTo returns the current path from name back to name.
func (w *walk) cycleTo(name string) []string {
	for i, member := range w.path {
		if member == name {
			cycle := append([]string{}, w.path[i:]...)
			return append(cycle, name)
		}
	}
	return []string{name, name}
}
