package monorepo

import "github.com/rios0rios0/monopy/internal/domain/entities"

// InstallOrderer computes the order in which local packages must be installed.
type InstallOrderer struct {
	workspace *Workspace
}

// NewInstallOrderer creates an InstallOrderer over workspace.
func NewInstallOrderer(workspace *Workspace) *InstallOrderer {
	return &InstallOrderer{workspace: workspace}
}

// Order returns pkg and its local dependencies, dependencies first and pkg last.
// A dependency shared by several packages appears once, at its first position.
func (o *InstallOrderer) Order(pkg *entities.Package) ([]*entities.Package, error) {
	w := newWalk(o.workspace)
	if _, err := w.resolve(pkg); err != nil {
		return nil, err
	}
	return w.order, nil
}
