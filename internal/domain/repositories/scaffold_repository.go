package repositories

import "github.com/rios0rios0/monopy/internal/domain/entities"

// ScaffoldRepository writes the monorepo and package templates.
type ScaffoldRepository interface {
	// WriteMonorepo writes the settings file, README, .gitignore, tox.ini and docs.md.
	WriteMonorepo(root string, settings *entities.Settings) error

	// WritePackage creates a new package under dir.
	WritePackage(dir string, name *entities.PackageName) error

	// Sync regenerates tox.ini and docs.md from the current package set.
	Sync(root string, packages []*entities.Package) error
}
