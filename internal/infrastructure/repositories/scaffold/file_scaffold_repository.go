package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/go-ini/ini"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

const (
	// DefaultPythonVersion is written to the python_requires of new packages.
	DefaultPythonVersion = "3.7"

	dirMode  = 0o755
	fileMode = 0o644

	toxFileName  = "tox.ini"
	docsFileName = "docs.md"
)

type packageData struct {
	Dotted        string
	FullName      string
	Leaf          string
	PythonVersion string
	Requirements  []string
}

type docsEntry struct {
	Title string
	Dir   string
}

// FileScaffoldRepository implements repositories.ScaffoldRepository on the local filesystem.
type FileScaffoldRepository struct{}

// NewFileScaffoldRepository creates a filesystem scaffolder.
func NewFileScaffoldRepository() repositories.ScaffoldRepository {
	return &FileScaffoldRepository{}
}

// WriteMonorepo writes the files of an empty monorepo.
func (r *FileScaffoldRepository) WriteMonorepo(root string, settings *entities.Settings) error {
	settingsContent, err := settings.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render settings: %w", err)
	}
	if err = writeFile(root, entities.SettingsFileName, string(settingsContent)); err != nil {
		return err
	}

	readme, err := render(monorepoReadmeTemplate, struct{ Title string }{Title: filepath.Base(root)})
	if err != nil {
		return err
	}
	if err = writeFile(root, "README.md", readme); err != nil {
		return err
	}
	if err = writeFile(root, ".gitignore", gitIgnore); err != nil {
		return err
	}

	return r.Sync(root, nil)
}

// WritePackage creates the namespace tree, example module, tests, deploy
// script, README and setuptools files of a new package in dir.
func (r *FileScaffoldRepository) WritePackage(dir string, name *entities.PackageName) error {
	data := packageData{
		Dotted:        name.Dotted(),
		FullName:      name.FullName(),
		Leaf:          name.Leaf,
		PythonVersion: DefaultPythonVersion,
	}

	namespaceDir := dir
	for _, namespace := range name.Namespaces {
		namespaceDir = filepath.Join(namespaceDir, namespace)
		if err := writeFile(namespaceDir, "__init__.py", namespaceInit); err != nil {
			return err
		}
	}

	moduleDir := filepath.Join(namespaceDir, name.Leaf)
	if err := writeFile(moduleDir, "__init__.py", ""); err != nil {
		return err
	}
	if err := writeFile(moduleDir, "module.py", moduleExample); err != nil {
		return err
	}

	testsDir := filepath.Join(dir, "tests")
	if err := writeFile(testsDir, "__init__.py", ""); err != nil {
		return err
	}

	files := []struct {
		dir  string
		name string
		tmpl *template.Template
	}{
		{testsDir, "test_module.py", testExample},
		{dir, "deploy.py", deployScript},
		{dir, "README.md", packageReadme},
		{dir, "setup.cfg", setupCfg},
	}
	for _, f := range files {
		content, err := render(f.tmpl, data)
		if err != nil {
			return err
		}
		if err = writeFile(f.dir, f.name, content); err != nil {
			return err
		}
	}

	return writeFile(dir, "setup.py", setupPy)
}

// Sync regenerates tox.ini and docs.md so that they list every package.
func (r *FileScaffoldRepository) Sync(root string, packages []*entities.Package) error {
	if err := writeTox(root, packages); err != nil {
		return err
	}

	entries := make([]docsEntry, 0, len(packages))
	for _, pkg := range packages {
		entries = append(entries, docsEntry{
			Title: strings.ReplaceAll(pkg.Name, "_", "."),
			Dir:   pkg.DirName(),
		})
	}
	docs, err := render(docsIndex, entries)
	if err != nil {
		return err
	}

	logger.Debugf("Synced %s and %s with %d packages", toxFileName, docsFileName, len(packages))
	return writeFile(root, docsFileName, docs)
}

// writeTox renders one tox environment per package and runtime version.
func writeTox(root string, packages []*entities.Package) error {
	cfg := ini.Empty()

	envs := make([]string, 0)
	for _, pkg := range packages {
		envs = append(envs, pkg.ToolchainEnvs()...)
	}

	toxSection, err := cfg.NewSection("tox")
	if err != nil {
		return err
	}
	if _, err = toxSection.NewKey("envlist", strings.Join(envs, ",")); err != nil {
		return err
	}
	if _, err = toxSection.NewKey("skipsdist", "true"); err != nil {
		return err
	}

	for _, pkg := range packages {
		for i, tag := range pkg.RuntimeTags() {
			section, sectionErr := cfg.NewSection("testenv:" + tag + "-" + pkg.Name)
			if sectionErr != nil {
				return sectionErr
			}
			keys := [][2]string{
				{"basepython", "python" + versionDigits(pkg.RuntimeVersions[i])},
				{"changedir", "{toxinidir}/" + pkg.DirName()},
				{"deps", "-e{toxinidir}/" + pkg.DirName()},
				{"commands", "python -m unittest discover -s tests"},
			}
			for _, kv := range keys {
				if _, err = section.NewKey(kv[0], kv[1]); err != nil {
					return err
				}
			}
		}
	}

	var buf bytes.Buffer
	if _, err = cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", toxFileName, err)
	}
	return writeFile(root, toxFileName, buf.String())
}

// versionDigits drops specifier operators: ">=3.7" -> "3.7".
func versionDigits(version string) string {
	return strings.TrimLeft(strings.TrimSpace(version), "<>=!~ ")
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func writeFile(dir, name, content string) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
