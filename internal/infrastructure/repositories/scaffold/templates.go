package scaffold

import "text/template"

const namespaceInit = "__path__ = __import__('pkgutil').extend_path(__path__, __name__)\n"

const moduleExample = `def add_1(i):
    return i + 1
`

const gitIgnore = `build/
.cache/
.coverage
.python-version
dist/
docs/build/
.DS_Store
.idea/
*.egg-info/
*.log
*.pyc
.tox/
venv/
.vscode/
wheelhouse/
`

const setupPy = `# UPDATE SETTINGS IN setup.cfg.
from setuptools import setup

setup()
`

const monorepoReadme = "# {{ .Title }}\n\n" +
	"A Python monorepo of namespaced packages, managed with `monopy`.\n\n" +
	"### Link to all packages [documentation](docs.md)\n\n" +
	"## Commands\n\n" +
	"* `monopy new <namespace>.<name>` - Creates a new template package.\n" +
	"* `monopy test [--dry-run] [--all] [--name NAME]` - Tests packages and package dependents that have changed.\n" +
	"* `monopy install <name>` - Installs a package and its local dependencies.\n" +
	"* `monopy deploy [--package-name NAME]` - Runs deploy.py of changed packages.\n\n" +
	"## Configuration\n\n" +
	"`python_requires` in a package's `setup.cfg` lists the Python versions its tests run against,\n" +
	"e.g. `python_requires = 2.7, 3.7`.\n"

//nolint:gochecknoglobals // parsed once
var (
	testExample = template.Must(template.New("test_module.py").Parse(`import unittest

from {{ .Dotted }}.module import add_1


class ExampleTest(unittest.TestCase):

    def test_example(self):
        result = add_1(1)
        self.assertTrue(result == 2)
`))

	deployScript = template.Must(template.New("deploy.py").Parse(
		`# Called by ` + "`monopy deploy`" + ` when files of this package have changed.
print('No deploy commands set for: {{ .Leaf }}')
`))

	packageReadme = template.Must(template.New("README.md").Parse("# {{ .Dotted }}\n\n" +
		"**Table of Contents**\n\n" +
		"* [Installation](#installation)\n" +
		"* [Tutorial](#tutorial)\n\n" +
		"## Installation\n\n" +
		"```bash\nmonopy install {{ .FullName }}\n```\n\n" +
		"## Tutorial\n\n" +
		"```python\nimport {{ .Dotted }}\n```\n"))

	setupCfg = template.Must(template.New("setup.cfg").Parse(`# https://setuptools.readthedocs.io/en/latest/setuptools.html#configuring-setup-using-setup-cfg-files

[metadata]
name = {{ .FullName }}
version = 0.0.1
description = Your package description!
long_description = file: README.md

[options]
# Namespace packages are not zip safe
zip_safe = False
packages = find:
python_requires = {{ .PythonVersion }}
install_requires =
{{- range .Requirements }}
    {{ . }}
{{- end }}

[options.packages.find]
exclude =
    tests
`))

	monorepoReadmeTemplate = template.Must(template.New("README.md").Parse(monorepoReadme))

	docsIndex = template.Must(template.New("docs.md").Parse(`# Documentation Index
{{ range . }}
- [{{ .Title }}]({{ .Dir }}/README.md)
{{- end }}
`))
)
