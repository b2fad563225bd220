package entities

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the monorepo marker written by `monopy init`.
const SettingsFileName = ".monopy.yaml"

// settingsFileNames are probed in order by FindSettingsFile.
var settingsFileNames = []string{SettingsFileName, ".monopy.yml"} //nolint:gochecknoglobals // lookup table

// Settings is the monorepo configuration.
type Settings struct {
	DefaultBranches []string `yaml:"default_branches"` // candidates for the parent branch
	Remote          string   `yaml:"remote"`
	Ignore          []string `yaml:"ignore"` // doublestar patterns for changes that never count
	TestRunner      string   `yaml:"test_runner"`
	Python          string   `yaml:"python"`
	Pip             string   `yaml:"pip"`
	Wheelhouse      string   `yaml:"wheelhouse"` // relative to the root
}

// DefaultSettings returns the settings written by `monopy init`.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultBranches: []string{"main", "master"},
		Remote:          "origin",
		Ignore:          []string{"README.md"},
		TestRunner:      "tox",
		Python:          "python",
		Pip:             "pip",
		Wheelhouse:      "wheelhouse",
	}
}

// NewSettings reads and parses a settings file, filling unset fields with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := &Settings{}
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.applyDefaults()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindSettingsFile returns the settings file of the monorepo rooted at root.
func FindSettingsFile(root string) (string, error) {
	for _, name := range settingsFileNames {
		p := filepath.Join(root, name)
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}
	return "", ErrNotInitialized
}

// LoadSettings finds and parses the settings file of root.
func LoadSettings(root string) (*Settings, error) {
	path, err := FindSettingsFile(root)
	if err != nil {
		return nil, err
	}
	return NewSettings(path)
}

// Marshal renders the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// WheelhouseDir returns the absolute wheelhouse directory for root.
func (s *Settings) WheelhouseDir(root string) string {
	if filepath.IsAbs(s.Wheelhouse) {
		return s.Wheelhouse
	}
	return filepath.Join(root, s.Wheelhouse)
}

func (s *Settings) applyDefaults() {
	defaults := DefaultSettings()
	if len(s.DefaultBranches) == 0 {
		s.DefaultBranches = defaults.DefaultBranches
	}
	if s.Remote == "" {
		s.Remote = defaults.Remote
	}
	if s.Ignore == nil {
		s.Ignore = defaults.Ignore
	}
	if s.TestRunner == "" {
		s.TestRunner = defaults.TestRunner
	}
	if s.Python == "" {
		s.Python = defaults.Python
	}
	if s.Pip == "" {
		s.Pip = defaults.Pip
	}
	if s.Wheelhouse == "" {
		s.Wheelhouse = defaults.Wheelhouse
	}
}

func (s *Settings) validate() error {
	for i, branch := range s.DefaultBranches {
		if branch == "" {
			return fmt.Errorf("default_branches[%d] must not be empty", i)
		}
	}
	for i, pattern := range s.Ignore {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("ignore[%d] is not a valid pattern: %q", i, pattern)
		}
	}
	return nil
}
