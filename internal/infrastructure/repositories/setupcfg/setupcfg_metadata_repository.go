package setupcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-ini/ini"
	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

const (
	// FileName is the setuptools declarative config read for every package.
	FileName = "setup.cfg"

	cacheSize = 512
)

type cachedMetadata struct {
	modTime  time.Time
	metadata *entities.Metadata
}

// MetadataRepository implements repositories.MetadataRepository over setup.cfg files.
// Parsed files are cached per directory until their modification time changes.
type MetadataRepository struct {
	cache *lru.Cache[string, cachedMetadata]
}

// NewMetadataRepository creates a setup.cfg backed metadata repository.
func NewMetadataRepository() (repositories.MetadataRepository, error) {
	cache, err := lru.New[string, cachedMetadata](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}
	return &MetadataRepository{cache: cache}, nil
}

// Load parses <dir>/setup.cfg.
func (r *MetadataRepository) Load(dir string) (*entities.Metadata, error) {
	path := filepath.Join(dir, FileName)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		logger.Debugf("`%s` is not a package.", dir)
		return nil, fmt.Errorf("%w: no %s in %s", entities.ErrPackageNotFound, FileName, dir)
	}

	if cached, ok := r.cache.Get(dir); ok && cached.modTime.Equal(info.ModTime()) {
		return cached.metadata, nil
	}

	meta, err := parse(path)
	if err != nil {
		logger.Debugf("`%s` has an invalid %s: %v", dir, FileName, err)
		return nil, fmt.Errorf("%w: %v", entities.ErrPackageNotFound, err)
	}

	r.cache.Add(dir, cachedMetadata{modTime: info.ModTime(), metadata: meta})
	return meta, nil
}

func parse(path string) (*entities.Metadata, error) {
	//nolint:exhaustruct // only the options that differ from the defaults
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
		InsensitiveKeys:            true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	metadata, err := cfg.GetSection("metadata")
	if err != nil {
		return nil, fmt.Errorf("%s has no [metadata] section", path)
	}
	name := strings.TrimSpace(metadata.Key("name").String())
	if name == "" {
		return nil, fmt.Errorf("%s has no [metadata] name", path)
	}

	meta := &entities.Metadata{Name: name, Requirements: make([]string, 0)}

	options, err := cfg.GetSection("options")
	if err != nil {
		return meta, nil //nolint:nilerr // a package without [options] has no requirements
	}

	meta.Requirements = splitRequirements(options.Key("install_requires").String())
	meta.PythonRequires = strings.TrimSpace(options.Key("python_requires").String())
	return meta, nil
}

// splitRequirements splits a multiline install_requires value. The header line
// after "install_requires =" is conventionally blank and skipped like any blank line.
func splitRequirements(raw string) []string {
	lines := strings.Split(raw, "\n")
	requirements := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		requirements = append(requirements, line)
	}
	return requirements
}
