package scenario

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Paths helper for default/scenario files.
type Paths struct {
	BaseDir string // e.g. ~/.config/cubes
}

// DefaultPath is the base scenario every named scenario is layered on.
func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}

// ScenarioPath is the file holding the named scenario.
func (p Paths) ScenarioPath(name string) string {
	return filepath.Join(p.BaseDir, "scenarios", name+".yaml")
}

// Loader reads YAML scenarios and merges default → scenario.
type Loader struct {
	paths Paths
}

// NewLoader creates a scenario loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{paths: Paths{BaseDir: baseDir}}
}

// LoadMerged loads default.yaml and, if name is not empty, scenarios/<name>.yaml
// on top of it. Either file may be missing.
func (l *Loader) LoadMerged(name string) (RawConfig, error) {
	merged, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, errors.Wrap(err, "read default")
	}
	if name == "" {
		return merged, nil
	}
	sc, err := readYAML(l.paths.ScenarioPath(name))
	if err != nil {
		return RawConfig{}, errors.Wrapf(err, "read scenario %q", name)
	}
	return mergeRaw(merged, sc), nil
}

// ReadFile loads a single scenario file. Unlike LoadMerged, the file must exist.
func ReadFile(path string) (RawConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, errors.Wrap(err, "read scenario")
	}
	return decode(b, path)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	return decode(b, path)
}

func decode(b []byte, path string) (RawConfig, error) {
	var cfg RawConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: every field set in b wins.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.Budget != nil {
		out.Budget = b.Budget
	}

	switch {
	case out.Demand == nil && b.Demand != nil:
		c := *b.Demand
		out.Demand = &c
	case out.Demand != nil && b.Demand != nil:
		c := *out.Demand
		dst, src := c.slots(), b.Demand.slots()
		for t := range dst {
			if *src[t] != nil {
				*dst[t] = *src[t]
			}
		}
		out.Demand = &c
	}
	return out
}
