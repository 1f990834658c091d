// Package config loads targetinfo.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"targetinfo/internal/trace"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "targetinfo.toml"

// Config is the decoded manifest.
type Config struct {
	Path    string        `toml:"-"`
	Targets TargetsConfig `toml:"targets"`
	Trace   TraceConfig   `toml:"trace"`
}

// TargetsConfig selects target families and the default lookup triple.
type TargetsConfig struct {
	Enabled []string `toml:"enabled"`
	Default string   `toml:"default"`
}

// TraceConfig sets the trace level when no --trace-level flag is given.
type TraceConfig struct {
	Level string `toml:"level"`
}

// TraceLevel parses Trace.Level.
func (c Config) TraceLevel() (trace.Level, error) {
	return trace.ParseLevel(c.Trace.Level)
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes and validates the manifest at path.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("targets", "enabled") {
		for i, fam := range cfg.Targets.Enabled {
			if strings.TrimSpace(fam) == "" {
				return Config{}, fmt.Errorf("%s: [targets].enabled[%d] is empty", path, i)
			}
		}
	}
	if meta.IsDefined("targets", "default") && strings.TrimSpace(cfg.Targets.Default) == "" {
		return Config{}, fmt.Errorf("%s: [targets].default is empty", path)
	}
	if _, err := cfg.TraceLevel(); err != nil {
		return Config{}, fmt.Errorf("%s: [trace].level: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadFrom finds and loads the manifest nearest to startDir. ok is false when
// no manifest exists; the zero Config is returned in that case.
func LoadFrom(startDir string) (Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Config{}, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}
