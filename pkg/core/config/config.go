// Package config resolves where report data and case lists live.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no --config flag is given. A missing file at this
// path is not an error.
const DefaultPath = "config/vqa.yaml"

// Environment overrides
const (
	EnvCasesPath   = "VQA_CASES_PATH"
	EnvPromptDir   = "VQA_PROMPT_DIR"
	EnvLenientJSON = "VQA_LENIENT_JSON"
	EnvRootPrefix  = "VQA_ROOT_" // VQA_ROOT_CHINESE=/data/Chinese
)

type Config struct {
	// Roots maps a dataset language to the directory holding reports/metric/.
	Roots       map[string]string `yaml:"roots"`
	CasesPath   string            `yaml:"cases_path"`
	PromptDir   string            `yaml:"prompt_dir"`
	LenientJSON bool              `yaml:"lenient_json"`
}

// Default returns the stock layout. Edit config/vqa.yaml or set the VQA_*
// variables to point at real data.
func Default() Config {
	return Config{
		Roots: map[string]string{
			"chinese": "/path/to/data/Chinese",
		},
		CasesPath: "/path/to/test.json",
	}
}

// Load builds a Config from defaults, the YAML file at path, then the
// environment, in that order of precedence (last wins).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.merge(fileCfg)
	case os.IsNotExist(err) && path == DefaultPath:
		// defaults only
	default:
		return Config{}, err
	}

	if err := cfg.applyEnv(os.Environ()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) merge(other Config) {
	for lang, root := range other.Roots {
		c.Roots[strings.ToLower(lang)] = root
	}
	if other.CasesPath != "" {
		c.CasesPath = other.CasesPath
	}
	if other.PromptDir != "" {
		c.PromptDir = other.PromptDir
	}
	if other.LenientJSON {
		c.LenientJSON = true
	}
}

func (c *Config) applyEnv(environ []string) error {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch {
		case key == EnvCasesPath:
			c.CasesPath = value
		case key == EnvPromptDir:
			c.PromptDir = value
		case key == EnvLenientJSON:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid %s=%q: %w", EnvLenientJSON, value, err)
			}
			c.LenientJSON = b
		case strings.HasPrefix(key, EnvRootPrefix) && len(key) > len(EnvRootPrefix):
			c.Roots[strings.ToLower(strings.TrimPrefix(key, EnvRootPrefix))] = value
		}
	}
	return nil
}
