package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrNoCatalog is returned when no catalog location is configured.
var ErrNoCatalog = errors.New("no recipe catalog configured")

// Config is the in-memory representation of ~/.recipes/recipes.yaml.
type Config struct {
	// Catalog is a catalog file or a directory of recipe files.
	Catalog string `yaml:"catalog"`
	// Library is the directory or URL prefix that recipe file references
	// resolve against.
	Library  string `yaml:"library,omitempty"`
	Language string `yaml:"language,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	Limit    int    `yaml:"limit,omitempty"`
}

// Environment keys that override recipes.yaml.
const (
	EnvHome     = "RECIPES_HOME"
	EnvCatalog  = "RECIPES_CATALOG"
	EnvLibrary  = "RECIPES_LIBRARY"
	EnvLanguage = "RECIPES_LANGUAGE"
	EnvLogLevel = "RECIPES_LOG_LEVEL"
)

// HomeDir returns the absolute path to ~/.recipes/, or $RECIPES_HOME when set.
func HomeDir() (string, error) {
	if v := os.Getenv(EnvHome); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".recipes"), nil
}

// ConfigPath returns the absolute path to recipes.yaml.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recipes.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by recipes init.
func DefaultConfig() (*Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Catalog:  filepath.Join(dir, "catalog"),
		Library:  filepath.Join(dir, "catalog"),
		Language: "de",
		LogLevel: "warn",
		Limit:    0,
	}, nil
}

// Load reads recipes.yaml and applies environment overrides. A missing
// file is not an error: the defaults are used instead.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	p, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", p, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", p, err)
	}

	if err := applyOverrides(cfg); err != nil {
		return nil, err
	}

	if cfg.Catalog, err = ExpandPath(cfg.Catalog); err != nil {
		return nil, err
	}
	if !IsURL(cfg.Library) {
		if cfg.Library, err = ExpandPath(cfg.Library); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyOverrides copies process env values, then .env values, over cfg.
func applyOverrides(cfg *Config) error {
	dotenv, err := LoadDotEnv()
	if err != nil {
		return err
	}
	for key, dst := range map[string]*string{
		EnvCatalog:  &cfg.Catalog,
		EnvLibrary:  &cfg.Library,
		EnvLanguage: &cfg.Language,
		EnvLogLevel: &cfg.LogLevel,
	} {
		v := os.Getenv(key)
		if v == "" {
			v = dotenv[key]
		}
		if v != "" {
			*dst = v
		}
	}
	return nil
}

// Save marshals cfg and writes it to recipes.yaml while holding
// recipes.yaml.lock.
func Save(cfg *Config) error {
	p, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(p), err)
	}

	l := flock.New(p + ".lock")
	locked, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("cannot acquire config lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("config is being written by another process (lock: %s.lock)", p)
	}
	defer func() { _ = l.Unlock() }()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", p, err)
	}
	return nil
}

// Validate reports configuration that cannot be used for searching.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog) == "" {
		return ErrNoCatalog
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	return nil
}

// ResolveFile joins a recipe's file reference onto the library location.
// Absolute references and URLs are returned unchanged.
func (c *Config) ResolveFile(file string) string {
	if file == "" || IsURL(file) || filepath.IsAbs(file) {
		return file
	}
	if c.Library == "" {
		return file
	}
	if IsURL(c.Library) {
		u, err := url.Parse(c.Library)
		if err != nil {
			return file
		}
		u.Path = path.Join(u.Path, file)
		return u.String()
	}
	return filepath.Join(c.Library, filepath.FromSlash(file))
}

// IsURL reports whether s is an http(s) location.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
