// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "ytgrid"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", appName, "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	_, statErr := os.Stat(configPath)
	exists := statErr == nil
	if exists {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	if exists {
		commands, err := loadCommands(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Commands = commands
	}

	store.Settings = applyDefaultPaths(cfg.WithDefaultCommands())

	// Save defaults if new file
	if !exists {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.configPath
}

// EnsureDirectories creates every directory the application writes into.
func (s *Store) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(s.Settings.HistoryFile),
		s.Settings.CacheDir,
		filepath.Dir(s.Settings.LogFile),
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

func applyDefaultPaths(cfg settings.Settings) settings.Settings {
	cfg.Invidious = strings.TrimRight(strings.TrimSpace(cfg.Invidious), "/")
	if strings.TrimSpace(cfg.HistoryFile) == "" {
		cfg.HistoryFile = filepath.Join(defaultDataHome(), appName, "history.db")
	}
	if strings.TrimSpace(cfg.CacheDir) == "" {
		cfg.CacheDir = filepath.Join(defaultCacheHome(), appName)
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		cfg.LogFile = filepath.Join(defaultDataHome(), appName, appName+".log")
	}
	if strings.TrimSpace(cfg.DownloadDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DownloadDir = filepath.Join(home, "Downloads")
	}
	return cfg
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func defaultCacheHome() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome != "" {
		return cacheHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".cache")
}

// loadCommands decodes the yaml-only commands section.
func loadCommands(path string) (settings.CommandsConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return settings.CommandsConfig{}, err
	}
	defer func() { _ = f.Close() }()

	var doc struct {
		Commands settings.CommandsConfig `yaml:"commands"`
	}
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return settings.CommandsConfig{}, nil
		}
		return settings.CommandsConfig{}, fmt.Errorf("failed to decode commands: %w", err)
	}
	return doc.Commands, nil
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Nested dot-notation, e.g. keymap.up
			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return v, nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]any); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}
