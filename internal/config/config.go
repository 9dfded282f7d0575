// Package config manages gitgraph configuration and the .gitgraph
// directory structure. It handles loading, saving, and initializing the
// database directory configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

const (
	GitgraphDir  = ".gitgraph"
	ConfigFile   = "config"
	DatabaseFile = "graph.db"
)

// Hash algorithm names accepted at init time.
const (
	HashSHA1   = "sha1"
	HashSHA256 = "sha256"
)

// Config represents the gitgraph configuration
type Config struct {
	Database    string `toml:"database"`     // database file name inside .gitgraph
	HashAlgo    string `toml:"hash_algo"`    // "sha1" or "sha256", fixed at init
	DefaultRepo string `toml:"default_repo"` // repo name used when --repo is not given
	path        string // path to .gitgraph directory
}

// FindRoot finds the .gitgraph directory by walking up from the current directory
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		ggPath := filepath.Join(dir, GitgraphDir)
		if info, err := os.Stat(ggPath); err == nil && info.IsDir() {
			return ggPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a gitgraph database (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the .gitgraph directory
func Load() (*Config, error) {
	ggPath, err := FindRoot()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(ggPath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = ggPath
	return &cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// DatabasePath returns the path to the SQLite database file
func (c *Config) DatabasePath() string {
	db := c.Database
	if db == "" {
		db = DatabaseFile
	}
	return filepath.Join(c.path, db)
}

// OidLen returns the object id length in bytes for the configured hash
// algorithm.
func (c *Config) OidLen() (int, error) {
	switch c.HashAlgo {
	case HashSHA1, "":
		return models.OidLenSHA1, nil
	case HashSHA256:
		return models.OidLenSHA256, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm %q", c.HashAlgo)
	}
}

// Initialize creates a new .gitgraph directory with initial configuration
func Initialize(hashAlgo string) (*Config, error) {
	if hashAlgo != HashSHA1 && hashAlgo != HashSHA256 {
		return nil, fmt.Errorf("unknown hash algorithm %q", hashAlgo)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	ggPath := filepath.Join(cwd, GitgraphDir)

	// Check if already initialized
	if _, err := os.Stat(ggPath); err == nil {
		return nil, fmt.Errorf("gitgraph database already exists")
	}

	if err := os.MkdirAll(ggPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .gitgraph directory: %w", err)
	}

	cfg := &Config{
		Database: DatabaseFile,
		HashAlgo: hashAlgo,
		path:     ggPath,
	}

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(ggPath)
		return nil, err
	}

	return cfg, nil
}
