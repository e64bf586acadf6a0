// Package config handles ElderSense configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StorageBackend selects the record store implementation.
type StorageBackend string

const (
	BackendSeed   StorageBackend = "seed"   // in-memory store loaded from seed data
	BackendSQLite StorageBackend = "sqlite" // persistent SQLite store
)

// Config holds all configuration
type Config struct {
	// Paths
	DataDir string `json:"data_dir"`

	// Server
	Server ServerConfig `json:"server"`

	// Storage
	Storage StorageConfig `json:"storage"`

	// Completion providers
	Ollama OllamaConfig `json:"ollama"`
	Claude ClaudeConfig `json:"claude"`

	// Features
	Features FeatureConfig `json:"features"`
}

// ServerConfig for HTTP server
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// StorageConfig selects and configures the record store
type StorageConfig struct {
	Backend StorageBackend `json:"backend"`
	Path    string         `json:"path,omitempty"` // SQLite file, defaults under DataDir
}

// OllamaConfig for local LLM
type OllamaConfig struct {
	URL   string `json:"url"`
	Model string `json:"model"`
}

// ClaudeConfig for the Claude API
type ClaudeConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

// FeatureConfig for feature flags
type FeatureConfig struct {
	EnableScheduler bool `json:"enable_scheduler"` // periodic reminder dispatch
	PreferCloud     bool `json:"prefer_cloud"`     // use Claude instead of Ollama
	DebugMode       bool `json:"debug_mode"`
}

// Default returns default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		DataDir: filepath.Join(home, ".eldersense"),
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Backend: BackendSeed,
		},
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "mistral",
		},
		Claude: ClaudeConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  "claude-sonnet-4-20250514",
		},
		Features: FeatureConfig{
			EnableScheduler: true,
			PreferCloud:     false,
			DebugMode:       false,
		},
	}
}

// Load loads config from file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Override API key from env if set
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.Claude.APIKey = apiKey
	}
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		cfg.Ollama.URL = host
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendSeed, BackendSQLite, "":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// SQLitePath returns the SQLite database path, defaulting under DataDir.
func (c *Config) SQLitePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(c.DataDir, "eldersense.db")
}

// Save saves config to file
func (c *Config) Save(path string) error {
	if path == "" {
		path = filepath.Join(c.DataDir, "config.json")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// Don't save API key to file
	safeCfg := *c
	safeCfg.Claude.APIKey = ""

	data, err := json.MarshalIndent(safeCfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
