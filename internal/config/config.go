package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"putscope/internal/logger"
)

// DefaultPathDepthLimit bounds the Copy-path parent walk. It is a guard
// against corrupt parent chains, not a statement about real folder depth,
// so it stays user-configurable.
const DefaultPathDepthLimit = 256

// Config holds all putscope configuration
type Config struct {
	OAuthToken     string `json:"oauth_token"`
	BaseURL        string `json:"base_url"`         // override for the API root; empty = api.put.io
	DownloadDir    string `json:"download_dir"`     // where downloads land; empty = current directory
	PathDepthLimit int    `json:"path_depth_limit"` // max hops for the Copy-path parent walk
}

// Load reads config from ~/.config/putscope/config.json, writing defaults
// on first run. The PUTIO_OAUTH_TOKEN environment variable overrides the
// stored token.
func Load() *Config {
	configPath, err := Path()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		configPath = "config.json"
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(configPath), err)
	}

	defaultConfig := &Config{
		PathDepthLimit: DefaultPathDepthLimit,
	}

	config := defaultConfig
	data, err := os.ReadFile(configPath)
	if err != nil {
		// First run: persist the defaults so users can see and edit them.
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
	} else {
		config = &Config{}
		if err := json.Unmarshal(data, config); err != nil {
			logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
			config = defaultConfig
		}
	}

	if token := os.Getenv("PUTIO_OAUTH_TOKEN"); token != "" {
		config.OAuthToken = token
	}

	if config.PathDepthLimit <= 0 {
		config.PathDepthLimit = DefaultPathDepthLimit
	} else if config.PathDepthLimit > 4096 {
		logger.Warn("path_depth_limit too high (%d), using maximum of 4096", config.PathDepthLimit)
		config.PathDepthLimit = 4096
	}

	return config
}

// Save writes config to ~/.config/putscope/config.json
func Save(config *Config) error {
	configPath, err := Path()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		logger.Error("Failed to create config directory: %v", err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "putscope", "config.json"), nil
}
