// Package config handles repository and global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/refstyle/config.yml.
type GlobalConfig struct {
	DefaultStyle  string `yaml:"default_style,omitempty"`
	DefaultFormat string `yaml:"default_format,omitempty"`
	MailTo        string `yaml:"mailto,omitempty"`
	StylesPath    string `yaml:"styles_path,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "refstyle"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/refstyle/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.StylesPath != "" {
		cfg.StylesPath = ExpandPath(cfg.StylesPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetMailTo returns the polite-pool contact address from global config.
func GetMailTo() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.MailTo
}

// GetStylesPath returns the user style table path from global config.
func GetStylesPath() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.StylesPath
}

// EffectiveStyle resolves the style to use: explicit flag, then repo
// config, then global config, then the built-in default.
func EffectiveStyle(flag string, repo *Config) string {
	if flag != "" {
		return flag
	}
	if repo != nil && repo.DefaultStyle != "" {
		return repo.DefaultStyle
	}
	cfg, _ := LoadGlobalConfig()
	if cfg.DefaultStyle != "" {
		return cfg.DefaultStyle
	}
	return "APA"
}

// EffectiveFormat resolves the output formatter name the same way.
func EffectiveFormat(flag string, repo *Config) string {
	if flag != "" {
		return flag
	}
	if repo != nil && repo.DefaultFormat != "" {
		return repo.DefaultFormat
	}
	cfg, _ := LoadGlobalConfig()
	if cfg.DefaultFormat != "" {
		return cfg.DefaultFormat
	}
	return "plain"
}
