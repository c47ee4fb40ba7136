// Package config handles repository configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .refstyle/config.json.
type Config struct {
	DefaultStyle  string `json:"default_style,omitempty"`  // e.g. "APA"
	DefaultFormat string `json:"default_format,omitempty"` // e.g. "html+css"
	PDFRoot       string `json:"pdf_root,omitempty"`       // Absolute path to PDF folder
	PDFReader     string `json:"pdf_reader,omitempty"`     // Reader preference: system, skim, zathura, etc.
}

const (
	RefstyleDir = ".refstyle"
	ConfigFile  = "config.json"
	StylesFile  = "styles.json"
	DBFile      = "refs.db"
)

// ValidReaders lists the supported PDF reader values.
var ValidReaders = []string{"system", "skim", "preview", "zathura", "evince", "okular"}

// RefstylePath returns the path to the .refstyle directory from a root path.
func RefstylePath(root string) string {
	return filepath.Join(root, RefstyleDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, RefstyleDir, ConfigFile)
}

// StylesPath returns the path to styles.json from a root path.
func StylesPath(root string) string {
	return filepath.Join(root, RefstyleDir, StylesFile)
}

// DBPath returns the path to refs.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, RefstyleDir, DBFile)
}

// IsRepository checks if the given path contains a refstyle repository.
func IsRepository(root string) bool {
	info, err := os.Stat(RefstylePath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a refstyle repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a refstyle repository (no .refstyle directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
// A missing config file yields an empty config, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidatePDFRoot checks that the PDF root path exists and is a directory.
func ValidatePDFRoot(path string) error {
	if path == "" {
		return nil // Empty is allowed (not yet configured)
	}

	expandedPath := ExpandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expandedPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", expandedPath)
	}

	return nil
}

// ValidatePDFReader checks that the reader value is valid.
func ValidatePDFReader(reader string) error {
	if reader == "" {
		return nil // Empty defaults to "system"
	}

	for _, valid := range ValidReaders {
		if reader == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid pdf_reader: %s (valid: %v)", reader, ValidReaders)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
