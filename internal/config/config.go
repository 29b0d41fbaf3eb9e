// Package config handles repository configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .citebridge/config.json.
type Config struct {
	ExportURL string `json:"export_url,omitempty"` // Base URL of the upstream dataset export service
	PDFRoot   string `json:"pdf_root,omitempty"`   // Absolute path to PDF folder for meta addpdf
}

const (
	CitebridgeDir   = ".citebridge"
	ConfigFile      = "config.json"
	LLMTopicsFile   = "llm_topics.jsonl"
	PsychTopicsFile = "psych_topics.jsonl"
	SubtopicsFile   = "subtopics.jsonl"
	TheoriesFile    = "theories.jsonl"
	LLMPapersFile   = "llm_papers.jsonl"
	PsychPapersFile = "psych_papers.jsonl"
	CacheDir        = "cache"
	DBFile          = "citebridge.db"
)

// CitebridgePath returns the path to the .citebridge directory from a root path.
func CitebridgePath(root string) string {
	return filepath.Join(root, CitebridgeDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, CitebridgeDir, ConfigFile)
}

// RelationPath returns the path to a relation file from a root path.
func RelationPath(root, file string) string {
	return filepath.Join(root, CitebridgeDir, file)
}

// RelationFiles lists the six relation files in load order.
var RelationFiles = []string{
	LLMTopicsFile,
	PsychTopicsFile,
	SubtopicsFile,
	TheoriesFile,
	LLMPapersFile,
	PsychPapersFile,
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, CitebridgeDir, CacheDir)
}

// DBPath returns the path to citebridge.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, CitebridgeDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a citebridge repository.
func IsRepository(root string) bool {
	info, err := os.Stat(CitebridgePath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a citebridge repository.
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
			return "", fmt.Errorf("not in a citebridge repository (no .citebridge directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
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

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
