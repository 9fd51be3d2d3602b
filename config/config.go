// Package config loads optional TOML configuration files. Values from a
// file only fill in options the user left unset on the command line; an
// explicit flag always wins.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// File mirrors the flag surface of the rename command. Every field is
// optional; nil means the file does not set the option.
type File struct {
	Directory      *string  `toml:"directory"`
	CurrentPattern *string  `toml:"current_pattern"`
	NewPattern     *string  `toml:"new_pattern"`
	FileTypes      []string `toml:"file_types"`
	DryRun         *bool    `toml:"dry_run"`
	DefaultSeason  *string  `toml:"default_season"`
	Title          *string  `toml:"title"`
	Depth          *int     `toml:"depth"`
}

// Load reads and parses a TOML config file from fs.
func Load(fs afero.Fs, path string) (File, error) {
	var cfg File

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
