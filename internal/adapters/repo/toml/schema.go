package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int               `toml:"version"`
	Selections []selectionSchema `toml:"selections"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported selections schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type selectionSchema struct {
	Reset  string   `toml:"reset"`
	Agents []string `toml:"agents"`
}
