package toml

import (
	"fmt"

	"github.com/bnema/moodline/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version          int              `toml:"version"`
	DefaultResources []string         `toml:"default_resources"`
	Responses        []responseSchema `toml:"responses"`
	Resources        []resourceSchema `toml:"resources"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if len(s.DefaultResources) == 0 {
		s.DefaultResources = append([]string(nil), domain.DefaultResources...)
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type responseSchema struct {
	Emotion string   `toml:"emotion"`
	Low     []string `toml:"low,omitempty"`
	Medium  []string `toml:"medium"`
	High    []string `toml:"high,omitempty"`
}

type resourceSchema struct {
	Emotion string   `toml:"emotion"`
	Items   []string `toml:"items"`
}
