package diarystats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxScore is used when a configuration omits max_score.
const DefaultMaxScore = 100

// ParseConfig decodes a YAML rating configuration. Values are taken
// as-is; only the YAML syntax is checked.
func ParseConfig(data []byte) (RatingConfig, error) {
	cfg := RatingConfig{MaxScore: DefaultMaxScore}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RatingConfig{}, fmt.Errorf("parsing rating config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML rating configuration at path.
func LoadConfig(path string) (RatingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RatingConfig{}, fmt.Errorf("reading rating config: %w", err)
	}
	return ParseConfig(data)
}
