package log

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes an optional log configuration file.
// Filters use zapfilter rule syntax against named loggers, for example:
//
//	defaultLevel: info
//	filters:
//	  - debug:aero.*
//	  - info:*
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing log config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Rules() string {
	return strings.Join(c.Filters, " ")
}

func (c *Config) Level(fallback Level) Level {
	if c.DefaultLevel == "" {
		return fallback
	}
	if level, err := ParseLevel(c.DefaultLevel); err == nil {
		return level
	}
	return fallback
}
