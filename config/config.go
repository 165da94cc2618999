// Package config loads the planner configuration from JSON or YAML files
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	infraforecast "github.com/greenai-platform/scheduler/infra/forecast"
	"github.com/greenai-platform/scheduler/infra/mqtt"
)

type Config struct {
	MQTT      mqtt.Config          `json:"mqtt"`
	Scheduler SchedulerConfig      `json:"scheduler"`
	Regions   RegionsConfig        `json:"regions"`
	Forecast  infraforecast.Config `json:"forecast"`
	Metrics   coremetrics.Config   `json:"metrics"`
}

// Load reads the configuration file, applies `GP_` environment overrides
// (`GP_MQTT__BROKER` maps to `mqtt.broker`), defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.MQTT.SetDefaults()
	cfg.Scheduler.SetDefaults()
	cfg.Regions.SetDefaults()
	cfg.Forecast.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Regions.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
