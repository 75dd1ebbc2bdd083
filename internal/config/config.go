// Package config loads the graphtraversal command configuration from an
// optional YAML file, GRAPHTRAVERSAL_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. GRAPHTRAVERSAL_GRAPH_NODES.
const EnvPrefix = "GRAPHTRAVERSAL"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// GraphConfig describes the graph to generate. Seed 0 asks for a
// time-seeded source.
type GraphConfig struct {
	Nodes     int   `mapstructure:"nodes"`
	Edges     int   `mapstructure:"edges"`
	Seed      int64 `mapstructure:"seed"`
	MinWeight int64 `mapstructure:"min_weight"`
	MaxWeight int64 `mapstructure:"max_weight"`
}

// LogConfig selects the slog level and the text or json handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TracingConfig is exported to OTLP only when Endpoint is set.
type TracingConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"nodes":         "graph.nodes",
	"edges":         "graph.edges",
	"seed":          "graph.seed",
	"min-weight":    "graph.min_weight",
	"max-weight":    "graph.max_weight",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"otlp-endpoint": "tracing.endpoint",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.nodes", 0)
	v.SetDefault("graph.edges", 0)
	v.SetDefault("graph.seed", 0)
	v.SetDefault("graph.min_weight", 1)
	v.SetDefault("graph.max_weight", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "graphtraversal")
	v.SetDefault("tracing.sample_rate", 1.0)
}

// Load reads configuration from path (skipped when empty), the environment
// and the known flags of fs (nil allowed). Flags only override when set.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the generator or the logger cannot use.
// The generator repeats the node and edge checks on its own.
func (c *Config) Validate() error {
	g := c.Graph
	switch {
	case g.Nodes < 1:
		return fmt.Errorf("%w: graph.nodes must be at least 1, got %d", ErrInvalidConfig, g.Nodes)
	case g.Edges < g.Nodes-1:
		return fmt.Errorf("%w: graph.edges must be at least %d for %d nodes, got %d",
			ErrInvalidConfig, g.Nodes-1, g.Nodes, g.Edges)
	case g.MinWeight < 1 || g.MaxWeight < g.MinWeight:
		return fmt.Errorf("%w: weights need 1 <= min_weight <= max_weight, got %d..%d",
			ErrInvalidConfig, g.MinWeight, g.MaxWeight)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("%w: tracing.sample_rate %.2f outside [0, 1]", ErrInvalidConfig, c.Tracing.SampleRate)
	}

	return nil
}
