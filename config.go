package tasker

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/tasker/internal/expand"
	"github.com/viant/tasker/model"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the registry configuration. It
// can be populated from JSON or YAML; unset fields keep DefaultConfig values
// when loaded with LoadConfig.
type Config struct {
	Mode         model.Mode    `json:"mode" yaml:"mode"`
	Capacity     int           `json:"capacity" yaml:"capacity"`
	UniquePIDs   bool          `json:"uniquePIDs" yaml:"uniquePIDs"`
	Synchronized bool          `json:"synchronized" yaml:"synchronized"`
	Events       EventsConfig  `json:"events" yaml:"events"`
	Tracing      TracingConfig `json:"tracing" yaml:"tracing"`
}

// EventsConfig controls lifecycle event publishing
type EventsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Buffer  int  `json:"buffer" yaml:"buffer"`
}

// TracingConfig controls OpenTelemetry spans
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a bounded registry of 10 processes with events and tracing disabled.
func DefaultConfig() *Config {
	return &Config{
		Mode:     model.ModeDefault,
		Capacity: 10,
		Events: EventsConfig{
			Buffer: 100,
		},
		Tracing: TracingConfig{
			ServiceName:    "tasker",
			ServiceVersion: "0.1.0",
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Mode != "" && !c.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("mode %q is not supported", c.Mode))
	}
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be > 0, got %d", c.Capacity))
	}
	if c.Events.Enabled && c.Events.Buffer <= 0 {
		errs = append(errs, fmt.Errorf("events.buffer must be > 0, got %d", c.Events.Buffer))
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		errs = append(errs, fmt.Errorf("tracing.serviceName was empty"))
	}
	return errors.Join(errs...)
}

// DecodeConfig expands ${env.KEY} expressions, decodes YAML (or JSON) on top
// of DefaultConfig and validates the result
func DecodeConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(expand.Env(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads config from any afs supported location (file, mem, embed, s3, gs ...)
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	URL = url.Normalize(URL, file.Scheme)
	data, err := afs.New().DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return cfg, nil
}
