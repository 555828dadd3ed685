// Package config loads settings for the nova command line tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete tool configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Watch  WatchConfig  `toml:"watch" yaml:"watch"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// OutputConfig holds settings for printed results
type OutputConfig struct {
	ASTFormat string `toml:"ast_format" yaml:"ast_format"`
	Color     *bool  `toml:"color" yaml:"color"`
	Trace     bool   `toml:"trace" yaml:"trace"`
}

// ServerConfig holds editor bridge settings
type ServerConfig struct {
	Host           string   `toml:"host" yaml:"host"`
	Port           int      `toml:"port" yaml:"port"`
	CheckTimeout   Duration `toml:"check_timeout" yaml:"check_timeout"`
	MaxSourceBytes int64    `toml:"max_source_bytes" yaml:"max_source_bytes"`
}

// WatchConfig holds file watcher settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a string", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the NOVA_CONFIG environment variable,
// falling back to ./nova.toml and ~/.config/nova/config.toml. When no file
// exists the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("NOVA_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./nova.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "nova", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Output
	if c.Output.ASTFormat == "" {
		c.Output.ASTFormat = "text"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 7450
	}
	if c.Server.CheckTimeout.Duration == 0 {
		c.Server.CheckTimeout.Duration = 30 * time.Second
	}
	if c.Server.MaxSourceBytes == 0 {
		c.Server.MaxSourceBytes = 1 << 20
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Output.ASTFormat {
	case "text", "json":
	default:
		return fmt.Errorf("output.ast_format must be text or json, got %q", c.Output.ASTFormat)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.CheckTimeout.Duration < 0 {
		return fmt.Errorf("server.check_timeout must be positive")
	}
	return nil
}

// ColorEnabled reports whether colored output is on.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// ServerAddress returns the listen address of the editor bridge.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
