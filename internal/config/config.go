package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load and ApplyEnv for unset values.
const (
	DefaultPort     = 8787
	DefaultPath     = "/mcp"
	DefaultLogLevel = "info"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvPort     = "PORT"
	EnvHost     = "SOWBUILDER_HOST"
	EnvLogLevel = "SOWBUILDER_LOG_LEVEL"
)

// ServerConfig holds server settings loaded from sowbuilder.yml.
type ServerConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Path     string `yaml:"path,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
}

// Load attempts to read sowbuilder.yml or sowbuilder.yaml from the given
// directory. Returns a default config (not an error) if no config file
// exists.
func Load(dir string) (*ServerConfig, error) {
	for _, name := range []string{"sowbuilder.yml", "sowbuilder.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ServerConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.setDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &cfg, nil
	}
	cfg := &ServerConfig{}
	cfg.setDefaults()
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. getenv is usually
// os.Getenv.
func (c *ServerConfig) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a port number", EnvPort, v)
		}
		c.Port = port
	}
	if v := strings.TrimSpace(getenv(EnvHost)); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	c.setDefaults()
	return c.Validate()
}

// Validate reports the first invalid setting.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /, got %q", c.Path)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address, e.g. ":8787".
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Level parses LogLevel.
func (c *ServerConfig) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("logLevel: %w", err)
	}
	return level, nil
}

func (c *ServerConfig) setDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
