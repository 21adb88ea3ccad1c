package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "compound.json"

	// DefaultPort is the default demo server port.
	DefaultPort = 3000

	// DefaultHost is the default demo server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default static export output directory.
	DefaultOutput = "dist"
)

// Config represents the complete compound.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains demo server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`
}

// ServerConfig configures the demo server.
type ServerConfig struct {
	// Host is the address the server binds to.
	Host string `json:"host,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// ExportConfig configures the static export.
type ExportConfig struct {
	// Output is the directory static HTML is written to.
	Output string `json:"output,omitempty"`

	// Bucket is an optional S3 bucket exported files are uploaded to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for uploaded files.
	Prefix string `json:"prefix,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Name: "compound-demo",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Export: ExportConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads the configuration from dir. A missing file is not an error;
// defaults are returned instead.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to dir.
func (c *Config) Save(dir string) error {
	path := filepath.Join(dir, ConfigFileName)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Addr returns the host:port address of the demo server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
}
