package rpcconfig

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"gopkg.in/yaml.v3"

	"xdao.co/elbonian/compliance"
	"xdao.co/elbonian/internal/logging"
)

const DefaultListen = "127.0.0.1:7788"

// Config describes how the conversion daemon listens, parses and logs.
//
// Example:
//
//	listen: 127.0.0.1:7788
//	compliance: strict
//	max_msg_bytes: 4096
//	log:
//	  environment: production
//	  level: info
//
// Unknown keys are rejected.
type Config struct {
	Listen      string         `yaml:"listen"`
	Compliance  string         `yaml:"compliance"`
	MaxMsgBytes int            `yaml:"max_msg_bytes"`
	Log         logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Listen: DefaultListen, Compliance: compliance.Permissive.String()}
}

// LoadFile reads a YAML config on top of Default and validates it.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("rpcconfig: empty config path")
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("rpcconfig: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("rpcconfig: listen address is required")
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("rpcconfig: invalid listen address %q: %w", c.Listen, err)
	}
	if _, err := compliance.ParseMode(c.Compliance); err != nil {
		return fmt.Errorf("rpcconfig: %w", err)
	}
	if c.MaxMsgBytes < 0 {
		return fmt.Errorf("rpcconfig: invalid max_msg_bytes %d", c.MaxMsgBytes)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("rpcconfig: %w", err)
	}
	return nil
}

// Mode returns the parsed compliance mode. Call Validate first.
func (c Config) Mode() compliance.ComplianceMode {
	m, _ := compliance.ParseMode(c.Compliance)
	return m
}
