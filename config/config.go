// Package config holds the deployment identity of a protocol node: the
// authority it runs under, the entity it represents, and the default
// message parameters applied when callers do not specify their own.
// Configuration is loaded from YAML, validated as a whole, and then
// treated as immutable.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/meshproto/attributes"
	"github.com/c360/meshproto/errors"
	"github.com/c360/meshproto/uri"
)

// PlatformConfig defines where this node runs.
type PlatformConfig struct {
	// Org is the organization namespace, e.g. "c360".
	Org string `yaml:"org"`
	// Device is the device name of the local authority, e.g. "vcu".
	Device string `yaml:"device"`
	// Domain is the domain of the local authority, e.g.
	// "my_vin.vehicles".
	Domain string `yaml:"domain"`
	// Remote marks this node as addressable from outside its device.
	Remote bool `yaml:"remote,omitempty"`
}

// EntityConfig defines what software this node represents.
type EntityConfig struct {
	Name    string `yaml:"name"`
	Version uint8  `yaml:"version,omitempty"`
	ID      uint16 `yaml:"id,omitempty"`
}

// DefaultsConfig carries the message parameters applied when a caller
// does not set its own.
type DefaultsConfig struct {
	// TTLMs is the default request time-to-live in milliseconds.
	TTLMs uint32 `yaml:"ttl_ms,omitempty"`
	// Priority is the default priority tier name, e.g. "CS4".
	Priority string `yaml:"priority,omitempty"`
}

// Config is the complete node configuration.
type Config struct {
	Platform PlatformConfig `yaml:"platform"`
	Entity   EntityConfig   `yaml:"entity"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "Config", "Load", "read file")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded", "path", path, "entity", cfg.Entity.Name)
	return cfg, nil
}

// Parse decodes and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Parse", err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for completeness and consistency.
func (c *Config) Validate() error {
	if c.Entity.Name == "" {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate", "entity.name is required")
	}
	if c.Platform.Remote && c.Platform.Device == "" {
		return errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Validate",
			"remote platform requires a device name")
	}
	if c.Defaults.Priority != "" {
		if _, err := c.DefaultPriority(); err != nil {
			return err
		}
	}
	return nil
}

// LocalAuthority returns the authority this node runs under.
func (c *Config) LocalAuthority() uri.Authority {
	if c.Platform.Remote {
		return uri.RemoteAuthority(c.Platform.Device, c.Platform.Domain)
	}
	return uri.LocalAuthority()
}

// LocalEntity returns the entity this node represents.
func (c *Config) LocalEntity() uri.Entity {
	if c.Entity.ID != 0 {
		return uri.ResolvedEntity(c.Entity.Name, c.Entity.Version, c.Entity.ID)
	}
	return uri.EntityFromNameVersion(c.Entity.Name, c.Entity.Version)
}

// TopicURI addresses one of this node's topics.
func (c *Config) TopicURI(name, instance, message string) uri.URI {
	return uri.New(c.LocalAuthority(), c.LocalEntity(), uri.TopicResource(name, instance, message, 0))
}

// MethodURI addresses one of this node's RPC methods.
func (c *Config) MethodURI(method string) uri.URI {
	return uri.RPCURI(c.LocalAuthority(), c.LocalEntity(), method)
}

// ReplyToURI addresses this node's RPC response slot, the source every
// request it issues carries.
func (c *Config) ReplyToURI() uri.URI {
	return uri.ReplyTo(c.LocalAuthority(), c.LocalEntity())
}

// DefaultTTL returns the configured default time-to-live, or the
// protocol fallback of 1000ms.
func (c *Config) DefaultTTL() uint32 {
	if c.Defaults.TTLMs == 0 {
		return 1000
	}
	return c.Defaults.TTLMs
}

// DefaultPriority resolves the configured default priority tier name.
// An unset name resolves to the RPC floor.
func (c *Config) DefaultPriority() (attributes.Priority, error) {
	if c.Defaults.Priority == "" {
		return attributes.MinRPCPriority, nil
	}
	for p := attributes.PriorityCS0; p <= attributes.PriorityCS6; p++ {
		if p.String() == c.Defaults.Priority {
			return p, nil
		}
	}
	return attributes.PriorityUnspecified, errors.WrapFatal(errors.ErrInvalidConfig, "Config", "DefaultPriority",
		fmt.Sprintf("unknown priority tier [%s]", c.Defaults.Priority))
}
