package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// =============================================================================
// Config File
// =============================================================================

// Cache backend names accepted in the config file.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// defaultServeAddr is the bridge listen address when the config is silent.
const defaultServeAddr = "localhost:7341"

// Config is the iconset.toml configuration file.
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[serve]
//	addr = "localhost:7341"
//
//	[[variant]]
//	size = 16
//	stroke = 1.0
type Config struct {
	Cache    CacheConfig  `toml:"cache"`
	Serve    ServeConfig  `toml:"serve"`
	Variants []VariantRow `toml:"variant"`
}

// CacheConfig selects and configures the preview cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongodb cache backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeConfig configures the bridge server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// VariantRow is a size row declared in the config file. Rows replace the
// built-in size ramp when present.
type VariantRow struct {
	Size   float64 `toml:"size"`
	Stroke float64 `toml:"stroke"`
}

// Rows converts configured variant rows to pipeline input. A config with
// no rows yields nil, which the pipeline treats as the default ramp.
func (c *Config) Rows() []variant.Raw {
	if len(c.Variants) == 0 {
		return nil
	}
	rows := make([]variant.Raw, 0, len(c.Variants))
	for _, v := range c.Variants {
		rows = append(rows, variant.Raw{SizePx: v.Size, StrokeWeight: v.Stroke})
	}
	return rows
}

// LoadConfig reads the config file at path. An empty path means the default
// location (~/.config/iconset/iconset.toml); a missing default file yields
// the zero config, while an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(dir, "iconset.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "", BackendNone, BackendFile, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// serveAddr returns the configured bridge address, falling back to the
// default when unset.
func (c *Config) serveAddr() string {
	if c.Serve.Addr != "" {
		return c.Serve.Addr
	}
	return defaultServeAddr
}
