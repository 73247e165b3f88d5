// Package config loads the .electricslide.toml configuration file shared by
// the CLI and the server.
//
// Resolution order: an explicit --config path, then ./.electricslide.toml,
// then $HOME/.electricslide.toml. A missing file is not an error; defaults
// apply.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// FileName is the configuration file looked up in the working directory
// and the home directory.
const FileName = ".electricslide.toml"

// Config is the root of the TOML file.
type Config struct {
	// Algorithm selects the default tick strategy ("legacy" or "modulo").
	Algorithm string `toml:"algorithm"`
	// ScaleLength is the default physical length in points.
	ScaleLength float64 `toml:"scale_length"`
	// OutputDir receives exported files. Defaults to the working directory.
	OutputDir string `toml:"output_dir"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`

	// Assemblies maps a name to a rule string in the bracketed notation,
	// so often-used slide rule layouts can be validated or rendered by
	// name.
	Assemblies map[string]string `toml:"assemblies"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none". Empty means "file".
	Backend string `toml:"backend"`
	// Dir is the file backend's root. Defaults to $HOME/.electricslide/cache.
	Dir string `toml:"dir"`
	// TTLHours bounds entry lifetime; zero keeps entries forever.
	TTLHours int `toml:"ttl_hours"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServerConfig configures serve mode.
type ServerConfig struct {
	// Listen is the bind address, e.g. ":8080".
	Listen string `toml:"listen"`
	// MongoURI enables the custom-definition store when set.
	MongoURI string `toml:"mongo_uri"`
	// MongoDatabase defaults to "electricslide".
	MongoDatabase string `toml:"mongo_database"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Algorithm:   tick.AlgorithmModulo.String(),
		ScaleLength: 250,
		Cache:       CacheConfig{Backend: "file"},
		Server:      ServerConfig{Listen: ":8080"},
	}
}

// Load reads the configuration. An empty path triggers the search order;
// a missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findFile()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates raw TOML, filling unset fields with defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() *errors.Error {
	if _, err := tick.ParseAlgorithm(c.Algorithm); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config algorithm")
	}
	if c.ScaleLength <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale_length must be positive, got %g", c.ScaleLength)
	}
	switch c.Cache.Backend {
	case "", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis requires redis_addr")
	}
	return nil
}

// TickAlgorithm returns the parsed default algorithm.
func (c *Config) TickAlgorithm() tick.Algorithm {
	alg, err := tick.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return tick.AlgorithmModulo
	}
	return alg
}

// CacheDir returns the file cache root, falling back to
// $HOME/.electricslide/cache.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".electricslide", "cache")
	}
	return filepath.Join(home, ".electricslide", "cache")
}

func findFile() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
