/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package config loads the configuration of the pokedex server from a config file, environment
// variables and command-line flags with viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the upper-cased config keys to form environment variable names (e.g.,
// POKEDEX_SERVER_PORT for "server.port").
const EnvPrefix = "POKEDEX"

// Config keys
const (
	KeyServerPort               = "server.port"
	KeyServerMetricsPort        = "server.metrics_port"
	KeyServerExplorer           = "server.explorer"
	KeyServerMaxBodySize        = "server.max_body_size"
	KeyServerOperationCacheSize = "server.operation_cache_size"
	KeyServerShutdownTimeout    = "server.shutdown_timeout"
	KeyDatasetPath              = "dataset.path"
	KeyResolverLegacyKeyProbe   = "resolver.legacy_key_probe"
	KeyLogLevel                 = "log.level"
)

// Config is the complete configuration of the server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP listeners.
type ServerConfig struct {
	// Port of the GraphQL listener
	Port int `mapstructure:"port"`

	// Port of the metrics listener; 0 disables it.
	MetricsPort int `mapstructure:"metrics_port"`

	// Explorer enables the GraphiQL page at "/".
	Explorer bool `mapstructure:"explorer"`

	// MaxBodySize limits the number of bytes read from a request body.
	MaxBodySize uint `mapstructure:"max_body_size"`

	// OperationCacheSize is the number of prepared operations kept in the LRU cache.
	OperationCacheSize uint `mapstructure:"operation_cache_size"`

	// ShutdownTimeout bounds the time to wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatasetConfig locates the catalog.
type DatasetConfig struct {
	// Path to a dataset in JSON. The dataset embedded in the binary is used if empty.
	Path string `mapstructure:"path"`
}

// ResolverConfig tunes query resolution.
type ResolverConfig struct {
	// LegacyKeyProbe selects Pokémon by probing the shape of the id argument.
	LegacyKeyProbe bool `mapstructure:"legacy_key_probe"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers default values of every key in v. It also binds the PORT environment
// variable to the GraphQL port, after POKEDEX_SERVER_PORT.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, 4000)
	v.SetDefault(KeyServerMetricsPort, 9090)
	v.SetDefault(KeyServerExplorer, true)
	v.SetDefault(KeyServerMaxBodySize, 10<<20)
	v.SetDefault(KeyServerOperationCacheSize, 512)
	v.SetDefault(KeyServerShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyDatasetPath, "")
	v.SetDefault(KeyResolverLegacyKeyProbe, false)
	v.SetDefault(KeyLogLevel, zerolog.InfoLevel.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Error is only returned when no key is given.
	_ = v.BindEnv(KeyServerPort, EnvPrefix+"_SERVER_PORT", "PORT")
}

// Load decodes and validates the configuration held by v. SetDefaults must have been called on v.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate reports every invalid setting in c.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(validatePort(KeyServerPort, c.Server.Port))
	if c.Server.MetricsPort != 0 {
		el.Add(validatePort(KeyServerMetricsPort, c.Server.MetricsPort))
		if c.Server.MetricsPort == c.Server.Port {
			el.Add(fmt.Errorf("%s: %d is already used by %s", KeyServerMetricsPort, c.Server.MetricsPort, KeyServerPort))
		}
	}

	if c.Server.MaxBodySize == 0 {
		el.Add(fmt.Errorf("%s: must be greater than 0", KeyServerMaxBodySize))
	}
	if c.Server.OperationCacheSize == 0 {
		el.Add(fmt.Errorf("%s: must be greater than 0", KeyServerOperationCacheSize))
	}
	if c.Server.ShutdownTimeout < 0 {
		el.Add(fmt.Errorf("%s: must not be negative", KeyServerShutdownTimeout))
	}

	if _, err := c.Log.ZerologLevel(); err != nil {
		el.Add(err)
	}

	return el.Err()
}

func validatePort(key string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s: %d is not a valid port", key, port)
	}
	return nil
}

// ZerologLevel parses Level.
func (c *LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || len(c.Level) == 0 {
		return zerolog.NoLevel, fmt.Errorf("%s: unknown level %q", KeyLogLevel, c.Level)
	}
	return level, nil
}
