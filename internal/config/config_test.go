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

package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/botobag/pokedex/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		v        *viper.Viper
		restores []func()
	)

	setenv := func(key, value string) {
		prev, ok := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).Should(Succeed())
		restores = append(restores, func() {
			if ok {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	BeforeEach(func() {
		v = viper.New()
		config.SetDefaults(v)
	})

	AfterEach(func() {
		for _, restore := range restores {
			restore()
		}
		restores = nil
	})

	It("provides defaults", func() {
		c, err := config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c).Should(Equal(&config.Config{
			Server: config.ServerConfig{
				Port:               4000,
				MetricsPort:        9090,
				Explorer:           true,
				MaxBodySize:        10 << 20,
				OperationCacheSize: 512,
				ShutdownTimeout:    10 * time.Second,
			},
			Log: config.LogConfig{
				Level: "info",
			},
		}))
	})

	It("reads settings from environment variables", func() {
		setenv("POKEDEX_SERVER_PORT", "8080")
		setenv("POKEDEX_DATASET_PATH", "/var/lib/pokedex/pokemon.json")
		setenv("POKEDEX_RESOLVER_LEGACY_KEY_PROBE", "true")
		setenv("POKEDEX_SERVER_SHUTDOWN_TIMEOUT", "3s")

		c, err := config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c.Server.Port).Should(Equal(8080))
		Expect(c.Dataset.Path).Should(Equal("/var/lib/pokedex/pokemon.json"))
		Expect(c.Resolver.LegacyKeyProbe).Should(BeTrue())
		Expect(c.Server.ShutdownTimeout).Should(Equal(3 * time.Second))
	})

	It("honors PORT", func() {
		setenv("PORT", "5000")

		c, err := config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c.Server.Port).Should(Equal(5000))
	})

	It("prefers POKEDEX_SERVER_PORT over PORT", func() {
		setenv("PORT", "5000")
		setenv("POKEDEX_SERVER_PORT", "6000")

		c, err := config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c.Server.Port).Should(Equal(6000))
	})

	It("reads settings from a config file", func() {
		dir, err := os.MkdirTemp("", "pokedex-config")
		Expect(err).ShouldNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "pokedex.yaml")
		Expect(os.WriteFile(path, []byte(`
server:
  port: 4100
  explorer: false
log:
  level: debug
`), 0600)).Should(Succeed())

		v.SetConfigFile(path)
		Expect(v.ReadInConfig()).Should(Succeed())

		c, err := config.Load(v)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c.Server.Port).Should(Equal(4100))
		Expect(c.Server.Explorer).Should(BeFalse())
		Expect(c.Server.MetricsPort).Should(Equal(9090))

		level, err := c.Log.ZerologLevel()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(level).Should(Equal(zerolog.DebugLevel))
	})

	It("reports every invalid setting", func() {
		v.Set(config.KeyServerPort, 0)
		v.Set(config.KeyServerOperationCacheSize, 0)
		v.Set(config.KeyLogLevel, "loud")

		_, err := config.Load(v)
		Expect(err).Should(MatchError(ContainSubstring("3 errors:")))
		Expect(err).Should(MatchError(ContainSubstring("server.port: 0 is not a valid port")))
		Expect(err).Should(MatchError(ContainSubstring("server.operation_cache_size: must be greater than 0")))
		Expect(err).Should(MatchError(ContainSubstring(`log.level: unknown level "loud"`)))
	})

	It("rejects sharing the port with the metrics listener", func() {
		c := config.Config{
			Server: config.ServerConfig{
				Port:               4000,
				MetricsPort:        4000,
				MaxBodySize:        1,
				OperationCacheSize: 1,
			},
			Log: config.LogConfig{
				Level: "info",
			},
		}
		Expect(c.Validate()).Should(MatchError("server.metrics_port: 4000 is already used by server.port"))

		c.Server.MetricsPort = 0
		Expect(c.Validate()).Should(Succeed())
	})
})
