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

// Package cli implements the pokedex command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/botobag/pokedex/catalog"
	"github.com/botobag/pokedex/dispatch"
	"github.com/botobag/pokedex/internal/config"
	"github.com/botobag/pokedex/internal/version"
	"github.com/botobag/pokedex/resolver"
	"github.com/botobag/pokedex/schema"

	"github.com/botobag/artemis/graphql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command for pokedex CLI.
var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "GraphQL catalog of Pokémon",
	Long: `pokedex serves a catalog of Pokémon, their attacks and types through a
GraphQL API. The catalog is held in memory; mutations last until the process
exits.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("pokedex failed")
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pokedex.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().String("dataset", "", "dataset in JSON (default is the embedded catalog)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyDatasetPath, rootCmd.PersistentFlags().Lookup("dataset"))
}

// initConfig reads in config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pokedex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pokedex")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// setupLogging configures zerolog from the config and verbosity.
func setupLogging() error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		return fmt.Errorf("%s: %w", config.KeyLogLevel, err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// Pretty console output for development
	if os.Getenv("POKEDEX_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Loggers from zerolog.Ctx fall back to the global one outside of requests.
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}

// loadConfig loads the configuration from viper.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// buildSchema loads the dataset and wires the catalog to a GraphQL schema.
func buildSchema(cfg *config.Config) (graphql.Schema, error) {
	dataset, err := catalog.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	store, err := catalog.New(dataset)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	log.Debug().
		Str("dataset", datasetName(cfg.Dataset.Path)).
		Int("pokemon", len(store.Creatures())).
		Int("types", len(store.Types())).
		Bool("legacy_key_probe", cfg.Resolver.LegacyKeyProbe).
		Msg("catalog loaded")

	table := dispatch.New(
		resolver.New(store),
		dispatch.LegacyKeyProbe(cfg.Resolver.LegacyKeyProbe),
	)

	return schema.New(table)
}

func datasetName(path string) string {
	if len(path) == 0 {
		return "embedded"
	}
	return path
}
