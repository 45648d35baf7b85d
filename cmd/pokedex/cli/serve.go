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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/botobag/pokedex/internal/config"
	"github.com/botobag/pokedex/internal/server"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// serveCmd starts the API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the GraphQL API",
	Long: `Serve the catalog through GraphQL at /graphql, with a GraphiQL explorer at /
and health checks at /health. Prometheus metrics are served on a separate port.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "port of the GraphQL server (default 4000)")
	serveCmd.Flags().Int("metrics-port", 0, "port of the metrics server, 0 to disable (default 9090)")

	_ = viper.BindPFlag(config.KeyServerPort, serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag(config.KeyServerMetricsPort, serveCmd.Flags().Lookup("metrics-port"))
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := buildSchema(cfg)
	if err != nil {
		return err
	}

	apiServer, err := server.New(cfg.Server, s)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	log.Info().
		Int("port", cfg.Server.Port).
		Int("metrics_port", cfg.Server.MetricsPort).
		Bool("explorer", cfg.Server.Explorer).
		Msg("starting pokedex")

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := apiServer.Start(gctx); err != nil {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := apiServer.StartMetrics(gctx); err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	log.Info().Msg("pokedex stopped")
	return nil
}
