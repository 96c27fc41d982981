// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resourced/internal/config"
	"resourced/internal/db"
	"resourced/internal/logging"
	"resourced/internal/resource"
	"resourced/internal/router"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "resourced: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "resourced",
		Short:        "Resource management HTTP service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server (the default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Reset the resources table and load sample data",
			RunE: func(cmd *cobra.Command, args []string) error {
				return seed()
			},
		},
	)
	return cmd
}

func serve() error {
	cfg, pg, err := bootstrap()
	if err != nil {
		return err
	}

	store := resource.NewGormStore(pg)
	svc := resource.NewService(store)
	handler := router.New(svc)

	srv := &http.Server{
		Addr:           cfg.Addr,
		Handler:        handler,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	zap.L().Info("server starting", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("http server exited: %w", err)
	}
	return nil
}

func seed() error {
	_, pg, err := bootstrap()
	if err != nil {
		return err
	}

	if err := db.Seed(pg); err != nil {
		return err
	}
	zap.L().Info("seed data loaded")
	return nil
}

// bootstrap wires the pieces every subcommand needs: config, the global
// logger, the database pool, and an up-to-date schema.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	pg, err := db.Connect(cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(pg); err != nil {
		return nil, nil, err
	}

	return cfg, pg, nil
}
