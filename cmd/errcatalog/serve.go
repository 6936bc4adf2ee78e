package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-catalog/internal/bootstrap"
	"github.com/next-trace/scg-catalog/internal/config"
	"github.com/next-trace/scg-catalog/internal/server"
	"github.com/next-trace/scg-catalog/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and the document API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigPath: configPath, EnvPrefix: "SCG", AllowNoConfig: true})
			if err != nil {
				return err
			}

			if addr != "" {
				cfg.App.Addr = addr
			}

			if err := bootstrap.InitLogger(cfg.Log); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config-dir", "./configs", "directory holding config_<APP_ENV>.yaml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides app.addr")

	return cmd
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return store.NewMemoryStore(), func() {}, nil
	case config.DriverRedis:
		client, err := bootstrap.InitRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           server.New(st, cfg.App.MaxUploadBytes).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"addr": cfg.App.Addr, "env": cfg.App.Env, "storage": cfg.Storage.Driver}).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}
