// @title Tracker API
// @version 1.0
// @description Multi-tenant project ticketing service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/api/routes"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/config/db"
	"github.com/linskybing/tracker-go/internal/cron"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/logger"
	"github.com/linskybing/tracker-go/pkg/storage"
	"github.com/linskybing/tracker-go/pkg/token"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath)
		},
	}

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Multi-tenant project ticketing service",
		RunE:  serve.RunE,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Optional YAML config file")

	cmd.AddCommand(serve)
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			setup(configPath)
			if err := db.Init(true); err != nil {
				return err
			}
			db.Close()
			return nil
		},
	})
	return cmd
}

func setup(configPath string) {
	if configPath != "" {
		_ = os.Setenv("CONFIG_FILE", configPath)
	}
	config.LoadConfig()
	logger.Init(config.AppEnv, config.LogLevel)
	token.Init(config.JwtSecret, config.Issuer)
}

func runServer(configPath string) error {
	setup(configPath)
	l := log.Logger

	if err := db.Init(true); err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub(notify.DefaultBuffer)
	defer hub.Close()

	opts := application.Options{Notifier: hub}

	if config.NatsURL != "" {
		nc, err := notify.NewNATSPublisher(config.NatsURL, config.NatsSubject)
		if err != nil {
			l.Warn().Err(err).Msg("nats unavailable, events stay in process")
		} else {
			defer nc.Close()
			opts.Notifier = notify.Multi{hub, nc}
		}
	}

	if config.MinioEnabled {
		store, err := storage.NewMinioStore(ctx, storage.Options{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		})
		if err != nil {
			l.Warn().Err(err).Msg("minio unavailable, attachments disabled")
		} else {
			opts.Store = store
		}
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, opts)

	cron.StartCleanupTask(ctx, services.Activity, services.Invitation, config.ActivityRetentionDays)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(l, services, hub)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
		l.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	// Close listeners first so websocket handlers return before the server drains.
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	l.Info().Msg("server stopped")
	return nil
}
