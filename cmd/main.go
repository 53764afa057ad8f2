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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeyadesperado/GymMaster/config"
	"github.com/zeyadesperado/GymMaster/logger"
	"github.com/zeyadesperado/GymMaster/routes"
	"github.com/zeyadesperado/GymMaster/services"
	"github.com/zeyadesperado/GymMaster/utils"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gymmaster",
		Short:         "GymMaster nutrition and shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(os.Getenv("APP_ENV"))
		},
	}
	cmd.AddCommand(newServeCommand(), newMigrateCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()
			cfg, err := config.Load(log)
			if err != nil {
				return err
			}
			db, err := config.OpenDB(cfg.DB, log)
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("schema up to date")
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the subscription sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not auto-migrate on startup")
	return cmd
}

func serve(skipMigrate bool) error {
	cfg, err := config.Load(logger.L())
	if err != nil {
		return err
	}
	// .env may set APP_ENV
	if err := logger.Init(cfg.Env); err != nil {
		return err
	}
	log := logger.L()
	defer func() { _ = log.Sync() }()

	db, err := config.OpenDB(cfg.DB, log)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if err := config.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer, err := newMailer(ctx, cfg, log)
	if err != nil {
		return err
	}

	deps := routes.NewDeps(db, cfg.JWTSecret, cfg.JWTTTL, mailer, log)

	sweeper := services.NewSubscriptionSweeper(db, deps.Users, mailer, log)
	scheduler, err := sweeper.Start(cfg.SubscriptionSweep)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           routes.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newMailer(ctx context.Context, cfg *config.Config, log *zap.Logger) (utils.Mailer, error) {
	if cfg.SESSender == "" {
		log.Warn("SES_EMAIL not set, mail will only be logged")
		return utils.LogMailer{Log: log}, nil
	}
	m, err := utils.NewSESMailer(ctx, cfg.AWSRegion, cfg.SESSender)
	if err != nil {
		return nil, err
	}
	return m, nil
}
