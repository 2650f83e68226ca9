// Package cmd wires the agent process: configuration, logging, storage,
// the worker pool and the HTTP server.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/config"
	"github.com/commissaire-project/bootstrap-agent/internal/handlers"
	"github.com/commissaire-project/bootstrap-agent/internal/server"
	"github.com/commissaire-project/bootstrap-agent/internal/services"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
	"github.com/commissaire-project/bootstrap-agent/internal/store/migrations"
	"github.com/commissaire-project/bootstrap-agent/pkg/ansible"
	"github.com/commissaire-project/bootstrap-agent/pkg/scheduler"
)

const envPrefix = "AGENT"

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bootstrap agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&cfg.ConfigFile, "config-file", "", "path to a yaml configuration file")

	flags.StringVar(&cfg.Server.ListenInterface, "server-listen-interface", cfg.Server.ListenInterface, "interface the api listens on")
	flags.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "port the api listens on")
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "server mode (dev or prod)")
	flags.StringVar(&cfg.Server.TLSCertFile, "server-tls-certfile", cfg.Server.TLSCertFile, "tls certificate served by the api")
	flags.StringVar(&cfg.Server.TLSKeyFile, "server-tls-keyfile", cfg.Server.TLSKeyFile, "tls key served by the api")

	flags.StringVar(&cfg.Agent.DataFolder, "data-folder", cfg.Agent.DataFolder, "folder holding the registry database")
	flags.IntVar(&cfg.Agent.NumWorkers, "num-workers", cfg.Agent.NumWorkers, "number of concurrent bootstrap pipelines")
	flags.StringVar(&cfg.Agent.PlaybookBinary, "playbook-binary", cfg.Agent.PlaybookBinary, "automation engine executable")
	flags.StringVar(&cfg.Agent.RunbookFolder, "runbook-folder", cfg.Agent.RunbookFolder, "folder holding the bootstrap runbooks")

	flags.BoolVar(&cfg.Auth.Enabled, "authentication-enabled", cfg.Auth.Enabled, "require bearer tokens on api requests")
	flags.StringVar(&cfg.Auth.JWTFilePath, "authentication-jwt-filepath", cfg.Auth.JWTFilePath, "file holding the shared jwt secret")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Configuration) error {
	if cfg.ConfigFile != "" {
		viper.SetConfigFile(cfg.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
		if err := viper.Unmarshal(cfg); err != nil {
			return err
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Server.ServerMode)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	log := zap.S().Named("agent")
	log.Infow("starting", "data_folder", cfg.Agent.DataFolder, "workers", cfg.Agent.NumWorkers)

	if err := os.MkdirAll(cfg.Agent.DataFolder, 0o750); err != nil {
		return err
	}

	db, err := store.NewDB(filepath.Join(cfg.Agent.DataFolder, config.DatabaseFileName))
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := migrations.Run(ctx, db); err != nil {
		return err
	}

	st := store.NewStore(db)
	sched := scheduler.NewScheduler(cfg.Agent.NumWorkers)
	defer sched.Close()

	forwarder := ansible.NewLogForwarder(zap.S().Named("events"))
	runner := ansible.NewPlaybookRunner(cfg.Agent.PlaybookBinary, forwarder)

	bootstrapSrv := services.NewBootstrapService(runner, st, sched, cfg.Agent.RunbookFolder, cfg.StoreBackends())
	handler := handlers.New(
		services.NewHostService(st, bootstrapSrv),
		services.NewClusterService(st),
		services.NewNetworkService(st),
	)

	srv := server.New(cfg, handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
