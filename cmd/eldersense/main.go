// ElderSense daemon - the elderly-care monitoring service
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eldersense/eldersense/internal/api"
	"github.com/eldersense/eldersense/internal/config"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/notify"
	"github.com/eldersense/eldersense/internal/scheduler"
	"github.com/eldersense/eldersense/internal/store"
)

var (
	configPath string
	dataDir    string
	port       int
	backend    string
	seedDB     bool
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eldersense",
		Short: "ElderSense - elderly-care monitoring service",
		RunE:  runDaemon,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	rootCmd.Flags().IntVar(&port, "port", 0, "HTTP server port (overrides config)")
	rootCmd.Flags().StringVar(&backend, "backend", "", "Storage backend: seed or sqlite (overrides config)")
	rootCmd.Flags().BoolVar(&seedDB, "seed", false, "Prime the sqlite backend with sample records")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if backend != "" {
		cfg.Storage.Backend = config.StorageBackend(backend)
	}
	if debug {
		cfg.Features.DebugMode = true
	}

	if cfg.Features.DebugMode {
		logging.SetLevel(logging.DEBUG)
	}

	logging.Info("Starting ElderSense daemon")

	// Record store
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if seedDB {
		sqlStore, ok := st.(*store.SQLStore)
		if !ok {
			return fmt.Errorf("--seed requires the sqlite backend")
		}
		if err := sqlStore.Seed(store.SeedRecords()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		logging.Info("Seeded sqlite store with sample records")
	}
	logging.WithField("backend", string(cfg.Storage.Backend)).Info("Record store ready")

	// Completion provider
	provider, err := llm.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to configure completion provider: %w", err)
	}
	logging.WithField("provider", provider.Name()).Info("Completion provider configured")
	if ollama, ok := provider.(*llm.OllamaClient); ok {
		if !ollama.IsConfigured() {
			logging.Warn("Ollama not reachable; model %s completions will fail until it is up", ollama.GetModel())
		} else {
			logging.WithField("model", ollama.GetModel()).Info("Ollama reachable")
		}
	}

	// Caregiver alerts
	alerts := notify.NewService()

	// Background scheduler
	var sched *scheduler.Scheduler
	if cfg.Features.EnableScheduler {
		sched = scheduler.NewScheduler()
		if err := scheduler.RegisterReminderDispatch(sched, st, alerts, time.Minute); err != nil {
			return fmt.Errorf("failed to register reminder dispatch: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		logging.Info("Scheduler started")
	}

	// API server
	server := api.New(api.Config{
		Host:     cfg.Server.Host,
		Port:     cfg.Server.Port,
		Store:    st,
		Provider: provider,
		Alerts:   alerts,
	})

	// Handle shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		logging.Info("Shutting down")
		if sched != nil {
			sched.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Stop(ctx)
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
