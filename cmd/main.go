package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"marketplace-service/internal/ai/gemini"
	"marketplace-service/internal/config"
	"marketplace-service/internal/event"
	"marketplace-service/internal/handlers"
	"marketplace-service/internal/repository"
	"marketplace-service/internal/services"

	"github.com/spf13/cobra"
)

func setupLogging(logDir string) (*os.File, error) {
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	// slog's default handler writes through the log package.
	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

// closers are run in reverse order on shutdown.
type closers []func() error

func (c closers) closeAll() {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			slog.Error("error during shutdown", "error", err)
		}
	}
}

func buildApp(ctx context.Context, cfg *config.MarketplaceConfig) (*services.App, closers, error) {
	var cleanup closers

	productRepo, err := repository.NewProductRepository()
	if err != nil {
		return nil, nil, err
	}

	var generator services.AdviceGenerator
	if cfg.AdviceConfigured() {
		client, err := gemini.NewGenAIClient(ctx, cfg.GeminiAPICfg.APIKey, cfg.GeminiAPICfg.FlashName)
		if err != nil {
			return nil, nil, err
		}
		cleanup = append(cleanup, client.Close)
		generator = client
	} else {
		slog.Warn("GEMINI_KEY environment variable not set, farming advice is unavailable")
	}

	opts := []services.AppOption{services.WithNoticeTTL(cfg.NoticeTTL)}
	if cfg.RabbitMQCfg.Enabled {
		conn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
		if err != nil {
			slog.Error("notice fan-out disabled", "error", err)
		} else {
			cleanup = append(cleanup, conn.Close)
			opts = append(opts, services.WithNotifier(event.NewNoticePublisher(conn.Channel)))
		}
	}

	app, err := services.NewApp(
		services.NewCatalogService(productRepo),
		services.NewAdviceService(generator, cfg.GeminiAPICfg.Timeout),
		opts...,
	)
	if err != nil {
		cleanup.closeAll()
		return nil, nil, err
	}
	return app, cleanup, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the marketplace HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()

			logFile, err := setupLogging(cfg.LogDir)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer logFile.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			state, cleanup, err := buildApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup.closeAll()

			server := handlers.NewServer(state)
			go func() {
				<-ctx.Done()
				slog.Info("Shutting down HTTP server...")
				if err := server.Shutdown(); err != nil {
					slog.Error("server shutdown failed", "error", err)
				}
			}()

			slog.Info("Starting marketplace-service", "port", cfg.Port)
			return server.Listen(":" + cfg.Port)
		},
	}
}

func newAdviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advice <query>",
		Short: "Ask the farming advisor a single question and print the JSON answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()

			state, cleanup, err := buildApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup.closeAll()

			advice, err := state.SubmitAdviceQuery(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(advice)
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:          "marketplace-service",
		Short:        "KisanBazaar farmer marketplace",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newAdviceCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
