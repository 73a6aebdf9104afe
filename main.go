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

	"tubeboost/infrastructure/clients/gemini"
	"tubeboost/infrastructure/clients/transcript"
	youtubeclient "tubeboost/infrastructure/clients/youtube"
	"tubeboost/infrastructure/configuration"
	"tubeboost/infrastructure/logger"
	httpHandler "tubeboost/interfaces/http"
	"tubeboost/server"
	"tubeboost/usecase"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env files non-destructively; OS env keeps precedence.
	if err := godotenv.Load(); err == nil {
		logger.GetLogger().Info("Loaded .env from working directory")
	}
	configuration.Reload()

	cfg := &configuration.C
	app := cfg.App

	metadataClient, err := youtubeclient.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client")
		os.Exit(1)
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize Gemini client")
		os.Exit(1)
	}

	transcriptClient := transcript.NewClient()

	optimizerUC := usecase.NewOptimizerUseCase(metadataClient, transcriptClient, geminiClient)
	optimizerHandler := httpHandler.NewOptimizerHandler(optimizerUC, !cfg.IsProduction())
	healthHandler := httpHandler.NewHealthHandler(app.Version)

	router := server.InitiateRouter(healthHandler, optimizerHandler, cfg)

	logger.GetLogger().WithFields(map[string]interface{}{
		"port":  app.Port,
		"env":   app.Env,
		"model": cfg.Gemini.Model,
	}).Info("Starting application")

	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", app.Port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
