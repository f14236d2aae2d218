package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"reselleros/internal/adapter/repo"
	"reselleros/internal/ai"
	"reselleros/internal/http/handlers"
	"reselleros/internal/http/httpapi"
	"reselleros/internal/infra"
	"reselleros/internal/research"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	client := ai.NewClient(ai.ClientOptions{
		BaseURL: cfg.OllamaBaseURL,
		Timeout: cfg.OllamaTimeout,
		Logger:  &logger,
	})
	orchestrator := ai.NewOrchestrator(ai.OrchestratorOptions{
		Client:    client,
		Templates: ai.NewTemplateStore(cfg.PromptDir),
		Model:     cfg.OllamaModel,
		Logger:    &logger,
	})
	cache := research.NewCache(cfg.ResearchCacheDir, &logger)
	researcher := research.NewOrchestrator(cache, orchestrator, &logger)

	app := &handlers.App{
		Logger:   logger,
		AI:       orchestrator,
		Research: researcher,
		Status:   client,
		Items:    repo.NewItemRepository(dbpool),
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
