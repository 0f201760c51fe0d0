package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"showscout/internal/http/handlers"
	"showscout/internal/http/httpapi"
	"showscout/internal/infra"
	"showscout/internal/providers/llm"
	"showscout/internal/recommend"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	var completer llm.Completer
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey != "" {
			completer = llm.NewOpenAIClient(llm.OpenAIOptions{
				APIKey:       cfg.OpenAIAPIKey,
				Model:        cfg.OpenAIModel,
				BaseURL:      cfg.OpenAIBaseURL,
				Organization: cfg.OpenAIOrg,
			})
		}
	default:
		if cfg.GeminiAPIKey != "" {
			completer = llm.NewGeminiClient(llm.GeminiOptions{
				APIKey:  cfg.GeminiAPIKey,
				Model:   cfg.GeminiModel,
				BaseURL: cfg.GeminiBaseURL,
			})
		}
	}
	if completer == nil {
		logger.Warn().
			Str("provider", cfg.LLMProvider).
			Msg("no llm credential configured; every invoke will fail with not_configured")
	}

	svc := recommend.NewService(recommend.Options{
		Completer: completer,
		Baseline:  cfg.DefaultRecommendations,
		Logger:    logger,
	})
	app := handlers.NewApp(svc, logger, handlers.Manifest{
		Name:        cfg.AgentName,
		Version:     cfg.AgentVersion,
		Description: cfg.AgentDescription,
	})
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("provider", cfg.LLMProvider).Msg("api listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
