package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"debatecoach/config"
	"debatecoach/controllers"
	"debatecoach/db"
	"debatecoach/internal/logger"
	"debatecoach/routes"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "debatecoach",
	})
	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	timeout := time.Duration(cfg.Generation.TimeoutSeconds) * time.Second

	// Providers stay nil interfaces when unconfigured so the generators skip them.
	var primary, secondary services.Provider
	if cfg.GeminiConfigured() {
		gemini, err := services.NewGeminiProvider(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model, timeout)
		if err != nil {
			log.Warn().Err(err).Msg("Gemini unavailable, continuing without primary provider")
		} else {
			defer gemini.Close()
			primary = gemini
		}
	}
	if cfg.OpenAIConfigured() {
		secondary = services.NewChatGPT(cfg.Openai.GptApiKey, cfg.Openai.Model, cfg.Openai.URL, timeout)
	}

	var store services.StatusStore
	if cfg.Database.URI != "" {
		mongoStore, err := db.ConnectMongoDB(ctx, cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoStore.Close(closeCtx); err != nil {
				log.Warn().Err(err).Msg("Failed to disconnect MongoDB")
			}
		}()
		log.Info().Str("database", mongoStore.DatabaseName()).Msg("Connected to MongoDB")
		store = mongoStore
	} else {
		log.Warn().Msg("No database URI configured, status checks are kept in memory")
		store = db.NewMemoryStore()
	}

	debates := services.NewDebateGenerator(log, primary, secondary)
	log.Info().Strs("chain", debates.Sources()).Msg("Debate generation chain ready")

	router := routes.SetupRouter(routes.Deps{
		Log:            log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Debate:         controllers.NewDebateController(log, debates, services.NewTextGenerator(log, primary)),
		Status:         controllers.NewStatusController(log, services.NewStatusService(store)),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
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

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
