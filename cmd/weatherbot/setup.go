package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/providers/smalltalk"
	"github.com/sandevgo/weatherbot/internal/providers/weather"
	"github.com/sandevgo/weatherbot/internal/service/bot"
	"github.com/sandevgo/weatherbot/internal/service/command"
	"github.com/sandevgo/weatherbot/internal/service/session"
	"github.com/sandevgo/weatherbot/internal/storage/sqlite"
	"github.com/sandevgo/weatherbot/internal/transport/cli"
	httptransport "github.com/sandevgo/weatherbot/internal/transport/http"
	"github.com/sandevgo/weatherbot/internal/transport/telegram"
	"github.com/sandevgo/weatherbot/pkg/log"
	"github.com/sandevgo/weatherbot/pkg/srv"
)

// app holds what every command that talks to users needs.
type app struct {
	cfg      *config.AppConfig
	db       *sql.DB
	sessions *session.Store
	bot      *bot.Bot
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	weatherCfg := config.NewWeatherConfig(ctx)

	// 2. Storage
	db, corpusRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// 3. Small talk
	talker, err := smalltalk.NewSmallTalker(ctx, appCfg, corpusRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize small talk")
	}

	// 4. Sessions, commands and the bot itself
	sessions := session.NewStore()
	b := bot.NewBot(
		weather.NewOpenWeather(weatherCfg),
		talker,
		command.NewRouter(sessions),
	)

	return &app{
		cfg:      appCfg,
		db:       db,
		sessions: sessions,
		bot:      b,
	}
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	a := newApp(ctx)
	services := []srv.Service{srv.NewCleanup(a.db.Close)}

	transports, err := initTransports(ctx, a)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.CorpusRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewCorpusRepo(db), nil
}

func initTransports(ctx context.Context, a *app) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		tg, err := telegram.NewBot(ctx, tgCfg, a.bot, a.sessions)
		if err != nil {
			return nil, err
		}
		services = append(services, tg)
	}

	if a.cfg.EnableHTTP {
		httpCfg := config.NewHTTPConfig(ctx)
		services = append(services, httptransport.NewServer(ctx, httpCfg, a.bot, a.sessions))
	}

	if a.cfg.EnableCLI {
		rl, err := cli.NewReadLine(a.bot, a.sessions, a.cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	if len(services) == 0 {
		return nil, errors.New("no transport enabled, set WEATHERBOT_ENABLE_CLI, WEATHERBOT_ENABLE_TELEGRAM or WEATHERBOT_ENABLE_HTTP")
	}
	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
