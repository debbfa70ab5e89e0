package di

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lmittmann/tint"

	"github.com/gatehouse/backend/internal/auth"
	"github.com/gatehouse/backend/internal/config"
	"github.com/gatehouse/backend/internal/crypto"
	"github.com/gatehouse/backend/internal/handler"
	"github.com/gatehouse/backend/internal/middleware"
	"github.com/gatehouse/backend/internal/server"
	"github.com/gatehouse/backend/internal/store"
)

const Version = "0.1.0"

var ConfigSet = wire.NewSet(
	config.Load,
)

var LoggerSet = wire.NewSet(
	ProvideLogger,
)

var StoreSet = wire.NewSet(
	ProvideDatabase,
	store.NewPostgresQuerier,
	wire.Bind(new(store.Querier), new(*store.PostgresQuerier)),
	store.NewNormalizer,
)

var AuthSet = wire.NewSet(
	ProvideCookieCodec,
	auth.NewVerifier,
	ProvideIssuer,
	auth.NewSessionChecker,
	ProvideGate,
)

var HandlerSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewPageHandler,
	ProvideAuthHandler,
)

var ServerSet = wire.NewSet(
	ProvideServerConfig,
	server.New,
)

var AppSet = wire.NewSet(
	ConfigSet,
	LoggerSet,
	StoreSet,
	AuthSet,
	HandlerSet,
	ServerSet,
	wire.Struct(new(Application), "*"),
)

type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	DB            *sql.DB
	Server        *server.Server
	Gate          fiber.Handler
	AuthHandler   *handler.AuthHandler
	PageHandler   *handler.PageHandler
	HealthHandler *handler.HealthHandler
}

func ProvideLogger(cfg *config.Config) *slog.Logger {
	var logLevel slog.Level
	switch cfg.Server.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var h slog.Handler
	if cfg.Server.Env == "development" {
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}

	return slog.New(h)
}

func ProvideDatabase(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, cleanup, nil
}

func ProvideCookieCodec(cfg *config.Config) (*crypto.CookieCodec, error) {
	codec, err := crypto.NewCookieCodec(cfg.Auth.CookieKey)
	if err != nil {
		return nil, fmt.Errorf("COOKIE_KEY: %w", err)
	}
	return codec, nil
}

func ProvideIssuer(n *store.Normalizer, logger *slog.Logger, cfg *config.Config) *auth.Issuer {
	return auth.NewIssuer(n, logger, cfg.Auth.SessionMaxAge)
}

func ProvideGate(cfg *config.Config, codec *crypto.CookieCodec, sessions *auth.SessionChecker, logger *slog.Logger) fiber.Handler {
	return middleware.Gate(middleware.GateConfig{
		Codec:      codec,
		Sessions:   sessions,
		Logger:     logger,
		CookieName: cfg.Auth.CookieName,
		Exempt:     middleware.PublicPaths("/public/", "/health"),
		LoginURL:   "/",
	})
}

func ProvideAuthHandler(
	cfg *config.Config,
	verifier *auth.Verifier,
	issuer *auth.Issuer,
	sessions *auth.SessionChecker,
	codec *crypto.CookieCodec,
	logger *slog.Logger,
) *handler.AuthHandler {
	return handler.NewAuthHandler(handler.AuthHandlerConfig{
		Verifier:      verifier,
		Issuer:        issuer,
		Revoker:       sessions,
		Codec:         codec,
		Logger:        logger,
		CookieName:    cfg.Auth.CookieName,
		SessionMaxAge: cfg.Auth.SessionMaxAge,
		LandingURL:    cfg.Auth.LandingURL,
	})
}

func ProvideHealthHandler() *handler.HealthHandler {
	return handler.NewHealthHandler(Version)
}

func ProvideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
		StaticDir:    cfg.Server.StaticDir,
	}
}
