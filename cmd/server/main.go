// Command server starts the graphstore HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flowsmith/graphstore/internal/api"
	"github.com/flowsmith/graphstore/internal/core/service"
	"github.com/flowsmith/graphstore/internal/infrastructure/codegen"
	"github.com/flowsmith/graphstore/internal/infrastructure/config"
	storemongo "github.com/flowsmith/graphstore/internal/infrastructure/db/mongo"
	storeredis "github.com/flowsmith/graphstore/internal/infrastructure/db/redis"
	"github.com/flowsmith/graphstore/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting graphstore")

	// --- Document store ---
	conn := storemongo.NewConn(storemongo.Config{
		URI:                    cfg.Mongo.URI(),
		Database:               cfg.Mongo.Database,
		MaxPoolSize:            cfg.Mongo.MaxPoolSize,
		MinPoolSize:            cfg.Mongo.MinPoolSize,
		ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout(),
		ConnectTimeout:         cfg.Mongo.ConnectTimeout(),
	})
	if err := conn.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	db, err := conn.Database()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle")
	}

	// --- Repositories ---
	userRepo := storemongo.NewUserRepository(db)
	productRepo := storemongo.NewProductRepository(db)
	graphRepo := storemongo.NewGraphRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes")
	}
	if err := graphRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("graph indexes")
	}

	// --- Redis ---
	rdb, err := storeredis.Connect(ctx, storeredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	graphService := service.NewGraphService(graphRepo, storeredis.NewGraphCache(rdb), log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	generateService := service.NewGenerateService(codegen.NewClient(cfg.Codegen.URL), log)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Conn:      conn,
		Redis:     rdb,
		Users:     userService,
		Products:  productService,
		Graphs:    graphService,
		Auth:      authService,
		Generate:  generateService,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	log.Info().Msg("shutdown complete")
}
