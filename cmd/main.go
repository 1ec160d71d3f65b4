package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kdduha/explain-camera/backend/internal/cache"
	"github.com/kdduha/explain-camera/backend/internal/config"
	"github.com/kdduha/explain-camera/backend/internal/generator/provider"
	"github.com/kdduha/explain-camera/backend/internal/handler"
	"github.com/kdduha/explain-camera/backend/internal/logger"
	"github.com/kdduha/explain-camera/backend/internal/service"

	_ "github.com/kdduha/explain-camera/backend/docs"
)

// @title Explain This Camera API
// @version 1.0.0
// @description Adaptive real-time image explanation system
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	l := logger.New(cfg.Log.AppEnv, cfg.Log.Level)

	gen, closer, err := provider.New(ctx, cfg, l)
	if err != nil {
		l.Fatal().Err(err).Str("provider", cfg.Generator.Provider).Msg("failed to initialize generator")
	}
	defer closer.Close()

	analyzeService := service.NewAnalyzeService(l, gen, cfg.APIKeyEnv())

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			l.Warn().Err(err).Str("addr", cfg.RedisConfig.Addr).Msg("redis is not reachable; cache errors will be ignored")
		}
		analyzeService.SetCacheClient(redisCache)
		l.Info().Msg("set redis as cache")
	}

	h := handler.NewAnalyzeHandler(analyzeService, l, cfg.Server.MaxBodyBytes)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.NewRouter(h, l, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		l.Info().
			Str("port", cfg.Server.Port).
			Str("provider", cfg.Generator.Provider).
			Str("model", cfg.Model()).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server forced to shutdown")
		return
	}
	l.Info().Msg("server stopped")
}
