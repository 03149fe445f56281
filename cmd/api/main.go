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

	"taskmanager/pkg/translator"

	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/handlers"
	mongoadapter "taskmanager/internal/adapter/mongodb"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/config"
	"taskmanager/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	taskRepository, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open task store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	r := httpadapter.NewEngine(logger, cfg.CorsAllowedOrigins)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(taskRepository, cfg.StoreDriver),
		handlers.NewTaskHandler(appservice.NewTaskService(taskRepository)),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("could not start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// openStore connects the backend named by cfg.StoreDriver and returns its
// repository together with the function that releases it.
func openStore(ctx context.Context, cfg *config.Config) (ports.TaskRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := mongoadapter.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				zap.L().Warn("failed to disconnect mongodb", zap.Error(err))
			}
		}
		return mongoadapter.NewTaskRepository(client.Database(cfg.MongoDatabase)), closeFn, nil

	case config.StoreDriverSQLite, config.StoreDriverMySQL:
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := dbadapter.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				zap.L().Warn("failed to close database connection", zap.Error(err))
			}
		}
		return dbadapter.NewTaskRepository(db), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
