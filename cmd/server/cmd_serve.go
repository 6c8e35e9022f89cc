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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/handler"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/router"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/database"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/jwt"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/redis"
)

var serveSkipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveSkipMigrate, "skip-migrate", false,
		"No aplicar migraciones pendientes al arrancar")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("iniciando aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	if !serveSkipMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("obtener sql.DB: %w", err)
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			return err
		}
	}

	// Redis es opcional: sin él no hay revocación de tokens y el rate limit es local
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis no disponible, se continúa sin blacklist de tokens", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	// Repository → Service → Handler
	repo := repository.NewRepository(db)
	var blacklist service.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}
	svc := service.NewService(cfg, repo, jwtMgr, blacklist, logger)
	h := handler.NewHandler(svc, database.NewPinger(db))

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("señal recibida, cerrando", zap.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil {
			logger.Error("el servidor HTTP falló", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al cerrar el servidor", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Warn("error al cerrar la base de datos", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("servidor detenido")
	return nil
}
