package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/controllers"
	"learnmedia/learnmedia/middlewares"
	"learnmedia/learnmedia/routes"
	"learnmedia/learnmedia/sources/psql"
	"learnmedia/learnmedia/sources/psql/dao"
	"learnmedia/learnmedia/sources/storage"
	"learnmedia/learnmedia/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	objectStorage, err := storage.NewObjectStorage(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("object storage connection error", zap.Error(err))
		os.Exit(1)
	}

	userDAO := dao.NewUserDAO(db.DB)
	mediaDAO := dao.NewLearningMediaDAO(db.DB)

	authCtrl := controllers.NewAuthController(userDAO, objectStorage, cfg)
	userCtrl := controllers.NewUserController(userDAO, objectStorage)
	mediaCtrl := controllers.NewMediaController(mediaDAO)
	pictureCtrl := controllers.NewPictureController(userDAO, objectStorage)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middlewares.AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/api/auth", routes.AuthRoutes(authCtrl, userCtrl, mediaCtrl, cfg))
	r.Mount("/api/picture", routes.PictureRoutes(pictureCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(controllers.NewHealthController()))

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
