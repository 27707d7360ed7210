package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ErosMello/jornalescolar/auth"
	"github.com/ErosMello/jornalescolar/config"
	"github.com/ErosMello/jornalescolar/database"
	"github.com/ErosMello/jornalescolar/handlers"
	"github.com/ErosMello/jornalescolar/posts"
	"github.com/ErosMello/jornalescolar/ratings"
	"github.com/ErosMello/jornalescolar/routes"
	"github.com/ErosMello/jornalescolar/storage"
)

func main() {
	logrus.Info("starting jornal escolar server")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
			dbErr = err
			logrus.WithError(err).Warnf("MongoDB connection attempt %d failed", i)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		logrus.WithError(dbErr).Fatal("failed to connect to MongoDB")
	}
	defer database.Disconnect()

	uploader, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		logrus.WithError(err).Fatal("blob storage setup failed")
	}

	gateway := auth.NewGateway(
		auth.NewMongoProvider(database.Accounts),
		auth.NewMongoPermissions(database.Users),
		cfg.AllowedEmailDomain,
	)
	repo := posts.NewRepository(database.Posts, uploader)
	ratingStore := ratings.NewStore(ratings.NewMemoryCache(), ratings.NewMongoRemote(database.Ratings))

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(cfg, handlers.New(cfg, gateway, repo, ratingStore))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}

	logrus.Info("server stopped")
}
