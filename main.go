package main

import (
	"fmt"
	"net/http"
	"os"

	"bilfoto-backend/internal/capture"
	"bilfoto-backend/internal/config"
	"bilfoto-backend/internal/download"
	"bilfoto-backend/internal/gallery"
	"bilfoto-backend/internal/library"
	"bilfoto-backend/internal/logging"
	"bilfoto-backend/internal/middleware"
	"bilfoto-backend/internal/removebg"
	"bilfoto-backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load .env file for local development (ignored in Docker)
	if os.Getenv("DOCKER_ENV") == "" {
		_ = godotenv.Load(".env")
	}

	cfg := config.New()

	if err := logging.InitLogger(cfg.Server.Mode); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	e := echo.New()
	if err := initialize(e, cfg); err != nil {
		logging.Logger.Fatal("initialization failed", zap.Error(err))
	}

	logging.Logger.Info("starting BilFoto server", zap.String("port", cfg.Server.Port))
	logging.Logger.Fatal("server stopped", zap.Error(http.ListenAndServe(cfg.Server.Port, e)))
}

func initialize(e *echo.Echo, cfg *config.Config) error {
	// Local blob layer used by every feature
	storageService, err := storage.NewService(&cfg.Storage)
	if err != nil {
		return err
	}
	storageHandler := storage.NewHandler(storageService)
	storageHandler.RegisterRoutes(e)

	// Guided capture flow
	captureService := capture.NewService(storageService)
	captureHandler := capture.NewHandler(captureService)
	captureHandler.RegisterRoutes(e)

	// Background-removal client
	removeBgService := removebg.NewService(&cfg.RemoveBg, storageService)
	removeBgHandler := removebg.NewHandler(removeBgService)
	removeBgHandler.RegisterRoutes(e)

	// Gallery store, organizer and photo-library export
	libraryService, err := library.NewService(cfg.Export.LibraryDir)
	if err != nil {
		return err
	}
	store := gallery.NewStore()
	galleryService := gallery.NewService(store, storageService, libraryService, cfg.Export.AlbumName)
	galleryHandler := gallery.NewHandler(galleryService)
	galleryHandler.RegisterRoutes(e)

	// ZIP downloads of a folder's results
	downloadService := download.NewService(store, storageService)
	downloadHandler := download.NewHandler(downloadService)
	downloadHandler.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":     "ok",
			"processing": removeBgService.Ready(),
		})
	})

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORSConfig())

	return nil
}
