// @title gyanith24 CMS API
// @version 1.0
// @description Admin backend for managing tech-fest event records.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/nitpydev/gyanith24-cms/config"
	_ "github.com/nitpydev/gyanith24-cms/docs"
	"github.com/nitpydev/gyanith24-cms/internal/adapters/auth"
	"github.com/nitpydev/gyanith24-cms/internal/adapters/storage"
	delivery "github.com/nitpydev/gyanith24-cms/internal/delivery/http"
	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/controllers"
	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/middleware"
	"github.com/nitpydev/gyanith24-cms/internal/repository/postgres"
	"github.com/nitpydev/gyanith24-cms/internal/services"
)

const serviceTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)
	logger.Info("starting cms backend", "environment", cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	imageStore, err := storage.NewImageStore(cfg.S3)
	if err != nil {
		log.Fatalf("init image store: %v", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	accessRepo := postgres.NewAccessListRepository(db)

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	accessService := services.NewAccessService(accessRepo, logger, serviceTimeout)

	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, accessService, issuer)
	schemaController := controllers.NewSchemaController()
	uploadController := controllers.NewUploadController(logger, imageStore)

	mux := delivery.NewRouter(eventController, authController, schemaController, uploadController, verifier)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
