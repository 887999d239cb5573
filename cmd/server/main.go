package main

import (
	"net/http"

	_ "pesagem/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"pesagem/internal/auth"
	"pesagem/internal/cache"
	"pesagem/internal/config"
	"pesagem/internal/db"
	"pesagem/internal/handler"
	"pesagem/internal/logger"
	"pesagem/internal/model"
	"pesagem/internal/repository"
	"pesagem/internal/router"
	"pesagem/internal/service"
	"pesagem/internal/storage"
)

// @title Pesagem API
// @version 1.0
// @description Freight weighing-ticket service: lancamentos CRUD with role-based access, invoice attachments and dashboard analytics.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Lancamento{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}
	for _, table := range model.ReferenciaTables {
		if err := gormDB.Table(table).AutoMigrate(&model.Referencia{}); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("auto-migrate")
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	uploads, err := storage.NewDiskUploads(cfg.UploadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir init")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	lancamentoRepo := repository.NewLancamentoRepository(gormDB)
	produtoRepo := repository.NewReferenciaRepository(gormDB, model.TableProdutos)
	origemRepo := repository.NewReferenciaRepository(gormDB, model.TableOrigens)
	destinoRepo := repository.NewReferenciaRepository(gormDB, model.TableDestinos)
	analyticsRepo := repository.NewAnalyticsRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	lancamentoService := service.NewLancamentoService(lancamentoRepo, uploads)
	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, tokenStore, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Lancamentos: handler.NewLancamentoHandler(lancamentoService),
		Users:       handler.NewUserHandler(userService),
		Produtos:    handler.NewReferenciaHandler(service.NewReferenciaService(produtoRepo)),
		Origens:     handler.NewReferenciaHandler(service.NewReferenciaService(origemRepo)),
		Destinos:    handler.NewReferenciaHandler(service.NewReferenciaService(destinoRepo)),
		Analytics:   handler.NewAnalyticsHandler(analyticsService),
	})

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
