package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"

	"github.com/prateek/brandpost-api/internal/assets"
	"github.com/prateek/brandpost-api/internal/config"
	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/handlers"
	"github.com/prateek/brandpost-api/internal/logger"
	authmw "github.com/prateek/brandpost-api/internal/middleware"
	"github.com/prateek/brandpost-api/internal/pipeline"
	"github.com/prateek/brandpost-api/internal/services"
	"github.com/prateek/brandpost-api/pkg/dto"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.IsProduction())

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	adminService := services.NewAdminService(db)
	tokenService := services.NewTokenService(db)
	templateService := services.NewTemplateService(db)
	customerService := services.NewCustomerService(db)
	orderService := services.NewOrderService(db)
	notificationService := services.NewNotificationService(db)
	musicService := services.NewMusicService(db)
	walletService := services.NewWalletService(db)
	referralService := services.NewReferralService(db)
	supportService := services.NewSupportService(db)

	assetClient := assets.NewClient(cfg.AssetHost, log)
	saver := pipeline.NewSaver(assetClient, cfg.AssetHost.MaxUploadBytes, log)

	authHandler := handlers.NewAuthHandler(cfg, adminService, tokenService, jwtService)
	templateHandler := handlers.NewTemplateHandler(templateService, saver)
	customerHandler := handlers.NewCustomerHandler(customerService, orderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	musicHandler := handlers.NewMusicHandler(musicService, assetClient, cfg.AssetHost.MaxUploadBytes)
	walletHandler := handlers.NewWalletHandler(walletService, referralService)
	supportHandler := handlers.NewSupportHandler(supportService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/google/consent", authHandler.GetConsentURL)
	auth.Get("/google/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	admin := api.Group("/admin")
	admin.Use(authmw.Auth(jwtService))

	admin.Post("/auth/logout-all", authHandler.LogoutAll)

	admin.Get("/templates", templateHandler.List)
	admin.Post("/templates", templateHandler.Create)
	admin.Get("/templates/:id", templateHandler.Get)
	admin.Put("/templates/:id", templateHandler.Update)
	admin.Delete("/templates/:id", authmw.SuperAdmin(templateHandler.Delete))

	admin.Get("/customers", customerHandler.List)
	admin.Get("/customers/:id", customerHandler.Get)
	admin.Get("/orders", customerHandler.ListOrders)
	admin.Get("/orders/:id", customerHandler.GetOrder)

	admin.Get("/notifications", notificationHandler.List)
	admin.Post("/notifications", notificationHandler.Create)
	admin.Delete("/notifications/:id", notificationHandler.Delete)

	admin.Get("/music", musicHandler.List)
	admin.Post("/music", musicHandler.Upload)
	admin.Delete("/music/:id", authmw.SuperAdmin(musicHandler.Delete))

	admin.Get("/wallets", walletHandler.List)
	admin.Get("/wallets/:customerId/transactions", walletHandler.GetTransactions)
	admin.Get("/referrals", walletHandler.ListReferrals)

	admin.Get("/support", supportHandler.List)
	admin.Get("/support/:id", supportHandler.Get)
	admin.Patch("/support/:id", supportHandler.UpdateStatus)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, dto.OK(map[string]string{"status": "ok"}))
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Infof("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
}
