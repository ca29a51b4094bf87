package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/config"
	"wedding-registry-backend/internal/logger"
	"wedding-registry-backend/internal/repository"
	"wedding-registry-backend/internal/server"
	"wedding-registry-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	db := client.InitDatabase(cfg.DatabaseURL, cfg.SQLitePath)
	mpClient := client.NewMercadoPagoClient(cfg.MercadoPago.BaseApiURL)
	meliClient := client.NewMercadoLivreClient(cfg.MercadoLivre.BaseApiURL)

	configRepo := repository.NewConfigRepository(db)
	presentRepo := repository.NewPresentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	contentRepo := repository.NewContentRepository(db)

	reconcileService := service.NewReconcileService(
		db, log,
		mpClient, meliClient, cfg.MercadoLivre,
		configRepo, saleRepo,
	)
	webhookService := service.NewWebhookService(
		db, log,
		mpClient, cfg.MercadoPago.WebhookSecret,
		configRepo, orderRepo, cartRepo, presentRepo, saleRepo,
	)
	checkoutService := service.NewCheckoutService(
		log, mpClient, cfg.SiteURL,
		configRepo, presentRepo, orderRepo, cartRepo,
	)
	contentService := service.NewContentService(contentRepo)
	presentService := service.NewPresentService(presentRepo)
	authService := service.NewAuthService(cfg.Auth)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		log, cfg.Auth.JWTSecret,
		reconcileService, webhookService, checkoutService,
		contentService, presentService, authService,
	)

	log.WithField("addr", serverAddr).Info("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Fatal("HTTP server shutdown error")
	}
}
