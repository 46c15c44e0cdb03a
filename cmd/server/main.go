package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/config"
	"activity-booking-platform/internal/handlers"
	"activity-booking-platform/internal/middleware"
	"activity-booking-platform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := api.NewClient(api.Config{
		BaseURL:           cfg.API.BaseURL,
		APIKey:            cfg.API.Key,
		Timeout:           time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	})

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Secure = cfg.IsProduction()
	sessionManager := middleware.NewSessionManager(store)

	cartService := services.NewCartService(client)
	imageService := services.NewImageService()
	txService := services.NewTransactionService(client, imageService)
	catalogService := services.NewCatalogService(client)

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:           handlers.NewAuthHandlers(client, sessionManager),
		Catalog:        handlers.NewCatalogHandlers(catalogService),
		Cart:           handlers.NewCartHandlers(cartService, sessionManager),
		Transactions:   handlers.NewTransactionHandlers(txService),
		Admin:          handlers.NewAdminHandlers(txService, client),
		Sessions:       sessionManager,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // countdown streams stay open past any fixed deadline
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
