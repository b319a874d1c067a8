package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menuqr-dashboard/config"
	httpapi "menuqr-dashboard/dashboard-svc/internal/api/http"
	"menuqr-dashboard/dashboard-svc/internal/service"
	"menuqr-dashboard/dashboard-svc/internal/storefront"
	"menuqr-dashboard/dashboard-svc/internal/transport"
)

func main() {
	cfg := config.Load()

	client := transport.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	handler := httpapi.NewHandler(
		service.NewMenuService(client),
		service.NewOrdersService(client),
		service.NewPaymentsService(client),
		storefront.DefaultQRGenerator{BaseURL: cfg.StorefrontURL},
	)
	srv := httpapi.NewServer(cfg.ListenAddr, httpapi.NewRouter(handler))

	go func() {
		log.Printf("Storefront edge starting on %s (backend %s)", cfg.ListenAddr, client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down storefront edge...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
