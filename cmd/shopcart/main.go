package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Luchito30/ShopCart/internal/cart"
	"github.com/Luchito30/ShopCart/internal/catalog"
	"github.com/Luchito30/ShopCart/internal/config"
	"github.com/Luchito30/ShopCart/internal/httpapi"
	"github.com/Luchito30/ShopCart/internal/session"
	"github.com/Luchito30/ShopCart/internal/telemetry"
	"github.com/Luchito30/ShopCart/pkg/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "shopcart",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	shutdownTracing, err := telemetry.Init("shopcart", cfg.Env)
	if err != nil {
		log.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}

	cartStore := cart.NewStore()
	gate := session.NewGate(cfg.Users, cfg.LoginDelay, cartStore.Clear)

	catalogStore := catalog.NewStore()
	client := catalog.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)
	loader := catalog.NewLoader(client, catalogStore, log)

	// One-shot catalog load; serving starts with an empty catalog until it
	// resolves.
	loader.LoadAsync(context.Background())

	api := httpapi.NewServer(log, cartStore, gate, catalogStore, loader)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(api.Router(cfg.RequestTimeout), "shopcart"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("shopcart starting", "port", cfg.HTTPPort, "catalog_url", cfg.CatalogURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error("tracing shutdown", "error", err)
	}

	log.Info("server exited")
}
