package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"
    ghandlers "github.com/gorilla/handlers"
    "github.com/gorilla/mux"
    "github.com/rs/cors"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/config"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/handlers"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/metrics"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/middleware"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/store"
)

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    cfg := config.Load()

    log.Println("Initializing PostgreSQL database...")
    st, err := store.OpenWithRetry(cfg.DatabaseURL, cfg.ConnectAttempts)
    if err != nil {
        log.Fatalf("Failed to initialize PostgreSQL: %v", err)
    }
    defer st.Close()

    migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
    if err := st.Migrate(migrateCtx); err != nil {
        cancelMigrate()
        log.Fatalf("Failed to run migrations: %v", err)
    }
    cancelMigrate()
    log.Println("PostgreSQL database initialized successfully")

    config.InitCache(cfg.RouteCacheTTL)

    collector := metrics.NewCollector()
    h := handlers.New(st, collector)

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: cfg.AllowedOrigins,
        AllowedMethods: []string{
            "GET", "POST", "PUT", "DELETE", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Authorization",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
            "X-Request-ID",
        },
        MaxAge: 86400,
    })

    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.MetricsMiddleware(collector))
    r.Use(ghandlers.CompressHandler)

    api := r.PathPrefix("/api").Subrouter()
    registerRoutes(api, h)
    log.Println("Routes registered successfully")

    r.Handle("/metrics", collector.Handler()).Methods("GET")

    port := cfg.Port
    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            serverErrors <- err
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router, h *handlers.Handler) {
    api.HandleFunc("/health", h.Health).Methods("GET")

    api.HandleFunc("/routes", h.GetRoutes).Methods("GET")
    api.HandleFunc("/routes", h.CreateRoute).Methods("POST")
    api.HandleFunc("/routes/{route_id}", h.GetRoute).Methods("GET")

    api.HandleFunc("/buses/live", h.GetLiveBuses).Methods("GET")
    api.HandleFunc("/buses/{bus_id}/location", h.UpdateBusLocation).Methods("POST")

    api.HandleFunc("/stops/nearby", h.GetNearbyStops).Methods("GET")
    api.HandleFunc("/stops/{stop_id}/arrivals", h.GetStopArrivals).Methods("GET")

    api.HandleFunc("/search/routes", h.SearchRoutes).Methods("GET")

    api.HandleFunc("/users/{user_id}/favorites", h.GetUserFavorites).Methods("GET")
    api.HandleFunc("/users/{user_id}/favorites", h.AddUserFavorite).Methods("POST")

    api.HandleFunc("/migrate-data", h.MigrateSampleData).Methods("POST")
}
