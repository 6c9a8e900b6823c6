// Package main is the entry point for the GlobeTrotter API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/pressly/goose/v3"

	"github.com/aadarshsenapati/globetrotter/backend/internal/authclient"
	"github.com/aadarshsenapati/globetrotter/backend/internal/config"
	"github.com/aadarshsenapati/globetrotter/backend/internal/geo"
	"github.com/aadarshsenapati/globetrotter/backend/internal/handler"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
	"github.com/aadarshsenapati/globetrotter/backend/internal/places"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
	"github.com/aadarshsenapati/globetrotter/backend/internal/service"
	"github.com/aadarshsenapati/globetrotter/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// Apply pending migrations at bootstrap. goose needs a database/sql
	// handle, so a short-lived one is opened alongside the pool.
	if err := migrate(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	// --- External clients -------------------------------------------------
	authClient := authclient.NewClient(cfg.AuthURL, cfg.AuthAnonKey, cfg.AuthServiceKey, cfg.UpstreamTimeout)
	geoClient := geo.NewClient(cfg.GeoNamesURL, cfg.GeoNamesUsername, cfg.UpstreamTimeout)
	countriesClient := geo.NewCountriesClient(cfg.CountriesURL, cfg.UpstreamTimeout)
	placesClient := places.NewClient(cfg.PlacesURL, cfg.PlacesAPIKey, cfg.PlacesAPIVersion, cfg.UpstreamTimeout)

	// --- Repositories and services ----------------------------------------
	userRepo := repo.NewUserRepo(pool)
	tripRepo := repo.NewTripRepo(pool)
	stopRepo := repo.NewStopRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	scheduleRepo := repo.NewScheduleRepo(pool)

	owner := service.NewOwnership(tripRepo, stopRepo, activityRepo)

	authService := service.NewAuthService(authClient, userRepo)
	profileService := service.NewProfileService(userRepo, authClient)
	tripService := service.NewTripService(tripRepo, cfg.ShareBaseURL)
	stopService := service.NewStopService(owner, stopRepo, geoClient)
	activityService := service.NewActivityService(owner, activityRepo)
	itineraryService := service.NewItineraryService(owner, placesClient)
	searchService := service.NewSearchService(geoClient, countriesClient, placesClient)
	scheduleService := service.NewScheduleService(owner, scheduleRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body-size cap. The bearer-token authenticator is applied
	// per-route inside Server.Routes so public endpoints stay public.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	server := handler.NewServer(
		authService,
		tripService,
		stopService,
		activityService,
		itineraryService,
		searchService,
		scheduleService,
		profileService,
	)
	r.Mount("/", server.Routes(middleware.NewAuthenticator(authClient)))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies all embedded migrations, creating goose's version table on
// first run.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
