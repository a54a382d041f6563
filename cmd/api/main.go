// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/email"
	"github.com/fleetdesk/fleetdesk/internal/handler"
	"github.com/fleetdesk/fleetdesk/internal/middleware"
	"github.com/fleetdesk/fleetdesk/internal/relay"
	"github.com/fleetdesk/fleetdesk/internal/repository"
	"github.com/fleetdesk/fleetdesk/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	bugReportRepo := repository.NewBugReportRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize relay bot client
	relayClient := relay.NewClient(&relay.Config{
		BaseURL: cfg.Relay.BaseURL,
		Token:   cfg.Relay.Token,
	})

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         24 * time.Hour,
		CleanupFreq: 5 * time.Minute,
	})
	defer cacheService.Close()

	// Initialize services
	identityService := service.NewIdentityService(userRepo, passwordHasher, tokenManager)
	orgService := service.NewOrganizationService(orgRepo, passwordHasher, emailService, cfg)
	userService := service.NewUserService(userRepo, passwordHasher, emailService, cacheService, cfg)
	actionLogService := service.NewActionLogService(actionLogRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	teamService := service.NewTeamService(teamRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, vehicleRepo)
	penaltyService := service.NewPenaltyService(penaltyRepo, vehicleRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	rentalService := service.NewRentalService(rentalRepo, vehicleRepo)
	bugReportService := service.NewBugReportService(bugReportRepo, orgRepo, relayClient)
	exportService := service.NewExportService(vehicleRepo, expenseRepo, penaltyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(orgService, identityService)
	orgHandler := handler.NewOrganizationHandler(orgService, actionLogService)
	userHandler := handler.NewUserHandler(userService, actionLogService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, actionLogService)
	teamHandler := handler.NewTeamHandler(teamService, actionLogService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	penaltyHandler := handler.NewPenaltyHandler(penaltyService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	bugReportHandler := handler.NewBugReportHandler(bugReportService)
	exportHandler := handler.NewExportHandler(exportService, actionLogService)
	actionLogHandler := handler.NewActionLogHandler(actionLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/register", authHandler.RegisterHandler)
			r.Post("/login", authHandler.LoginHandler)
			r.Post("/logout", authHandler.LogoutHandler)
			r.Post("/invite/accept", userHandler.AcceptInviteHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(tokenManager))
			r.Use(middleware.RequireAuth)

			// Readable by any authenticated user
			r.Get("/organization", orgHandler.GetHandler)
			r.Get("/vehicles", vehicleHandler.ListHandler)
			r.Get("/vehicles/{id}", vehicleHandler.GetHandler)
			r.Get("/vehicles/{id}/maintenance", maintenanceHandler.ListForVehicleHandler)
			r.Get("/teams", teamHandler.ListHandler)
			r.Get("/teams/{id}", teamHandler.GetHandler)
			r.Get("/teams/{id}/members", teamHandler.ListMembersHandler)
			r.Get("/penalties", penaltyHandler.ListHandler)
			r.Get("/expenses", expenseHandler.ListHandler)
			r.Get("/rentals", rentalHandler.ListHandler)
			r.Post("/bug-reports", bugReportHandler.CreateHandler)

			// Fleet mutations require manager privilege
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanManageFleet, actionLogService))

				r.Post("/vehicles", vehicleHandler.CreateHandler)
				r.Put("/vehicles/{id}", vehicleHandler.UpdateHandler)
				r.Delete("/vehicles/{id}", vehicleHandler.DeleteHandler)

				r.Post("/maintenance", maintenanceHandler.CreateHandler)
				r.Delete("/maintenance/{id}", maintenanceHandler.DeleteHandler)

				r.Post("/penalties", penaltyHandler.CreateHandler)
				r.Post("/penalties/{id}/pay", penaltyHandler.MarkPaidHandler)
				r.Delete("/penalties/{id}", penaltyHandler.DeleteHandler)

				r.Post("/expenses", expenseHandler.CreateHandler)
				r.Put("/expenses/{id}", expenseHandler.UpdateHandler)
				r.Delete("/expenses/{id}", expenseHandler.DeleteHandler)

				r.Post("/rentals", rentalHandler.CreateHandler)
				r.Post("/rentals/{id}/close", rentalHandler.CloseHandler)
				r.Delete("/rentals/{id}", rentalHandler.DeleteHandler)
			})

			// Team mutations require manager privilege
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanManageTeamMembers, actionLogService))

				r.Post("/teams", teamHandler.CreateHandler)
				r.Put("/teams/{id}", teamHandler.UpdateHandler)
				r.Delete("/teams/{id}", teamHandler.DeleteHandler)
				r.Post("/teams/{id}/members", teamHandler.AddMemberHandler)
				r.Put("/teams/members/{memberID}", teamHandler.UpdateMemberHandler)
				r.Delete("/teams/members/{memberID}", teamHandler.RemoveMemberHandler)
			})

			// Exports require manager privilege
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanExportData, actionLogService))

				r.Get("/export/{dataset}", exportHandler.ExportHandler)
			})

			// User management requires admin privilege
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanManagePlatformUsers, actionLogService))

				r.Get("/users", userHandler.ListHandler)
				r.Post("/users", userHandler.CreateHandler)
				r.Put("/users/{id}", userHandler.UpdateHandler)
				r.Delete("/users/{id}", userHandler.DeleteHandler)
				r.Post("/users/invite", userHandler.InviteHandler)

				r.Get("/bug-reports", bugReportHandler.ListHandler)
				r.Get("/action-log", actionLogHandler.ListHandler)
			})

			// Organization settings require admin privilege
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanEditOrganization, actionLogService))

				r.Put("/organization", orgHandler.UpdateSettingsHandler)
			})

			// Account deletion is owner-only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.CanDeleteAccount, actionLogService))

				r.Delete("/organization", orgHandler.DeleteAccountHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
