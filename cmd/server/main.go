package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"journey-api/internal/auth"
	booking_db "journey-api/internal/bookings/db"
	"journey-api/internal/bookings/booking_api"
	bookings "journey-api/internal/bookings/service"
	club_db "journey-api/internal/clubs/db"
	"journey-api/internal/clubs/club_api"
	clubs "journey-api/internal/clubs/service"
	cms_db "journey-api/internal/cms/db"
	"journey-api/internal/cms/cms_api"
	cms "journey-api/internal/cms/service"
	"journey-api/internal/config"
	"journey-api/internal/database/migrations"
	"journey-api/internal/email"
	event_db "journey-api/internal/events/db"
	"journey-api/internal/events/event_api"
	events "journey-api/internal/events/service"
	"journey-api/internal/logger"
	user_db "journey-api/internal/users/db"
	"journey-api/internal/users/user_api"
)

func connectDatabase(cfg config.DatabaseConfig, logger *logger.Logger) *bun.DB {
	if cfg.URL == "" {
		logger.Fatal("CONFIG", "DATABASE_URL not set")
	}

	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		logger.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.URL)
		if err != nil {
			logger.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		logger.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	logger.Info("DATABASE", "✅ PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Journey API initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	bunDB := connectDatabase(cfg.Database, logger)
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, migrations.DefaultOptions())
	if err := runner.RunMigrations(); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
	}
	defer runner.Close()

	sessionManager := scs.New()
	sessionManager.Store = postgresstore.New(bunDB.DB)
	sessionManager.Lifetime = cfg.Session.Lifetime
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	userDB := &user_db.DB{Bun: bunDB}
	authn := auth.New(sessionManager, userDB)

	clubService := clubs.NewClubService(&club_db.DB{Bun: bunDB})
	eventService := events.NewEventService(&event_db.DB{Bun: bunDB}, logger)
	mailer := email.NewMailer(cfg.Email, logger)
	bookingService := bookings.NewBookingService(&booking_db.DB{Bun: bunDB}, eventService, mailer, logger)
	cmsService := cms.NewCMSService(&cms_db.DB{Bun: bunDB}, logger)

	userHandler := &user_api.Handler{UserDB: userDB, Auth: authn, Config: cfg, Logger: logger}
	clubHandler := club_api.NewHandler(clubService, logger)
	eventHandler := event_api.NewHandler(eventService, logger)
	bookingHandler := booking_api.NewHandler(bookingService, logger)
	cmsHandler := cms_api.NewHandler(cmsService, logger)

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)

	r.Route("/api", func(r chi.Router) {
		r.Use(authn.WithUser)

		// --- Public Routes ---
		r.Post("/login", userHandler.Login)
		r.Post("/logout", userHandler.Logout)
		r.Post("/register", userHandler.Register)
		r.Get("/config/map-style", userHandler.MapStyle)

		// --- Authenticated Routes ---
		r.With(authn.RequireAuth).Get("/user", userHandler.CurrentUser)
		r.Route("/auth/user", func(r chi.Router) {
			r.Use(authn.RequireAuth)
			r.Get("/", userHandler.CurrentUser)
			r.Put("/", userHandler.UpdateProfile)
		})
		r.Route("/my", func(r chi.Router) {
			r.Use(authn.RequireAuth)
			r.Get("/bookings", bookingHandler.MyBookings)
			r.Get("/memberships", clubHandler.MyMemberships)
		})

		r.Route("/clubs", func(r chi.Router) {
			r.Get("/", clubHandler.ListClubs)
			r.Get("/{id}", clubHandler.GetClub)
			r.Get("/{id}/events", eventHandler.ListClubEvents)
			r.Get("/{id}/members", clubHandler.ListMembers)
			r.Get("/{id}/gallery", clubHandler.GetGallery)
			r.With(authn.RequireAuth).Post("/{id}/join", clubHandler.JoinClub)
			r.With(authn.RequireAuth).Post("/{id}/leave", clubHandler.LeaveClub)
			r.With(authn.RequireAuth).Get("/{id}/membership", clubHandler.MembershipStatus)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.ListEvents)
			r.Get("/all", eventHandler.ListAllEvents)
			r.Get("/{id}", eventHandler.GetEvent)
			r.Get("/{id}/gallery", eventHandler.GetEventGallery)
			r.Get("/{id}/schedule", eventHandler.GetEventSchedule)
			r.Get("/{id}/reviews", eventHandler.GetEventReviews)
			r.Post("/{id}/reviews", eventHandler.AddEventReview)
			r.Get("/{id}/prices", eventHandler.GetEventPrices)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/{reference}", bookingHandler.GetBookingByReference)
		})

		r.Route("/cms", func(r chi.Router) {
			r.Get("/hero", cmsHandler.GetHero)
			r.Get("/navbar", cmsHandler.GetNavbar)
			r.Get("/theme", cmsHandler.GetTheme)
			r.Get("/contact", cmsHandler.GetContact)
			r.Get("/footer", cmsHandler.GetFooter)
			r.Get("/seo", cmsHandler.GetSeo)
			r.Get("/about", cmsHandler.GetAbout)
			r.Get("/president-message", cmsHandler.GetPresidentMessage)
			r.Get("/partner-settings", cmsHandler.GetPartnerSettings)
			r.Get("/booking-page", cmsHandler.GetBookingPage)
			r.Get("/sections", cmsHandler.ListSections)
			r.Get("/sections/{slug}", cmsHandler.GetSectionBySlug)
			r.Get("/section-blocks/{sectionId}", cmsHandler.ListSectionBlocks)
			r.Get("/focus-items", cmsHandler.ListFocusItems)
			r.Get("/team-members", cmsHandler.ListTeamMembers)
			r.Get("/testimonials", cmsHandler.ListTestimonials)
			r.Post("/testimonials", cmsHandler.SubmitTestimonial)
			r.Get("/stats", cmsHandler.ListSiteStats)
			r.Get("/partners", cmsHandler.ListPartners)
		})
		logger.Info("ROUTER", "Public and authenticated routes registered under /api")

		// --- Admin Routes ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Route("/clubs", func(r chi.Router) {
				r.Post("/", clubHandler.CreateClub)
				r.Put("/{id}", clubHandler.UpdateClub)
				r.Delete("/{id}", clubHandler.DeleteClub)
				r.Post("/{id}/gallery", clubHandler.AddImage)
			})

			r.Route("/events", func(r chi.Router) {
				r.Post("/", eventHandler.CreateEvent)
				r.Put("/{id}", eventHandler.UpdateEvent)
				r.Delete("/{id}", eventHandler.DeleteEvent)
				r.Post("/{id}/gallery", eventHandler.AddEventImage)
				r.Delete("/{id}/gallery/{childId}", eventHandler.DeleteEventImage)
				r.Post("/{id}/schedule", eventHandler.AddEventScheduleDay)
				r.Delete("/{id}/schedule/{childId}", eventHandler.DeleteEventScheduleDay)
				r.Delete("/{id}/reviews/{childId}", eventHandler.DeleteEventReview)
				r.Post("/{id}/prices", eventHandler.AddEventPrice)
				r.Delete("/{id}/prices/{childId}", eventHandler.DeleteEventPrice)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", bookingHandler.ListBookings)
				r.Put("/{reference}/status", bookingHandler.UpdateBookingStatus)
			})

			r.Route("/cms", func(r chi.Router) {
				r.Put("/hero", cmsHandler.UpdateHero)
				r.Put("/navbar", cmsHandler.UpdateNavbar)
				r.Put("/theme", cmsHandler.UpdateTheme)
				r.Put("/contact", cmsHandler.UpdateContact)
				r.Put("/footer", cmsHandler.UpdateFooter)
				r.Put("/seo", cmsHandler.UpdateSeo)
				r.Put("/about", cmsHandler.UpdateAbout)
				r.Put("/president-message", cmsHandler.UpdatePresidentMessage)
				r.Put("/partner-settings", cmsHandler.UpdatePartnerSettings)
				r.Put("/booking-page", cmsHandler.UpdateBookingPage)

				r.Route("/sections", func(r chi.Router) {
					r.Get("/", cmsHandler.ListSections)
					r.Post("/", cmsHandler.CreateSection)
					r.Put("/{id}", cmsHandler.UpdateSection)
					r.Delete("/{id}", cmsHandler.DeleteSection)
				})
				r.Get("/section-blocks/{sectionId}", cmsHandler.ListSectionBlocks)
				r.Route("/blocks", func(r chi.Router) {
					r.Post("/", cmsHandler.CreateSectionBlock)
					r.Put("/{id}", cmsHandler.UpdateSectionBlock)
					r.Delete("/{id}", cmsHandler.DeleteSectionBlock)
				})
				r.Route("/focus-items", func(r chi.Router) {
					r.Post("/", cmsHandler.CreateFocusItem)
					r.Put("/{id}", cmsHandler.UpdateFocusItem)
					r.Delete("/{id}", cmsHandler.DeleteFocusItem)
				})
				r.Route("/team-members", func(r chi.Router) {
					r.Post("/", cmsHandler.CreateTeamMember)
					r.Put("/{id}", cmsHandler.UpdateTeamMember)
					r.Delete("/{id}", cmsHandler.DeleteTeamMember)
				})
				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", cmsHandler.ListAllTestimonials)
					r.Post("/", cmsHandler.CreateTestimonial)
					r.Put("/{id}", cmsHandler.UpdateTestimonial)
					r.Delete("/{id}", cmsHandler.DeleteTestimonial)
				})
				r.Route("/stats", func(r chi.Router) {
					r.Post("/", cmsHandler.CreateSiteStat)
					r.Put("/{id}", cmsHandler.UpdateSiteStat)
					r.Delete("/{id}", cmsHandler.DeleteSiteStat)
				})
				r.Route("/partners", func(r chi.Router) {
					r.Post("/", cmsHandler.CreatePartner)
					r.Put("/{id}", cmsHandler.UpdatePartner)
					r.Delete("/{id}", cmsHandler.DeletePartner)
				})
				r.Route("/media", func(r chi.Router) {
					r.Get("/", cmsHandler.ListMedia)
					r.Get("/{id}", cmsHandler.GetMedia)
					r.Post("/", cmsHandler.CreateMedia)
					r.Delete("/{id}", cmsHandler.DeleteMedia)
				})
			})
		})
		logger.Info("ROUTER", "Admin routes registered under /api/admin")
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 Journey API running on :%s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ Journey API shutdown complete")
	}
}
