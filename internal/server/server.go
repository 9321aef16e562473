// Package server is the composition root: it wires the storage driver,
// the identity emulator, the services, and the HTTP routes, and runs
// the server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/companion"
	"github.com/sakif/wellverse/internal/handler"
	"github.com/sakif/wellverse/internal/identity"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/middleware"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
	"github.com/sakif/wellverse/internal/repository/memory"
	sqliteRepo "github.com/sakif/wellverse/internal/repository/sqlite"
	"github.com/sakif/wellverse/internal/seed"
	"github.com/sakif/wellverse/internal/service"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port int

	// StoreDriver selects the storage backend: "memory" (default) or
	// "sqlite".
	StoreDriver string
	DBPath      string
	// StoreLatency adds an artificial delay to every memory-driver
	// operation, so loading states are visible during development.
	StoreLatency time.Duration

	JWTSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	CompanionURL string
}

// stores is the set of repositories a driver provides.
type stores struct {
	users       repository.UserRepository
	communities repository.CommunityRepository
	posts       repository.PostRepository
	moods       repository.MoodRepository
	resources   repository.ResourceRepository
	close       func() error
}

// Server owns the router and the resources that need closing on
// shutdown.
type Server struct {
	router      *chi.Mux
	config      Config
	logger      *slog.Logger
	closeStore  func() error
	unsubscribe func()
}

// New wires the full dependency graph and registers all routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	st, err := openStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := seed.Apply(context.Background(), seed.Stores{
		Users:       st.users,
		Communities: st.communities,
		Posts:       st.posts,
		Moods:       st.moods,
		Resources:   st.resources,
	}, logger); err != nil {
		st.close()
		return nil, fmt.Errorf("seeding: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		st.close()
		return nil, fmt.Errorf("configuring tokens: %w", err)
	}

	emulator := identity.NewEmulator(st.users, auth.NewPasswordService(), logger)

	// The auth-state feed the frontends subscribe to; the server itself
	// listens too, so session transitions show up in the log.
	unsubscribe := emulator.Subscribe(func(user *model.User) {
		if user == nil {
			logger.Info("auth state changed", slog.String("state", "signed out"))
			return
		}
		logger.Info("auth state changed",
			slog.String("state", "signed in"),
			slog.String("userID", user.ID),
		)
	})

	var google *auth.GoogleProvider
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		google = auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
	} else {
		logger.Warn("Google OAuth not configured, /api/auth/google routes disabled")
	}

	identitySvc := service.NewIdentityService(emulator, tokens, logger)
	communitySvc := service.NewCommunityService(st.communities, st.posts, st.users, logger)
	moodSvc := service.NewMoodService(st.moods, logger)
	resourceSvc := service.NewResourceService(st.resources)
	chatSvc := service.NewChatService(companion.New(cfg.CompanionURL, nil), st.communities, logger)

	authH := handler.NewAuthHandler(identitySvc, google, logger)
	communityH := handler.NewCommunityHandler(communitySvc)
	moodH := handler.NewMoodHandler(moodSvc)
	resourceH := handler.NewResourceHandler(resourceSvc)
	chatH := handler.NewChatHandler(chatSvc)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authH.HandleSignUp)
		r.Post("/auth/login", authH.HandleLogin)
		r.Post("/auth/social", authH.HandleSocialLogin)
		r.Post("/auth/logout", authH.HandleLogout)
		if google != nil {
			r.Get("/auth/google/login", authH.HandleGoogleLogin)
			r.Get("/auth/google/callback", authH.HandleGoogleCallback)
		}

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Get("/me", authH.HandleMe)
			r.Patch("/me", authH.HandleUpdateProfile)
			r.Post("/communities/{id}/posts", communityH.HandleCreatePost)
			r.Get("/moods", moodH.HandleHistory)
			r.Post("/moods", moodH.HandleRecord)
		})

		// Public routes still pick up the session when a valid cookie
		// rides along.
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth(tokens))
			r.Get("/communities", communityH.HandleList)
			r.Get("/communities/{id}", communityH.HandleGet)
			r.Get("/communities/{id}/posts", communityH.HandleListPosts)
			r.Get("/resources", resourceH.HandleList)
			r.Post("/chat", chatH.HandleChat)
			r.Post("/icebreakers", chatH.HandleIcebreakers)
		})
	})

	return &Server{
		router:      r,
		config:      cfg,
		logger:      logger,
		closeStore:  st.close,
		unsubscribe: unsubscribe,
	}, nil
}

func openStores(cfg Config, logger *slog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Info("using sqlite store", slog.String("path", cfg.DBPath))
		return &stores{
			users:       db.Users(),
			communities: db.Communities(),
			posts:       db.Posts(),
			moods:       db.Moods(),
			resources:   db.Resources(),
			close:       db.Close,
		}, nil

	case "", "memory":
		store := memstore.New(memstore.WithLatency(cfg.StoreLatency))
		repo := memory.New(store)
		logger.Info("using in-memory store", slog.Duration("latency", cfg.StoreLatency))
		return &stores{
			users:       repo.Users(),
			communities: repo.Communities(),
			posts:       repo.Posts(),
			moods:       repo.Moods(),
			resources:   repo.Resources(),
			close:       func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Router exposes the configured routes, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully and releases the store.
func (s *Server) Start() error {
	defer s.closeStore()
	defer s.unsubscribe()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
