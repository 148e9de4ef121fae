package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/askwell/apiserver/config"
	"github.com/askwell/apiserver/internal/db"
	"github.com/askwell/apiserver/internal/handlers"
	"github.com/askwell/apiserver/internal/services"
	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with its store, services, and routes wired.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	issuer, err := token.NewIssuer(cfg.Auth.TokenSecret)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	sessionRepo := store.NewSessionRepository(dbConn)
	questionRepo := store.NewQuestionRepository(dbConn)
	answerRepo := store.NewAnswerRepository(dbConn)

	authService := services.NewAuthService(userRepo, sessionRepo, issuer, cfg.Auth.SessionTTL)
	userService := services.NewUserService(userRepo, authService)
	questionService := services.NewQuestionService(questionRepo, userRepo, authService)
	answerService := services.NewAnswerService(answerRepo, questionRepo, authService)
	adminService := services.NewAdminService(userRepo, authService)

	router := NewRouter(authService, userService, questionService, answerService, adminService)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// NewRouter assembles the chi router for the given services.
func NewRouter(
	authService *services.AuthService,
	userService *services.UserService,
	questionService *services.QuestionService,
	answerService *services.AnswerService,
	adminService *services.AdminService,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)

	router.Get("/healthz", handlers.Healthz)
	router.Route("/user", func(r chi.Router) {
		handlers.AuthRouter(r, authService)
	})
	router.Get("/userprofile/{userId}", handlers.NewUserHandler(userService).GetProfile)
	router.Route("/question", func(r chi.Router) {
		handlers.QuestionRouter(r, questionService)
		r.Post("/{questionId}/answer/create", handlers.NewAnswerHandler(answerService).Create)
	})
	router.Route("/answer", func(r chi.Router) {
		handlers.AnswerRouter(r, answerService)
	})
	router.Route("/admin", func(r chi.Router) {
		handlers.AdminRouter(r, adminService)
	})

	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
