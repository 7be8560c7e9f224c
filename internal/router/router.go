package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cyber-bank-auth/internal/config"
	"cyber-bank-auth/internal/handler"
	"cyber-bank-auth/internal/middleware"
	"cyber-bank-auth/internal/token"
)

func New(
	cfg *config.Config,
	gate *middleware.ScopeGate,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Use(middleware.Timeout(cfg.RequestTimeout))

		auth.Route("/v1", func(v1 chi.Router) {
			v1.Post("/register", authHandler.Register)
			v1.Post("/login", authHandler.Login)
		})

		// Unversioned aliases track the latest version.
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.With(gate.Require(token.ScopeUser, token.ScopeUserInfo)).Get("/users/me", userHandler.Me)
		api.With(gate.Require(token.ScopeUser)).Get("/session", userHandler.Session)
	})

	return r
}
