package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/player-profile-service/internal/http/handlers"
	"github.com/preston-bernstein/player-profile-service/internal/http/requestutil"
)

// RouterOptions tunes the cross-cutting behaviour of the router.
type RouterOptions struct {
	// MaxBodyBytes caps request bodies on /api routes. Zero disables the cap.
	MaxBodyBytes int64
	CORSOrigins  []string
}

// NewRouter registers the API routes and hands every other path to spa.
func NewRouter(handler *handlers.Handler, spa nethttp.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.RequestIDHeader},
		ExposedHeaders: []string{requestutil.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		if opts.MaxBodyBytes > 0 {
			r.Use(chimiddleware.RequestSize(opts.MaxBodyBytes))
		}
		r.Get("/data", handler.GetProfile)
		r.Post("/data", handler.SaveProfile)
		r.Get("/auth", handler.AuthStatus)
		r.Post("/auth/login", handler.Login)
		r.Post("/auth/register", handler.Register)
		r.NotFound(handler.NotFound)
		r.MethodNotAllowed(handler.MethodNotAllowed)
	})

	if spa == nil {
		spa = nethttp.HandlerFunc(handler.NotFound)
	}
	r.NotFound(spa.ServeHTTP)
	r.MethodNotAllowed(handler.MethodNotAllowed)
	return r
}
