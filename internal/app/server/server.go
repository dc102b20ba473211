// Package server assembles the router and the middleware chain.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shortlink-lab/go-shortlinks/internal/app/handler"
	"github.com/shortlink-lab/go-shortlinks/internal/app/service"
	"github.com/shortlink-lab/go-shortlinks/internal/middleware"
)

// Emitter is the remote event sink shared by middleware and handlers.
type Emitter interface {
	Emit(stack, level, pkg, message string) error
}

func Init(scheme string, logger *zap.Logger, events Emitter, linkService service.LinkServiceIface) *chi.Mux {
	postHandler := handler.NewPost(scheme, linkService, logger, events)
	getHandler := handler.NewGet(linkService, logger, events)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRealIP)
	r.Use(middleware.WithRequestLogging(logger, events))
	r.Use(middleware.WithGZIP)

	r.Post("/shorturls", postHandler.CreateShortURL)
	r.Get("/shorturls/{shortcode}", getHandler.Stats)
	r.Get("/{shortcode}", getHandler.Redirect)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
