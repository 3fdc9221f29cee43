package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Chat
	mux.HandleFunc("/api/chat", s.rateLimited(s.app.ChatHandler.ChatHandler))

	// API routes - Blog content store (admin surface)
	mux.HandleFunc("/api/blogs", s.app.BlogHandler.UpsertHandler)            // PUT/POST - upsert
	mux.HandleFunc("/api/blogs/recent", s.app.BlogHandler.ListRecentHandler) // GET - newest first
	mux.HandleFunc("/api/blogs/", s.app.BlogHandler.GetBySlugHandler)        // GET/DELETE /{slug}

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// rateLimited applies the shared token bucket to a route
func (s *Server) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.app.Logger.Warn().
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Msg("Rate limit exceeded")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
